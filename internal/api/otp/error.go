package otp

import (
	"ZisionX/pkg/response"
	"net/http"
)

var (
	ErrOTPNotFound = response.NewError(http.StatusNotFound, "otp expired or never requested")
	ErrInvalidOTP  = response.NewError(http.StatusUnauthorized, "invalid otp code")
)
