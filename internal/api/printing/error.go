package printing

import (
	"ZisionX/pkg/response"
	"net/http"
)

var (
	ErrImageNotFound = response.NewError(http.StatusNotFound, "requested image not found")
	ErrFailedToSend  = response.NewError(http.StatusInternalServerError, "failed to send print request email")
)
