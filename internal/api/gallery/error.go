package gallery

import (
	"ZisionX/pkg/response"
	"net/http"
)

var (
	// ErrFaceNotFound marks a store lookup with no record. During match
	// filtering it is an expected outcome, not a failure.
	ErrFaceNotFound = response.NewError(http.StatusNotFound, "face attributes not found")

	ErrInvalidFileType = response.NewError(http.StatusBadRequest, "invalid file format, only JPG and PNG are supported")
	ErrMissingFile     = response.NewError(http.StatusBadRequest, "file is required")
)
