package indexing

import (
	"ZisionX/pkg/response"
	"net/http"
)

var (
	ErrNoImagesFound = response.NewError(http.StatusNotFound, "no images found for event")
)
