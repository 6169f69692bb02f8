package galleryHandler

import (
	"ZisionX/internal/api/gallery"
	contextPkg "ZisionX/pkg/context"
	"ZisionX/pkg/handlerUtil"
	"ZisionX/pkg/log"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *GalleryHandler) UploadPhoto(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing photo upload request")

	file, err := ctx.FormFile("file")
	if err != nil {
		return errHandler.Handle(ctx, requestID, gallery.ErrMissingFile, ctx.Path(), "parse_upload_file")
	}

	req := gallery.UploadPhotoRequest{
		EventCode: ctx.FormValue("eventcode"),
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.galleryService.UploadPhoto(c, req, file); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "upload_photo")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, gallery.UploadPhotoResponse{
			Message: "Image uploaded and face indexed successfully",
		})
	}
}

func (h *GalleryHandler) SearchBySelfie(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing selfie search request")

	file, err := ctx.FormFile("file")
	if err != nil {
		return errHandler.Handle(ctx, requestID, gallery.ErrMissingFile, ctx.Path(), "parse_search_file")
	}

	src, err := file.Open()
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "open_search_file")
	}
	defer func() {
		if err := src.Close(); err != nil {
			h.log.WithFields(log.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to close selfie file")
		}
	}()

	selfie, err := io.ReadAll(src)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "read_search_file")
	}

	matches, err := h.galleryService.SearchBySelfie(c, selfie)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "search_by_selfie")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, gallery.SearchResponse{
			Matches: matches,
		})
	}
}
