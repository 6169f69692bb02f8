package indexingHandler

import (
	"ZisionX/internal/api/indexing"
	contextPkg "ZisionX/pkg/context"
	"ZisionX/pkg/handlerUtil"
	"ZisionX/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *IndexingHandler) IndexEvent(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Minute)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing bulk indexing request")

	var req indexing.IndexEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	report, err := h.indexingService.IndexEvent(c, req.EventCode)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "index_event")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, report)
}

func (h *IndexingHandler) ResetCollection(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Minute)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing collection reset request")

	report, err := h.indexingService.ResetCollection(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "reset_collection")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, report)
}
