package indexingHandler

import (
	indexingService "ZisionX/internal/api/indexing/service"
	"ZisionX/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type IndexingHandler struct {
	log             *logrus.Logger
	indexingService indexingService.IIndexingService
	validator       *validator.Validate
	middleware      middleware.Middleware
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	is indexingService.IIndexingService,
) *IndexingHandler {
	return &IndexingHandler{
		log:             log,
		indexingService: is,
		validator:       validate,
		middleware:      middleware,
	}
}

func (h *IndexingHandler) Start(srv fiber.Router) {
	gallery := srv.Group("/gallery")
	gallery.Post("/index", h.middleware.NewTokenMiddleware, h.IndexEvent)
	gallery.Delete("/collection", h.middleware.NewTokenMiddleware, h.ResetCollection)
}
