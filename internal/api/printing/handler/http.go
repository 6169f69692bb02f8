package printingHandler

import (
	printingService "ZisionX/internal/api/printing/service"
	"ZisionX/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PrintingHandler struct {
	log             *logrus.Logger
	printingService printingService.IPrintingService
	validator       *validator.Validate
	middleware      middleware.Middleware
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps printingService.IPrintingService,
) *PrintingHandler {
	return &PrintingHandler{
		log:             log,
		printingService: ps,
		validator:       validate,
		middleware:      middleware,
	}
}

func (h *PrintingHandler) Start(srv fiber.Router) {
	gallery := srv.Group("/gallery")
	gallery.Post("/print", h.middleware.NewTokenMiddleware, h.RequestPrint)
}
