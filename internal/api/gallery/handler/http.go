package galleryHandler

import (
	galleryService "ZisionX/internal/api/gallery/service"
	"ZisionX/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GalleryHandler struct {
	log            *logrus.Logger
	galleryService galleryService.IGalleryService
	validator      *validator.Validate
	middleware     middleware.Middleware
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	gs galleryService.IGalleryService,
) *GalleryHandler {
	return &GalleryHandler{
		log:            log,
		galleryService: gs,
		validator:      validate,
		middleware:     middleware,
	}
}

func (h *GalleryHandler) Start(srv fiber.Router) {
	gallery := srv.Group("/gallery")
	gallery.Post("/upload", h.middleware.NewRateLimiter, h.UploadPhoto)
	gallery.Post("/search", h.middleware.NewRateLimiter, h.SearchBySelfie)
}
