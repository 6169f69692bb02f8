package otpHandler

import (
	otpService "ZisionX/internal/api/otp/service"
	"ZisionX/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type OTPHandler struct {
	log        *logrus.Logger
	otpService otpService.IOTPService
	validator  *validator.Validate
	middleware middleware.Middleware
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	os otpService.IOTPService,
) *OTPHandler {
	return &OTPHandler{
		log:        log,
		otpService: os,
		validator:  validate,
		middleware: middleware,
	}
}

func (h *OTPHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")
	auth.Post("/send-otp", h.middleware.NewRateLimiter, h.SendOTP)
	auth.Post("/validate-otp", h.middleware.NewRateLimiter, h.ValidateOTP)
}
