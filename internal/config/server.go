package config

import (
	"ZisionX/database/dynamo"
	"ZisionX/database/postgres"
	galleryHandler "ZisionX/internal/api/gallery/handler"
	galleryRepository "ZisionX/internal/api/gallery/repository"
	galleryService "ZisionX/internal/api/gallery/service"
	indexingHandler "ZisionX/internal/api/indexing/handler"
	indexingService "ZisionX/internal/api/indexing/service"
	otpHandler "ZisionX/internal/api/otp/handler"
	otpService "ZisionX/internal/api/otp/service"
	printingHandler "ZisionX/internal/api/printing/handler"
	printingRepository "ZisionX/internal/api/printing/repository"
	printingService "ZisionX/internal/api/printing/service"
	"ZisionX/internal/middleware"
	"ZisionX/pkg/redis"
	"ZisionX/pkg/rekognition"
	"ZisionX/pkg/s3"
	"ZisionX/pkg/smtp"
	"ZisionX/pkg/utils"
	"ZisionX/pkg/whatsapp"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine            *fiber.App
	db                *sqlx.DB
	log               *logrus.Logger
	middleware        middleware.Middleware
	validator         *validator.Validate
	utils             utils.IUtils
	handlers          []handler
	redisServer       redis.IRedis
	smtpMailer        smtp.ItfSmtp
	whatsappClient    whatsapp.IWhatsappSender
	s3Client          s3.ItfS3
	rekognitionClient rekognition.ItfRekognition
	faceRepo          galleryRepository.Repository
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithRekognitionClient() ServerOption {
	return func(s *Server) error {
		client, err := rekognition.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize Rekognition client: %v", err)
			}
			return fmt.Errorf("failed to create Rekognition client: %w", err)
		}
		s.rekognitionClient = client
		return nil
	}
}

// WithWhatsappClient is non fatal: OTP delivery degrades to Redis-only when
// the WhatsApp session cannot be established at boot.
func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		client, err := whatsapp.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize WhatsApp client, continuing without it: %v", err)
			}
			return nil
		}
		s.whatsappClient = client
		return nil
	}
}

func WithFaceRepository() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before face repository")
		}

		dynamoClient, err := dynamo.New()
		if err != nil {
			s.log.Errorf("Failed to initialize DynamoDB client: %v", err)
			return fmt.Errorf("failed to create DynamoDB client: %w", err)
		}

		tableName := os.Getenv("DYNAMODB_TABLE")
		if tableName == "" {
			tableName = "face-attributes"
		}

		s.faceRepo = galleryRepository.New(dynamoClient, tableName, s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Gallery Domain
	galleryServices := galleryService.New(s.log, s.faceRepo, s.rekognitionClient, s.s3Client, s.utils)
	galleryHandlers := galleryHandler.New(s.log, s.validator, s.middleware, galleryServices)

	// Indexing Domain
	indexingServices := indexingService.New(s.log, s.faceRepo, s.rekognitionClient, s.s3Client, s.utils)
	indexingHandlers := indexingHandler.New(s.log, s.validator, s.middleware, indexingServices)

	// Printing Domain
	printRepo := printingRepository.New(s.db, s.log)
	printingServices := printingService.New(s.log, printRepo, s.s3Client, s.smtpMailer, s.utils)
	printingHandlers := printingHandler.New(s.log, s.validator, s.middleware, printingServices)

	// OTP Domain
	otpServices := otpService.New(s.log, s.redisServer, s.whatsappClient)
	otpHandlers := otpHandler.New(s.log, s.validator, s.middleware, otpServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, galleryHandlers, indexingHandlers, printingHandlers, otpHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.whatsappClient != nil {
			s.whatsappClient.Disconnect()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
