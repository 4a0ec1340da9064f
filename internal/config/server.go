package config

import (
	"AssistantGolang/database/postgres"
	assistantHandler "AssistantGolang/internal/api/assistant/handler"
	assistantRepository "AssistantGolang/internal/api/assistant/repository"
	assistantService "AssistantGolang/internal/api/assistant/service"
	"AssistantGolang/internal/middleware"
	"AssistantGolang/pkg/audio"
	"AssistantGolang/pkg/classifier"
	"AssistantGolang/pkg/device"
	"AssistantGolang/pkg/groq"
	"AssistantGolang/pkg/openmeteo"
	"AssistantGolang/pkg/s3"
	"AssistantGolang/pkg/translator"
	"AssistantGolang/pkg/utils"
	"AssistantGolang/pkg/youtube"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine        *fiber.App
	db            *sqlx.DB
	log           *logrus.Logger
	middleware    middleware.Middleware
	validator     *validator.Validate
	utils         utils.IUtils
	handlers      []handler
	actionQueue   device.IActionQueue
	classifier    classifier.IClassifier
	translator    translator.ITranslator
	groqClient    groq.IGroq
	youtubeClient youtube.IYoutube
	weatherClient openmeteo.IWeather
	ttsService    audio.ITTS
	s3Client      s3.ItfS3
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

func WithActionQueue(queue device.IActionQueue) ServerOption {
	return func(s *Server) error {
		s.actionQueue = queue
		return nil
	}
}

func WithClassifier() ServerOption {
	return func(s *Server) error {
		client, err := classifier.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create classifier client: %v", err)
			}
			return fmt.Errorf("failed to create classifier client: %w", err)
		}
		s.classifier = client
		return nil
	}
}

func WithTranslator() ServerOption {
	return func(s *Server) error {
		client, err := translator.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create translator client: %v", err)
			}
			return fmt.Errorf("failed to create translator client: %w", err)
		}
		s.translator = client
		return nil
	}
}

func WithGroqClient(client groq.IGroq) ServerOption {
	return func(s *Server) error {
		s.groqClient = client
		return nil
	}
}

func WithYoutubeClient(client youtube.IYoutube) ServerOption {
	return func(s *Server) error {
		s.youtubeClient = client
		return nil
	}
}

func WithWeatherClient(client openmeteo.IWeather) ServerOption {
	return func(s *Server) error {
		s.weatherClient = client
		return nil
	}
}

func WithTTSService(tts audio.ITTS) ServerOption {
	return func(s *Server) error {
		s.ttsService = tts
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

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Assistant Domain
	assistantRepo := assistantRepository.New(s.db, s.log)
	assistantServices := assistantService.New(
		s.log,
		assistantRepo,
		s.actionQueue,
		s.classifier,
		s.translator,
		s.groqClient,
		s.youtubeClient,
		s.weatherClient,
		s.ttsService,
		s.s3Client,
		s.utils,
	)
	assistantHandlers := assistantHandler.New(s.log, s.validator, s.middleware, assistantServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, assistantHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
