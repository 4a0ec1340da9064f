package assistantHandler

import (
	assistantService "AssistantGolang/internal/api/assistant/service"
	"AssistantGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type AssistantHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	assistantService assistantService.IAssistantService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as assistantService.IAssistantService,
) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		assistantService: as,
	}
}

func (h *AssistantHandler) Start(srv fiber.Router) {
	assistant := srv.Group("/assistant")

	assistant.Use(h.middleware.NewTokenMiddleware)

	assistant.Post("/message", h.ProcessMessage)

	assistant.Get("/history", h.GetHistory)
	assistant.Delete("/history", h.ClearHistory)

	assistant.Get("/actions", h.DrainActions)
	assistant.Put("/contacts", h.SyncContacts)

	nlp := assistant.Group("/nlp")
	nlp.Post("/test", h.TestNLP)

	assistant.Get("/ws", websocket.New(h.StreamTurns))
}
