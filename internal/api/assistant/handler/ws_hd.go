package assistantHandler

import (
	"AssistantGolang/internal/api/assistant"
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/log"
	"context"
	"time"

	"github.com/gofiber/websocket/v2"
)

// StreamTurns serves the websocket dialogue stream: the client sends
// utterances and receives each resolved turn on the same socket.
func (h *AssistantHandler) StreamTurns(conn *websocket.Conn) {
	defer conn.Close()

	userData, ok := conn.Locals("user").(entity.UserLoginData)
	if !ok {
		_ = conn.WriteJSON(assistant.WSServerMessage{
			Type:  "error",
			Error: "unauthorized",
		})
		return
	}

	h.log.WithFields(log.Fields{
		"user_id": userData.ID,
	}).Info("Websocket turn stream opened")

	for {
		var msg assistant.WSClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			h.log.WithFields(log.Fields{
				"user_id": userData.ID,
				"error":   err.Error(),
			}).Debug("Websocket turn stream closed")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)

		response, err := h.assistantService.ProcessMessage(ctx, userData.ID, assistant.MessageRequest{
			Text:               msg.Text,
			Speak:              msg.Speak,
			Language:           msg.Language,
			Latitude:           msg.Latitude,
			Longitude:          msg.Longitude,
			LocationPermission: msg.LocationPermission,
			LocationEnabled:    msg.LocationEnabled,
		})
		cancel()

		if err != nil {
			if writeErr := conn.WriteJSON(assistant.WSServerMessage{
				Type:  "error",
				Error: err.Error(),
			}); writeErr != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(assistant.WSServerMessage{
			Type:    "turn",
			Entry:   &response.Entry,
			Actions: response.Actions,
		}); err != nil {
			return
		}
	}
}
