package assistant

import (
	"AssistantGolang/internal/entity"
	"time"
)

type MessageRequest struct {
	Text     string `json:"text" validate:"required,min=1,max=1000"`
	Speak    bool   `json:"speak"`
	Language string `json:"language,omitempty" validate:"omitempty,bcp47_language_tag"`

	// Device coordinates, sent by the client when available. Weather
	// questions without a city fall back to these.
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`

	// Device location state, reported by the client so location-dependent
	// turns can name the actual obstacle (permission vs. disabled service).
	LocationPermission *bool `json:"location_permission,omitempty"`
	LocationEnabled    *bool `json:"location_enabled,omitempty"`
}

type MessageResponse struct {
	Entry   ConversationEntry     `json:"entry"`
	Actions []entity.DeviceAction `json:"actions,omitempty"`
}

type ConversationEntry struct {
	ID         string          `json:"id"`
	Text       string          `json:"text"`
	IsUser     bool            `json:"is_user"`
	Category   entity.Category `json:"category"`
	Loading    bool            `json:"loading"`
	ContentURL string          `json:"content_url,omitempty"`
	ActionURI  string          `json:"action_uri,omitempty"`
	AudioURL   string          `json:"audio_url,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

type HistoryResponse struct {
	Entries []ConversationEntry `json:"entries"`
	Total   int                 `json:"total"`
	Page    int                 `json:"page"`
	Limit   int                 `json:"limit"`
}

type ActionsResponse struct {
	Actions []entity.DeviceAction `json:"actions"`
}

type SyncContactsRequest struct {
	Contacts []ContactPayload `json:"contacts" validate:"required,dive"`
}

type ContactPayload struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Number string `json:"number" validate:"required,min=3,max=30"`
}

type NLPTestRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}

type NLPTestResponse struct {
	Input      string          `json:"input"`
	Normalized string          `json:"normalized"`
	Category   entity.Category `json:"category"`
	Confidence float64         `json:"confidence"`
	GatePassed bool            `json:"gate_passed"`
	Negative   bool            `json:"negative"`
	Slots      NLPTestSlots    `json:"slots"`
}

type NLPTestSlots struct {
	Day             string   `json:"day,omitempty"`
	Time            string   `json:"time,omitempty"`
	RelativeTime    string   `json:"relative_time,omitempty"`
	Place           string   `json:"place,omitempty"`
	Destination     string   `json:"destination,omitempty"`
	SongQuery       string   `json:"song_query,omitempty"`
	ReminderContext string   `json:"reminder_context,omitempty"`
	ContactTokens   []string `json:"contact_tokens,omitempty"`
}

type WSClientMessage struct {
	Text               string   `json:"text"`
	Speak              bool     `json:"speak"`
	Language           string   `json:"language,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
	LocationPermission *bool    `json:"location_permission,omitempty"`
	LocationEnabled    *bool    `json:"location_enabled,omitempty"`
}

type WSServerMessage struct {
	Type    string                `json:"type"`
	Entry   *ConversationEntry    `json:"entry,omitempty"`
	Actions []entity.DeviceAction `json:"actions,omitempty"`
	Error   string                `json:"error,omitempty"`
}
