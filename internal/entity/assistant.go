package entity

import (
	"time"
)

type Category string

const (
	CategoryCall       Category = "CALL"
	CategorySongs      Category = "SONGS"
	CategoryAlarm      Category = "ALARM"
	CategoryReminder   Category = "REMINDER"
	CategoryNavigation Category = "NAVIGATION"
	CategoryWeather    Category = "WEATHER"
	CategorySettings   Category = "SETTINGS"
	CategoryOther      Category = "OTHER"
)

// Conversation is one chat bubble. User turns and assistant replies share the
// table; IsUser tells them apart. EnglishText holds the translated text used
// for AI history when the session language is not English.
type Conversation struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Text        string    `json:"text"`
	EnglishText string    `json:"english_text"`
	IsUser      bool      `json:"is_user"`
	Category    Category  `json:"category"`
	Loading     bool      `json:"loading"`
	ContentURL  string    `json:"content_url,omitempty"`
	ActionURI   string    `json:"action_uri,omitempty"`
	AudioURL    string    `json:"audio_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Contact struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Number    string    `json:"number"`
	CreatedAt time.Time `json:"created_at"`
}

type DeviceActionType string

const (
	DeviceActionCall     DeviceActionType = "CALL"
	DeviceActionNavigate DeviceActionType = "NAVIGATE"
	DeviceActionPlay     DeviceActionType = "PLAY"
	DeviceActionAlarm    DeviceActionType = "ALARM"
	DeviceActionReminder DeviceActionType = "REMINDER"
	DeviceActionOpenURL  DeviceActionType = "OPEN_URL"
)

// DeviceAction is a side-effect directive the mobile client executes after
// draining it from the queue.
type DeviceAction struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      DeviceActionType `json:"type"`
	URI       string           `json:"uri,omitempty"`
	Label     string           `json:"label,omitempty"`
	Hour      int              `json:"hour,omitempty"`
	Minute    int              `json:"minute,omitempty"`
	Date      string           `json:"date,omitempty"`
	Repeat    []string         `json:"repeat,omitempty"`
	Silent    bool             `json:"silent,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
