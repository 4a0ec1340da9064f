package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type ITTS interface {
	GenerateAudio(ctx context.Context, text string) ([]byte, error)
}

type ttsService struct {
	apiKey     string
	voiceID    string
	httpClient *http.Client
}

func NewTTSService() ITTS {
	return &ttsService{
		apiKey:     os.Getenv("ELEVENLABS_API_KEY"),
		voiceID:    os.Getenv("ELEVENLABS_VOICE_ID"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (tts *ttsService) GenerateAudio(ctx context.Context, text string) ([]byte, error) {
	url := "https://api.elevenlabs.io/v1/text-to-speech/" + tts.voiceID

	requestBody := map[string]interface{}{
		"text":     text,
		"model_id": "eleven_multilingual_v2",
		"voice_settings": map[string]interface{}{
			"stability":         0.5,
			"similarity_boost":  0.8,
			"style":             0.0,
			"use_speaker_boost": true,
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", tts.apiKey)

	resp, err := tts.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ElevenLabs API error: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
