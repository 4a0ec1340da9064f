package classifier

import (
	"context"
	"errors"
	"os"
	"strings"

	"AssistantGolang/internal/entity"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const categoryContext = `You are a strict intent classifier for a voice assistant.
Classify the user's utterance into exactly one of these categories:
CALL - making a phone call to someone
SONGS - playing music or a song
ALARM - setting an alarm or wake-up call
REMINDER - setting a reminder for a task
NAVIGATION - getting directions or navigating somewhere
WEATHER - asking about weather conditions or forecasts
SETTINGS - changing device settings
OTHER - anything else, including general questions and chit-chat

Reply with the category name only, in upper case, nothing else.`

type ScoredCategory struct {
	Category entity.Category
	Score    float64
}

type IClassifier interface {
	Classify(ctx context.Context, text string) ([]ScoredCategory, error)
}

type classifierClient struct {
	modelName string
	client    *genai.Client
}

func New() (IClassifier, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	modelName := os.Getenv("GEMINI_CLASSIFIER_MODEL")
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &classifierClient{
		modelName: modelName,
		client:    client,
	}, nil
}

var knownCategories = map[string]entity.Category{
	"CALL":       entity.CategoryCall,
	"SONGS":      entity.CategorySongs,
	"ALARM":      entity.CategoryAlarm,
	"REMINDER":   entity.CategoryReminder,
	"NAVIGATION": entity.CategoryNavigation,
	"WEATHER":    entity.CategoryWeather,
	"SETTINGS":   entity.CategorySettings,
	"OTHER":      entity.CategoryOther,
}

// Classify returns the matched category with a high score plus OTHER as the
// runner-up, so callers can pick the maximum and still have a fallback.
func (c *classifierClient) Classify(ctx context.Context, text string) ([]ScoredCategory, error) {
	model := c.client.GenerativeModel(c.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(categoryContext)},
	}

	res, err := model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return nil, err
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("no response from classifier")
	}

	raw, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, errors.New("unexpected response format from classifier")
	}

	label := strings.ToUpper(strings.TrimSpace(string(raw)))
	category, ok := knownCategories[label]
	if !ok {
		category = entity.CategoryOther
	}

	if category == entity.CategoryOther {
		return []ScoredCategory{{Category: entity.CategoryOther, Score: 1.0}}, nil
	}

	return []ScoredCategory{
		{Category: category, Score: 0.9},
		{Category: entity.CategoryOther, Score: 0.1},
	}, nil
}

func (c *classifierClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}
