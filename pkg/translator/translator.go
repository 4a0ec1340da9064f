package translator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type ITranslator interface {
	ToEnglish(ctx context.Context, text, sourceLanguage string) (string, error)
	FromEnglish(ctx context.Context, text, targetLanguage string) (string, error)
}

type translatorClient struct {
	modelName string
	client    *genai.Client
}

func New() (ITranslator, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	modelName := os.Getenv("GEMINI_TRANSLATOR_MODEL")
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &translatorClient{
		modelName: modelName,
		client:    client,
	}, nil
}

func (t *translatorClient) ToEnglish(ctx context.Context, text, sourceLanguage string) (string, error) {
	prompt := fmt.Sprintf("Translate the following text from %s to English. Reply with the translation only, nothing else.\n\n%s", sourceLanguage, text)
	return t.translate(ctx, prompt)
}

func (t *translatorClient) FromEnglish(ctx context.Context, text, targetLanguage string) (string, error) {
	prompt := fmt.Sprintf("Translate the following text from English to %s. Reply with the translation only, nothing else.\n\n%s", targetLanguage, text)
	return t.translate(ctx, prompt)
}

func (t *translatorClient) translate(ctx context.Context, prompt string) (string, error) {
	model := t.client.GenerativeModel(t.modelName)

	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from translator")
	}

	raw, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("unexpected response format from translator")
	}

	return strings.TrimSpace(string(raw)), nil
}
