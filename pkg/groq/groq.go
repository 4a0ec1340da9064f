package groq

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const mainContext = "You are my smart assistant who answers just like normal human response, not too long. Don't refer yourself as an AI."

const (
	apologyBadKey  = "Your chat API key is missing or invalid."
	apologyOffline = "Seems this device is offline. Maybe try checking data connection."
	apologyServer  = "Seems some issue in my server. Please try again."
)

type Message struct {
	FromUser bool
	Text     string
}

type IGroq interface {
	Complete(ctx context.Context, userMessage string, history []Message) string
	SummarizeWeather(ctx context.Context, question, weatherData string, now time.Time) string
}

type groqClient struct {
	client *openai.Client
	model  string
}

func New() IGroq {
	apiKey := os.Getenv("GROQ_API_KEY")

	model := os.Getenv("GROQ_CHAT_MODEL")
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = "https://api.groq.com/openai/v1"
	cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}

	return &groqClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Complete runs the chat completion over the full history. Failures never
// propagate as errors; they come back as spoken apologies so the pipeline
// always has a reply to show.
func (g *groqClient) Complete(ctx context.Context, userMessage string, history []Message) string {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: mainContext,
		},
	}

	for _, msg := range history {
		role := openai.ChatMessageRoleAssistant
		if msg.FromUser {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Text,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	return g.send(ctx, messages)
}

// SummarizeWeather asks for a short natural-language read of the raw
// forecast payload.
func (g *groqClient) SummarizeWeather(ctx context.Context, question, weatherData string, now time.Time) string {
	systemPrompt := fmt.Sprintf(
		"You are a smart weather assistant, up-to-date with the current date and time, which is %s at %s. You will be given raw weather forecast data and a question about it; answer naturally in 2 to 3 lines.",
		now.Format("Monday, 2 January 2006"),
		now.Format("3:04 PM"),
	)

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: question + "\n" + weatherData},
	}

	return g.send(ctx, messages)
}

func (g *groqClient) send(ctx context.Context, messages []openai.ChatCompletionMessage) string {
	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       g.model,
			Messages:    messages,
			Temperature: 1,
			TopP:        1,
		},
	)

	if err != nil {
		return apologyFor(err)
	}

	if len(resp.Choices) == 0 {
		return apologyServer
	}

	return ExtractReply(resp.Choices[0].Message.Content)
}

func apologyFor(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusUnauthorized {
		return apologyBadKey
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return apologyOffline
	}

	return apologyServer
}

var (
	thinkTagPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)
	strayTagPattern = regexp.MustCompile(`</?think>`)
)

// ExtractReply removes reasoning tags some models leak into the output.
func ExtractReply(raw string) string {
	cleaned := thinkTagPattern.ReplaceAllString(raw, "")
	cleaned = strayTagPattern.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

var (
	mdHeaderPattern     = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	mdBoldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdItalicPattern     = regexp.MustCompile(`\*([^*]+)\*|_([^_]+)_`)
	mdImagePattern      = regexp.MustCompile(`!\[[^\]]*]\([^)]*\)`)
	mdLinkPattern       = regexp.MustCompile(`\[([^\]]+)]\([^)]*\)`)
	mdInlineCodePattern = regexp.MustCompile("`([^`]*)`")
	mdDoubleNewline     = regexp.MustCompile(`\n{2,}`)
)

// MarkdownToPlainText flattens markdown so the reply reads well when spoken.
func MarkdownToPlainText(text string) string {
	out := mdImagePattern.ReplaceAllString(text, "")
	out = mdHeaderPattern.ReplaceAllString(out, "")
	out = mdBoldPattern.ReplaceAllString(out, "$1")
	out = mdItalicPattern.ReplaceAllString(out, "$1$2")
	out = mdLinkPattern.ReplaceAllString(out, "$1")
	out = mdInlineCodePattern.ReplaceAllString(out, "$1")
	out = mdDoubleNewline.ReplaceAllString(out, "\n")
	return strings.TrimSpace(out)
}
