package assistantService

import (
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/groq"
	"context"

	"github.com/sirupsen/logrus"
)

// handleFallback routes the utterance to the AI companion with the recent
// chat history. The AI adapter soft-fails, so there is always a reply.
func (s *assistantService) handleFallback(ctx context.Context, userID, englishText string) turnResult {
	var history []groq.Message

	repo, err := s.assistantRepo.NewClient(false)
	if err == nil {
		recent, err := repo.Conversations.GetRecentConversations(ctx, userID, historyCap)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Warn("Failed to load history for AI fallback, continuing without it")
		} else {
			for _, conv := range recent {
				text := conv.EnglishText
				if text == "" {
					text = conv.Text
				}
				history = append(history, groq.Message{
					FromUser: conv.IsUser,
					Text:     text,
				})
			}
		}
	}

	reply := s.groqClient.Complete(ctx, englishText, history)

	return turnResult{
		text:     groq.MarkdownToPlainText(reply),
		category: entity.CategoryOther,
	}
}
