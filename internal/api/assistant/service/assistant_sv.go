package assistantService

import (
	"AssistantGolang/internal/api/assistant"
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/nlp"
	"context"

	"github.com/sirupsen/logrus"
)

func (s *assistantService) GetHistory(ctx context.Context, userID string, page, limit int) (*assistant.HistoryResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	repo, err := s.assistantRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	conversations, total, err := repo.Conversations.GetConversationsByUserID(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	entries := make([]assistant.ConversationEntry, 0, len(conversations))
	for _, conv := range conversations {
		entries = append(entries, makeEntry(conv))
	}

	return &assistant.HistoryResponse{
		Entries: entries,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

func (s *assistantService) ClearHistory(ctx context.Context, userID string) error {
	repo, err := s.assistantRepo.NewClient(false)
	if err != nil {
		return err
	}

	return repo.Conversations.ClearConversations(ctx, userID)
}

func (s *assistantService) DrainActions(ctx context.Context, userID string) (*assistant.ActionsResponse, error) {
	actions, err := s.actionQueue.Drain(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &assistant.ActionsResponse{Actions: actions}, nil
}

func (s *assistantService) SyncContacts(ctx context.Context, userID string, req assistant.SyncContactsRequest) error {
	repo, err := s.assistantRepo.NewClient(true)
	if err != nil {
		return err
	}
	defer repo.Rollback()

	now := s.now()
	contacts := make([]entity.Contact, 0, len(req.Contacts))
	for _, payload := range req.Contacts {
		id, err := s.utils.NewULIDFromTimestamp(now)
		if err != nil {
			return err
		}
		contacts = append(contacts, entity.Contact{
			ID:        id,
			UserID:    userID,
			Name:      payload.Name,
			Number:    payload.Number,
			CreatedAt: now,
		})
	}

	if err := repo.Contacts.ReplaceContacts(ctx, userID, contacts); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"count":   len(contacts),
	}).Info("Contact directory synced")

	return nil
}

// TestNLP runs the classifier and every extractor over the text without
// touching any session or history. Debugging surface only.
func (s *assistantService) TestNLP(ctx context.Context, req assistant.NLPTestRequest) (*assistant.NLPTestResponse, error) {
	normalized := nlp.CleanAndPunctuate(req.Text)

	category := entity.CategoryOther
	confidence := 0.0
	scored, err := s.classifier.Classify(ctx, normalized)
	if err == nil && len(scored) > 0 {
		best := scored[0]
		for _, candidate := range scored[1:] {
			if candidate.Score > best.Score {
				best = candidate
			}
		}
		category = best.Category
		confidence = best.Score
	}

	gatePassed := nlp.PassesGate(category, normalized)

	slots := assistant.NLPTestSlots{}

	if day, ok := nlp.ExtractDay(normalized); ok {
		slots.Day = day.Phrase
	}
	if ts, ok := nlp.ExtractTime(normalized); ok {
		slots.Time = ts.Raw
	}
	if rel, ok := nlp.ExtractRelative(normalized); ok {
		slots.RelativeTime = rel.Raw
	}
	if place, ok := nlp.ExtractPlace(nlp.StripAllPunctuation(normalized)); ok {
		slots.Place = place
	}
	if destination, ok := nlp.ExtractDestination(nlp.StripAllPunctuation(normalized)); ok {
		slots.Destination = destination
	}
	if query, ok := nlp.ExtractSongQuery(normalized); ok {
		slots.SongQuery = query
	}
	slots.ReminderContext = nlp.ExtractReminderContext(nlp.StripSentencePunctuation(normalized))
	if cleaned := nlp.CleanContactQuery(nlp.StripAllPunctuation(normalized)); cleaned != "" {
		slots.ContactTokens = append(slots.ContactTokens, cleaned)
	}

	resolvedCategory := category
	if !gatePassed {
		resolvedCategory = entity.CategoryOther
	}

	return &assistant.NLPTestResponse{
		Input:      req.Text,
		Normalized: normalized,
		Category:   resolvedCategory,
		Confidence: confidence,
		GatePassed: gatePassed,
		Negative:   nlp.IsNegative(normalized),
		Slots:      slots,
	}, nil
}
