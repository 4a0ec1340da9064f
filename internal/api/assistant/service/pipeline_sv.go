package assistantService

import (
	"AssistantGolang/internal/api/assistant"
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/nlp"
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const historyCap = 20

// turnResult is what a category handler hands back to the composer.
type turnResult struct {
	text       string
	category   entity.Category
	contentURL string
	actionURI  string
	action     *entity.DeviceAction
}

// ProcessMessage runs one full dialogue turn: normalize, translate, persist
// the user entry plus a loading placeholder, resolve the intent, execute the
// handler and resolve the placeholder with the final reply. The placeholder
// is always resolved, success or not.
func (s *assistantService) ProcessMessage(ctx context.Context, userID string, req assistant.MessageRequest) (*assistant.MessageResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, assistant.ErrEmptyUtterance
	}

	sess := s.sessions.Get(userID)
	if !sess.mu.TryLock() {
		return nil, assistant.ErrTurnInProgress
	}
	defer sess.mu.Unlock()

	if req.Language != "" {
		sess.language = strings.ToLower(req.Language)
	}
	language := sess.language

	normalized := nlp.CleanAndPunctuate(text)

	englishText := normalized
	if language != "" && language != "en" {
		translated, err := s.translator.ToEnglish(ctx, normalized, language)
		if err != nil || translated == "" {
			s.log.WithFields(logrus.Fields{
				"user_id":  userID,
				"language": language,
			}).Warn("Translation to English failed, using original text")
		} else {
			englishText = translated
		}
	}

	userEntry, placeholder, err := s.openTurn(ctx, userID, normalized, englishText)
	if err != nil {
		return nil, err
	}

	result := s.resolveTurn(ctx, userID, sess, englishText, req)

	if ctx.Err() != nil {
		s.discardTurn(userID, userEntry.ID, placeholder.ID)
		return nil, ctx.Err()
	}

	entry, err := s.composeReply(ctx, userID, sess, placeholder, result, req.Speak)
	if err != nil {
		return nil, err
	}

	if err := s.updateUserCategory(ctx, userEntry, result.category); err != nil {
		s.log.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("Failed to tag user entry with category")
	}

	var actions []entity.DeviceAction
	if result.action != nil {
		action := *result.action
		action.UserID = userID
		action.CreatedAt = s.now()
		if id, err := s.utils.NewULIDFromTimestamp(action.CreatedAt); err == nil {
			action.ID = id
		}
		if err := s.actionQueue.Enqueue(ctx, action); err != nil {
			s.log.WithFields(logrus.Fields{
				"user_id": userID,
				"type":    action.Type,
				"error":   err.Error(),
			}).Error("Failed to enqueue device action")
		} else {
			actions = append(actions, action)
		}
	}

	return &assistant.MessageResponse{
		Entry:   entry,
		Actions: actions,
	}, nil
}

// resolveTurn picks the branch for this utterance: pending-intent slot fill,
// cancellation, or fresh classification and dispatch.
func (s *assistantService) resolveTurn(ctx context.Context, userID string, sess *session, englishText string, req assistant.MessageRequest) turnResult {
	lock := sess.Lock()

	if lock.IsPending() {
		if nlp.IsNegative(englishText) {
			sess.ClearLock()
		} else {
			return s.fillPendingSlot(sess, lock, englishText)
		}
	}

	category := s.classifyAndGate(ctx, englishText)

	return s.dispatch(ctx, userID, sess, category, englishText, req)
}

func (s *assistantService) openTurn(ctx context.Context, userID, text, englishText string) (entity.Conversation, entity.Conversation, error) {
	repo, err := s.assistantRepo.NewClient(false)
	if err != nil {
		return entity.Conversation{}, entity.Conversation{}, err
	}

	now := s.now()

	userID1, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return entity.Conversation{}, entity.Conversation{}, err
	}

	userEntry := entity.Conversation{
		ID:          userID1,
		UserID:      userID,
		Text:        text,
		EnglishText: englishText,
		IsUser:      true,
		Category:    entity.CategoryOther,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Conversations.CreateConversation(ctx, userEntry); err != nil {
		return entity.Conversation{}, entity.Conversation{}, err
	}

	placeholderID, err := s.utils.NewULIDFromTimestamp(now.Add(time.Millisecond))
	if err != nil {
		return entity.Conversation{}, entity.Conversation{}, err
	}

	placeholder := entity.Conversation{
		ID:        placeholderID,
		UserID:    userID,
		Text:      "...",
		IsUser:    false,
		Category:  entity.CategoryOther,
		Loading:   true,
		CreatedAt: now.Add(time.Millisecond),
		UpdatedAt: now.Add(time.Millisecond),
	}
	if err := repo.Conversations.CreateConversation(ctx, placeholder); err != nil {
		return entity.Conversation{}, entity.Conversation{}, err
	}

	return userEntry, placeholder, nil
}

// composeReply translates the handler's reply back into the session
// language, synthesizes speech when asked, and resolves the placeholder.
func (s *assistantService) composeReply(ctx context.Context, userID string, sess *session, placeholder entity.Conversation, result turnResult, speak bool) (assistant.ConversationEntry, error) {
	finalText := result.text
	if sess.language != "" && sess.language != "en" {
		translated, err := s.translator.FromEnglish(ctx, result.text, sess.language)
		if err != nil || translated == "" {
			s.log.WithFields(logrus.Fields{
				"user_id":  userID,
				"language": sess.language,
			}).Warn("Translation from English failed, replying in English")
		} else {
			finalText = translated
		}
	}

	audioURL := ""
	if speak {
		audioURL = s.synthesize(ctx, userID, finalText)
	}

	placeholder.Text = finalText
	placeholder.EnglishText = result.text
	placeholder.Category = result.category
	placeholder.Loading = false
	placeholder.ContentURL = result.contentURL
	placeholder.ActionURI = result.actionURI
	placeholder.AudioURL = audioURL
	placeholder.UpdatedAt = s.now()

	repo, err := s.assistantRepo.NewClient(false)
	if err != nil {
		return assistant.ConversationEntry{}, err
	}

	if err := repo.Conversations.UpdateConversation(ctx, placeholder); err != nil {
		return assistant.ConversationEntry{}, err
	}

	return makeEntry(placeholder), nil
}

func (s *assistantService) synthesize(ctx context.Context, userID, text string) string {
	clip, err := s.ttsService.GenerateAudio(ctx, text)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("Speech synthesis failed, replying without audio")
		return ""
	}

	location, err := s.s3Client.UploadBytes(clip, "reply.mp3", "audio/mpeg")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("Audio upload failed, replying without audio")
		return ""
	}

	presigned, err := s.s3Client.PresignUrl(location)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("Audio presign failed, replying without audio")
		return ""
	}

	return presigned
}

// discardTurn removes the bubbles of a cancelled turn. Runs on a fresh
// context because the turn's own context is already dead.
func (s *assistantService) discardTurn(userID, userEntryID, placeholderID string) {
	cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	repo, err := s.assistantRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("Failed to open repository for turn cleanup")
		return
	}

	for _, id := range []string{placeholderID, userEntryID} {
		if err := repo.Conversations.DeleteConversation(cleanupCtx, id); err != nil {
			s.log.WithFields(logrus.Fields{
				"user_id": userID,
				"id":      id,
				"error":   err.Error(),
			}).Warn("Failed to remove entry of cancelled turn")
		}
	}
}

func (s *assistantService) updateUserCategory(ctx context.Context, userEntry entity.Conversation, category entity.Category) error {
	if category == userEntry.Category {
		return nil
	}

	repo, err := s.assistantRepo.NewClient(false)
	if err != nil {
		return err
	}

	userEntry.Category = category
	userEntry.UpdatedAt = s.now()
	return repo.Conversations.UpdateConversation(ctx, userEntry)
}

func makeEntry(conv entity.Conversation) assistant.ConversationEntry {
	return assistant.ConversationEntry{
		ID:         conv.ID,
		Text:       conv.Text,
		IsUser:     conv.IsUser,
		Category:   conv.Category,
		Loading:    conv.Loading,
		ContentURL: conv.ContentURL,
		ActionURI:  conv.ActionURI,
		AudioURL:   conv.AudioURL,
		CreatedAt:  conv.CreatedAt,
	}
}
