package assistantService

import (
	"AssistantGolang/internal/api/assistant"
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/nlp"
	"context"

	"github.com/sirupsen/logrus"
)

// classifyAndGate resolves the category for a fresh utterance. Classifier
// failures degrade to OTHER; a category whose keyword gate finds no match in
// the utterance is overridden to OTHER as well.
func (s *assistantService) classifyAndGate(ctx context.Context, englishText string) entity.Category {
	scored, err := s.classifier.Classify(ctx, englishText)
	if err != nil || len(scored) == 0 {
		s.log.WithFields(logrus.Fields{
			"error": errString(err),
		}).Warn("Classifier unavailable, falling back to OTHER")
		return entity.CategoryOther
	}

	best := scored[0]
	for _, candidate := range scored[1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	if !nlp.PassesGate(best.Category, englishText) {
		return entity.CategoryOther
	}

	return best.Category
}

func (s *assistantService) dispatch(ctx context.Context, userID string, sess *session, category entity.Category, englishText string, req assistant.MessageRequest) turnResult {
	switch category {
	case entity.CategoryCall:
		return s.handleCall(ctx, userID, englishText)
	case entity.CategorySongs:
		return s.handleSong(ctx, englishText)
	case entity.CategoryNavigation:
		return s.handleNavigation(englishText)
	case entity.CategoryWeather:
		return s.handleWeather(ctx, englishText, req)
	case entity.CategoryAlarm:
		return s.handleAlarm(sess, englishText)
	case entity.CategoryReminder:
		return s.handleReminder(sess, englishText)
	default:
		// SETTINGS has no device hook on the backend, so it rides the
		// AI fallback together with OTHER.
		return s.handleFallback(ctx, userID, englishText)
	}
}

// fillPendingSlot consumes the utterance as the answer to a pending time
// prompt. A failed parse keeps the lock and re-prompts.
func (s *assistantService) fillPendingSlot(sess *session, lock assistant.Lock, englishText string) turnResult {
	switch lock.Kind {
	case assistant.LockAlarm:
		return s.fillAlarmSlot(sess, lock, englishText)
	case assistant.LockReminder:
		return s.fillReminderSlot(sess, lock, englishText)
	case assistant.LockNavigation:
		sess.ClearLock()
		return turnResult{
			text:     s.fromPool(navigationNotSupportedPool),
			category: entity.CategoryNavigation,
		}
	default:
		sess.ClearLock()
		return turnResult{
			text:     s.fromPool(genericErrorPool),
			category: entity.CategoryOther,
		}
	}
}

func errString(err error) string {
	if err == nil {
		return "no scored categories"
	}
	return err.Error()
}
