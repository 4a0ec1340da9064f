package assistantService

import (
	"AssistantGolang/internal/api/assistant"
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/nlp"
	"time"
)

func (s *assistantService) handleReminder(sess *session, englishText string) turnResult {
	prompt := nlp.StripSentencePunctuation(englishText)

	reminderContext := nlp.ExtractReminderContext(prompt)

	day, _ := nlp.ExtractDay(prompt)
	schedule := nlp.ResolveDay(s.now(), day)

	if rel, ok := nlp.ExtractRelative(prompt); ok {
		at := nlp.ApplyRelative(schedule.At, rel)
		sess.ClearLock()
		return s.reminderSet(at, schedule.RepeatDays, reminderContext)
	}

	if ts, ok := nlp.ExtractTime(prompt); ok {
		at := nlp.ApplyTime(schedule.At, ts)
		sess.ClearLock()
		return s.reminderSet(at, schedule.RepeatDays, reminderContext)
	}

	sess.SetLock(assistant.Lock{
		Kind:       assistant.LockReminder,
		Day:        schedule.At,
		RepeatDays: schedule.RepeatDays,
		Context:    reminderContext,
	})

	return turnResult{
		text:     s.fromPool(promptForTimePool),
		category: entity.CategoryReminder,
	}
}

func (s *assistantService) fillReminderSlot(sess *session, lock assistant.Lock, englishText string) turnResult {
	if ts, ok := nlp.ExtractFollowupTime(englishText); ok {
		base := lock.Day
		if base.IsZero() {
			base = s.now()
		}
		at := nlp.ApplyTime(base, ts)
		sess.ClearLock()
		return s.reminderSet(at, lock.RepeatDays, lock.Context)
	}

	if rel, ok := nlp.ExtractFollowupRelative(englishText); ok {
		at := nlp.ApplyRelative(s.now(), rel)
		sess.ClearLock()
		return s.reminderSet(at, nil, lock.Context)
	}

	return turnResult{
		text:     s.fromPool(invalidTimePool),
		category: entity.CategoryReminder,
	}
}

// reminderSet schedules a silent alarm carrying the reminder label.
func (s *assistantService) reminderSet(at time.Time, repeatDays []string, reminderContext string) turnResult {
	action := &entity.DeviceAction{
		Type:   entity.DeviceActionReminder,
		Label:  reminderContext,
		Hour:   at.Hour(),
		Minute: at.Minute(),
		Repeat: repeatDays,
		Silent: true,
	}
	if len(repeatDays) == 0 {
		action.Date = at.Format("2006-01-02")
	}

	return turnResult{
		text:     s.fromPool(reminderSetSuccessPool),
		category: entity.CategoryReminder,
		action:   action,
	}
}
