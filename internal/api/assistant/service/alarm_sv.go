package assistantService

import (
	"AssistantGolang/internal/api/assistant"
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/nlp"
	"time"
)

func (s *assistantService) handleAlarm(sess *session, englishText string) turnResult {
	prompt := nlp.StripSentencePunctuation(englishText)

	day, _ := nlp.ExtractDay(prompt)
	schedule := nlp.ResolveDay(s.now(), day)

	// Durations first: "in 2 hours" also contains a bare number the clock
	// pattern would swallow. The offset rides on the resolved day, so
	// "tomorrow in 2 hours" keeps the day advance.
	if rel, ok := nlp.ExtractRelative(prompt); ok {
		at := nlp.ApplyRelative(schedule.At, rel)
		sess.ClearLock()
		return s.alarmSet(at, schedule.RepeatDays)
	}

	if ts, ok := nlp.ExtractTime(prompt); ok {
		at := nlp.ApplyTime(schedule.At, ts)
		sess.ClearLock()
		return s.alarmSet(at, schedule.RepeatDays)
	}

	sess.SetLock(assistant.Lock{
		Kind:       assistant.LockAlarm,
		Day:        schedule.At,
		RepeatDays: schedule.RepeatDays,
	})

	return turnResult{
		text:     s.fromPool(promptForTimePool),
		category: entity.CategoryAlarm,
	}
}

// fillAlarmSlot consumes the follow-up answer to "at what time?". A parse
// failure keeps the lock so the user can try again.
func (s *assistantService) fillAlarmSlot(sess *session, lock assistant.Lock, englishText string) turnResult {
	if ts, ok := nlp.ExtractFollowupTime(englishText); ok {
		base := lock.Day
		if base.IsZero() {
			base = s.now()
		}
		at := nlp.ApplyTime(base, ts)
		sess.ClearLock()
		return s.alarmSet(at, lock.RepeatDays)
	}

	if rel, ok := nlp.ExtractFollowupRelative(englishText); ok {
		at := nlp.ApplyRelative(s.now(), rel)
		sess.ClearLock()
		return s.alarmSet(at, nil)
	}

	return turnResult{
		text:     s.fromPool(invalidTimePool),
		category: entity.CategoryAlarm,
	}
}

func (s *assistantService) alarmSet(at time.Time, repeatDays []string) turnResult {
	action := &entity.DeviceAction{
		Type:   entity.DeviceActionAlarm,
		Label:  "Alarm",
		Hour:   at.Hour(),
		Minute: at.Minute(),
		Repeat: repeatDays,
	}
	if len(repeatDays) == 0 {
		action.Date = at.Format("2006-01-02")
	}

	return turnResult{
		text:     s.fromPool(alarmSetSuccessPool),
		category: entity.CategoryAlarm,
		action:   action,
	}
}
