package assistant

import "time"

type LockKind int

const (
	LockNone LockKind = iota
	LockAlarm
	LockReminder
	LockNavigation
)

// Lock is the pending-intent state of a session. At most one intent can be
// pending; setting a new lock replaces the previous one wholesale so no slot
// leaks between intents.
type Lock struct {
	Kind LockKind

	// Day carries a partially resolved schedule from the turn that opened
	// the lock. Zero means no day slot was extracted.
	Day time.Time

	// RepeatDays is set when the opening turn named a recurring weekday
	// pattern (weekday plus a daypart suffix).
	RepeatDays []string

	// Context is the reminder label, only meaningful for LockReminder.
	Context string
}

func NoLock() Lock {
	return Lock{Kind: LockNone}
}

func (l Lock) IsPending() bool {
	return l.Kind != LockNone
}
