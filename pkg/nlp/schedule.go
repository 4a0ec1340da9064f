package nlp

import (
	"strings"
	"time"
)

// Schedule is a fully resolved alarm or reminder slot. Recurring schedules
// carry repeat weekdays and keep the base date untouched; one-shot schedules
// carry the resolved date and time.
type Schedule struct {
	At         time.Time
	RepeatDays []string
	Recurring  bool
}

var weekdayIndex = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ResolveDay advances now according to the day phrase. A weekday with a
// daypart suffix becomes a recurring schedule instead of a date advance; a
// bare weekday resolves to its next occurrence, a full week ahead when said
// on that same weekday.
func ResolveDay(now time.Time, day DaySpec) Schedule {
	switch day.Phrase {
	case "today", "":
		return Schedule{At: now}
	case "tomorrow":
		return Schedule{At: now.AddDate(0, 0, 1)}
	case "next week":
		return Schedule{At: now.AddDate(0, 0, 7)}
	case "next weekend":
		days := (int(time.Saturday) - int(now.Weekday()) + 7) % 7
		return Schedule{At: now.AddDate(0, 0, days)}
	}

	target, ok := weekdayIndex[day.Weekday]
	if !ok {
		return Schedule{At: now}
	}

	if day.Daypart != "" {
		return Schedule{
			At:         now,
			RepeatDays: []string{strings.ToUpper(day.Weekday)},
			Recurring:  true,
		}
	}

	days := (int(target) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}

	return Schedule{At: now.AddDate(0, 0, days)}
}

// ApplyTime sets the clock on the schedule date. 12-hour meridiems resolve
// the usual way: 12AM is midnight, 12PM is noon.
func ApplyTime(base time.Time, ts TimeSpec) time.Time {
	hour := ts.Hour
	switch ts.Meridiem {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return time.Date(base.Year(), base.Month(), base.Day(), hour, ts.Minute, 0, 0, base.Location())
}

// ApplyRelative advances base by the duration expression.
func ApplyRelative(base time.Time, rs RelativeSpec) time.Time {
	result := base.Add(unitDuration(rs.Unit) * time.Duration(rs.Amount))

	if rs.Half && rs.Unit == "hour" {
		result = result.Add(30 * time.Minute)
	}

	if rs.Unit2 != "" {
		result = result.Add(unitDuration(rs.Unit2) * time.Duration(rs.Amount2))
	}

	return result
}

func unitDuration(unit string) time.Duration {
	switch unit {
	case "hour":
		return time.Hour
	case "minute":
		return time.Minute
	default:
		return time.Second
	}
}
