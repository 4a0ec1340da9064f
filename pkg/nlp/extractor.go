package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

type TimeSpec struct {
	Hour     int
	Minute   int
	Meridiem string // "AM", "PM" or ""
	Raw      string
}

type RelativeSpec struct {
	Amount     int
	Unit       string // "hour", "minute" or "second"
	Half       bool
	Amount2    int
	Unit2      string
	Raw        string
}

type DaySpec struct {
	Phrase  string // lowercased matched phrase
	Weekday string // set when the phrase names a weekday
	Daypart string // "morning", "evening", "night" or "afternoon"
}

var (
	dayPattern = regexp.MustCompile(`(?i)\b(today|tomorrow|next week|next weekend|((monday|tuesday|wednesday|thursday|friday|saturday|sunday)( morning| evening| night| afternoon)?))\b`)

	timePattern = regexp.MustCompile(`(?i)\b(\d{1,2})(:(\d{2}))?\s*(AM|PM)?\b`)

	relativePattern = regexp.MustCompile(`(?i)\b(\d+)?\s*(?:and\s*(half))?\s*(hours?|hrs?|mins?|minutes?|seconds?|secs?)\s*(?:and\s*(\d+))?\s*(mins?|minutes?|secs?|seconds?)?\s*(from now|later|next)?\b`)

	followupTimePattern     = regexp.MustCompile(`(?i)(\d{1,2})(:(\d{2}))?\s*(AM|PM)?`)
	followupRelativePattern = regexp.MustCompile(`(?i)(\d+)\s*(hours?|mins?|minutes?)\s*(from now|later|next)?`)

	reminderContextPattern = regexp.MustCompile(`(?i)remind me(?: to| for| of| about| to create)?\s+(.*?)(?:\s+(at|on|in)\s+.*)?$`)

	songQueryPattern = regexp.MustCompile(`(?i)\bplay\b\s+(.+)`)

	destinationPattern = regexp.MustCompile(`(?i)(?:give me directions to |navigate me to |how do i get to |i'm on my way to |start a navigation to |help me find |traffic like on the way to |show me |where is |way to |find |to )([A-Za-z0-9\s&]+)`)

	placePattern = regexp.MustCompile(`(?i)\b(?:in|for)\s+([A-Za-z]+(?:\s+[A-Za-z]+)*)`)
)

var placeTemporalWords = map[string]bool{
	"today": true, "now": true, "tomorrow": true, "report": true,
	"forecast": true, "currently": true, "evening": true,
	"morning": true, "afternoon": true,
}

var contactStopwords = map[string]bool{
	"can": true, "you": true, "make": true, "call": true, "dial": true,
	"number": true, "to": true, "please": true, "the": true, "a": true,
	"on": true,
}

// ExtractDay finds the first day phrase in the utterance.
func ExtractDay(text string) (DaySpec, bool) {
	m := dayPattern.FindStringSubmatch(text)
	if m == nil {
		return DaySpec{}, false
	}

	spec := DaySpec{
		Phrase:  strings.ToLower(strings.TrimSpace(m[1])),
		Weekday: strings.ToLower(m[3]),
		Daypart: strings.TrimSpace(strings.ToLower(m[4])),
	}

	return spec, true
}

// ExtractTime finds the first clock-time expression.
func ExtractTime(text string) (TimeSpec, bool) {
	return parseTimeMatch(timePattern.FindStringSubmatch(text))
}

// ExtractFollowupTime is the looser variant used while a pending intent
// waits for its time slot, where the whole utterance is expected to be the
// answer.
func ExtractFollowupTime(text string) (TimeSpec, bool) {
	return parseTimeMatch(followupTimePattern.FindStringSubmatch(text))
}

func parseTimeMatch(m []string) (TimeSpec, bool) {
	if m == nil {
		return TimeSpec{}, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return TimeSpec{}, false
	}

	minute := 0
	if m[3] != "" {
		minute, err = strconv.Atoi(m[3])
		if err != nil || minute > 59 {
			return TimeSpec{}, false
		}
	}

	return TimeSpec{
		Hour:     hour,
		Minute:   minute,
		Meridiem: strings.ToUpper(m[4]),
		Raw:      strings.TrimSpace(m[0]),
	}, true
}

// ExtractRelative finds a duration expression like "2 hours and 15 minutes
// from now".
func ExtractRelative(text string) (RelativeSpec, bool) {
	m := relativePattern.FindStringSubmatch(text)
	if m == nil || m[3] == "" {
		return RelativeSpec{}, false
	}

	amount := 1
	if m[1] != "" {
		var err error
		amount, err = strconv.Atoi(m[1])
		if err != nil {
			return RelativeSpec{}, false
		}
	}

	spec := RelativeSpec{
		Amount: amount,
		Unit:   normalizeUnit(m[3]),
		Half:   m[2] != "",
		Raw:    strings.TrimSpace(m[0]),
	}

	if m[4] != "" && m[5] != "" {
		amount2, err := strconv.Atoi(m[4])
		if err != nil {
			return RelativeSpec{}, false
		}
		spec.Amount2 = amount2
		spec.Unit2 = normalizeUnit(m[5])
	}

	return spec, true
}

// ExtractFollowupRelative parses a bare duration answer to a time prompt.
func ExtractFollowupRelative(text string) (RelativeSpec, bool) {
	m := followupRelativePattern.FindStringSubmatch(text)
	if m == nil {
		return RelativeSpec{}, false
	}

	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return RelativeSpec{}, false
	}

	return RelativeSpec{
		Amount: amount,
		Unit:   normalizeUnit(m[2]),
		Raw:    strings.TrimSpace(m[0]),
	}, true
}

func normalizeUnit(unit string) string {
	switch {
	case strings.HasPrefix(strings.ToLower(unit), "h"):
		return "hour"
	case strings.HasPrefix(strings.ToLower(unit), "m"):
		return "minute"
	default:
		return "second"
	}
}

// ExtractReminderContext pulls the reminder label out of a "remind me to..."
// utterance, stopping before a trailing schedule clause. Falls back to
// "Reminder" when nothing usable remains.
func ExtractReminderContext(text string) string {
	m := reminderContextPattern.FindStringSubmatch(text)
	if m == nil {
		return "Reminder"
	}

	context := strings.TrimSpace(m[1])
	if context == "" {
		return "Reminder"
	}

	return context
}

// ExtractSongQuery returns the words after the verb "play". The verb must
// stand alone: "playing" is not a request.
func ExtractSongQuery(text string) (string, bool) {
	m := songQueryPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	query := strings.TrimSpace(m[1])
	if query == "" {
		return "", false
	}

	return query, true
}

// ExtractDestination pulls the navigation target out of the utterance using
// the known lead-in phrases, longest first.
func ExtractDestination(text string) (string, bool) {
	m := destinationPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	destination := strings.TrimSpace(m[1])
	if destination == "" {
		return "", false
	}

	return destination, true
}

// ExtractPlace finds the city in a weather question ("weather in Paris
// tomorrow"). Trailing temporal words are not part of the place; a capture
// consisting only of them means no place was named.
func ExtractPlace(text string) (string, bool) {
	m := placePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	words := strings.Fields(m[1])
	for len(words) > 0 && placeTemporalWords[strings.ToLower(words[len(words)-1])] {
		words = words[:len(words)-1]
	}

	if len(words) == 0 {
		return "", false
	}

	return strings.Join(words, " "), true
}

// CleanContactQuery strips command filler words so only name candidates
// remain.
func CleanContactQuery(text string) string {
	var kept []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if !contactStopwords[word] {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}
