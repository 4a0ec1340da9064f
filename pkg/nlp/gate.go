package nlp

import (
	"regexp"
	"strings"

	"AssistantGolang/internal/entity"
)

// categoryKeywords backs the word gate: a classified category only survives
// dispatch when at least one of its keywords appears in the utterance. An
// empty list means the category is never gated.
var categoryKeywords = map[entity.Category][]string{
	entity.CategoryCall:       {"call", "phone", "ring", "connect", "need", "get", "dial"},
	entity.CategorySongs:      {"music", "song", "play", "tune", "listen"},
	entity.CategoryAlarm:      {"alarm", "wake", "set", "remind", "morning"},
	entity.CategoryReminder:   {"remind", "notify", "alert", "remember"},
	entity.CategoryNavigation: {"navigate", "find", "show", "directions", "take me to", "where is", "get to", "go to", "navigation to", "way"},
	entity.CategoryWeather:    {"sunny", "cloudy", "rain", "temperature", "umbrella", "weather", "outside", "report", "forecast", "carry", "going to", "how is", "will it be"},
	entity.CategorySettings:   {},
	entity.CategoryOther:      {},
}

var cancellationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bno\b`),
	regexp.MustCompile(`(?i)\bnah\b`),
	regexp.MustCompile(`(?i)\bnot\b.*`),
	regexp.MustCompile(`(?i)\bnever\b.*`),
	regexp.MustCompile(`(?i)\bforget\b.*`),
	regexp.MustCompile(`(?i)\bleave\b.*`),
	regexp.MustCompile(`(?i)\bdrop\b.*`),
	regexp.MustCompile(`(?i)\bcancel\b`),
	regexp.MustCompile(`(?i)\babort\b`),
	regexp.MustCompile(`(?i)\bstop\b`),
	regexp.MustCompile(`(?i)\bquit\b`),
	regexp.MustCompile(`(?i)\bdisregard\b`),
	regexp.MustCompile(`(?i)changed my mind`),
	regexp.MustCompile(`(?i)don'?t bother`),
	regexp.MustCompile(`(?i)let it go`),
	regexp.MustCompile(`(?i)scratch that`),
	regexp.MustCompile(`(?i)just kidding`),
}

var questionOpeners = []string{"wh", "how", "can", "do", "is", "are", "does", "did", "will", "could", "should", "would"}

var (
	sentencePunct = regexp.MustCompile(`[.?!]+`)
	anyPunct      = regexp.MustCompile(`[[:punct:]]+`)
)

// PassesGate reports whether the utterance contains a keyword of the
// category. Categories without a keyword list always pass.
func PassesGate(category entity.Category, text string) bool {
	keywords := categoryKeywords[category]
	if len(keywords) == 0 {
		return true
	}

	lowered := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}

	return false
}

// IsNegative reports whether the utterance reads as a refusal or
// cancellation of the pending intent.
func IsNegative(text string) bool {
	for _, p := range cancellationPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// CleanAndPunctuate trims the utterance and appends a question mark when it
// opens with a question word and carries no terminal punctuation.
func CleanAndPunctuate(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return trimmed
	}

	last := trimmed[len(trimmed)-1]
	if last == '.' || last == '?' {
		return trimmed
	}

	lowered := strings.ToLower(trimmed)
	for _, opener := range questionOpeners {
		if strings.HasPrefix(lowered, opener) {
			return trimmed + "?"
		}
	}

	return trimmed
}

// StripSentencePunctuation removes sentence terminators only, keeping
// colons so time expressions like 6:30 survive.
func StripSentencePunctuation(text string) string {
	return sentencePunct.ReplaceAllString(text, "")
}

// StripAllPunctuation removes every punctuation rune.
func StripAllPunctuation(text string) string {
	return anyPunct.ReplaceAllString(text, "")
}
