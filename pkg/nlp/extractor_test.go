package nlp

import (
	"testing"

	"AssistantGolang/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassesGate(t *testing.T) {
	tests := []struct {
		name     string
		category entity.Category
		text     string
		want     bool
	}{
		{"call keyword present", entity.CategoryCall, "please call mom", true},
		{"call keyword absent", entity.CategoryCall, "I want pizza", false},
		{"song keyword present", entity.CategorySongs, "play some music", true},
		{"song keyword absent", entity.CategorySongs, "what a nice day", false},
		{"weather multiword keyword", entity.CategoryWeather, "how is it looking outside", true},
		{"navigation phrase", entity.CategoryNavigation, "take me to the office", true},
		{"other always passes", entity.CategoryOther, "anything at all", true},
		{"settings always passes", entity.CategorySettings, "turn up brightness", true},
		{"case insensitive", entity.CategoryCall, "CALL my brother", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PassesGate(tt.category, tt.text))
		})
	}
}

func TestIsNegative(t *testing.T) {
	negatives := []string{
		"no",
		"nah forget it",
		"cancel",
		"never mind",
		"I changed my mind",
		"don't bother",
		"scratch that",
		"just kidding",
		"stop",
	}
	for _, text := range negatives {
		assert.True(t, IsNegative(text), text)
	}

	positives := []string{
		"6:30 PM",
		"tomorrow at noon",
		"yes please",
		"in 20 minutes",
	}
	for _, text := range positives {
		assert.False(t, IsNegative(text), text)
	}
}

func TestCleanAndPunctuate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  what time is it  ", "what time is it?"},
		{"how are you", "how are you?"},
		{"call mom", "call mom"},
		{"is it raining.", "is it raining."},
		{"will it rain?", "will it rain?"},
		{"can you help", "can you help?"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanAndPunctuate(tt.in), tt.in)
	}
}

func TestExtractDay(t *testing.T) {
	tests := []struct {
		text        string
		wantPhrase  string
		wantWeekday string
		wantDaypart string
	}{
		{"wake me up tomorrow at 6", "tomorrow", "", ""},
		{"set an alarm for next weekend", "next weekend", "", ""},
		{"remind me next week", "next week", "", ""},
		{"alarm on Monday morning", "monday morning", "monday", "morning"},
		{"alarm on friday", "friday", "friday", ""},
	}

	for _, tt := range tests {
		day, ok := ExtractDay(tt.text)
		require.True(t, ok, tt.text)
		assert.Equal(t, tt.wantPhrase, day.Phrase)
		assert.Equal(t, tt.wantWeekday, day.Weekday)
		assert.Equal(t, tt.wantDaypart, day.Daypart)
	}

	_, ok := ExtractDay("set an alarm")
	assert.False(t, ok)
}

func TestExtractTime(t *testing.T) {
	ts, ok := ExtractTime("wake me at 6:30 PM")
	require.True(t, ok)
	assert.Equal(t, 6, ts.Hour)
	assert.Equal(t, 30, ts.Minute)
	assert.Equal(t, "PM", ts.Meridiem)

	ts, ok = ExtractTime("alarm at 7")
	require.True(t, ok)
	assert.Equal(t, 7, ts.Hour)
	assert.Equal(t, 0, ts.Minute)
	assert.Equal(t, "", ts.Meridiem)

	_, ok = ExtractTime("wake me up early")
	assert.False(t, ok)
}

func TestExtractRelative(t *testing.T) {
	rel, ok := ExtractRelative("remind me in 2 hours and 15 minutes from now")
	require.True(t, ok)
	assert.Equal(t, 2, rel.Amount)
	assert.Equal(t, "hour", rel.Unit)
	assert.Equal(t, 15, rel.Amount2)
	assert.Equal(t, "minute", rel.Unit2)

	rel, ok = ExtractRelative("in 2 and half hours")
	require.True(t, ok)
	assert.Equal(t, 2, rel.Amount)
	assert.True(t, rel.Half)

	rel, ok = ExtractRelative("in 20 mins")
	require.True(t, ok)
	assert.Equal(t, 20, rel.Amount)
	assert.Equal(t, "minute", rel.Unit)

	_, ok = ExtractRelative("at 6:30 PM")
	assert.False(t, ok)
}

func TestExtractReminderContext(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"remind me to buy milk at 5 PM", "buy milk"},
		{"remind me about the meeting on Monday", "the meeting"},
		{"remind me to call grandma", "call grandma"},
		{"set a reminder", "Reminder"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractReminderContext(tt.text), tt.text)
	}
}

func TestExtractSongQuery(t *testing.T) {
	query, ok := ExtractSongQuery("play shape of you")
	require.True(t, ok)
	assert.Equal(t, "shape of you", query)

	query, ok = ExtractSongQuery("can you play Hotel California")
	require.True(t, ok)
	assert.Equal(t, "Hotel California", query)

	_, ok = ExtractSongQuery("I want some music")
	assert.False(t, ok)

	_, ok = ExtractSongQuery("play")
	assert.False(t, ok)

	// "play" inside another word is not the verb.
	_, ok = ExtractSongQuery("playing with fire")
	assert.False(t, ok)
}

func TestExtractDestination(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"navigate me to central park", "central park"},
		{"give me directions to the airport", "the airport"},
		{"where is times square", "times square"},
		{"how do I get to 5th avenue", "5th avenue"},
	}

	for _, tt := range tests {
		destination, ok := ExtractDestination(tt.text)
		require.True(t, ok, tt.text)
		assert.Equal(t, tt.want, destination)
	}

	_, ok := ExtractDestination("navigate")
	assert.False(t, ok)
}

func TestExtractPlace(t *testing.T) {
	place, ok := ExtractPlace("how is the weather in London today")
	require.True(t, ok)
	assert.Equal(t, "London", place)

	place, ok = ExtractPlace("weather forecast for New York tomorrow")
	require.True(t, ok)
	assert.Equal(t, "New York", place)

	// The capture is only a temporal word, so no place was named.
	_, ok = ExtractPlace("will it rain in today")
	assert.False(t, ok)

	_, ok = ExtractPlace("how is the weather")
	assert.False(t, ok)
}

func TestCleanContactQuery(t *testing.T) {
	assert.Equal(t, "john", CleanContactQuery("can you call john please"))
	assert.Equal(t, "jane doe", CleanContactQuery("dial the number to jane doe"))
}
