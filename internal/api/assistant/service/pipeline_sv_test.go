package assistantService

import (
	"context"
	"testing"

	"AssistantGolang/internal/api/assistant"
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/openmeteo"
	"AssistantGolang/pkg/youtube"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-1"

func process(t *testing.T, h *testHarness, text string) *assistant.MessageResponse {
	t.Helper()
	resp, err := h.svc.ProcessMessage(context.Background(), testUserID, assistant.MessageRequest{Text: text})
	require.NoError(t, err)
	return resp
}

func TestProcessMessage_EmptyUtterance(t *testing.T) {
	h := newTestService()

	_, err := h.svc.ProcessMessage(context.Background(), testUserID, assistant.MessageRequest{Text: "   "})
	assert.ErrorIs(t, err, assistant.ErrEmptyUtterance)
}

func TestProcessMessage_TurnInProgress(t *testing.T) {
	h := newTestService()

	sess := h.svc.sessions.Get(testUserID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	_, err := h.svc.ProcessMessage(context.Background(), testUserID, assistant.MessageRequest{Text: "hello"})
	assert.ErrorIs(t, err, assistant.ErrTurnInProgress)
}

func TestProcessMessage_FallbackConversation(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryOther)
	h.groq.reply = "Here is a joke for you."
	h.store.recent = []entity.Conversation{
		{Text: "hi", EnglishText: "hi", IsUser: true},
		{Text: "Hello!", EnglishText: "Hello!", IsUser: false},
	}

	resp := process(t, h, "tell me a joke")

	assert.Equal(t, "Here is a joke for you.", resp.Entry.Text)
	assert.Equal(t, entity.CategoryOther, resp.Entry.Category)
	assert.False(t, resp.Entry.Loading)
	assert.Empty(t, resp.Actions)

	// Recent history rode along to the AI companion.
	require.Len(t, h.groq.gotHistory, 2)
	assert.True(t, h.groq.gotHistory[0].FromUser)

	// A user entry and a loading placeholder were persisted, and the
	// placeholder was resolved in place.
	require.Len(t, h.store.created, 2)
	assert.True(t, h.store.created[0].IsUser)
	assert.Equal(t, "...", h.store.created[1].Text)
	assert.True(t, h.store.created[1].Loading)

	require.NotEmpty(t, h.store.updated)
	resolved := h.store.updated[len(h.store.updated)-1]
	assert.Equal(t, h.store.created[1].ID, resolved.ID)
	assert.False(t, resolved.Loading)
	assert.Equal(t, "Here is a joke for you.", resolved.Text)
}

func TestProcessMessage_KeywordGateOverridesClassifier(t *testing.T) {
	h := newTestService()
	// The classifier says CALL but the utterance has no call keyword, so the
	// turn degrades to the AI fallback.
	h.classifier.scored = scoredAs(entity.CategoryCall)
	h.groq.reply = "Pizza sounds great."

	resp := process(t, h, "I want pizza")

	assert.Equal(t, entity.CategoryOther, resp.Entry.Category)
	assert.Equal(t, "Pizza sounds great.", resp.Entry.Text)
}

func TestProcessMessage_ClassifierDownFallsBack(t *testing.T) {
	h := newTestService()
	h.classifier.err = context.DeadlineExceeded
	h.groq.reply = "Still here."

	resp := process(t, h, "are you there")

	assert.Equal(t, entity.CategoryOther, resp.Entry.Category)
	assert.Equal(t, "Still here.", resp.Entry.Text)
}

func TestProcessMessage_CallContact(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryCall)
	h.store.contacts = []entity.Contact{
		{ID: "c1", Name: "Mom", Number: "0812 3456"},
		{ID: "c2", Name: "John Smith", Number: "555 0001"},
	}

	resp := process(t, h, "call mom")

	assert.Equal(t, "Calling Mom.", resp.Entry.Text)
	assert.Equal(t, entity.CategoryCall, resp.Entry.Category)
	assert.Equal(t, "tel:08123456", resp.Entry.ActionURI)

	require.Len(t, resp.Actions, 1)
	action := resp.Actions[0]
	assert.Equal(t, entity.DeviceActionCall, action.Type)
	assert.Equal(t, "tel:08123456", action.URI)
	assert.Equal(t, "Mom", action.Label)
	assert.Equal(t, testUserID, action.UserID)
	assert.NotEmpty(t, action.ID)

	require.Len(t, h.queue.enqueued, 1)
	assert.Equal(t, action.ID, h.queue.enqueued[0].ID)
}

func TestProcessMessage_CallContactNotFound(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryCall)
	h.store.contacts = []entity.Contact{{ID: "c1", Name: "Mom", Number: "123"}}

	resp := process(t, h, "call zorblax")

	assert.Equal(t, contactNotFoundPool[0], resp.Entry.Text)
	assert.Empty(t, resp.Actions)
}

func TestProcessMessage_CallWithoutContacts(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryCall)

	resp := process(t, h, "call mom")

	assert.Equal(t, permissionContactsCallPool[0], resp.Entry.Text)
	assert.Empty(t, resp.Actions)
}

func TestProcessMessage_PlaySong(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategorySongs)
	h.youtube.video = youtube.Video{VideoID: "abc123", ThumbnailURL: "https://i.ytimg.com/vi/abc123/hq.jpg"}

	resp := process(t, h, "play shape of you")

	assert.Equal(t, "Playing shape of you", resp.Entry.Text)
	assert.Equal(t, entity.CategorySongs, resp.Entry.Category)
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/hq.jpg", resp.Entry.ContentURL)
	assert.Equal(t, "http://www.youtube.com/watch?v=abc123", resp.Entry.ActionURI)

	require.Len(t, resp.Actions, 1)
	assert.Equal(t, entity.DeviceActionPlay, resp.Actions[0].Type)
	assert.Equal(t, "shape of you", resp.Actions[0].Label)
}

func TestProcessMessage_PlaySongMissingAPIKey(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategorySongs)
	h.youtube.err = youtube.ErrMissingAPIKey

	resp := process(t, h, "play shape of you")

	assert.Equal(t, "Your Youtube API key is missing or invalid.", resp.Entry.Text)
	assert.Equal(t, entity.CategoryOther, resp.Entry.Category)
	require.Len(t, resp.Actions, 1)
	assert.Equal(t, entity.DeviceActionOpenURL, resp.Actions[0].Type)
	assert.Equal(t, "https://www.youtube.com/results?search_query=shape+of+you", resp.Actions[0].URI)
}

func TestProcessMessage_SongNotFoundTaggedOther(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategorySongs)
	h.youtube.err = youtube.ErrVideoNotFound

	resp := process(t, h, "play shape of you")

	assert.Equal(t, songNotFoundPool[0], resp.Entry.Text)
	assert.Equal(t, entity.CategoryOther, resp.Entry.Category)
	assert.Empty(t, resp.Actions)
}

func TestProcessMessage_SongWithoutPlayVerbTaggedOther(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategorySongs)

	resp := process(t, h, "I want some music")

	assert.Equal(t, songNotFoundPool[0], resp.Entry.Text)
	assert.Equal(t, entity.CategoryOther, resp.Entry.Category)
	assert.Empty(t, resp.Actions)
}

func TestProcessMessage_Navigation(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryNavigation)

	resp := process(t, h, "navigate me to central park")

	assert.Equal(t, "Navigating to central park.", resp.Entry.Text)
	assert.Equal(t, entity.CategoryNavigation, resp.Entry.Category)

	require.Len(t, resp.Actions, 1)
	assert.Equal(t, entity.DeviceActionNavigate, resp.Actions[0].Type)
	assert.Equal(t, h.svc.utils.NavigationURI("central park"), resp.Actions[0].URI)
}

func TestProcessMessage_WeatherByCity(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryWeather)
	h.weather.coords = openmeteo.Coordinates{Name: "London", Latitude: 51.5, Longitude: -0.1}
	h.weather.forecast = `{"daily":{}}`
	h.groq.summary = "Sunny in London all day."

	resp := process(t, h, "how is the weather in London")

	assert.Equal(t, "Sunny in London all day.", resp.Entry.Text)
	assert.Equal(t, entity.CategoryWeather, resp.Entry.Category)
	assert.Equal(t, h.svc.utils.WeatherSearchURI("London"), resp.Entry.ActionURI)
	assert.Empty(t, resp.Actions)
}

func TestProcessMessage_WeatherByCoordinates(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryWeather)
	h.weather.city = "Jakarta"
	h.weather.forecast = `{"daily":{}}`
	h.groq.summary = "Rain later today in Jakarta."

	lat, lon := -6.2, 106.8
	resp, err := h.svc.ProcessMessage(context.Background(), testUserID, assistant.MessageRequest{
		Text:      "will it rain today",
		Latitude:  &lat,
		Longitude: &lon,
	})
	require.NoError(t, err)

	assert.Equal(t, "Rain later today in Jakarta.", resp.Entry.Text)
	assert.Equal(t, h.svc.utils.WeatherSearchURI("Jakarta"), resp.Entry.ActionURI)
}

func TestProcessMessage_WeatherLocationPermissionDenied(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryWeather)

	denied := false
	resp, err := h.svc.ProcessMessage(context.Background(), testUserID, assistant.MessageRequest{
		Text:               "will it rain today",
		LocationPermission: &denied,
	})
	require.NoError(t, err)

	assert.Equal(t, permissionLocationPool[0], resp.Entry.Text)
	assert.Equal(t, entity.CategoryWeather, resp.Entry.Category)
	assert.Empty(t, resp.Actions)
}

func TestProcessMessage_WeatherLocationServiceOff(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryWeather)

	off := false
	resp, err := h.svc.ProcessMessage(context.Background(), testUserID, assistant.MessageRequest{
		Text:            "will it rain today",
		LocationEnabled: &off,
	})
	require.NoError(t, err)

	assert.Equal(t, locationServiceOffPool[0], resp.Entry.Text)
	assert.Equal(t, entity.CategoryWeather, resp.Entry.Category)
}

func TestProcessMessage_WeatherUnknownLocation(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryWeather)

	resp := process(t, h, "how is the weather")

	assert.Equal(t, locationUnknownSuggestCityPool[0], resp.Entry.Text)
	assert.Equal(t, entity.CategoryWeather, resp.Entry.Category)
	assert.Empty(t, resp.Actions)
}

func TestProcessMessage_AlarmWithExplicitTime(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryAlarm)

	resp := process(t, h, "set an alarm for tomorrow at 6:30 PM")

	assert.Equal(t, alarmSetSuccessPool[0], resp.Entry.Text)
	require.Len(t, resp.Actions, 1)

	action := resp.Actions[0]
	assert.Equal(t, entity.DeviceActionAlarm, action.Type)
	assert.Equal(t, 18, action.Hour)
	assert.Equal(t, 30, action.Minute)
	assert.Equal(t, testClock.AddDate(0, 0, 1).Format("2006-01-02"), action.Date)
	assert.Empty(t, action.Repeat)
	assert.False(t, h.svc.sessions.Get(testUserID).Lock().IsPending())
}

func TestProcessMessage_AlarmTwoTurnSlotFill(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryAlarm)

	first := process(t, h, "set an alarm for tomorrow")

	assert.Equal(t, promptForTimePool[0], first.Entry.Text)
	assert.Equal(t, entity.CategoryAlarm, first.Entry.Category)
	assert.Empty(t, first.Actions)
	require.True(t, h.svc.sessions.Get(testUserID).Lock().IsPending())

	second := process(t, h, "6:30 PM")

	assert.Equal(t, alarmSetSuccessPool[0], second.Entry.Text)
	require.Len(t, second.Actions, 1)

	action := second.Actions[0]
	assert.Equal(t, entity.DeviceActionAlarm, action.Type)
	assert.Equal(t, 18, action.Hour)
	assert.Equal(t, 30, action.Minute)
	assert.Equal(t, testClock.AddDate(0, 0, 1).Format("2006-01-02"), action.Date)
	assert.False(t, h.svc.sessions.Get(testUserID).Lock().IsPending())
}

func TestProcessMessage_AlarmRelativeKeepsDay(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryAlarm)

	resp := process(t, h, "set an alarm tomorrow in 2 hours")

	require.Len(t, resp.Actions, 1)
	action := resp.Actions[0]
	assert.Equal(t, testClock.Hour()+2, action.Hour)
	assert.Equal(t, testClock.AddDate(0, 0, 1).Format("2006-01-02"), action.Date)
}

func TestProcessMessage_RecurringAlarm(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryAlarm)

	resp := process(t, h, "set an alarm for monday morning at 7 AM")

	require.Len(t, resp.Actions, 1)
	action := resp.Actions[0]
	assert.Equal(t, 7, action.Hour)
	assert.Equal(t, []string{"MONDAY"}, action.Repeat)
	assert.Empty(t, action.Date)
}

func TestProcessMessage_InvalidSlotAnswerKeepsLock(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryAlarm)

	process(t, h, "set an alarm for tomorrow")
	resp := process(t, h, "blue elephants")

	assert.Equal(t, invalidTimePool[0], resp.Entry.Text)
	assert.Empty(t, resp.Actions)
	assert.True(t, h.svc.sessions.Get(testUserID).Lock().IsPending())
}

func TestProcessMessage_CancelPendingIntent(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryOther)
	h.groq.reply = "Alright, cancelled."

	h.svc.sessions.Get(testUserID).SetLock(assistant.Lock{Kind: assistant.LockAlarm})

	resp := process(t, h, "never mind")

	assert.Equal(t, "Alright, cancelled.", resp.Entry.Text)
	assert.False(t, h.svc.sessions.Get(testUserID).Lock().IsPending())
}

func TestProcessMessage_Reminder(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryReminder)

	resp := process(t, h, "remind me to buy milk at 5 PM")

	assert.Equal(t, reminderSetSuccessPool[0], resp.Entry.Text)
	assert.Equal(t, entity.CategoryReminder, resp.Entry.Category)

	require.Len(t, resp.Actions, 1)
	action := resp.Actions[0]
	assert.Equal(t, entity.DeviceActionReminder, action.Type)
	assert.Equal(t, "buy milk", action.Label)
	assert.Equal(t, 17, action.Hour)
	assert.Equal(t, 0, action.Minute)
	assert.True(t, action.Silent)
	assert.Equal(t, testClock.Format("2006-01-02"), action.Date)
}

func TestProcessMessage_SpeakAttachesAudio(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryOther)
	h.groq.reply = "Hello there."
	h.svc.ttsService = &fakeTTS{clip: []byte("mp3-bytes")}
	h.svc.s3Client = &fakeS3{presigned: "https://cdn.example.com/reply.mp3"}

	resp, err := h.svc.ProcessMessage(context.Background(), testUserID, assistant.MessageRequest{
		Text:  "say hi",
		Speak: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/reply.mp3", resp.Entry.AudioURL)
}

func TestProcessMessage_CancelledContextDiscardsTurn(t *testing.T) {
	h := newTestService()
	h.classifier.scored = scoredAs(entity.CategoryOther)
	h.groq.reply = "too late"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.svc.ProcessMessage(ctx, testUserID, assistant.MessageRequest{Text: "hello"})
	require.Error(t, err)

	// Both bubbles of the abandoned turn were removed.
	require.Len(t, h.store.created, 2)
	assert.ElementsMatch(t,
		[]string{h.store.created[0].ID, h.store.created[1].ID},
		h.store.deleted,
	)
}
