package assistantService

import (
	"context"
	"io"
	"sync"
	"time"

	assistantRepository "AssistantGolang/internal/api/assistant/repository"
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/classifier"
	"AssistantGolang/pkg/groq"
	"AssistantGolang/pkg/openmeteo"
	"AssistantGolang/pkg/utils"
	"AssistantGolang/pkg/youtube"

	"github.com/sirupsen/logrus"
)

// testClock is a Wednesday morning so weekday math is predictable.
var testClock = time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)

// fakeStore backs the fake repository. All clients share it so a test can
// inspect everything a turn persisted.
type fakeStore struct {
	mu sync.Mutex

	created []entity.Conversation
	updated []entity.Conversation
	deleted []string
	recent  []entity.Conversation

	history      []entity.Conversation
	historyTotal int
	gotLimit     int
	gotOffset    int
	cleared      bool

	contacts  []entity.Contact
	replaced  []entity.Contact
	committed bool
}

type fakeRepo struct {
	store *fakeStore
}

func (r *fakeRepo) NewClient(tx bool) (assistantRepository.Client, error) {
	commit := func() error { return nil }
	if tx {
		commit = func() error {
			r.store.mu.Lock()
			defer r.store.mu.Unlock()
			r.store.committed = true
			return nil
		}
	}

	return assistantRepository.Client{
		Conversations: &fakeConversationStore{store: r.store},
		Contacts:      &fakeContactStore{store: r.store},
		Commit:        commit,
		Rollback:      func() error { return nil },
	}, nil
}

type fakeConversationStore struct {
	store *fakeStore
}

func (f *fakeConversationStore) CreateConversation(_ context.Context, conv entity.Conversation) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.created = append(f.store.created, conv)
	return nil
}

func (f *fakeConversationStore) UpdateConversation(_ context.Context, conv entity.Conversation) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.updated = append(f.store.updated, conv)
	return nil
}

func (f *fakeConversationStore) DeleteConversation(_ context.Context, id string) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.deleted = append(f.store.deleted, id)
	return nil
}

func (f *fakeConversationStore) GetConversationsByUserID(_ context.Context, _ string, limit, offset int) ([]entity.Conversation, int, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.gotLimit = limit
	f.store.gotOffset = offset
	return f.store.history, f.store.historyTotal, nil
}

func (f *fakeConversationStore) GetRecentConversations(_ context.Context, _ string, _ int) ([]entity.Conversation, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.recent, nil
}

func (f *fakeConversationStore) ClearConversations(_ context.Context, _ string) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.cleared = true
	return nil
}

type fakeContactStore struct {
	store *fakeStore
}

func (f *fakeContactStore) ReplaceContacts(_ context.Context, _ string, contacts []entity.Contact) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.replaced = contacts
	return nil
}

func (f *fakeContactStore) GetContactsByUserID(_ context.Context, _ string) ([]entity.Contact, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.contacts, nil
}

type fakeClassifier struct {
	scored []classifier.ScoredCategory
	err    error
}

func (f *fakeClassifier) Classify(_ context.Context, _ string) ([]classifier.ScoredCategory, error) {
	return f.scored, f.err
}

type fakeTranslator struct{}

func (fakeTranslator) ToEnglish(_ context.Context, text, _ string) (string, error) {
	return text, nil
}

func (fakeTranslator) FromEnglish(_ context.Context, text, _ string) (string, error) {
	return text, nil
}

type fakeGroq struct {
	reply   string
	summary string

	gotHistory []groq.Message
}

func (f *fakeGroq) Complete(_ context.Context, _ string, history []groq.Message) string {
	f.gotHistory = history
	return f.reply
}

func (f *fakeGroq) SummarizeWeather(_ context.Context, _, _ string, _ time.Time) string {
	return f.summary
}

type fakeYoutube struct {
	video youtube.Video
	err   error
}

func (f *fakeYoutube) SearchVideo(_ context.Context, _ string) (youtube.Video, error) {
	return f.video, f.err
}

type fakeWeather struct {
	coords     openmeteo.Coordinates
	geocodeErr error

	city       string
	reverseErr error

	forecast    string
	forecastErr error
}

func (f *fakeWeather) Geocode(_ context.Context, _ string) (openmeteo.Coordinates, error) {
	return f.coords, f.geocodeErr
}

func (f *fakeWeather) ReverseGeocode(_ context.Context, _, _ float64) (string, error) {
	return f.city, f.reverseErr
}

func (f *fakeWeather) Forecast(_ context.Context, _ openmeteo.Coordinates) (string, error) {
	return f.forecast, f.forecastErr
}

type fakeTTS struct {
	clip []byte
	err  error
}

func (f *fakeTTS) GenerateAudio(_ context.Context, _ string) ([]byte, error) {
	return f.clip, f.err
}

type fakeS3 struct {
	presigned string
}

func (f *fakeS3) UploadBytes(_ []byte, fileName string, _ string) (string, error) {
	return fileName, nil
}

func (f *fakeS3) PresignUrl(_ string) (string, error) {
	return f.presigned, nil
}

func (f *fakeS3) DeleteFile(_ string) error {
	return nil
}

type fakeActionQueue struct {
	mu       sync.Mutex
	enqueued []entity.DeviceAction
	drained  []entity.DeviceAction
}

func (f *fakeActionQueue) Enqueue(_ context.Context, action entity.DeviceAction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enqueued = append(f.enqueued, action)
	return nil
}

func (f *fakeActionQueue) Drain(_ context.Context, _ string) ([]entity.DeviceAction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.drained, nil
}

type testHarness struct {
	svc        *assistantService
	store      *fakeStore
	queue      *fakeActionQueue
	classifier *fakeClassifier
	groq       *fakeGroq
	youtube    *fakeYoutube
	weather    *fakeWeather
}

// newTestService wires the service with fakes and a deterministic clock and
// pool picker, so replies always come from the first pool entry.
func newTestService() *testHarness {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	h := &testHarness{
		store:      &fakeStore{},
		queue:      &fakeActionQueue{},
		classifier: &fakeClassifier{},
		groq:       &fakeGroq{},
		youtube:    &fakeYoutube{},
		weather:    &fakeWeather{},
	}

	h.svc = &assistantService{
		log:           logger,
		assistantRepo: &fakeRepo{store: h.store},
		actionQueue:   h.queue,
		classifier:    h.classifier,
		translator:    fakeTranslator{},
		groqClient:    h.groq,
		youtubeClient: h.youtube,
		weatherClient: h.weather,
		ttsService:    &fakeTTS{},
		s3Client:      &fakeS3{},
		utils:         utils.New(),
		sessions:      newSessionRegistry(),
		now:           func() time.Time { return testClock },
		pick:          func(int) int { return 0 },
	}

	return h
}

func scoredAs(category entity.Category) []classifier.ScoredCategory {
	if category == entity.CategoryOther {
		return []classifier.ScoredCategory{{Category: entity.CategoryOther, Score: 1.0}}
	}
	return []classifier.ScoredCategory{
		{Category: category, Score: 0.9},
		{Category: entity.CategoryOther, Score: 0.1},
	}
}
