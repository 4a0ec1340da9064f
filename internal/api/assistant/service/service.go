package assistantService

import (
	"AssistantGolang/internal/api/assistant"
	assistantRepository "AssistantGolang/internal/api/assistant/repository"
	"AssistantGolang/pkg/audio"
	"AssistantGolang/pkg/classifier"
	"AssistantGolang/pkg/device"
	"AssistantGolang/pkg/groq"
	"AssistantGolang/pkg/openmeteo"
	"AssistantGolang/pkg/s3"
	"AssistantGolang/pkg/translator"
	"AssistantGolang/pkg/utils"
	"AssistantGolang/pkg/youtube"
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

type IAssistantService interface {
	ProcessMessage(ctx context.Context, userID string, req assistant.MessageRequest) (*assistant.MessageResponse, error)

	GetHistory(ctx context.Context, userID string, page, limit int) (*assistant.HistoryResponse, error)
	ClearHistory(ctx context.Context, userID string) error

	DrainActions(ctx context.Context, userID string) (*assistant.ActionsResponse, error)
	SyncContacts(ctx context.Context, userID string, req assistant.SyncContactsRequest) error

	TestNLP(ctx context.Context, req assistant.NLPTestRequest) (*assistant.NLPTestResponse, error)
}

type assistantService struct {
	log           *logrus.Logger
	assistantRepo assistantRepository.Repository
	actionQueue   device.IActionQueue
	classifier    classifier.IClassifier
	translator    translator.ITranslator
	groqClient    groq.IGroq
	youtubeClient youtube.IYoutube
	weatherClient openmeteo.IWeather
	ttsService    audio.ITTS
	s3Client      s3.ItfS3
	utils         utils.IUtils

	sessions *sessionRegistry

	// now and pick are swappable so tests get deterministic schedules and
	// pool choices.
	now  func() time.Time
	pick func(n int) int
}

func New(
	log *logrus.Logger,
	assistantRepo assistantRepository.Repository,
	actionQueue device.IActionQueue,
	categoryClassifier classifier.IClassifier,
	textTranslator translator.ITranslator,
	groqClient groq.IGroq,
	youtubeClient youtube.IYoutube,
	weatherClient openmeteo.IWeather,
	ttsService audio.ITTS,
	s3Client s3.ItfS3,
	utilsPkg utils.IUtils,
) IAssistantService {
	return &assistantService{
		log:           log,
		assistantRepo: assistantRepo,
		actionQueue:   actionQueue,
		classifier:    categoryClassifier,
		translator:    textTranslator,
		groqClient:    groqClient,
		youtubeClient: youtubeClient,
		weatherClient: weatherClient,
		ttsService:    ttsService,
		s3Client:      s3Client,
		utils:         utilsPkg,
		sessions:      newSessionRegistry(),
		now:           time.Now,
		pick:          rand.Intn,
	}
}
