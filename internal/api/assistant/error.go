package assistant

import "AssistantGolang/pkg/response"

var (
	ErrEmptyUtterance        = response.NewError(400, "utterance text must not be empty")
	ErrTurnInProgress        = response.NewError(409, "a turn is already in progress for this session")
	ErrConversationNotFound  = response.NewError(404, "conversation entry not found")
	ErrClassifierUnavailable = response.NewError(503, "classifier unavailable")
	ErrUnsupportedLanguage   = response.NewError(400, "unsupported language code")
)
