package assistantService

import (
	"AssistantGolang/internal/api/assistant"
	"sync"
)

// session holds per-user dialogue state. The mutex serializes turn
// processing so the pending intent has a single writer.
type session struct {
	mu       sync.Mutex
	lock     assistant.Lock
	language string
}

func (s *session) Lock() assistant.Lock {
	return s.lock
}

func (s *session) SetLock(l assistant.Lock) {
	s.lock = l
}

func (s *session) ClearLock() {
	s.lock = assistant.NoLock()
}

type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[string]*session),
	}
}

func (r *sessionRegistry) Get(userID string) *session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[userID]
	if !ok {
		s = &session{lock: assistant.NoLock()}
		r.sessions[userID] = s
	}

	return s
}
