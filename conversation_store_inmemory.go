package chatbot

import (
	"context"
	"sync"
)

// InMemoryConversationStore is an in-memory implementation of
// ConversationStore, used in tests and for local development without a
// memory directory.
type InMemoryConversationStore struct {
	conversations map[string]ConversationLog
	mu            sync.RWMutex
}

// NewInMemoryConversationStore creates a new instance of InMemoryConversationStore
func NewInMemoryConversationStore() *InMemoryConversationStore {
	return &InMemoryConversationStore{
		conversations: make(map[string]ConversationLog),
	}
}

// Load returns a copy of the stored log, or an empty log for an unknown
// session id.
func (s *InMemoryConversationStore) Load(_ context.Context, sessionID string) (ConversationLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, exists := s.conversations[sessionID]
	if !exists {
		return ConversationLog{}, nil
	}

	log := make(ConversationLog, len(stored))
	copy(log, stored)
	return log, nil
}

// Save replaces the stored log for the session id.
func (s *InMemoryConversationStore) Save(_ context.Context, sessionID string, log ConversationLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make(ConversationLog, len(log))
	copy(stored, log)
	s.conversations[sessionID] = stored
	return nil
}
