package chatbot

import (
	"context"
)

// ConversationStore defines the interface for per-session conversation
// persistence. One serialized document is kept per session id; Save replaces
// the whole document on every call.
type ConversationStore interface {
	// Load returns the persisted log for the session id. A session that has
	// never been saved is not an error: it loads as an empty log.
	Load(ctx context.Context, sessionID string) (ConversationLog, error)

	// Save replaces the persisted document for the session id with the full
	// serialized log, creating any needed parent location on first write.
	Save(ctx context.Context, sessionID string, log ConversationLog) error
}

// memoryPath returns the storage key for a session id, shared by every
// backend so documents stay addressable when switching storage.
func memoryPath(sessionID string) string {
	return sessionID + ".json"
}
