package chatbot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/healthproct/chatbot/observability"
)

// LocalConversationStore persists each session's log as an indented JSON
// file under a single directory.
type LocalConversationStore struct {
	dir    string
	logger observability.Logger
}

// NewLocalConversationStore creates a filesystem-backed ConversationStore
// rooted at dir. The directory is created lazily on first save.
func NewLocalConversationStore(dir string, logger observability.Logger) *LocalConversationStore {
	if logger == nil {
		logger = observability.NewNullLogger()
	}

	return &LocalConversationStore{
		dir:    dir,
		logger: logger,
	}
}

// Load reads the session document from disk. A missing file is the defined
// representation of a new session and loads as an empty log.
func (s *LocalConversationStore) Load(_ context.Context, sessionID string) (ConversationLog, error) {
	path := filepath.Join(s.dir, memoryPath(sessionID))
	s.logger.WithFields(map[string]interface{}{"path": path}).Debug("loading conversation from local file")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ConversationLog{}, nil
		}
		return nil, fmt.Errorf("failed to read conversation file for session %s: %w", sessionID, err)
	}

	var log ConversationLog
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("failed to decode conversation file for session %s: %w", sessionID, err)
	}

	return log, nil
}

// Save writes the full log back to disk, replacing any previous document.
// The write goes through a temp file and rename so a crash mid-write never
// leaves a truncated document behind.
func (s *LocalConversationStore) Save(_ context.Context, sessionID string, log ConversationLog) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create memory directory %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode conversation for session %s: %w", sessionID, err)
	}

	path := filepath.Join(s.dir, memoryPath(sessionID))

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for session %s: %w", sessionID, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write conversation for session %s: %w", sessionID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write conversation for session %s: %w", sessionID, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to save conversation for session %s: %w", sessionID, err)
	}

	return nil
}
