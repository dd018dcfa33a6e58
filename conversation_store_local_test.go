package chatbot

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalConversationStore_LoadUnknownSession(t *testing.T) {
	store := NewLocalConversationStore(t.TempDir(), nil)

	log, err := store.Load(context.Background(), "never-saved")

	assert.NoError(t, err)
	assert.Empty(t, log)
}

func TestLocalConversationStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalConversationStore(dir, nil)
	ctx := context.Background()

	log := ConversationLog{
		{Role: RoleUser, Content: "What is the most common cancer type?", Timestamp: "2025-01-01T12:00:00Z"},
		{Role: RoleAssistant, Content: "According to the document...", Timestamp: "2025-01-01T12:00:00Z"},
	}

	require.NoError(t, store.Save(ctx, "session-1", log))

	loaded, err := store.Load(ctx, "session-1")
	assert.NoError(t, err)
	assert.Equal(t, log, loaded)
}

func TestLocalConversationStore_DocumentShape(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalConversationStore(dir, nil)

	log := ConversationLog{{Role: RoleUser, Content: "hello", Timestamp: "2025-01-01T12:00:00Z"}}
	require.NoError(t, store.Save(context.Background(), "session-1", log))

	// Persisted as "<session_id>.json", an indented JSON array of objects.
	data, err := os.ReadFile(filepath.Join(dir, "session-1.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")

	var raw []map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "user", raw[0]["role"])
	assert.Equal(t, "hello", raw[0]["content"])
	assert.Equal(t, "2025-01-01T12:00:00Z", raw[0]["timestamp"])
}

func TestLocalConversationStore_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "memory")
	store := NewLocalConversationStore(dir, nil)

	err := store.Save(context.Background(), "s", ConversationLog{{Role: RoleUser, Content: "x"}})

	assert.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "s.json"))
	assert.NoError(t, statErr)
}

func TestLocalConversationStore_SaveOverwrites(t *testing.T) {
	store := NewLocalConversationStore(t.TempDir(), nil)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s", ConversationLog{
		{Role: RoleUser, Content: "one"},
		{Role: RoleAssistant, Content: "two"},
	}))
	require.NoError(t, store.Save(ctx, "s", ConversationLog{{Role: RoleUser, Content: "three"}}))

	loaded, err := store.Load(ctx, "s")
	assert.NoError(t, err)
	assert.Len(t, loaded, 1)
	assert.Equal(t, "three", loaded[0].Content)
}

func TestLocalConversationStore_CorruptDocument(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalConversationStore(dir, nil)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	_, err := store.Load(context.Background(), "bad")
	assert.Error(t, err)
}

func TestLocalConversationStore_LoadDoesNotCreateFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalConversationStore(dir, nil)

	_, err := store.Load(context.Background(), "ghost")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
