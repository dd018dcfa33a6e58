// Package chatbot implements the Healthproct chat backend: a conversation
// store keyed by session id, a prompt builder embedding the cancer research
// reference document, and a message assembler feeding a text-completion
// provider.
package chatbot

// MessageRole identifies the author of a stored conversation message.
type MessageRole string

const (
	// RoleUser marks a message sent by the end user.
	RoleUser MessageRole = "user"

	// RoleAssistant marks a reply produced by the completion service.
	RoleAssistant MessageRole = "assistant"
)

// Message is a single conversation entry as persisted in the blob store.
// Timestamp is kept as an ISO-8601 string so the stored document stays
// byte-compatible across backends.
type Message struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp string      `json:"timestamp"`
}

// ConversationLog is the ordered message history of one session. Insertion
// order is chronological order; the log is append-only from the
// application's perspective.
type ConversationLog []Message
