package chatbot

// historyWindow bounds how many stored entries are replayed per completion
// call. Older history is silently dropped to cap token cost and latency; no
// summarization is performed.
const historyWindow = 10

// AssembleMessages converts a stored conversation log into the ordered
// message sequence sent to the completion service: the system prompt first,
// then at most the historyWindow most recent log entries, then the new user
// message. Entries with unrecognized roles are skipped.
func AssembleMessages(log ConversationLog, systemPrompt string, userMessage string) []LLMMessage {
	recent := log
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}

	messages := make([]LLMMessage, 0, len(recent)+2)
	messages = append(messages, LLMMessage{Role: SystemRole, Text: systemPrompt})

	for _, msg := range recent {
		switch msg.Role {
		case RoleUser:
			messages = append(messages, LLMMessage{Role: UserRole, Text: msg.Content})
		case RoleAssistant:
			messages = append(messages, LLMMessage{Role: AssistantRole, Text: msg.Content})
		}
	}

	return append(messages, LLMMessage{Role: UserRole, Text: userMessage})
}
