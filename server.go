package chatbot

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/healthproct/chatbot/observability"
)

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse is the body of a successful POST /chat.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// ChatServer owns the per-request orchestration: session id assignment,
// history load, prompt assembly, the completion call, and the history save.
// It is stateless across requests except through the ConversationStore.
type ChatServer struct {
	store         ConversationStore
	provider      LLMProvider
	promptBuilder *PromptBuilder
	requestConfig LLMRequestConfig
	logger        observability.Logger

	useS3 bool
	model string

	// sessionLocks serializes turns per session id. Save is a full-document
	// overwrite, so two concurrent turns on one session would otherwise race
	// between load and save and silently drop one turn.
	sessionLocks sync.Map
}

// ChatServerConfig holds the dependencies for a ChatServer.
type ChatServerConfig struct {
	Store         ConversationStore
	Provider      LLMProvider
	PromptBuilder *PromptBuilder
	RequestConfig LLMRequestConfig
	Logger        observability.Logger

	// UseS3 reports which storage backend is active; surfaced by the root
	// and health endpoints.
	UseS3 bool
	// Model is the completion model identifier; surfaced by the root endpoint.
	Model string
}

// NewChatServer creates a ChatServer from its configuration.
func NewChatServer(config ChatServerConfig) *ChatServer {
	if config.Logger == nil {
		config.Logger = observability.NewNullLogger()
	}

	return &ChatServer{
		store:         config.Store,
		provider:      config.Provider,
		promptBuilder: config.PromptBuilder,
		requestConfig: config.RequestConfig,
		logger:        config.Logger,
		useS3:         config.UseS3,
		model:         config.Model,
	}
}

// RegisterRoutes registers the HTTP surface on the given Echo instance.
func (s *ChatServer) RegisterRoutes(e *echo.Echo) {
	e.GET("/", s.Root)
	e.GET("/health", s.Health)
	e.POST("/chat", s.Chat)
	e.GET("/conversation/:session_id", s.GetConversation)
}

// Root reports service status and the active configuration.
// GET /
func (s *ChatServer) Root(c echo.Context) error {
	storage := "local"
	if s.useS3 {
		storage = "S3"
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":        "Healthproct API is running.",
		"memory_enabled": true,
		"storage":        storage,
		"model_backend":  s.model,
	})
}

// Health is the liveness probe.
// GET /health
func (s *ChatServer) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"use_s3": s.useS3,
	})
}

// Chat runs one conversation turn.
// POST /chat
func (s *ChatServer) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return s.internalError(c, err)
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	unlock := s.lockSession(sessionID)
	defer unlock()

	ctx := c.Request().Context()

	log, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return s.internalError(c, err)
	}

	messages := AssembleMessages(log, s.promptBuilder.Build(), req.Message)

	response, err := s.provider.GetResponse(ctx, messages, s.requestConfig)
	if err != nil {
		// The turn is not persisted: a failed completion leaves the store at
		// its pre-call state.
		return s.internalError(c, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	log = append(log,
		Message{Role: RoleUser, Content: req.Message, Timestamp: now},
		Message{Role: RoleAssistant, Content: response.Text, Timestamp: now},
	)

	if err := s.store.Save(ctx, sessionID, log); err != nil {
		return s.internalError(c, err)
	}

	s.logger.WithFields(map[string]interface{}{
		"session_id":   sessionID,
		"input_token":  response.TotalInputToken,
		"output_token": response.TotalOutputToken,
	}).Debug("chat turn completed")

	return c.JSON(http.StatusOK, ChatResponse{
		Response:  response.Text,
		SessionID: sessionID,
	})
}

// GetConversation exposes the stored history for a session. An unknown
// session id yields an empty list, never a not-found error.
// GET /conversation/:session_id
func (s *ChatServer) GetConversation(c echo.Context) error {
	sessionID := c.Param("session_id")

	log, err := s.store.Load(c.Request().Context(), sessionID)
	if err != nil {
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"messages":   log,
	})
}

// internalError maps every per-request failure to a uniform 500 response
// carrying the error's description. No structured error codes are exposed.
func (s *ChatServer) internalError(c echo.Context, err error) error {
	s.logger.WithErr(err).Error("request failed")
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"detail": err.Error(),
	})
}

// lockSession acquires the mutex for a session id, creating it on first use.
func (s *ChatServer) lockSession(sessionID string) func() {
	v, _ := s.sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
