// Command healthproct-api runs the Healthproct chat backend.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/openai/openai-go/option"
	"github.com/sirupsen/logrus"

	"github.com/healthproct/chatbot"
	"github.com/healthproct/chatbot/observability"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := chatbot.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger := observability.NewLogrusLogger(log)

	document, err := chatbot.LoadReferenceDocument(cfg.DocumentPath)
	if err != nil {
		if cfg.RequireDocument {
			log.Fatalf("Failed to load reference document %s: %v", cfg.DocumentPath, err)
		}
		log.Warnf("Reference document %s not available, using fallback: %v", cfg.DocumentPath, err)
		document = chatbot.FallbackDocument
	}

	store, err := newConversationStore(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize conversation store: %v", err)
	}

	client := chatbot.NewOpenAIClient(cfg.GroqAPIKey, option.WithBaseURL(cfg.GroqBaseURL))
	provider := chatbot.NewTracingLLMProvider(chatbot.NewOpenAILLMProvider(chatbot.OpenAIProviderConfig{
		Client: client,
		Model:  cfg.GroqModel,
	}))

	server := chatbot.NewChatServer(chatbot.ChatServerConfig{
		Store:         store,
		Provider:      provider,
		PromptBuilder: chatbot.NewPromptBuilder(document),
		RequestConfig: chatbot.NewRequestConfig(),
		Logger:        logger,
		UseS3:         cfg.UseS3,
		Model:         cfg.GroqModel,
	})

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	server.RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Infof("Healthproct API started on port %d (storage: %s, model: %s)",
		cfg.HTTPPort, storageName(cfg.UseS3), cfg.GroqModel)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Failed to shutdown server gracefully: %v", err)
	}
}

func newConversationStore(cfg *chatbot.Config, logger observability.Logger) (chatbot.ConversationStore, error) {
	if cfg.UseS3 {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
		}
		return chatbot.NewS3ConversationStore(chatbot.S3ConversationStoreConfig{
			Client: s3.NewFromConfig(awsCfg),
			Bucket: cfg.S3Bucket,
		}), nil
	}

	if err := os.MkdirAll(cfg.MemoryDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create memory directory %s: %w", cfg.MemoryDir, err)
	}
	return chatbot.NewLocalConversationStore(cfg.MemoryDir, logger), nil
}

func storageName(useS3 bool) string {
	if useS3 {
		return "S3"
	}
	return "local"
}
