package chatbot

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultGroqBaseURL is Groq's OpenAI-compatible API endpoint.
const DefaultGroqBaseURL = "https://api.groq.com/openai/v1"

// Config holds the process configuration, read once at startup from the
// environment. There is no hot-reload.
type Config struct {
	// Server settings
	HTTPPort    int
	CORSOrigins []string

	// Storage backend selection
	UseS3     bool
	S3Bucket  string
	MemoryDir string

	// Completion service
	GroqAPIKey  string
	GroqModel   string
	GroqBaseURL string

	// Reference document
	DocumentPath string
	// RequireDocument upgrades a missing reference document from a soft
	// fallback to a fatal startup error.
	RequireDocument bool
}

// LoadConfig reads configuration from environment variables. A missing
// GROQ_API_KEY is a fatal configuration error: the server must not start
// without a credential for the completion service.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		HTTPPort:        getEnvInt("HTTP_PORT", 8000),
		CORSOrigins:     strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		UseS3:           getEnvBool("USE_S3", false),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		MemoryDir:       getEnv("MEMORY_DIR", "memory"),
		GroqAPIKey:      getEnv("GROQ_API_KEY", ""),
		GroqModel:       getEnv("GROQ_MODEL_NAME", "llama-3.1-8b-instant"),
		GroqBaseURL:     getEnv("GROQ_API_BASE", DefaultGroqBaseURL),
		DocumentPath:    getEnv("DOCUMENT_PATH", "resources/healthproct.txt"),
		RequireDocument: getEnvBool("REQUIRE_DOCUMENT", false),
	}

	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable not set")
	}

	if cfg.UseS3 && cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET must be set when USE_S3 is enabled")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return strings.EqualFold(val, "true")
	}
	return defaultVal
}
