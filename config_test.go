package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingAPIKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	_, err := LoadConfig()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.HTTPPort)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.False(t, cfg.UseS3)
	assert.Equal(t, "memory", cfg.MemoryDir)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.GroqModel)
	assert.Equal(t, DefaultGroqBaseURL, cfg.GroqBaseURL)
	assert.False(t, cfg.RequireDocument)
}

func TestLoadConfig_S3RequiresBucket(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("USE_S3", "true")
	t.Setenv("S3_BUCKET", "")

	_, err := LoadConfig()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "S3_BUCKET")
}

func TestLoadConfig_S3Backend(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("USE_S3", "true")
	t.Setenv("S3_BUCKET", "healthproct-memory")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.UseS3)
	assert.Equal(t, "healthproct-memory", cfg.S3Bucket)
}

func TestLoadConfig_CORSOrigins(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("CORS_ORIGINS", "https://app.example.com,https://staging.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORSOrigins)
}
