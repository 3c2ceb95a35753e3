package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "FRONTEND_ORIGIN", "STORAGE_BACKEND", "STORAGE_DIR"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendOrigin)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "portfolios", cfg.Storage.Dir)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("STORAGE_BACKEND", "s3")
	t.Setenv("AWS_S3_BUCKET", "portfolio-pages")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "s3", cfg.Storage.Backend)
	assert.Equal(t, "portfolio-pages", cfg.Storage.AWSBucket)
}
