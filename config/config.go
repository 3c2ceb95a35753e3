package config

import "os"

// OpenAIConfig configures the completion provider.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// StorageConfig selects and configures the deployment store backend.
type StorageConfig struct {
	Backend      string // "file" or "s3"
	Dir          string
	AWSRegion    string
	AWSBucket    string
	AWSAccessKey string
	AWSSecretKey string
}

// AppConfig is the process configuration, read from the environment once at
// startup and passed into each component's constructor.
type AppConfig struct {
	Port           string
	Environment    string
	FrontendOrigin string
	LogLevel       string
	GitHubToken    string
	OpenAI         OpenAIConfig
	Storage        StorageConfig
}

// Load reads the application configuration from environment variables.
func Load() AppConfig {
	return AppConfig{
		Port:           getEnv("PORT", "8000"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		GitHubToken:    getEnv("GITHUB_TOKEN", ""),
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", ""),
			Model:   getEnv("OPENAI_MODEL", ""),
		},
		Storage: StorageConfig{
			Backend:      getEnv("STORAGE_BACKEND", "file"),
			Dir:          getEnv("STORAGE_DIR", "portfolios"),
			AWSRegion:    getEnv("AWS_REGION", ""),
			AWSBucket:    getEnv("AWS_S3_BUCKET", ""),
			AWSAccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
			AWSSecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
