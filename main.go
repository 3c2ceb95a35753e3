package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"portfolioai/config"
	"portfolioai/handlers"
	"portfolioai/middleware"
	"portfolioai/services"
	"portfolioai/storage"
	"portfolioai/utils"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := utils.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	store, err := newStore(cfg.Storage)
	if err != nil {
		log.Fatalf("initializing deployment store: %v", err)
	}

	completer := services.NewOpenAICompleter(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, logger)
	github := services.NewGitHubService(cfg.GitHubToken, logger)
	linkedin := services.NewLinkedInService(logger)
	youtube := services.NewYouTubeService(logger)

	aiParser := services.NewAIResumeParser(completer, logger)
	resumes := services.NewResumeService(aiParser, logger)
	projects := services.NewProjectGenerator(completer, github, youtube, logger)
	portfolios := services.NewPortfolioGenerator(completer, logger)

	resumeHandler := handlers.NewResumeHandler(resumes, logger)
	profileHandler := handlers.NewProfileHandler(github, linkedin, logger)
	projectHandler := handlers.NewProjectHandler(projects, logger)
	portfolioHandler := handlers.NewPortfolioHandler(store, portfolios, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.FrontendOrigin)))

	api := r.Group("/api")
	{
		api.POST("/resume/parse", resumeHandler.Parse)
		api.POST("/profile/github", profileHandler.GitHubProjects)
		api.POST("/profile/linkedin", profileHandler.LinkedInProfile)
		api.POST("/project/describe", projectHandler.Describe)
		api.POST("/portfolio/generate", portfolioHandler.Generate)
		api.POST("/portfolio/generate-ai", portfolioHandler.GenerateAI)
		api.POST("/portfolio/deploy", portfolioHandler.Deploy)
		api.GET("/portfolio/:slug", portfolioHandler.GetBySlug)
	}

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// newStore builds the configured deployment store backend.
func newStore(cfg config.StorageConfig) (storage.Store, error) {
	if cfg.Backend == "s3" {
		return storage.NewS3Store(storage.S3Config{
			Region:    cfg.AWSRegion,
			Bucket:    cfg.AWSBucket,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
		})
	}
	return storage.NewFileStore(cfg.Dir)
}
