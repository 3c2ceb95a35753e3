package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolioai/models"
	"portfolioai/services"
	"portfolioai/storage"
	"portfolioai/templates"
)

// PortfolioHandler serves portfolio compilation, AI generation, deployment
// and retrieval.
type PortfolioHandler struct {
	store     storage.Store
	generator *services.PortfolioGenerator
	logger    *zap.Logger
}

// NewPortfolioHandler creates a portfolio handler.
func NewPortfolioHandler(store storage.Store, generator *services.PortfolioGenerator, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{store: store, generator: generator, logger: logger}
}

// Generate handles POST /api/portfolio/generate: compiles the profile into
// HTML with the built-in template.
func (h *PortfolioHandler) Generate(c *gin.Context) {
	input, ok := bindPortfolioInput(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"html": templates.RenderPortfolio(input)})
}

// GenerateAI handles POST /api/portfolio/generate-ai: asks the completion
// capability for a styled page instead of using the template.
func (h *PortfolioHandler) GenerateAI(c *gin.Context) {
	input, ok := bindPortfolioInput(c)
	if !ok {
		return
	}

	html, err := h.generator.Generate(c.Request.Context(), input)
	if err != nil {
		h.logger.Warn("ai portfolio generation failed", zap.String("name", input.Name), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"html": html})
}

// Deploy handles POST /api/portfolio/deploy: compiles the profile and
// persists it under a fresh slug.
func (h *PortfolioHandler) Deploy(c *gin.Context) {
	input, ok := bindPortfolioInput(c)
	if !ok {
		return
	}

	html := templates.RenderPortfolio(input)
	slug := storage.GenerateSlug(input.Name)

	if err := h.store.Put(slug, html); err != nil {
		h.logger.Error("portfolio deploy failed", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store portfolio"})
		return
	}

	h.logger.Info("portfolio deployed", zap.String("slug", slug))
	c.JSON(http.StatusOK, gin.H{"slug": slug, "url": "/api/portfolio/" + slug})
}

// GetBySlug handles GET /api/portfolio/:slug, returning the stored page
// byte-for-byte.
func (h *PortfolioHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	html, err := h.store.Get(slug)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "portfolio not found"})
		return
	}
	if err != nil {
		h.logger.Error("portfolio read failed", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load portfolio"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// bindPortfolioInput decodes the request body and enforces the compiler's
// required fields; optional fields may be absent.
func bindPortfolioInput(c *gin.Context) (models.PortfolioInput, bool) {
	var input models.PortfolioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return input, false
	}

	required := []struct {
		field string
		value string
	}{
		{"name", input.Name},
		{"email", input.Email},
		{"skills", input.Skills},
		{"github", input.GitHub},
	}
	for _, r := range required {
		if r.value == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": (&models.ValidationError{Field: r.field}).Error()})
			return input, false
		}
	}
	return input, true
}
