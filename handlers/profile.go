package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolioai/services"
)

// ProfileHandler serves external profile fetches (GitHub, LinkedIn).
type ProfileHandler struct {
	github   *services.GitHubService
	linkedin *services.LinkedInService
	logger   *zap.Logger
}

// NewProfileHandler creates a profile handler.
func NewProfileHandler(github *services.GitHubService, linkedin *services.LinkedInService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{github: github, linkedin: linkedin, logger: logger}
}

type githubRequest struct {
	Username string `json:"username" binding:"required"`
}

// GitHubProjects handles POST /api/profile/github: lists a user's public
// repositories as portfolio project candidates.
func (h *ProfileHandler) GitHubProjects(c *gin.Context) {
	var req githubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projects, err := h.github.FetchProjects(c.Request.Context(), req.Username)
	if err != nil {
		h.logger.Warn("github fetch failed", zap.String("username", req.Username), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

type linkedinRequest struct {
	URL string `json:"url" binding:"required"`
}

// LinkedInProfile handles POST /api/profile/linkedin: fetches what a public
// profile page exposes.
func (h *ProfileHandler) LinkedInProfile(c *gin.Context) {
	var req linkedinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.linkedin.FetchProfile(c.Request.Context(), services.ProfileIDFromURL(req.URL))
	if err != nil {
		h.logger.Warn("linkedin fetch failed", zap.String("url", req.URL), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
