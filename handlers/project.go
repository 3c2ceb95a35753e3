package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolioai/services"
)

// ProjectHandler serves AI project-description generation.
type ProjectHandler struct {
	generator *services.ProjectGenerator
	logger    *zap.Logger
}

// NewProjectHandler creates a project handler.
func NewProjectHandler(generator *services.ProjectGenerator, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{generator: generator, logger: logger}
}

// Describe handles POST /api/project/describe: generates a description and
// technology list for a project from its title and links.
func (h *ProjectHandler) Describe(c *gin.Context) {
	var links services.ProjectLinks
	if err := c.ShouldBindJSON(&links); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	generated, err := h.generator.GenerateDescription(c.Request.Context(), links)
	if err != nil {
		h.logger.Warn("project description generation failed",
			zap.String("title", links.Title),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, generated)
}
