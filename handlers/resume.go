package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolioai/parsers"
	"portfolioai/services"
)

const maxResumeSize = 10 << 20 // 10 MB

// ResumeHandler serves resume upload and parsing.
type ResumeHandler struct {
	resumes *services.ResumeService
	logger  *zap.Logger
}

// NewResumeHandler creates a resume handler.
func NewResumeHandler(resumes *services.ResumeService, logger *zap.Logger) *ResumeHandler {
	return &ResumeHandler{resumes: resumes, logger: logger}
}

// Parse handles POST /api/resume/parse: a multipart "resume" file is parsed
// by both the heuristic and AI parsers and the reconciled profile returned.
func (h *ResumeHandler) Parse(c *gin.Context) {
	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not get file"})
		return
	}
	defer file.Close()

	format, ok := formatFromFilename(header.Filename)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type, upload a PDF or DOCX"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxResumeSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	if len(data) > maxResumeSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	result, err := h.resumes.Parse(c.Request.Context(), data, format)
	if err != nil {
		h.logger.Warn("resume parse failed",
			zap.String("filename", header.Filename),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func formatFromFilename(filename string) (string, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return parsers.FormatPDF, true
	case ".docx":
		return parsers.FormatDOCX, true
	default:
		return "", false
	}
}
