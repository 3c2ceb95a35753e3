package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolioai/models"
)

// respondError maps the error taxonomy onto HTTP statuses: bad uploads and
// invalid input are the client's fault, provider and fetch failures are
// upstream faults.
func respondError(c *gin.Context, err error) {
	var (
		extractionErr *models.ExtractionError
		validationErr *models.ValidationError
		providerErr   *models.ProviderError
		fetchErr      *models.FetchError
	)

	switch {
	case errors.As(err, &extractionErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not read the uploaded document"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &providerErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "completion provider unavailable"})
	case errors.As(err, &fetchErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
