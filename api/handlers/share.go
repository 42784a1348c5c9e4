package handlers

import (
	"errors"
	"net/http"
	"riftrewind/api/filters"
	"riftrewind/api/repositories"
	"riftrewind/api/services"

	"github.com/gin-gonic/gin"
)

// ShareHandler is the handler for the share card endpoints.
type ShareHandler struct {
	shareService *services.ShareService
}

// NewShareHandler creates a new instance of the share handler.
func NewShareHandler(service *services.ShareService) *ShareHandler {
	return &ShareHandler{
		shareService: service,
	}
}

// CreateShareCard handles requests for snapshotting a summary into a card.
func (h *ShareHandler) CreateShareCard(c *gin.Context) {
	var body filters.ShareCreateParams
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.shareService.CreateShareCard(c.Request.Context(), &body)
	if err != nil {
		if errors.Is(err, services.ErrSummaryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetShareCard handles requests for resolving a public card id.
func (h *ShareHandler) GetShareCard(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a card id must be provided"})
		return
	}

	result, err := h.shareService.GetShareCard(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrShareCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrShareCardExpired):
			c.JSON(http.StatusGone, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
