package handlers

import (
	"errors"
	"net/http"
	"riftrewind/api/filters"
	"riftrewind/api/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SummaryHandler is the handler for the summary endpoints.
type SummaryHandler struct {
	summaryService *services.SummaryService
}

// NewSummaryHandler creates a new instance of the summary handler.
func NewSummaryHandler(service *services.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		summaryService: service,
	}
}

// GenerateSummary handles requests for a full on demand generation.
func (h *SummaryHandler) GenerateSummary(c *gin.Context) {
	var qp filters.SummaryGenerateParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.summaryService.GenerateSummary(c.Request.Context(), &qp)
	if err != nil {
		if errors.Is(err, services.ErrNoMatchesFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPlayerSummary handles requests for a stored player summary.
func (h *SummaryHandler) GetPlayerSummary(c *gin.Context) {
	var qp filters.SummaryGetParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.summaryService.GetPlayerSummary(c.Request.Context(), qp.Puuid)
	if err != nil {
		if errors.Is(err, services.ErrSummaryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetMatchSummary handles requests for a single stored match summary.
func (h *SummaryHandler) GetMatchSummary(c *gin.Context) {
	var qp filters.SummaryGetParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gameId, err := strconv.ParseInt(c.Param("gameId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}

	summaries, err := h.summaryService.GetMatchSummaries(c.Request.Context(), qp.Puuid, []int64{gameId})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(summaries) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "match summary not found"})
		return
	}

	c.JSON(http.StatusOK, summaries[0])
}
