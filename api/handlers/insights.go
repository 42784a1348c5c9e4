package handlers

import (
	"errors"
	"net/http"
	"riftrewind/api/filters"
	"riftrewind/api/services"

	"github.com/gin-gonic/gin"
)

// InsightsHandler is the handler for the AI analysis endpoints.
type InsightsHandler struct {
	insightsService *services.InsightsService
}

// NewInsightsHandler creates a new instance of the insights handler.
func NewInsightsHandler(service *services.InsightsService) *InsightsHandler {
	return &InsightsHandler{
		insightsService: service,
	}
}

// insightsStatus maps the known service errors to http statuses.
func insightsStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrSummaryNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUnknownPersona):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AnalyzePlayer handles requests for a full persona analysis.
func (h *InsightsHandler) AnalyzePlayer(c *gin.Context) {
	var qp filters.AnalysisParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.insightsService.AnalyzePlayer(c.Request.Context(), &qp)
	if err != nil {
		c.JSON(insightsStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// QuickInsight handles requests for a short category insight.
func (h *InsightsHandler) QuickInsight(c *gin.Context) {
	var body filters.QuickInsightParams
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.insightsService.QuickInsight(c.Request.Context(), &body)
	if err != nil {
		c.JSON(insightsStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// RoastPlayer handles requests for the comedic persona.
func (h *InsightsHandler) RoastPlayer(c *gin.Context) {
	var body filters.RoastParams
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.insightsService.RoastPlayer(c.Request.Context(), &body)
	if err != nil {
		c.JSON(insightsStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnalyzeMatch handles requests for a single match breakdown.
func (h *InsightsHandler) AnalyzeMatch(c *gin.Context) {
	var qp filters.MatchAnalysisParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.insightsService.AnalyzeMatch(c.Request.Context(), &qp)
	if err != nil {
		c.JSON(insightsStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
