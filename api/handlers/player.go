package handlers

import (
	"errors"
	"net/http"
	"riftrewind/api/filters"
	"riftrewind/api/services"
	"riftrewind/pkg/datalake"

	"github.com/gin-gonic/gin"
)

// PlayerHandler is the handler for the riot proxy and lake endpoints.
type PlayerHandler struct {
	playerService *services.PlayerService
}

// NewPlayerHandler creates a new instance of the player handler.
func NewPlayerHandler(service *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: service,
	}
}

// GetAccount handles requests for resolving a riot id.
func (h *PlayerHandler) GetAccount(c *gin.Context) {
	var qp filters.AccountSearchParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.playerService.GetAccount(&qp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSummoner handles requests for the summoner profile.
func (h *PlayerHandler) GetSummoner(c *gin.Context) {
	var qp filters.SummonerParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.playerService.GetSummoner(&qp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMatchHistory handles requests for the recent match ids.
func (h *PlayerHandler) GetMatchHistory(c *gin.Context) {
	var qp filters.MatchHistoryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.playerService.GetMatchHistory(&qp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLakePlayer handles requests for the stored player data.
func (h *PlayerHandler) GetLakePlayer(c *gin.Context) {
	var qp filters.LakePlayerParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.playerService.GetLakePlayer(c.Request.Context(), &qp)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetLakeMatch handles requests for a single stored match.
func (h *PlayerHandler) GetLakeMatch(c *gin.Context) {
	var qp filters.LakeMatchParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.playerService.GetLakeMatch(c.Request.Context(), &qp)
	if err != nil {
		if errors.Is(err, datalake.ErrObjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
