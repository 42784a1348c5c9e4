package routes

import (
	"riftrewind/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.PlayerHandler:
			r.registerPlayerHandler(handler)
		case *handlers.SummaryHandler:
			r.registerSummaryHandler(handler)
		case *handlers.InsightsHandler:
			r.registerInsightsHandler(handler)
		case *handlers.ShareHandler:
			r.registerShareHandler(handler)
		}
	}
}

// Register the player handler.
func (r *Router) registerPlayerHandler(handler *handlers.PlayerHandler) {
	riot := r.api.Group("/riot")
	{
		riot.GET("/account", handler.GetAccount)
		riot.GET("/summoner", handler.GetSummoner)
		riot.GET("/matches", handler.GetMatchHistory)
	}

	lake := r.api.Group("/lake")
	{
		lake.GET("/player", handler.GetLakePlayer)
		lake.GET("/match", handler.GetLakeMatch)
	}
}

// Register the summary handler.
func (r *Router) registerSummaryHandler(handler *handlers.SummaryHandler) {
	summary := r.api.Group("/summary")
	{
		summary.POST("/generate", handler.GenerateSummary)
		summary.GET("/player", handler.GetPlayerSummary)
		summary.GET("/match/:gameId", handler.GetMatchSummary)
	}
}

// Register the insights handler.
func (r *Router) registerInsightsHandler(handler *handlers.InsightsHandler) {
	insights := r.api.Group("/insights")
	{
		insights.GET("/analyze", handler.AnalyzePlayer)
		insights.GET("/match", handler.AnalyzeMatch)
		insights.POST("/quick", handler.QuickInsight)
		insights.POST("/roast", handler.RoastPlayer)
	}
}

// Register the share handler.
func (r *Router) registerShareHandler(handler *handlers.ShareHandler) {
	share := r.api.Group("/share")
	{
		share.POST("", handler.CreateShareCard)
		share.GET("/:id", handler.GetShareCard)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
