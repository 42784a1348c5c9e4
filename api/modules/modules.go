package modules

import (
	"fmt"
	"riftrewind/api/cache"
	"riftrewind/api/handlers"
	"riftrewind/pkg/datalake"
	"riftrewind/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ModuleDependencies holds the shared clients every handler builds on.
type ModuleDependencies struct {
	DB    *gorm.DB
	Redis *redis.RedisClient
	Lake  *datalake.Client
}

// Module containing the necessary handlers.
type Module struct {
	Router          *gin.Engine
	PlayerHandler   *handlers.PlayerHandler
	SummaryHandler  *handlers.SummaryHandler
	InsightsHandler *handlers.InsightsHandler
	ShareHandler    *handlers.ShareHandler
}

// NewModule creates a module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) (*Module, error) {
	router := gin.Default()

	summaryCache := cache.NewSummaryCache(deps.Redis)

	playerHandler, err := initializePlayerHandler(deps)
	if err != nil {
		return nil, fmt.Errorf("couldn't start the player handler: %w", err)
	}

	summaryHandler, summaryService, err := initializeSummaryHandler(deps, summaryCache)
	if err != nil {
		return nil, fmt.Errorf("couldn't start the summary handler: %w", err)
	}

	insightsHandler, err := initializeInsightsHandler(summaryService)
	if err != nil {
		return nil, fmt.Errorf("couldn't start the insights handler: %w", err)
	}

	shareHandler, err := initializeShareHandler(deps, summaryService)
	if err != nil {
		return nil, fmt.Errorf("couldn't start the share handler: %w", err)
	}

	// Return the module with all handlers.
	return &Module{
		Router:          router,
		PlayerHandler:   playerHandler,
		SummaryHandler:  summaryHandler,
		InsightsHandler: insightsHandler,
		ShareHandler:    shareHandler,
	}, nil
}
