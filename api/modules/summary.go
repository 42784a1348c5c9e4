package modules

import (
	"riftrewind/api/cache"
	"riftrewind/api/handlers"
	"riftrewind/api/services"
	"riftrewind/pkg/config"
)

func initializeSummaryHandler(deps *ModuleDependencies, summaryCache cache.SummaryCache) (*handlers.SummaryHandler, *services.SummaryService, error) {
	summaryDeps := &services.SummaryServiceDeps{
		Lake:  deps.Lake,
		Cache: summaryCache,
	}

	// Only build the lambda client when the offload is enabled.
	if config.Lambda.UseLambda {
		summaryDeps.Lambda = services.NewSummaryLambda()
	}

	summaryService, err := services.NewSummaryService(summaryDeps)
	if err != nil {
		return nil, nil, err
	}

	return handlers.NewSummaryHandler(summaryService), summaryService, nil
}
