package modules

import (
	"riftrewind/api/handlers"
	"riftrewind/api/services"
	"riftrewind/fetcher/data"
)

func initializePlayerHandler(deps *ModuleDependencies) (*handlers.PlayerHandler, error) {
	// The fetchers share a single rate limiter.
	fetcher := data.CreateMainFetcher()

	playerService, err := services.NewPlayerService(&services.PlayerServiceDeps{
		Fetcher: fetcher,
		Lake:    deps.Lake,
	})
	if err != nil {
		return nil, err
	}

	return handlers.NewPlayerHandler(playerService), nil
}
