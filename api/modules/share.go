package modules

import (
	"riftrewind/api/handlers"
	"riftrewind/api/services"
)

func initializeShareHandler(deps *ModuleDependencies, summaryService *services.SummaryService) (*handlers.ShareHandler, error) {
	shareService, err := services.NewShareService(&services.ShareServiceDeps{
		DB:        deps.DB,
		Summaries: summaryService,
	})
	if err != nil {
		return nil, err
	}

	return handlers.NewShareHandler(shareService), nil
}
