package modules

import (
	"riftrewind/api/handlers"
	"riftrewind/api/services"
	"riftrewind/pkg/bedrock"
)

func initializeInsightsHandler(summaryService *services.SummaryService) (*handlers.InsightsHandler, error) {
	insightsService, err := services.NewInsightsService(&services.InsightsServiceDeps{
		Bedrock:   bedrock.NewClient(),
		Summaries: summaryService,
	})
	if err != nil {
		return nil, err
	}

	return handlers.NewInsightsHandler(insightsService), nil
}
