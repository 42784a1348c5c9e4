package jobs

import (
	"context"
	"fmt"
	"log"
	"riftrewind/api/cache"
	"riftrewind/api/filters"
	"riftrewind/api/services"
	"riftrewind/pkg/datalake"
	"riftrewind/pkg/logger"
	"riftrewind/pkg/redis"
	"time"
)

// RefreshSummaries regenerates the summary of every player marked on the
// refresh set, so returning visitors get current data without waiting.
func RefreshSummaries() error {
	log.Println("Starting summary refresh")

	redisClient, err := redis.NewClient()
	if err != nil {
		return fmt.Errorf("couldn't get redis connection: %w", err)
	}
	defer redisClient.Close()

	runLogger, err := logger.CreateLogger()
	if err != nil {
		return fmt.Errorf("couldn't create the run logger: %w", err)
	}

	summaryCache := cache.NewSummaryCache(redisClient)
	summaryService, err := services.NewSummaryService(&services.SummaryServiceDeps{
		Lake:  datalake.NewClient(),
		Cache: summaryCache,
	})
	if err != nil {
		return fmt.Errorf("couldn't start the summary service: %w", err)
	}

	ctx := context.Background()

	queue, err := summaryCache.RefreshQueue(ctx)
	if err != nil {
		return fmt.Errorf("couldn't read the refresh queue: %w", err)
	}

	runLogger.Infof("Refreshing %d player summaries", len(queue))

	refreshed := 0
	for _, puuid := range queue {
		_, err := summaryService.GenerateSummary(ctx, &filters.SummaryGenerateParams{Puuid: puuid})
		if err != nil {
			runLogger.Errorf("Couldn't refresh the summary of %s: %v", puuid, err)
			continue
		}

		summaryCache.RemoveFromRefresh(ctx, puuid)
		refreshed++
	}

	runLogger.Infof("Summary refresh finished: %d/%d refreshed", refreshed, len(queue))

	objectKey := fmt.Sprintf("scheduler/summary-refresh-%s.log", time.Now().UTC().Format("2006-01-02"))
	if err := runLogger.UploadToS3Bucket(objectKey); err != nil {
		log.Printf("Error uploading the refresh log: %v", err)
	}

	log.Println("Summary refresh completed")
	return nil
}
