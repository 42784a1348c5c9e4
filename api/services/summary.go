package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"riftrewind/api/cache"
	"riftrewind/api/dto"
	"riftrewind/api/filters"
	"riftrewind/pkg/aggregator"
	"riftrewind/pkg/config"
	"riftrewind/pkg/datalake"
	"sync"

	matchfetcher "riftrewind/fetcher/data/match"
)

// How many matches get downloaded from the lake at once.
const summaryWorkerCount = 5

// Upper bound of matches folded into a single summary.
const defaultMatchLimit = 200

var (
	// ErrNoMatchesFound is returned when the lake has no data for the player.
	ErrNoMatchesFound = errors.New("no matches found for player")

	// ErrSummaryNotFound is returned when no summary was generated yet.
	ErrSummaryNotFound = errors.New("summary not found, generate it first")
)

// LakeClient is the subset of the data lake used by the services.
type LakeClient interface {
	ListMatchKeys(ctx context.Context, cluster, platform, puuid string) ([]string, error)
	GetMatch(ctx context.Context, key string) (*matchfetcher.MatchData, error)
	GetMatchById(ctx context.Context, cluster, platform, puuid, matchId string) (*matchfetcher.MatchData, error)
	GetTimelineById(ctx context.Context, cluster, platform, puuid, matchId string) (json.RawMessage, error)
	GetPlayerData(ctx context.Context, cluster, platform, puuid string) (*datalake.PlayerData, error)
	GetMatchIds(ctx context.Context, cluster, platform, puuid string) ([]string, error)
	GetJSON(ctx context.Context, bucket, key string, out any) error
	PutJSON(ctx context.Context, bucket, key string, value any) error
	SummariesBucket() string
}

// SummaryService generates and serves the aggregated player summaries.
type SummaryService struct {
	lake       LakeClient
	cache      cache.SummaryCache
	aggregator *aggregator.Aggregator
	lambda     SummaryLambda
	useLambda  bool
}

type SummaryServiceDeps struct {
	Lake   LakeClient
	Cache  cache.SummaryCache
	Lambda SummaryLambda
}

// NewSummaryService creates a service for handling the summary pipeline.
func NewSummaryService(deps *SummaryServiceDeps) (*SummaryService, error) {
	if deps.Lake == nil {
		return nil, errors.New("a lake client must be provided")
	}

	return &SummaryService{
		lake:       deps.Lake,
		cache:      deps.Cache,
		aggregator: aggregator.New(nil),
		lambda:     deps.Lambda,
		useLambda:  config.Lambda.UseLambda && deps.Lambda != nil,
	}, nil
}

// GenerateSummary runs the full pipeline: list the player matches on the lake,
// download them, fold them into a summary and store the results back.
func (ss *SummaryService) GenerateSummary(ctx context.Context, params *filters.SummaryGenerateParams) (*dto.SummaryGenerationResult, error) {
	cluster, platform := resolveLakeRegion(params.Cluster, params.Platform)

	// Heavy generations can be offloaded to the dedicated lambda.
	if ss.useLambda {
		return ss.generateThroughLambda(ctx, params.Puuid)
	}

	keys, err := ss.lake.ListMatchKeys(ctx, cluster, platform, params.Puuid)
	if err != nil {
		return nil, fmt.Errorf("couldn't list the player matches: %w", err)
	}

	if len(keys) == 0 {
		return nil, ErrNoMatchesFound
	}

	totalFound := len(keys)

	limit := params.Limit
	if limit <= 0 || limit > defaultMatchLimit {
		limit = defaultMatchLimit
	}
	if len(keys) > limit {
		keys = keys[:limit]
	}

	matches := ss.downloadMatches(ctx, keys)

	result := ss.aggregator.Aggregate(matches, params.Puuid)

	summaryKey := datalake.PlayerSummaryKey(params.Puuid)
	if err := ss.lake.PutJSON(ctx, ss.lake.SummariesBucket(), summaryKey, result.Summary); err != nil {
		return nil, fmt.Errorf("couldn't store the player summary: %w", err)
	}

	stored := 0
	for _, matchSummary := range result.MatchSummaries {
		key := datalake.MatchSummaryKey(params.Puuid, matchSummary.MatchId)
		if err := ss.lake.PutJSON(ctx, ss.lake.SummariesBucket(), key, matchSummary); err != nil {
			continue
		}
		stored++
	}

	if ss.cache != nil {
		ss.cache.SetPlayerSummary(ctx, result.Summary)
		ss.cache.MarkForRefresh(ctx, params.Puuid)
	}

	response := &dto.SummaryGenerationResult{
		Success:                        true,
		Message:                        fmt.Sprintf("Successfully processed %d matches", result.Summary.TotalMatches),
		PlayerSummaryLocation:          fmt.Sprintf("s3://%s/%s", ss.lake.SummariesBucket(), summaryKey),
		MatchesProcessed:               result.Summary.TotalMatches,
		MatchesSkipped:                 result.Skipped,
		TotalMatchesFound:              totalFound,
		IndividualMatchSummariesStored: stored,
		Summary:                        result.Summary,
		MatchSummaries:                 result.MatchSummaries,
	}

	// Keep the payload small, the full set lives on the lake.
	if len(response.MatchSummaries) > 5 {
		response.MatchSummaries = response.MatchSummaries[:5]
	}

	return response, nil
}

// generateThroughLambda relays the generation to the offload lambda.
func (ss *SummaryService) generateThroughLambda(ctx context.Context, puuid string) (*dto.SummaryGenerationResult, error) {
	lambdaResult, err := ss.lambda.GenerateSummary(ctx, puuid)
	if err != nil {
		return nil, fmt.Errorf("lambda generation failed: %w", err)
	}

	return &dto.SummaryGenerationResult{
		Success:               lambdaResult.Success,
		Message:               lambdaResult.Message,
		PlayerSummaryLocation: lambdaResult.PlayerSummaryLocation,
		MatchesProcessed:      lambdaResult.MatchesProcessed,
		TotalMatchesFound:     lambdaResult.TotalMatchesFound,
	}, nil
}

// downloadMatches fetches the match objects through a small worker pool.
// Failed downloads keep their slot as nil so they get counted as skipped.
func (ss *SummaryService) downloadMatches(ctx context.Context, keys []string) []*matchfetcher.MatchData {
	matches := make([]*matchfetcher.MatchData, len(keys))

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < summaryWorkerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				match, err := ss.lake.GetMatch(ctx, keys[i])
				if err != nil {
					continue
				}
				matches[i] = match
			}
		}()
	}

	for i := range keys {
		jobs <- i
	}
	close(jobs)

	wg.Wait()

	return matches
}

// GetPlayerSummary returns the stored summary, going cache first.
func (ss *SummaryService) GetPlayerSummary(ctx context.Context, puuid string) (*aggregator.PlayerSummary, error) {
	if ss.cache != nil {
		cached, err := ss.cache.GetPlayerSummary(ctx, puuid)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	var summary aggregator.PlayerSummary
	err := ss.lake.GetJSON(ctx, ss.lake.SummariesBucket(), datalake.PlayerSummaryKey(puuid), &summary)
	if err != nil {
		if errors.Is(err, datalake.ErrObjectNotFound) {
			return nil, ErrSummaryNotFound
		}
		return nil, fmt.Errorf("couldn't read the player summary: %w", err)
	}

	if ss.cache != nil {
		ss.cache.SetPlayerSummary(ctx, &summary)
	}

	return &summary, nil
}

// GetMatchSummaries returns the stored match summaries for the given ids,
// going cache first and falling back to the lake for the misses.
func (ss *SummaryService) GetMatchSummaries(ctx context.Context, puuid string, gameIds []int64) ([]*aggregator.MatchSummary, error) {
	if len(gameIds) == 0 {
		return nil, nil
	}

	var summaries []*aggregator.MatchSummary
	missing := gameIds

	if ss.cache != nil {
		found, notFound, err := ss.cache.GetMatchSummaries(ctx, puuid, gameIds)
		if err == nil {
			summaries = found
			missing = notFound
		}
	}

	for _, gameId := range missing {
		var summary aggregator.MatchSummary
		key := datalake.MatchSummaryKey(puuid, gameId)
		if err := ss.lake.GetJSON(ctx, ss.lake.SummariesBucket(), key, &summary); err != nil {
			continue
		}

		if ss.cache != nil {
			ss.cache.SetMatchSummary(ctx, &summary)
		}
		summaries = append(summaries, &summary)
	}

	return summaries, nil
}

// resolveLakeRegion applies the configured defaults when the request omits them.
func resolveLakeRegion(cluster, platform string) (string, string) {
	if cluster == "" {
		cluster = config.Lake.DefaultCluster
	}
	if platform == "" {
		platform = config.Lake.DefaultPlatform
	}

	return cluster, platform
}
