package services

import (
	"context"
	"errors"
	"fmt"
	"riftrewind/api/cache"
	"riftrewind/api/dto"
	"riftrewind/api/filters"
	"riftrewind/pkg/aggregator"
	"riftrewind/pkg/datalake"
	"sync"

	"riftrewind/fetcher/data"
	matchfetcher "riftrewind/fetcher/data/match"
	playerfetcher "riftrewind/fetcher/data/player"
)

// Bounds of the lake match hydration.
const (
	defaultLakeMatchCount = 10
	maxLakeMatchCount     = 30
	lakeWorkerCount       = 5
)

// Bounds of the riot match id proxy.
const (
	defaultHistoryCount = 20
	maxHistoryCount     = 100
)

// ErrPlayerNotFound is returned when neither riot nor the lake know the player.
var ErrPlayerNotFound = errors.New("player not found")

// PlayerService proxies the riot API and serves the raw lake data.
type PlayerService struct {
	fetcher    *data.MainFetcher
	lake       LakeClient
	lookup     *cache.LookupCache
	aggregator *aggregator.Aggregator
}

type PlayerServiceDeps struct {
	Fetcher *data.MainFetcher
	Lake    LakeClient
}

// NewPlayerService creates a service for handling the player endpoints.
func NewPlayerService(deps *PlayerServiceDeps) (*PlayerService, error) {
	if deps.Fetcher == nil || deps.Lake == nil {
		return nil, errors.New("a fetcher and a lake client must be provided")
	}

	return &PlayerService{
		fetcher:    deps.Fetcher,
		lake:       deps.Lake,
		lookup:     cache.GetLookupCache(),
		aggregator: aggregator.New(nil),
	}, nil
}

// GetAccount resolves a riot id into an account, memoizing the lookup.
func (ps *PlayerService) GetAccount(params *filters.AccountSearchParams) (*dto.AccountResult, error) {
	cluster, _ := resolveLakeRegion(params.Region, "")

	cacheKey := cache.AccountKey(cluster, params.GameName, params.TagLine)
	if cached := ps.lookup.Get(cacheKey); cached != nil {
		if account, ok := cached.(*playerfetcher.Account); ok {
			return &dto.AccountResult{Account: account, Region: cluster}, nil
		}
	}

	account, err := ps.fetcher.Player.GetAccountByRiotId(cluster, params.GameName, params.TagLine, true)
	if err != nil {
		return nil, fmt.Errorf("couldn't resolve the riot id: %w", err)
	}

	ps.lookup.Set(cacheKey, account)

	return &dto.AccountResult{Account: account, Region: cluster}, nil
}

// GetSummoner returns the summoner profile of a puuid.
func (ps *PlayerService) GetSummoner(params *filters.SummonerParams) (*playerfetcher.SummonerByPuuid, error) {
	_, platform := resolveLakeRegion("", params.Platform)

	summoner, err := ps.fetcher.Player.GetSummonerByPuuid(platform, params.Puuid, true)
	if err != nil {
		return nil, fmt.Errorf("couldn't get the summoner: %w", err)
	}

	return summoner, nil
}

// GetMatchHistory returns the recent match ids of a player straight from riot.
func (ps *PlayerService) GetMatchHistory(params *filters.MatchHistoryParams) (*dto.MatchHistoryResult, error) {
	cluster, _ := resolveLakeRegion(params.Region, "")

	count := params.Count
	if count <= 0 {
		count = defaultHistoryCount
	}
	if count > maxHistoryCount {
		count = maxHistoryCount
	}

	matchIds, err := ps.fetcher.Match.GetMatchList(cluster, params.Puuid, count, true)
	if err != nil {
		return nil, fmt.Errorf("couldn't get the match list: %w", err)
	}

	return &dto.MatchHistoryResult{
		Puuid:    params.Puuid,
		MatchIds: matchIds,
	}, nil
}

// GetLakePlayer returns the stored player data, optionally hydrated with the
// raw matches and a freshly folded stats block.
func (ps *PlayerService) GetLakePlayer(ctx context.Context, params *filters.LakePlayerParams) (*dto.LakePlayerResult, error) {
	cluster, platform := resolveLakeRegion(params.Cluster, params.Platform)

	playerData, err := ps.lake.GetPlayerData(ctx, cluster, platform, params.Puuid)
	if err != nil {
		if errors.Is(err, datalake.ErrObjectNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	result := &dto.LakePlayerResult{
		Puuid:   params.Puuid,
		Account: playerData.Account,
		Profile: playerData.Profile,
		Ranked:  playerData.Ranked,
	}

	if !params.IncludeMatches {
		return result, nil
	}

	matchIds, err := ps.lake.GetMatchIds(ctx, cluster, platform, params.Puuid)
	if err != nil {
		return result, nil
	}

	result.MatchIds = matchIds
	result.MatchesFound = len(matchIds)

	count := params.MatchCount
	if count <= 0 {
		count = defaultLakeMatchCount
	}
	if count > maxLakeMatchCount {
		count = maxLakeMatchCount
	}
	if len(matchIds) > count {
		matchIds = matchIds[:count]
	}

	result.Matches = ps.downloadById(ctx, cluster, platform, params.Puuid, matchIds)
	result.Stats = ps.aggregator.Aggregate(result.Matches, params.Puuid).Summary

	return result, nil
}

// downloadById fetches raw matches by id through a small worker pool.
func (ps *PlayerService) downloadById(ctx context.Context, cluster, platform, puuid string, matchIds []string) []*matchfetcher.MatchData {
	matches := make([]*matchfetcher.MatchData, len(matchIds))

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < lakeWorkerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				match, err := ps.lake.GetMatchById(ctx, cluster, platform, puuid, matchIds[i])
				if err != nil {
					continue
				}
				matches[i] = match
			}
		}()
	}

	for i := range matchIds {
		jobs <- i
	}
	close(jobs)

	wg.Wait()

	return matches
}

// GetLakeMatch returns a single raw match, optionally with its timeline.
func (ps *PlayerService) GetLakeMatch(ctx context.Context, params *filters.LakeMatchParams) (*dto.LakeMatchResult, error) {
	cluster, platform := resolveLakeRegion(params.Cluster, params.Platform)

	match, err := ps.lake.GetMatchById(ctx, cluster, platform, params.Puuid, params.MatchId)
	if err != nil {
		return nil, err
	}

	result := &dto.LakeMatchResult{Match: match}

	if params.IncludeTimeline {
		timeline, err := ps.lake.GetTimelineById(ctx, cluster, platform, params.Puuid, params.MatchId)
		if err == nil {
			result.Timeline = timeline
		}
	}

	return result, nil
}
