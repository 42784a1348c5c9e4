package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"riftrewind/pkg/aggregator"
	"riftrewind/pkg/redis"
	"time"
)

// Default keys for the summary entries.
const (
	playerSummaryCacheDuration = time.Hour
	matchSummaryCacheDuration  = 6 * time.Hour
	playerSummaryKey           = "summary:player:%s"
	matchSummaryKey            = "summary:match:%s:%d"
	refreshSetKey              = "summary:refresh"
)

// SummaryCache is the public interface for accessing the cached summaries.
type SummaryCache interface {
	GetPlayerSummary(ctx context.Context, puuid string) (*aggregator.PlayerSummary, error)
	SetPlayerSummary(ctx context.Context, summary *aggregator.PlayerSummary) error
	GetMatchSummaries(ctx context.Context, puuid string, gameIds []int64) ([]*aggregator.MatchSummary, []int64, error)
	SetMatchSummary(ctx context.Context, summary *aggregator.MatchSummary) error
	MarkForRefresh(ctx context.Context, puuid string) error
	RefreshQueue(ctx context.Context) ([]string, error)
	RemoveFromRefresh(ctx context.Context, puuid string) error
}

// Create a redis cache client.
type summaryCache struct {
	redis *redis.RedisClient
}

// NewSummaryCache creates a new instance of the summary redis client.
func NewSummaryCache(redis *redis.RedisClient) SummaryCache {
	sc := &summaryCache{
		redis: redis,
	}

	return sc
}

// GetPlayerSummary retrieves a cached player summary, returning nil on a miss.
func (sc *summaryCache) GetPlayerSummary(ctx context.Context, puuid string) (*aggregator.PlayerSummary, error) {
	result, err := sc.redis.Get(ctx, fmt.Sprintf(playerSummaryKey, puuid))
	if err != nil {
		if redis.IsNil(err) {
			return nil, nil
		}
		return nil, err
	}

	var summary aggregator.PlayerSummary
	if err := json.Unmarshal([]byte(result), &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

// SetPlayerSummary stores a player summary on the cache.
func (sc *summaryCache) SetPlayerSummary(ctx context.Context, summary *aggregator.PlayerSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	return sc.redis.Set(ctx, fmt.Sprintf(playerSummaryKey, summary.Puuid), data, playerSummaryCacheDuration)
}

// GetMatchSummaries retrieves the cached match summaries for a list of game ids.
// Returns the found summaries and the ids that were not on the cache.
func (sc *summaryCache) GetMatchSummaries(ctx context.Context, puuid string, gameIds []int64) ([]*aggregator.MatchSummary, []int64, error) {
	keys := make([]string, len(gameIds))
	for i, gameId := range gameIds {
		keys[i] = fmt.Sprintf(matchSummaryKey, puuid, gameId)
	}

	results, err := sc.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, nil, err
	}

	var foundSummaries []*aggregator.MatchSummary
	var notFoundIds []int64

	for i, result := range results {
		gameId := gameIds[i]

		if result == nil {
			notFoundIds = append(notFoundIds, gameId)
			continue
		}

		jsonStr, ok := result.(string)
		if !ok {
			notFoundIds = append(notFoundIds, gameId)
			continue
		}

		var summary aggregator.MatchSummary
		if err := json.Unmarshal([]byte(jsonStr), &summary); err != nil {
			notFoundIds = append(notFoundIds, gameId)
			continue
		}

		foundSummaries = append(foundSummaries, &summary)
	}

	return foundSummaries, notFoundIds, nil
}

// SetMatchSummary stores a single match summary on the cache.
func (sc *summaryCache) SetMatchSummary(ctx context.Context, summary *aggregator.MatchSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	key := fmt.Sprintf(matchSummaryKey, summary.Puuid, summary.MatchId)
	return sc.redis.Set(ctx, key, data, matchSummaryCacheDuration)
}

// MarkForRefresh adds the player to the set consumed by the scheduled refresh job.
func (sc *summaryCache) MarkForRefresh(ctx context.Context, puuid string) error {
	return sc.redis.SAdd(ctx, refreshSetKey, puuid).Err()
}

// RefreshQueue returns every player marked for a summary refresh.
func (sc *summaryCache) RefreshQueue(ctx context.Context) ([]string, error) {
	return sc.redis.SMembers(ctx, refreshSetKey).Result()
}

// RemoveFromRefresh removes a player from the refresh set after a successful run.
func (sc *summaryCache) RemoveFromRefresh(ctx context.Context, puuid string) error {
	return sc.redis.SRem(ctx, refreshSetKey, puuid).Err()
}
