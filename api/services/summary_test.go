package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"riftrewind/api/filters"
	"riftrewind/pkg/aggregator"
	"riftrewind/pkg/datalake"

	matchfetcher "riftrewind/fetcher/data/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Lake mock implementation.
type MockLakeClient struct {
	mock.Mock
}

func (m *MockLakeClient) ListMatchKeys(ctx context.Context, cluster, platform, puuid string) ([]string, error) {
	args := m.Called(ctx, cluster, platform, puuid)
	keys, _ := args.Get(0).([]string)
	return keys, args.Error(1)
}

func (m *MockLakeClient) GetMatch(ctx context.Context, key string) (*matchfetcher.MatchData, error) {
	args := m.Called(ctx, key)
	match, _ := args.Get(0).(*matchfetcher.MatchData)
	return match, args.Error(1)
}

func (m *MockLakeClient) GetMatchById(ctx context.Context, cluster, platform, puuid, matchId string) (*matchfetcher.MatchData, error) {
	args := m.Called(ctx, cluster, platform, puuid, matchId)
	match, _ := args.Get(0).(*matchfetcher.MatchData)
	return match, args.Error(1)
}

func (m *MockLakeClient) GetTimelineById(ctx context.Context, cluster, platform, puuid, matchId string) (json.RawMessage, error) {
	args := m.Called(ctx, cluster, platform, puuid, matchId)
	timeline, _ := args.Get(0).(json.RawMessage)
	return timeline, args.Error(1)
}

func (m *MockLakeClient) GetPlayerData(ctx context.Context, cluster, platform, puuid string) (*datalake.PlayerData, error) {
	args := m.Called(ctx, cluster, platform, puuid)
	data, _ := args.Get(0).(*datalake.PlayerData)
	return data, args.Error(1)
}

func (m *MockLakeClient) GetMatchIds(ctx context.Context, cluster, platform, puuid string) ([]string, error) {
	args := m.Called(ctx, cluster, platform, puuid)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *MockLakeClient) GetJSON(ctx context.Context, bucket, key string, out any) error {
	args := m.Called(ctx, bucket, key, out)
	return args.Error(0)
}

func (m *MockLakeClient) PutJSON(ctx context.Context, bucket, key string, value any) error {
	args := m.Called(ctx, bucket, key, value)
	return args.Error(0)
}

func (m *MockLakeClient) SummariesBucket() string {
	args := m.Called()
	return args.String(0)
}

// Summary cache mock implementation.
type MockSummaryCache struct {
	mock.Mock
}

func (m *MockSummaryCache) GetPlayerSummary(ctx context.Context, puuid string) (*aggregator.PlayerSummary, error) {
	args := m.Called(ctx, puuid)
	summary, _ := args.Get(0).(*aggregator.PlayerSummary)
	return summary, args.Error(1)
}

func (m *MockSummaryCache) SetPlayerSummary(ctx context.Context, summary *aggregator.PlayerSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockSummaryCache) GetMatchSummaries(ctx context.Context, puuid string, gameIds []int64) ([]*aggregator.MatchSummary, []int64, error) {
	args := m.Called(ctx, puuid, gameIds)
	found, _ := args.Get(0).([]*aggregator.MatchSummary)
	missing, _ := args.Get(1).([]int64)
	return found, missing, args.Error(2)
}

func (m *MockSummaryCache) SetMatchSummary(ctx context.Context, summary *aggregator.MatchSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockSummaryCache) MarkForRefresh(ctx context.Context, puuid string) error {
	args := m.Called(ctx, puuid)
	return args.Error(0)
}

func (m *MockSummaryCache) RefreshQueue(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	queue, _ := args.Get(0).([]string)
	return queue, args.Error(1)
}

func (m *MockSummaryCache) RemoveFromRefresh(ctx context.Context, puuid string) error {
	args := m.Called(ctx, puuid)
	return args.Error(0)
}

// Helper to initialize the service with its mocks.
func setupSummaryService(t *testing.T) (*SummaryService, *MockLakeClient, *MockSummaryCache) {
	mockLake := &MockLakeClient{}
	mockCache := &MockSummaryCache{}

	service, err := NewSummaryService(&SummaryServiceDeps{
		Lake:  mockLake,
		Cache: mockCache,
	})
	assert.NoError(t, err)

	return service, mockLake, mockCache
}

// Helper to build a stored raw match for the target player.
func storedMatch(gameId int64, win bool) *matchfetcher.MatchData {
	return &matchfetcher.MatchData{
		Info: matchfetcher.MatchInfo{
			GameId:       gameId,
			GameCreation: matchfetcher.RiotTime(time.UnixMilli(gameId * 1000)),
			GameDuration: 1800,
			GameMode:     "CLASSIC",
			Participants: []matchfetcher.MatchPlayer{
				{
					Puuid:        "puuid-1",
					TeamId:       100,
					ChampionName: "Ahri",
					Kills:        5,
					Deaths:       3,
					Assists:      7,
					Win:          win,
				},
			},
		},
	}
}

func TestGenerateSummaryNoMatches(t *testing.T) {
	service, mockLake, _ := setupSummaryService(t)

	mockLake.On("ListMatchKeys", mock.Anything, mock.Anything, mock.Anything, "puuid-1").
		Return([]string{}, nil)

	result, err := service.GenerateSummary(context.Background(), &filters.SummaryGenerateParams{Puuid: "puuid-1"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNoMatchesFound)
	mockLake.AssertExpectations(t)
}

func TestGenerateSummaryListError(t *testing.T) {
	service, mockLake, _ := setupSummaryService(t)

	mockLake.On("ListMatchKeys", mock.Anything, mock.Anything, mock.Anything, "puuid-1").
		Return(nil, errors.New("s3 unavailable"))

	result, err := service.GenerateSummary(context.Background(), &filters.SummaryGenerateParams{Puuid: "puuid-1"})

	assert.Nil(t, result)
	assert.ErrorContains(t, err, "s3 unavailable")
}

func TestGenerateSummary(t *testing.T) {
	service, mockLake, mockCache := setupSummaryService(t)

	keys := []string{"key-1", "key-2"}
	mockLake.On("ListMatchKeys", mock.Anything, mock.Anything, mock.Anything, "puuid-1").
		Return(keys, nil)
	mockLake.On("GetMatch", mock.Anything, "key-1").Return(storedMatch(1, true), nil)
	mockLake.On("GetMatch", mock.Anything, "key-2").Return(storedMatch(2, false), nil)
	mockLake.On("SummariesBucket").Return("summaries-bucket")
	mockLake.On("PutJSON", mock.Anything, "summaries-bucket", mock.Anything, mock.Anything).
		Return(nil)

	mockCache.On("SetPlayerSummary", mock.Anything, mock.Anything).Return(nil)
	mockCache.On("MarkForRefresh", mock.Anything, "puuid-1").Return(nil)

	result, err := service.GenerateSummary(context.Background(), &filters.SummaryGenerateParams{Puuid: "puuid-1"})

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.MatchesProcessed)
	assert.Equal(t, 2, result.TotalMatchesFound)
	assert.Equal(t, 2, result.IndividualMatchSummariesStored)
	assert.Equal(t, 0, result.MatchesSkipped)
	assert.NotNil(t, result.Summary)
	assert.InDelta(t, 50, result.Summary.Performance.WinRate, 0.0001)
	assert.Len(t, result.MatchSummaries, 2)

	mockLake.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestGenerateSummaryFailedDownloadsAreSkipped(t *testing.T) {
	service, mockLake, mockCache := setupSummaryService(t)

	keys := []string{"key-1", "key-2"}
	mockLake.On("ListMatchKeys", mock.Anything, mock.Anything, mock.Anything, "puuid-1").
		Return(keys, nil)
	mockLake.On("GetMatch", mock.Anything, "key-1").Return(storedMatch(1, true), nil)
	mockLake.On("GetMatch", mock.Anything, "key-2").Return(nil, errors.New("corrupted object"))
	mockLake.On("SummariesBucket").Return("summaries-bucket")
	mockLake.On("PutJSON", mock.Anything, "summaries-bucket", mock.Anything, mock.Anything).
		Return(nil)

	mockCache.On("SetPlayerSummary", mock.Anything, mock.Anything).Return(nil)
	mockCache.On("MarkForRefresh", mock.Anything, "puuid-1").Return(nil)

	result, err := service.GenerateSummary(context.Background(), &filters.SummaryGenerateParams{Puuid: "puuid-1"})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.MatchesProcessed)
	assert.Equal(t, 1, result.MatchesSkipped)
	assert.Equal(t, 2, result.TotalMatchesFound)
}

func TestGetPlayerSummaryCacheHit(t *testing.T) {
	service, mockLake, mockCache := setupSummaryService(t)

	cached := &aggregator.PlayerSummary{Puuid: "puuid-1", TotalMatches: 10}
	mockCache.On("GetPlayerSummary", mock.Anything, "puuid-1").Return(cached, nil)

	summary, err := service.GetPlayerSummary(context.Background(), "puuid-1")

	assert.NoError(t, err)
	assert.Equal(t, cached, summary)

	// The lake must not be touched on a cache hit.
	mockLake.AssertNotCalled(t, "GetJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetPlayerSummaryLakeFallback(t *testing.T) {
	service, mockLake, mockCache := setupSummaryService(t)

	mockCache.On("GetPlayerSummary", mock.Anything, "puuid-1").Return(nil, nil)
	mockCache.On("SetPlayerSummary", mock.Anything, mock.Anything).Return(nil)

	mockLake.On("SummariesBucket").Return("summaries-bucket")
	mockLake.On("GetJSON", mock.Anything, "summaries-bucket", datalake.PlayerSummaryKey("puuid-1"), mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*aggregator.PlayerSummary)
			out.Puuid = "puuid-1"
			out.TotalMatches = 42
		}).
		Return(nil)

	summary, err := service.GetPlayerSummary(context.Background(), "puuid-1")

	assert.NoError(t, err)
	assert.Equal(t, 42, summary.TotalMatches)
	mockCache.AssertCalled(t, "SetPlayerSummary", mock.Anything, mock.Anything)
}

func TestGetPlayerSummaryNotFound(t *testing.T) {
	service, mockLake, mockCache := setupSummaryService(t)

	mockCache.On("GetPlayerSummary", mock.Anything, "puuid-1").Return(nil, nil)
	mockLake.On("SummariesBucket").Return("summaries-bucket")
	mockLake.On("GetJSON", mock.Anything, "summaries-bucket", mock.Anything, mock.Anything).
		Return(datalake.ErrObjectNotFound)

	summary, err := service.GetPlayerSummary(context.Background(), "puuid-1")

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, ErrSummaryNotFound)
}

func TestGetMatchSummaries(t *testing.T) {
	service, mockLake, mockCache := setupSummaryService(t)

	cachedSummary := &aggregator.MatchSummary{MatchId: 1, Puuid: "puuid-1"}
	mockCache.On("GetMatchSummaries", mock.Anything, "puuid-1", []int64{1, 2}).
		Return([]*aggregator.MatchSummary{cachedSummary}, []int64{2}, nil)
	mockCache.On("SetMatchSummary", mock.Anything, mock.Anything).Return(nil)

	mockLake.On("SummariesBucket").Return("summaries-bucket")
	mockLake.On("GetJSON", mock.Anything, "summaries-bucket", datalake.MatchSummaryKey("puuid-1", 2), mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(3).(*aggregator.MatchSummary)
			out.MatchId = 2
			out.Puuid = "puuid-1"
		}).
		Return(nil)

	summaries, err := service.GetMatchSummaries(context.Background(), "puuid-1", []int64{1, 2})

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, int64(1), summaries[0].MatchId)
	assert.Equal(t, int64(2), summaries[1].MatchId)
}
