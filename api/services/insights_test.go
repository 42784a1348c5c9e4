package services

import (
	"context"
	"testing"

	"riftrewind/api/filters"
	"riftrewind/pkg/aggregator"
	"riftrewind/pkg/bedrock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Bedrock mock implementation.
type MockBedrockInvoker struct {
	mock.Mock
}

func (m *MockBedrockInvoker) Invoke(ctx context.Context, params bedrock.InvokeParams) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}

// Summary provider mock implementation.
type MockSummaryProvider struct {
	mock.Mock
}

func (m *MockSummaryProvider) GetPlayerSummary(ctx context.Context, puuid string) (*aggregator.PlayerSummary, error) {
	args := m.Called(ctx, puuid)
	summary, _ := args.Get(0).(*aggregator.PlayerSummary)
	return summary, args.Error(1)
}

func (m *MockSummaryProvider) GetMatchSummaries(ctx context.Context, puuid string, gameIds []int64) ([]*aggregator.MatchSummary, error) {
	args := m.Called(ctx, puuid, gameIds)
	summaries, _ := args.Get(0).([]*aggregator.MatchSummary)
	return summaries, args.Error(1)
}

// Helper to initialize the service with its mocks.
func setupInsightsService(t *testing.T) (*InsightsService, *MockBedrockInvoker, *MockSummaryProvider) {
	mockBedrock := &MockBedrockInvoker{}
	mockSummaries := &MockSummaryProvider{}

	service, err := NewInsightsService(&InsightsServiceDeps{
		Bedrock:   mockBedrock,
		Summaries: mockSummaries,
	})
	assert.NoError(t, err)

	return service, mockBedrock, mockSummaries
}

func testSummary() *aggregator.PlayerSummary {
	return &aggregator.PlayerSummary{
		Puuid:        "puuid-1",
		TotalMatches: 50,
		Performance: aggregator.PerformanceStats{
			WinRate: 54,
		},
	}
}

func TestAnalyzePlayerUnknownPersona(t *testing.T) {
	service, _, _ := setupInsightsService(t)

	result, err := service.AnalyzePlayer(context.Background(), &filters.AnalysisParams{
		Puuid:   "puuid-1",
		Persona: "therapist",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnknownPersona)
}

func TestAnalyzePlayerDefaultPersona(t *testing.T) {
	service, mockBedrock, mockSummaries := setupInsightsService(t)

	mockSummaries.On("GetPlayerSummary", mock.Anything, "puuid-1").Return(testSummary(), nil)

	mockBedrock.On("Invoke", mock.Anything, mock.MatchedBy(func(params bedrock.InvokeParams) bool {
		return params.Model == bedrock.ModelSonnet && params.Temperature == 0.6
	})).Return("a thorough analysis", nil)

	result, err := service.AnalyzePlayer(context.Background(), &filters.AnalysisParams{Puuid: "puuid-1"})

	assert.NoError(t, err)
	assert.Equal(t, "a thorough analysis", result.ClaudeAnalysis)
	assert.Equal(t, PersonaInsights, result.Metadata.Persona)
	assert.Equal(t, "puuid-1", result.PlayerInfo.Puuid)
	assert.Equal(t, 50, result.PlayerInfo.TotalMatches)
	assert.Equal(t, 0, result.Metadata.MatchesIncluded)

	mockBedrock.AssertExpectations(t)
}

func TestAnalyzePlayerWithMatches(t *testing.T) {
	service, mockBedrock, mockSummaries := setupInsightsService(t)

	summary := testSummary()
	summary.RecentMatchesDetailed = []*aggregator.MatchInfo{
		{GameId: 11},
		{GameId: 12},
	}

	mockSummaries.On("GetPlayerSummary", mock.Anything, "puuid-1").Return(summary, nil)
	mockSummaries.On("GetMatchSummaries", mock.Anything, "puuid-1", []int64{11, 12}).
		Return([]*aggregator.MatchSummary{{MatchId: 11}, {MatchId: 12}}, nil)

	mockBedrock.On("Invoke", mock.Anything, mock.Anything).Return("analysis with matches", nil)

	result, err := service.AnalyzePlayer(context.Background(), &filters.AnalysisParams{
		Puuid:          "puuid-1",
		Persona:        PersonaImprovement,
		IncludeMatches: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Metadata.MatchesIncluded)
	assert.Equal(t, PersonaImprovement, result.Metadata.Persona)
}

func TestQuickInsightUnknownCategory(t *testing.T) {
	service, _, _ := setupInsightsService(t)

	result, err := service.QuickInsight(context.Background(), &filters.QuickInsightParams{
		Puuid:    "puuid-1",
		Category: "vibes",
	})

	assert.Nil(t, result)
	assert.ErrorContains(t, err, "unknown insight category")
}

func TestQuickInsightUsesHaiku(t *testing.T) {
	service, mockBedrock, mockSummaries := setupInsightsService(t)

	mockSummaries.On("GetPlayerSummary", mock.Anything, "puuid-1").Return(testSummary(), nil)

	mockBedrock.On("Invoke", mock.Anything, mock.MatchedBy(func(params bedrock.InvokeParams) bool {
		return params.Model == bedrock.ModelHaiku && params.MaxTokens == 500
	})).Return("short macro take", nil)

	result, err := service.QuickInsight(context.Background(), &filters.QuickInsightParams{
		Puuid:    "puuid-1",
		Category: CategoryMacro,
	})

	assert.NoError(t, err)
	assert.Equal(t, CategoryMacro, result.Category)
	assert.Equal(t, "short macro take", result.Insight)

	mockBedrock.AssertExpectations(t)
}

func TestRoastPlayerTemperature(t *testing.T) {
	service, mockBedrock, mockSummaries := setupInsightsService(t)

	mockSummaries.On("GetPlayerSummary", mock.Anything, "puuid-1").Return(testSummary(), nil)

	mockBedrock.On("Invoke", mock.Anything, mock.MatchedBy(func(params bedrock.InvokeParams) bool {
		return params.Temperature == 0.9
	})).Return("a mean roast", nil)

	result, err := service.RoastPlayer(context.Background(), &filters.RoastParams{Puuid: "puuid-1"})

	assert.NoError(t, err)
	assert.Equal(t, "a mean roast", result.ClaudeAnalysis)
	assert.Equal(t, PersonaRoast, result.Metadata.Persona)

	mockBedrock.AssertExpectations(t)
}

func TestRoastPromptRatingClamp(t *testing.T) {
	// Unknown ratings fall back to the family friendly variant.
	assert.Contains(t, roastPrompt("{}", "nc17"), "pg rated")
	assert.Contains(t, roastPrompt("{}", "pg13"), "pg13 rated")
}

func TestAnalyzeMatchMissingSummary(t *testing.T) {
	service, _, mockSummaries := setupInsightsService(t)

	mockSummaries.On("GetMatchSummaries", mock.Anything, "puuid-1", []int64{7}).
		Return([]*aggregator.MatchSummary{}, nil)

	result, err := service.AnalyzeMatch(context.Background(), &filters.MatchAnalysisParams{
		Puuid:  "puuid-1",
		GameId: 7,
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrSummaryNotFound)
}

func TestAnalyzeMatch(t *testing.T) {
	service, mockBedrock, mockSummaries := setupInsightsService(t)

	mockSummaries.On("GetMatchSummaries", mock.Anything, "puuid-1", []int64{7}).
		Return([]*aggregator.MatchSummary{{MatchId: 7, Puuid: "puuid-1"}}, nil)

	mockBedrock.On("Invoke", mock.Anything, mock.MatchedBy(func(params bedrock.InvokeParams) bool {
		return params.Model == bedrock.ModelHaiku
	})).Return("match breakdown", nil)

	result, err := service.AnalyzeMatch(context.Background(), &filters.MatchAnalysisParams{
		Puuid:  "puuid-1",
		GameId: 7,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), result.GameId)
	assert.Equal(t, "match breakdown", result.Analysis)
}
