package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"riftrewind/api/dto"
	"riftrewind/api/filters"
	"riftrewind/pkg/aggregator"
	"riftrewind/pkg/bedrock"
	"riftrewind/pkg/config"
	"time"
)

// Upper bound of match summaries attached to a full analysis.
const maxAnalysisMatches = 10

// ErrUnknownPersona is returned for personas outside the supported set.
var ErrUnknownPersona = errors.New("unknown analysis persona")

// BedrockInvoker is the subset of the bedrock client used by the service.
type BedrockInvoker interface {
	Invoke(ctx context.Context, params bedrock.InvokeParams) (string, error)
}

// SummaryProvider serves the stored summaries the analysis is built on.
type SummaryProvider interface {
	GetPlayerSummary(ctx context.Context, puuid string) (*aggregator.PlayerSummary, error)
	GetMatchSummaries(ctx context.Context, puuid string, gameIds []int64) ([]*aggregator.MatchSummary, error)
}

// InsightsService turns stored summaries into model generated analysis.
type InsightsService struct {
	bedrock   BedrockInvoker
	summaries SummaryProvider
}

type InsightsServiceDeps struct {
	Bedrock   BedrockInvoker
	Summaries SummaryProvider
}

// NewInsightsService creates a service for handling the AI analysis.
func NewInsightsService(deps *InsightsServiceDeps) (*InsightsService, error) {
	if deps.Bedrock == nil || deps.Summaries == nil {
		return nil, errors.New("a bedrock client and a summary provider must be provided")
	}

	return &InsightsService{
		bedrock:   deps.Bedrock,
		summaries: deps.Summaries,
	}, nil
}

// AnalyzePlayer runs a full persona analysis over the stored player summary.
func (is *InsightsService) AnalyzePlayer(ctx context.Context, params *filters.AnalysisParams) (*dto.AnalysisResult, error) {
	persona := params.Persona
	if persona == "" {
		persona = PersonaInsights
	}

	cfg, ok := personas[persona]
	if !ok {
		return nil, ErrUnknownPersona
	}

	summary, err := is.summaries.GetPlayerSummary(ctx, params.Puuid)
	if err != nil {
		return nil, err
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	matchesJson := ""
	matchesIncluded := 0
	if params.IncludeMatches {
		matchesJson, matchesIncluded = is.recentMatchesJson(ctx, params.Puuid, summary, params.MatchCount)
	}

	analysis, err := is.bedrock.Invoke(ctx, bedrock.InvokeParams{
		Model:       bedrock.ModelSonnet,
		System:      cfg.system,
		UserPrompt:  analysisPrompt(string(summaryJson), matchesJson),
		Temperature: cfg.temperature,
		MaxTokens:   cfg.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't generate the analysis: %w", err)
	}

	return &dto.AnalysisResult{
		PlayerInfo: dto.PlayerInfo{
			Puuid:        summary.Puuid,
			TotalMatches: summary.TotalMatches,
			WinRate:      summary.Performance.WinRate,
		},
		ClaudeAnalysis: analysis,
		Metadata: dto.AnalysisMetadata{
			Model:           config.Bedrock.SonnetModelId,
			Persona:         persona,
			MatchesIncluded: matchesIncluded,
			GeneratedAt:     time.Now().UTC(),
		},
	}, nil
}

// recentMatchesJson loads the recent match summaries and flattens them for the
// prompt. Missing summaries are simply left out.
func (is *InsightsService) recentMatchesJson(ctx context.Context, puuid string, summary *aggregator.PlayerSummary, count int) (string, int) {
	if count <= 0 || count > maxAnalysisMatches {
		count = maxAnalysisMatches
	}

	var gameIds []int64
	for _, match := range summary.RecentMatchesDetailed {
		if len(gameIds) == count {
			break
		}
		gameIds = append(gameIds, match.GameId)
	}

	matchSummaries, err := is.summaries.GetMatchSummaries(ctx, puuid, gameIds)
	if err != nil || len(matchSummaries) == 0 {
		return "", 0
	}

	data, err := json.Marshal(matchSummaries)
	if err != nil {
		return "", 0
	}

	return string(data), len(matchSummaries)
}

// QuickInsight generates a short category focused take on the player summary.
func (is *InsightsService) QuickInsight(ctx context.Context, params *filters.QuickInsightParams) (*dto.QuickInsightResult, error) {
	promptTemplate, ok := quickInsightPrompts[params.Category]
	if !ok {
		return nil, fmt.Errorf("unknown insight category: %s", params.Category)
	}

	summaryJson, err := is.loadSummaryJson(ctx, params.Puuid)
	if err != nil {
		return nil, err
	}

	insight, err := is.bedrock.Invoke(ctx, bedrock.InvokeParams{
		Model:       bedrock.ModelHaiku,
		UserPrompt:  fmt.Sprintf(promptTemplate, summaryJson),
		Temperature: 0.5,
		MaxTokens:   500,
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't generate the insight: %w", err)
	}

	return &dto.QuickInsightResult{
		Category: params.Category,
		Insight:  insight,
	}, nil
}

// RoastPlayer generates the comedic persona with the requested rating.
func (is *InsightsService) RoastPlayer(ctx context.Context, params *filters.RoastParams) (*dto.AnalysisResult, error) {
	cfg := personas[PersonaRoast]

	summary, err := is.summaries.GetPlayerSummary(ctx, params.Puuid)
	if err != nil {
		return nil, err
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	roast, err := is.bedrock.Invoke(ctx, bedrock.InvokeParams{
		Model:       bedrock.ModelSonnet,
		System:      cfg.system,
		UserPrompt:  roastPrompt(string(summaryJson), params.Rating),
		Temperature: cfg.temperature,
		MaxTokens:   cfg.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't generate the roast: %w", err)
	}

	return &dto.AnalysisResult{
		PlayerInfo: dto.PlayerInfo{
			Puuid:        summary.Puuid,
			TotalMatches: summary.TotalMatches,
			WinRate:      summary.Performance.WinRate,
		},
		ClaudeAnalysis: roast,
		Metadata: dto.AnalysisMetadata{
			Model:       config.Bedrock.SonnetModelId,
			Persona:     PersonaRoast,
			GeneratedAt: time.Now().UTC(),
		},
	}, nil
}

// AnalyzeMatch generates a short breakdown of a single stored match summary.
func (is *InsightsService) AnalyzeMatch(ctx context.Context, params *filters.MatchAnalysisParams) (*dto.MatchAnalysisResult, error) {
	matchSummaries, err := is.summaries.GetMatchSummaries(ctx, params.Puuid, []int64{params.GameId})
	if err != nil {
		return nil, err
	}

	if len(matchSummaries) == 0 {
		return nil, ErrSummaryNotFound
	}

	matchJson, err := json.Marshal(matchSummaries[0])
	if err != nil {
		return nil, err
	}

	analysis, err := is.bedrock.Invoke(ctx, bedrock.InvokeParams{
		Model:       bedrock.ModelHaiku,
		UserPrompt:  matchAnalysisPrompt(string(matchJson)),
		Temperature: 0.5,
		MaxTokens:   1000,
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't generate the match analysis: %w", err)
	}

	return &dto.MatchAnalysisResult{
		GameId:   params.GameId,
		Analysis: analysis,
		Model:    config.Bedrock.HaikuModelId,
	}, nil
}

// loadSummaryJson loads and marshals the player summary for prompt embedding.
func (is *InsightsService) loadSummaryJson(ctx context.Context, puuid string) (string, error) {
	summary, err := is.summaries.GetPlayerSummary(ctx, puuid)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
