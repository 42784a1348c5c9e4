package dto

import "time"

// PlayerInfo identifies the analyzed player on an analysis response.
type PlayerInfo struct {
	Puuid        string  `json:"puuid"`
	TotalMatches int     `json:"total_matches"`
	WinRate      float64 `json:"win_rate"`
}

// AnalysisMetadata describes how the analysis was produced.
type AnalysisMetadata struct {
	Model           string    `json:"model"`
	Persona         string    `json:"persona"`
	MatchesIncluded int       `json:"matches_included"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// AnalysisResult is the response of the bedrock analysis endpoint.
type AnalysisResult struct {
	PlayerInfo     PlayerInfo       `json:"player_info"`
	ClaudeAnalysis string           `json:"claude_analysis"`
	Metadata       AnalysisMetadata `json:"metadata"`
}

// QuickInsightResult is the response of the short insight endpoints.
type QuickInsightResult struct {
	Category string `json:"category"`
	Insight  string `json:"insight"`
}

// MatchAnalysisResult is the response of the single match analysis endpoint.
type MatchAnalysisResult struct {
	GameId   int64  `json:"game_id"`
	Analysis string `json:"analysis"`
	Model    string `json:"model"`
}
