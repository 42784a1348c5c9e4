package dto

import "riftrewind/pkg/aggregator"

// SummaryGenerationResult is the response of the on demand summary generation.
type SummaryGenerationResult struct {
	Success                        bool                       `json:"success"`
	Message                        string                     `json:"message"`
	PlayerSummaryLocation          string                     `json:"player_summary_location"`
	MatchesProcessed               int                        `json:"matches_processed"`
	MatchesSkipped                 int                        `json:"matches_skipped"`
	TotalMatchesFound              int                        `json:"total_matches_found"`
	IndividualMatchSummariesStored int                        `json:"individual_match_summaries_stored"`
	Summary                        *aggregator.PlayerSummary  `json:"summary"`
	MatchSummaries                 []*aggregator.MatchSummary `json:"match_summaries"`
}

// LambdaGenerationResult is the response relayed from the offloaded generation.
type LambdaGenerationResult struct {
	Success               bool   `json:"success"`
	Message               string `json:"message"`
	PlayerSummaryLocation string `json:"player_summary_location"`
	MatchesProcessed      int    `json:"matches_processed"`
	TotalMatchesFound     int    `json:"total_matches_found"`
}
