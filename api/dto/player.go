package dto

import (
	"encoding/json"
	"riftrewind/pkg/aggregator"

	matchfetcher "riftrewind/fetcher/data/match"
	playerfetcher "riftrewind/fetcher/data/player"
)

// AccountResult is the response of the riot account proxy.
type AccountResult struct {
	Account *playerfetcher.Account `json:"account"`
	Region  string                 `json:"region"`
}

// MatchHistoryResult is the response of the riot match proxy.
type MatchHistoryResult struct {
	Puuid    string                    `json:"puuid"`
	MatchIds []string                  `json:"match_ids"`
	Matches  []*matchfetcher.MatchData `json:"matches,omitempty"`
}

// LakePlayerResult is the response of the lake player endpoint.
type LakePlayerResult struct {
	Puuid        string                    `json:"puuid"`
	Account      json.RawMessage           `json:"account,omitempty"`
	Profile      json.RawMessage           `json:"profile,omitempty"`
	Ranked       json.RawMessage           `json:"ranked,omitempty"`
	MatchIds     []string                  `json:"match_ids,omitempty"`
	Matches      []*matchfetcher.MatchData `json:"matches,omitempty"`
	Stats        *aggregator.PlayerSummary `json:"stats,omitempty"`
	MatchesFound int                       `json:"matches_found"`
}

// LakeMatchResult is the response of the lake match endpoint.
type LakeMatchResult struct {
	Match    *matchfetcher.MatchData `json:"match"`
	Timeline json.RawMessage         `json:"timeline,omitempty"`
}
