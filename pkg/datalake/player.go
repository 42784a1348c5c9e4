package datalake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	matchfetcher "riftrewind/fetcher/data/match"
)

// Patches present on the dataset. Match and timeline files are partitioned by
// patch folder, so lookups by match id probe each partition.
var knownPatches = []string{
	"14.13", "14.14", "14.15", "14.16", "14.17", "14.18", "14.19", "14.20", "14.21", "14.22", "14.23",
	"15.2", "15.4", "15.5", "15.6", "15.7", "15.8", "15.9", "15.10",
	"15.11", "15.12", "15.13", "15.16", "15.17", "15.18", "15.19", "15.20", "15.21",
}

// Manifest is the per player index stored on the lake.
type Manifest struct {
	Count     int    `json:"count"`
	UpdatedAt string `json:"updated_at"`
}

// MatchIds is the stored list of match ids of a player.
type MatchIds struct {
	Ids []string `json:"ids"`
}

// PlayerData groups the core lake documents of a player.
type PlayerData struct {
	Account  json.RawMessage `json:"account"`
	Profile  json.RawMessage `json:"profile,omitempty"`
	Ranked   json.RawMessage `json:"ranked"`
	Manifest *Manifest       `json:"manifest"`
}

// GetPlayerData fetches the account, ranked and manifest documents.
// The profile may be missing for some players and is skipped silently.
func (c *Client) GetPlayerData(ctx context.Context, cluster, platform, puuid string) (*PlayerData, error) {
	basePath := PlayerBasePath(cluster, platform, puuid)

	data := &PlayerData{}
	if err := c.GetJSON(ctx, c.datasetBucket, basePath+"/account.json.gz", &data.Account); err != nil {
		return nil, fmt.Errorf("player data not found for puuid %s: %w", puuid, err)
	}

	manifest := &Manifest{}
	if err := c.GetJSON(ctx, c.datasetBucket, basePath+"/_manifest.json.gz", manifest); err != nil {
		return nil, fmt.Errorf("player manifest not found for puuid %s: %w", puuid, err)
	}
	data.Manifest = manifest

	if err := c.GetJSON(ctx, c.datasetBucket, basePath+"/profile.json.gz", &data.Profile); err != nil {
		data.Profile = nil
	}

	if err := c.GetJSON(ctx, c.datasetBucket, basePath+"/ranked.json.gz", &data.Ranked); err != nil {
		return nil, fmt.Errorf("player ranked data not found for puuid %s: %w", puuid, err)
	}

	return data, nil
}

// GetMatchIds fetches the stored match id list of a player.
func (c *Client) GetMatchIds(ctx context.Context, cluster, platform, puuid string) ([]string, error) {
	basePath := PlayerBasePath(cluster, platform, puuid)

	manifest := &Manifest{}
	if err := c.GetJSON(ctx, c.datasetBucket, basePath+"/_manifest.json.gz", manifest); err != nil {
		return nil, err
	}

	ids := &MatchIds{}
	key := fmt.Sprintf("%s/ids/ids_%d.json.gz", basePath, manifest.Count)
	if err := c.GetJSON(ctx, c.datasetBucket, key, ids); err != nil {
		return nil, err
	}

	return ids.Ids, nil
}

// GetMatch downloads and decodes a raw match file by its full key.
func (c *Client) GetMatch(ctx context.Context, key string) (*matchfetcher.MatchData, error) {
	match := &matchfetcher.MatchData{}
	if err := c.GetJSON(ctx, c.datasetBucket, key, match); err != nil {
		return nil, err
	}
	return match, nil
}

// GetMatchById probes every patch partition for a given match id.
func (c *Client) GetMatchById(ctx context.Context, cluster, platform, puuid, matchId string) (*matchfetcher.MatchData, error) {
	basePath := PlayerBasePath(cluster, platform, puuid)

	for _, patch := range knownPatches {
		key := fmt.Sprintf("%s/matches/patch=%s/%s.match.json.gz", basePath, patch, matchId)

		match := &matchfetcher.MatchData{}
		err := c.GetJSON(ctx, c.datasetBucket, key, match)
		if err == nil {
			return match, nil
		}
		if !errors.Is(err, ErrObjectNotFound) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: match %s in any patch", ErrObjectNotFound, matchId)
}

// GetTimelineById probes every patch partition for a given timeline.
// Timelines are missing for most matches, so a not found is expected.
func (c *Client) GetTimelineById(ctx context.Context, cluster, platform, puuid, matchId string) (json.RawMessage, error) {
	basePath := PlayerBasePath(cluster, platform, puuid)

	for _, patch := range knownPatches {
		key := fmt.Sprintf("%s/timelines/patch=%s/%s.timeline.json.gz", basePath, patch, matchId)

		var timeline json.RawMessage
		err := c.GetJSON(ctx, c.datasetBucket, key, &timeline)
		if err == nil {
			return timeline, nil
		}
		if !errors.Is(err, ErrObjectNotFound) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: timeline %s in any patch", ErrObjectNotFound, matchId)
}
