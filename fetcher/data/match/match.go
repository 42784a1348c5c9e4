package matchfetcher

import (
	"encoding/json"
	"fmt"
	"net/http"
	"riftrewind/fetcher/requests"
	"strconv"
	"time"
)

// The match fetcher with it's limiter.
type MatchFetcher struct {
	limiter *requests.RateLimiter
}

// CreateMatchFetcher creates a instance of the match fetcher.
func CreateMatchFetcher(limiter *requests.RateLimiter) *MatchFetcher {
	return &MatchFetcher{
		limiter: limiter,
	}
}

// RiotTime handles the conversion of the int timestamps from riot.
type RiotTime time.Time

// Add the riot time UnmarshalJSON.
func (rt *RiotTime) UnmarshalJSON(b []byte) error {
	var timestamp int64
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}

	// Convert milliseconds to time.Time
	*rt = RiotTime(time.UnixMilli(timestamp))
	return nil
}

// MarshalJSON writes the timestamp back as epoch milliseconds.
func (rt RiotTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(rt).UnixMilli())
}

// Get the true time.
func (rt RiotTime) Time() time.Time {
	return time.Time(rt)
}

// UnixMilli returns the riot representation of the timestamp.
func (rt RiotTime) UnixMilli() int64 {
	return time.Time(rt).UnixMilli()
}

// GetMatchList returns the most recent match ids of a given puuid.
func (m *MatchFetcher) GetMatchList(region string, puuid string, count int, onDemand bool) ([]string, error) {
	if onDemand {
		m.limiter.WaitApi()
	} else {
		m.limiter.WaitJob()
	}

	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids", region, puuid)

	resp, err := requests.AuthRequest(url, "GET", map[string]string{"count": strconv.Itoa(count)})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var matchIds []string
	if err := json.NewDecoder(resp.Body).Decode(&matchIds); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return matchIds, nil
}

// GetMatchData gets a given match data.
func (m *MatchFetcher) GetMatchData(region string, matchId string, onDemand bool) (*MatchData, error) {
	if onDemand {
		m.limiter.WaitApi()
	} else {
		m.limiter.WaitJob()
	}

	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", region, matchId)

	resp, err := requests.AuthRequest(url, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var matchData MatchData
	if err := json.NewDecoder(resp.Body).Decode(&matchData); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &matchData, nil
}
