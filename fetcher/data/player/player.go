package playerfetcher

import (
	"encoding/json"
	"fmt"
	"net/http"
	"riftrewind/fetcher/requests"
)

// Account is the return of a account search.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// SummonerByPuuid is the return of the summoner_v4 endpoint.
type SummonerByPuuid struct {
	Id            string `json:"id"`
	Puuid         string `json:"puuid"`
	ProfileIconId int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

// The player fetcher with it's limiter.
type PlayerFetcher struct {
	limiter *requests.RateLimiter
}

// CreatePlayerFetcher creates a instance of the player fetcher.
func CreatePlayerFetcher(limiter *requests.RateLimiter) *PlayerFetcher {
	return &PlayerFetcher{
		limiter: limiter,
	}
}

// GetAccountByRiotId searches a account on the account_v1 endpoint of a routing cluster.
func (p *PlayerFetcher) GetAccountByRiotId(cluster string, gameName string, tagLine string, onDemand bool) (*Account, error) {
	if onDemand {
		p.limiter.WaitApi()
	} else {
		p.limiter.WaitJob()
	}

	url := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s", cluster, gameName, tagLine)

	resp, err := requests.AuthRequest(url, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var account Account
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &account, nil
}

// GetSummonerByPuuid gets the summoner data of a puuid on a given platform.
func (p *PlayerFetcher) GetSummonerByPuuid(platform string, puuid string, onDemand bool) (*SummonerByPuuid, error) {
	if onDemand {
		p.limiter.WaitApi()
	} else {
		p.limiter.WaitJob()
	}

	url := fmt.Sprintf("https://%s.api.riotgames.com/lol/summoner/v4/summoners/by-puuid/%s", platform, puuid)

	resp, err := requests.AuthRequest(url, "GET", map[string]string{})
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var summoner SummonerByPuuid
	if err := json.NewDecoder(resp.Body).Decode(&summoner); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &summoner, nil
}
