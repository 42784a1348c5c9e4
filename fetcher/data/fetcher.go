package data

import (
	matchfetcher "riftrewind/fetcher/data/match"
	playerfetcher "riftrewind/fetcher/data/player"
	"riftrewind/fetcher/requests"
)

// MainFetcher groups the per concern Riot fetchers behind a shared rate limiter.
type MainFetcher struct {
	Player *playerfetcher.PlayerFetcher
	Match  *matchfetcher.MatchFetcher
}

// CreateMainFetcher instanciates the main fetcher.
func CreateMainFetcher() *MainFetcher {
	limiter := requests.CreateRateLimiter()

	return &MainFetcher{
		Player: playerfetcher.CreatePlayerFetcher(limiter),
		Match:  matchfetcher.CreateMatchFetcher(limiter),
	}
}
