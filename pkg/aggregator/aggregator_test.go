package aggregator

import (
	"testing"
	"time"

	matchfetcher "riftrewind/fetcher/data/match"

	"github.com/stretchr/testify/assert"
)

const testPuuid = "test-puuid"

// Helper to build a raw match with the target player and one teammate.
func buildTestMatch(gameId int64, creationMs int64, duration int, mode string, target matchfetcher.MatchPlayer, teammateKills int) *matchfetcher.MatchData {
	target.Puuid = testPuuid
	if target.TeamId == 0 {
		target.TeamId = 100
	}

	teammate := matchfetcher.MatchPlayer{
		Puuid:        "teammate-puuid",
		TeamId:       target.TeamId,
		ChampionName: "Thresh",
		Kills:        teammateKills,
		Win:          target.Win,
	}

	enemy := matchfetcher.MatchPlayer{
		Puuid:        "enemy-puuid",
		TeamId:       200,
		ChampionName: "Zed",
		Kills:        3,
		Win:          !target.Win,
	}

	return &matchfetcher.MatchData{
		Metadata: matchfetcher.MatchMetadata{
			MatchId: "NA1_" + time.UnixMilli(creationMs).Format("20060102150405"),
		},
		Info: matchfetcher.MatchInfo{
			GameId:       gameId,
			GameCreation: matchfetcher.RiotTime(time.UnixMilli(creationMs)),
			GameDuration: duration,
			GameMode:     mode,
			GameVersion:  "15.20.1",
			Participants: []matchfetcher.MatchPlayer{target, teammate, enemy},
		},
	}
}

func TestCalculateKda(t *testing.T) {
	tests := []struct {
		name     string
		kills    int
		deaths   int
		assists  int
		expected float64
	}{
		{
			name:     "regular game",
			kills:    6,
			deaths:   3,
			assists:  9,
			expected: 5,
		},
		{
			name:     "deathless game returns kills plus assists",
			kills:    10,
			deaths:   0,
			assists:  5,
			expected: 15,
		},
		{
			name:     "scoreless game",
			kills:    0,
			deaths:   0,
			assists:  0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateKda(tt.kills, tt.deaths, tt.assists))
		})
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	aggregator := New(nil)

	result := aggregator.Aggregate(nil, testPuuid)

	assert.NotNil(t, result.Summary)
	assert.Equal(t, testPuuid, result.Summary.Puuid)
	assert.Equal(t, 0, result.Summary.TotalMatches)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.MatchSummaries)

	// Every rate stays at zero, no division by zero anywhere.
	assert.Zero(t, result.Summary.Performance.WinRate)
	assert.Zero(t, result.Summary.Performance.AvgKda)
	assert.Zero(t, result.Summary.ChampionAnalysis.ChampionDiversity)

	// Containers come back empty, not nil, so the JSON shape is stable.
	assert.NotNil(t, result.Summary.Itemization.MostCommonItems)
	assert.NotNil(t, result.Summary.GameFlow.PreferredGameModes)
	assert.NotNil(t, result.Summary.BehavioralInsights.Strengths)
	assert.NotNil(t, result.Summary.RecentMatchesDetailed)
}

func TestAggregateThreeMatchScenario(t *testing.T) {
	aggregator := New(nil)

	matches := []*matchfetcher.MatchData{
		buildTestMatch(1, 1000, 1500, "CLASSIC", matchfetcher.MatchPlayer{
			ChampionName:                "Ahri",
			ChampionId:                  103,
			Kills:                       10,
			Deaths:                      0,
			Assists:                     5,
			Win:                         true,
			TotalDamageDealtToChampions: 25000,
			GoldEarned:                  12000,
			TotalMinionsKilled:          180,
			VisionScore:                 20,
			Summoner1Id:                 4,
			Summoner2Id:                 14,
			Item0:                       3089,
			Item1:                       3020,
		}, 5),
		buildTestMatch(2, 2000, 1000, "CLASSIC", matchfetcher.MatchPlayer{
			ChampionName:                "Ahri",
			ChampionId:                  103,
			Kills:                       2,
			Deaths:                      6,
			Assists:                     10,
			Win:                         false,
			TotalDamageDealtToChampions: 9000,
			GoldEarned:                  7000,
			TotalMinionsKilled:          120,
			VisionScore:                 12,
			Summoner1Id:                 4,
			Summoner2Id:                 14,
			Item0:                       3089,
		}, 5),
		buildTestMatch(3, 3000, 2200, "ARAM", matchfetcher.MatchPlayer{
			ChampionName:                "Lux",
			ChampionId:                  99,
			Kills:                       5,
			Deaths:                      5,
			Assists:                     5,
			Win:                         true,
			TotalDamageDealtToChampions: 18000,
			GoldEarned:                  10000,
			TotalMinionsKilled:          90,
			VisionScore:                 30,
			Summoner1Id:                 14,
			Summoner2Id:                 4,
			Item0:                       6655,
		}, 5),
	}

	result := aggregator.Aggregate(matches, testPuuid)
	summary := result.Summary

	assert.Equal(t, 3, summary.TotalMatches)
	assert.Equal(t, 0, summary.SkippedMatches)
	assert.Len(t, result.MatchSummaries, 3)

	// Wins plus losses always equals the processed count.
	assert.Equal(t, 2, summary.Overview.TotalWins)
	assert.Equal(t, 1, summary.Overview.TotalLosses)
	assert.Equal(t, summary.TotalMatches, summary.Overview.TotalWins+summary.Overview.TotalLosses)
	assert.InDelta(t, 66.67, summary.Performance.WinRate, 0.01)

	// Overall totals and KDA.
	assert.Equal(t, 17, summary.Overview.TotalKills)
	assert.Equal(t, 11, summary.Overview.TotalDeaths)
	assert.Equal(t, 20, summary.Overview.TotalAssists)
	assert.InDelta(t, float64(17+20)/11, summary.Performance.AvgKda, 0.0001)

	// Champion pool: per champion games always sum to the total.
	assert.Equal(t, 2, summary.ChampionAnalysis.ChampionPoolSize)
	games := 0
	for _, stats := range summary.ChampionStats {
		games += stats.GamesPlayed
	}
	assert.Equal(t, summary.TotalMatches, games)
	assert.Equal(t, 2, summary.ChampionStats["Ahri"].GamesPlayed)
	assert.Equal(t, 1, summary.ChampionStats["Lux"].GamesPlayed)
	assert.InDelta(t, 2.0/3.0, summary.ChampionAnalysis.ChampionDiversity, 0.0001)

	// Most played: Ahri first on games, Lux after.
	assert.Equal(t, "Ahri", summary.ChampionAnalysis.MostPlayedChampions[0].Name)
	assert.Equal(t, "Lux", summary.ChampionAnalysis.MostPlayedChampions[1].Name)
	assert.InDelta(t, 50, summary.ChampionAnalysis.MostPlayedChampions[0].WinRate, 0.0001)

	// Ahri KDA is recomputed from totals: (12+15)/6, not a per match average.
	assert.InDelta(t, float64(12+15)/6, summary.ChampionStats["Ahri"].AvgKda, 0.0001)

	// Duration buckets: 1000s short, 1500s medium, 2200s long.
	buckets := summary.GameFlow.PerformanceByGameLength
	assert.Equal(t, 1, buckets.ShortGames.Count)
	assert.Equal(t, 1, buckets.MediumGames.Count)
	assert.Equal(t, 1, buckets.LongGames.Count)
	assert.Zero(t, buckets.ShortGames.WinRate)
	assert.InDelta(t, 100, buckets.MediumGames.WinRate, 0.0001)
	assert.InDelta(t, 100, buckets.LongGames.WinRate, 0.0001)

	// Game modes.
	assert.Equal(t, 2, summary.GameFlow.PreferredGameModes["CLASSIC"])
	assert.Equal(t, 1, summary.GameFlow.PreferredGameModes["ARAM"])

	// Spell pairs are order sensitive: 4-14 and 14-4 stay separate.
	assert.Equal(t, 2, summary.Itemization.SummonerSpellPreferences["4-14"])
	assert.Equal(t, 1, summary.Itemization.SummonerSpellPreferences["14-4"])
	assert.Equal(t, 2, summary.Itemization.MostCommonItems["3089"])

	// Recent matches come most recent first.
	assert.Len(t, summary.RecentMatchesDetailed, 3)
	assert.Equal(t, int64(3), summary.RecentMatchesDetailed[0].GameId)
	assert.Equal(t, int64(1), summary.RecentMatchesDetailed[2].GameId)
	assert.Len(t, summary.RecentMatches, 3)
	assert.Equal(t, "Lux", summary.RecentMatches[0].ChampionName)

	// Diversity is always within [0, 1].
	assert.GreaterOrEqual(t, summary.ChampionAnalysis.ChampionDiversity, 0.0)
	assert.LessOrEqual(t, summary.ChampionAnalysis.ChampionDiversity, 1.0)
}

func TestAggregateSkipsForeignMatches(t *testing.T) {
	aggregator := New(nil)

	valid := buildTestMatch(1, 1000, 1500, "CLASSIC", matchfetcher.MatchPlayer{
		ChampionName: "Ahri",
		Kills:        5,
		Deaths:       2,
		Assists:      3,
		Win:          true,
	}, 4)

	foreign := buildTestMatch(2, 2000, 1500, "CLASSIC", matchfetcher.MatchPlayer{
		ChampionName: "Garen",
		Kills:        1,
	}, 0)
	for i := range foreign.Info.Participants {
		foreign.Info.Participants[i].Puuid = "someone-else"
	}

	result := aggregator.Aggregate([]*matchfetcher.MatchData{valid, foreign, nil}, testPuuid)

	assert.Equal(t, 1, result.Summary.TotalMatches)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 2, result.Summary.SkippedMatches)
	assert.Len(t, result.MatchSummaries, 1)
}

func TestAggregateDeterministic(t *testing.T) {
	aggregator := New(nil)

	build := func() []*matchfetcher.MatchData {
		return []*matchfetcher.MatchData{
			buildTestMatch(1, 1000, 1500, "CLASSIC", matchfetcher.MatchPlayer{
				ChampionName: "Ahri", Kills: 4, Deaths: 2, Assists: 6, Win: true,
				Summoner1Id: 4, Summoner2Id: 14, Item0: 3089,
			}, 4),
			buildTestMatch(2, 2000, 1700, "CLASSIC", matchfetcher.MatchPlayer{
				ChampionName: "Lux", Kills: 2, Deaths: 4, Assists: 8, Win: false,
				Summoner1Id: 4, Summoner2Id: 3, Item0: 6655,
			}, 4),
		}
	}

	first := aggregator.Aggregate(build(), testPuuid)
	second := aggregator.Aggregate(build(), testPuuid)

	// Everything but the generation timestamp must match between runs.
	first.Summary.GeneratedAt = second.Summary.GeneratedAt
	assert.Equal(t, first.Summary, second.Summary)
}

func TestConsistencyScore(t *testing.T) {
	identical := []*MatchInfo{
		{Performance: MatchPerformance{Kda: 3}},
		{Performance: MatchPerformance{Kda: 3}},
		{Performance: MatchPerformance{Kda: 3}},
	}
	assert.InDelta(t, 100, consistencyScore(identical), 0.0001)

	assert.Zero(t, consistencyScore(nil))

	// A wild spread drags the score down.
	spread := []*MatchInfo{
		{Performance: MatchPerformance{Kda: 0}},
		{Performance: MatchPerformance{Kda: 10}},
	}
	assert.Less(t, consistencyScore(spread), 100.0)
}

func TestImprovementTrend(t *testing.T) {
	aggregator := New(nil)

	tests := []struct {
		name     string
		kdas     []float64
		expected float64
	}{
		{
			name:     "too few matches for a sample",
			kdas:     []float64{5},
			expected: 0,
		},
		{
			name:     "zero early average",
			kdas:     []float64{0, 0, 3, 4, 5},
			expected: 0,
		},
		{
			name:     "improving player",
			kdas:     []float64{1, 1, 1, 2, 2},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := make([]*MatchInfo, len(tt.kdas))
			for i, kda := range tt.kdas {
				matches[i] = &MatchInfo{
					GameCreation: int64(i + 1),
					Performance:  MatchPerformance{Kda: kda},
				}
			}

			assert.InDelta(t, tt.expected, aggregator.improvementTrend(matches), 0.0001)
		})
	}
}

func TestTopCountsTieBreaks(t *testing.T) {
	counts := map[string]int{"a": 2, "b": 2, "c": 5, "d": 1}
	order := []string{"a", "b", "c", "d"}

	top := topCounts(counts, order, 3)

	assert.Len(t, top, 3)
	assert.Equal(t, 5, top["c"])
	assert.Equal(t, 2, top["a"])
	assert.Equal(t, 2, top["b"])
	assert.NotContains(t, top, "d")
}
