package aggregator

import (
	"testing"

	matchfetcher "riftrewind/fetcher/data/match"

	"github.com/stretchr/testify/assert"
)

func TestPerformanceRating(t *testing.T) {
	aggregator := New(nil)

	tests := []struct {
		name     string
		kda      float64
		kp       float64
		win      bool
		expected string
	}{
		{
			name:     "dominant win",
			kda:      3.5,
			kp:       0.75,
			win:      true,
			expected: "Excellent",
		},
		{
			name:     "solid win",
			kda:      1.5,
			kp:       0.5,
			win:      true,
			expected: "Good",
		},
		{
			name:     "decent loss",
			kda:      2,
			kp:       0.5,
			win:      false,
			expected: "Average",
		},
		{
			name:     "rough loss",
			kda:      1,
			kp:       0.3,
			win:      false,
			expected: "Below Average",
		},
		{
			name:     "stomped",
			kda:      0.5,
			kp:       0.1,
			win:      false,
			expected: "Poor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &MatchInfo{
				Performance: MatchPerformance{
					Kda:               tt.kda,
					KillParticipation: tt.kp,
					Win:               tt.win,
				},
			}

			assert.Equal(t, tt.expected, aggregator.performanceRating(info))
		})
	}
}

func TestMatchStrengthsFallback(t *testing.T) {
	aggregator := New(nil)

	// Nothing stands out, the default entry fills the list.
	info := &MatchInfo{
		Performance: MatchPerformance{Kda: 1, KillParticipation: 0.2, Deaths: 5},
		Economy:     MatchEconomy{CsPerMinute: 3},
		Vision:      MatchVision{VisionScore: 5},
	}

	strengths := aggregator.matchStrengths(info)
	assert.Equal(t, []string{"Consistent gameplay"}, strengths)
}

func TestMatchImprovements(t *testing.T) {
	aggregator := New(nil)

	info := &MatchInfo{
		Performance: MatchPerformance{Deaths: 10, KillParticipation: 0.2},
		Economy:     MatchEconomy{CsPerMinute: 2},
		Vision:      MatchVision{VisionScore: 3},
		Combat:      MatchCombat{DamageToChampions: 5000},
	}

	improvements := aggregator.matchImprovements(info)
	assert.Len(t, improvements, 5)
	assert.Contains(t, improvements, "Reduce deaths and improve positioning")
	assert.Contains(t, improvements, "Improve vision control and map awareness")
}

func TestNotableEvents(t *testing.T) {
	aggregator := New(nil)

	tests := []struct {
		name     string
		info     *MatchInfo
		expected []string
	}{
		{
			name: "quiet game has no events",
			info: &MatchInfo{
				GameDuration: 1800,
				Performance:  MatchPerformance{Kills: 3},
				Combat:       MatchCombat{LargestMultikill: 2},
				Economy:      MatchEconomy{GoldEarned: 9000},
			},
			expected: []string{},
		},
		{
			name: "pentakill stomp",
			info: &MatchInfo{
				GameDuration: 1100,
				Performance:  MatchPerformance{Kills: 16, Win: true},
				Combat:       MatchCombat{LargestMultikill: 5, LargestKillingSpree: 9},
				Economy:      MatchEconomy{GoldEarned: 16000},
			},
			expected: []string{
				"Achieved 5-kill multikill",
				"9-kill killing spree",
				"High kill game (15+ kills)",
				"High gold accumulation",
				"Fast victory (under 20 minutes)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, aggregator.notableEvents(tt.info))
		})
	}
}

func TestPhasePerformance(t *testing.T) {
	aggregator := New(nil)

	strong := &MatchInfo{
		Performance: MatchPerformance{Kda: 4, KillParticipation: 0.8, Deaths: 2, Win: true},
		Economy:     MatchEconomy{CsPerMinute: 7},
		Combat:      MatchCombat{DamageToChampions: 25000},
	}
	assert.Equal(t, "Strong", aggregator.earlyGamePerformance(strong))
	assert.Equal(t, "Strong", aggregator.midGamePerformance(strong))
	assert.Equal(t, "Strong", aggregator.lateGamePerformance(strong))

	weak := &MatchInfo{
		Performance: MatchPerformance{Kda: 0.5, KillParticipation: 0.1, Deaths: 12},
		Economy:     MatchEconomy{CsPerMinute: 1},
		Combat:      MatchCombat{DamageToChampions: 2000},
	}
	assert.Equal(t, "Weak", aggregator.earlyGamePerformance(weak))
	assert.Equal(t, "Weak", aggregator.midGamePerformance(weak))
	assert.Equal(t, "Weak", aggregator.lateGamePerformance(weak))
}

func TestTeamComposition(t *testing.T) {
	match := &matchfetcher.MatchData{
		Info: matchfetcher.MatchInfo{
			Participants: []matchfetcher.MatchPlayer{
				{
					TeamId:             100,
					ChampionName:       "Ahri",
					IndividualPosition: "MIDDLE",
					SummonerName:       "PlayerOne",
					Kills:              5,
					GoldEarned:         10000,
				},
				{
					TeamId:         100,
					ChampionName:   "Thresh",
					RiotIdGameName: "PlayerTwo",
					Kills:          1,
					GoldEarned:     7000,
				},
				{
					TeamId:       200,
					ChampionName: "Zed",
					Kills:        8,
					GoldEarned:   12000,
				},
			},
		},
	}

	blue := teamComposition(match, 100)
	assert.Len(t, blue.Champions, 2)
	assert.Equal(t, "MIDDLE", blue.Champions[0].Role)
	assert.Equal(t, "PlayerOne", blue.Champions[0].SummonerName)

	// Missing position and summoner name fall back to the defaults.
	assert.Equal(t, "UNKNOWN", blue.Champions[1].Role)
	assert.Equal(t, "PlayerTwo", blue.Champions[1].SummonerName)

	assert.Equal(t, 6, blue.TeamStats.TotalKills)
	assert.Equal(t, 17000, blue.TeamStats.TotalGold)

	red := teamComposition(match, 200)
	assert.Len(t, red.Champions, 1)
	assert.Equal(t, "Unknown", red.Champions[0].SummonerName)
}
