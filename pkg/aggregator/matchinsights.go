package aggregator

import (
	"fmt"
	matchfetcher "riftrewind/fetcher/data/match"
	"time"
)

// buildMatchSummary wraps a MatchInfo with the heuristic fields consumed as
// AI context.
func (a *Aggregator) buildMatchSummary(match *matchfetcher.MatchData, player *matchfetcher.MatchPlayer, info *MatchInfo, puuid string) *MatchSummary {
	enemyTeam := 100
	if player.TeamId == 100 {
		enemyTeam = 200
	}

	return &MatchSummary{
		MatchId:     info.GameId,
		Puuid:       puuid,
		GeneratedAt: time.Now().UTC(),
		MatchData:   info,
		AiInsights: MatchInsights{
			PerformanceRating: a.performanceRating(info),
			KeyStrengths:      a.matchStrengths(info),
			ImprovementAreas:  a.matchImprovements(info),
			NotableEvents:     a.notableEvents(info),
		},
		ContextualData: ContextualData{
			TeamComposition:  teamComposition(match, player.TeamId),
			EnemyComposition: teamComposition(match, enemyTeam),
			TimelineSummary: MatchTimelineSummary{
				EarlyGamePerformance: a.earlyGamePerformance(info),
				MidGamePerformance:   a.midGamePerformance(info),
				LateGamePerformance:  a.lateGamePerformance(info),
			},
		},
	}
}

// performanceRating scores the match out of 100 and buckets the result.
func (a *Aggregator) performanceRating(info *MatchInfo) string {
	t := a.thresholds.Rating

	score := 0
	for _, tier := range t.KdaTiers {
		if info.Performance.Kda >= tier.Min {
			score += tier.Points
			break
		}
	}
	for _, tier := range t.ParticipationTier {
		if info.Performance.KillParticipation >= tier.Min {
			score += tier.Points
			break
		}
	}
	if info.Performance.Win {
		score += t.WinPoints
	}

	for _, bucket := range t.Buckets {
		if score >= bucket.MinScore {
			return bucket.Label
		}
	}
	return t.DefaultLabel
}

// matchStrengths lists what went well on a match through fixed thresholds.
func (a *Aggregator) matchStrengths(info *MatchInfo) []string {
	t := a.thresholds.MatchStrengths

	var strengths []string
	if info.Performance.Kda >= t.HighKda {
		strengths = append(strengths, "High KDA performance")
	}
	if info.Performance.KillParticipation >= t.StrongTeamFight {
		strengths = append(strengths, "Strong team fight presence")
	}
	if info.Economy.CsPerMinute >= t.ExcellentFarming {
		strengths = append(strengths, "Excellent farming")
	}
	if info.Vision.VisionScore >= t.GoodVision {
		strengths = append(strengths, "Good vision control")
	}
	if info.Combat.DamageToChampions >= t.HighDamage {
		strengths = append(strengths, "High damage output")
	}
	if info.Performance.Deaths <= t.LowDeaths {
		strengths = append(strengths, "Excellent survivability")
	}

	if len(strengths) == 0 {
		return []string{t.DefaultEntry}
	}
	return strengths
}

// matchImprovements lists what to work on after a match.
func (a *Aggregator) matchImprovements(info *MatchInfo) []string {
	t := a.thresholds.MatchImprovements

	var improvements []string
	if info.Performance.Deaths >= t.HighDeaths {
		improvements = append(improvements, "Reduce deaths and improve positioning")
	}
	if info.Economy.CsPerMinute < t.LowCsPerMinute {
		improvements = append(improvements, "Focus on farming and gold efficiency")
	}
	if info.Vision.VisionScore < t.LowVision {
		improvements = append(improvements, "Improve vision control and map awareness")
	}
	if info.Performance.KillParticipation < t.LowParticipation {
		improvements = append(improvements, "Increase team fight participation")
	}
	if info.Combat.DamageToChampions < t.LowDamage {
		improvements = append(improvements, "Focus on dealing more damage to champions")
	}

	if len(improvements) == 0 {
		return []string{t.DefaultEntry}
	}
	return improvements
}

// notableEvents lists the standout moments of a match. Can be empty.
func (a *Aggregator) notableEvents(info *MatchInfo) []string {
	t := a.thresholds.NotableEvents

	events := []string{}
	if info.Combat.LargestMultikill >= t.Multikill {
		events = append(events, fmt.Sprintf("Achieved %d-kill multikill", info.Combat.LargestMultikill))
	}
	if info.Combat.LargestKillingSpree >= t.KillingSpree {
		events = append(events, fmt.Sprintf("%d-kill killing spree", info.Combat.LargestKillingSpree))
	}
	if info.Performance.Kills >= t.HighKills {
		events = append(events, "High kill game (15+ kills)")
	}
	if info.Economy.GoldEarned >= t.HighGold {
		events = append(events, "High gold accumulation")
	}
	if info.GameDuration < t.FastWinMaxSecond && info.Performance.Win {
		events = append(events, "Fast victory (under 20 minutes)")
	}

	return events
}

// The phase buckets estimate each game stage from the final scoreboard since
// timeline data is not available here.

func (a *Aggregator) earlyGamePerformance(info *MatchInfo) string {
	t := a.thresholds.Phases
	kda := info.Performance.Kda
	cs := info.Economy.CsPerMinute

	switch {
	case kda >= t.EarlyStrongKda && cs >= t.EarlyStrongCs:
		return "Strong"
	case kda >= t.EarlyGoodKda && cs >= t.EarlyGoodCs:
		return "Good"
	case kda >= t.EarlyAverageKda && cs >= t.EarlyAverageCs:
		return "Average"
	default:
		return "Weak"
	}
}

func (a *Aggregator) midGamePerformance(info *MatchInfo) string {
	t := a.thresholds.Phases
	kp := info.Performance.KillParticipation
	damage := info.Combat.DamageToChampions

	switch {
	case kp >= t.MidStrongKp && damage >= t.MidStrongDamage:
		return "Strong"
	case kp >= t.MidGoodKp && damage >= t.MidGoodDamage:
		return "Good"
	case kp >= t.MidAverageKp && damage >= t.MidAverageDamage:
		return "Average"
	default:
		return "Weak"
	}
}

func (a *Aggregator) lateGamePerformance(info *MatchInfo) string {
	t := a.thresholds.Phases
	deaths := info.Performance.Deaths
	damage := info.Combat.DamageToChampions

	switch {
	case info.Performance.Win && deaths <= t.LateStrongDeaths && damage >= t.LateStrongDamage:
		return "Strong"
	case info.Performance.Win && deaths <= t.LateGoodDeaths:
		return "Good"
	case deaths <= t.LateAverageDeath:
		return "Average"
	default:
		return "Weak"
	}
}

// teamComposition snapshots one side of the match.
func teamComposition(match *matchfetcher.MatchData, teamId int) TeamComposition {
	composition := TeamComposition{Champions: []TeamChampion{}}

	for i := range match.Info.Participants {
		participant := &match.Info.Participants[i]
		if participant.TeamId != teamId {
			continue
		}

		role := participant.IndividualPosition
		if role == "" {
			role = "UNKNOWN"
		}

		name := participant.SummonerName
		if name == "" {
			name = participant.RiotIdGameName
		}
		if name == "" {
			name = "Unknown"
		}

		composition.Champions = append(composition.Champions, TeamChampion{
			Champion:     participant.ChampionName,
			Role:         role,
			SummonerName: name,
		})

		composition.TeamStats.TotalKills += participant.Kills
		composition.TeamStats.TotalDeaths += participant.Deaths
		composition.TeamStats.TotalAssists += participant.Assists
		composition.TeamStats.TotalDamage += participant.TotalDamageDealtToChampions
		composition.TeamStats.TotalGold += participant.GoldEarned
	}

	return composition
}
