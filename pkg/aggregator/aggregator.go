package aggregator

import (
	matchfetcher "riftrewind/fetcher/data/match"
	"sort"
	"strconv"
	"time"
)

// Aggregator folds raw match records into a PlayerSummary plus one
// MatchSummary per processed match. It holds no state between calls, so a
// single instance can serve concurrent aggregations.
type Aggregator struct {
	thresholds *Thresholds
}

// New creates a aggregator with the given threshold table.
// A nil table falls back to the defaults.
func New(thresholds *Thresholds) *Aggregator {
	if thresholds == nil {
		thresholds = DefaultThresholds()
	}
	return &Aggregator{
		thresholds: thresholds,
	}
}

// accumulator is the explicit fold state of one aggregation call.
// Maps carry a parallel first-seen order slice so the finalization tie breaks
// stay deterministic.
type accumulator struct {
	matches        []*MatchInfo
	matchSummaries []*MatchSummary

	championStats map[string]*ChampionStats
	championOrder []string

	itemUsage map[string]int
	itemOrder []string

	spellUsage map[string]int
	spellOrder []string

	overview Overview

	totalGameTime          int
	totalPhysicalDamage    int
	totalMagicDamage       int
	totalTrueDamage        int
	totalDamageTaken       int
	totalVisionScore       int
	totalCs                int
	totalKillParticipation float64
	totalLongestAlive      int
	multikillGames         int
	largestMultikill       int
	soloKills              int
	killsUnderTurret       int

	skipped int
}

func newAccumulator() *accumulator {
	return &accumulator{
		championStats: make(map[string]*ChampionStats),
		itemUsage:     make(map[string]int),
		spellUsage:    make(map[string]int),
	}
}

// Aggregate runs the fold over the given matches for one target puuid.
// Matches where the player is not a participant are skipped, never errors.
// A empty input produces a fully zeroed summary.
func (a *Aggregator) Aggregate(matches []*matchfetcher.MatchData, puuid string) *Result {
	acc := newAccumulator()

	for _, match := range matches {
		if match == nil {
			acc.skipped++
			continue
		}
		a.processMatch(acc, match, puuid)
	}

	summary := a.finalize(acc, puuid)

	return &Result{
		Summary:        summary,
		MatchSummaries: acc.matchSummaries,
		Skipped:        acc.skipped,
	}
}

// processMatch folds a single match into the accumulator.
func (a *Aggregator) processMatch(acc *accumulator, match *matchfetcher.MatchData, puuid string) {
	player := findParticipant(match, puuid)
	if player == nil {
		acc.skipped++
		return
	}

	teamKills := 0
	for i := range match.Info.Participants {
		if match.Info.Participants[i].TeamId == player.TeamId {
			teamKills += match.Info.Participants[i].Kills
		}
	}

	killParticipation := 0.0
	if teamKills > 0 {
		killParticipation = float64(player.Kills+player.Assists) / float64(teamKills)
	}

	info := buildMatchInfo(match, player, killParticipation)
	acc.matches = append(acc.matches, info)
	acc.matchSummaries = append(acc.matchSummaries, a.buildMatchSummary(match, player, info, puuid))

	// Item and summoner spell frequency tables.
	for _, item := range info.Items {
		key := strconv.Itoa(item)
		if _, seen := acc.itemUsage[key]; !seen {
			acc.itemOrder = append(acc.itemOrder, key)
		}
		acc.itemUsage[key]++
	}

	spellCombo := strconv.Itoa(player.Summoner1Id) + "-" + strconv.Itoa(player.Summoner2Id)
	if _, seen := acc.spellUsage[spellCombo]; !seen {
		acc.spellOrder = append(acc.spellOrder, spellCombo)
	}
	acc.spellUsage[spellCombo]++

	// Champion table. The champion KDA is recomputed from the running totals,
	// not averaged from the per match values.
	champStats, seen := acc.championStats[player.ChampionName]
	if !seen {
		champStats = &ChampionStats{}
		acc.championStats[player.ChampionName] = champStats
		acc.championOrder = append(acc.championOrder, player.ChampionName)
	}

	champStats.GamesPlayed++
	champStats.TotalKills += player.Kills
	champStats.TotalDeaths += player.Deaths
	champStats.TotalAssists += player.Assists
	champStats.TotalDamage += player.TotalDamageDealtToChampions
	champStats.AvgKillParticipation += killParticipation

	if player.Win {
		champStats.Wins++
		acc.overview.TotalWins++
	} else {
		champStats.Losses++
		acc.overview.TotalLosses++
	}

	champStats.AvgKda = CalculateKda(champStats.TotalKills, champStats.TotalDeaths, champStats.TotalAssists)

	// Running totals.
	acc.totalGameTime += match.Info.GameDuration
	acc.totalPhysicalDamage += player.PhysicalDamageDealt
	acc.totalMagicDamage += player.MagicDamageDealt
	acc.totalTrueDamage += player.TrueDamageDealt
	acc.totalDamageTaken += player.TotalDamageTaken
	acc.totalVisionScore += player.VisionScore
	acc.totalCs += player.TotalCs()
	acc.totalKillParticipation += killParticipation
	acc.totalLongestAlive += player.LongestTimeSpentLiving
	acc.soloKills += int(player.Challenges["soloKills"])
	acc.killsUnderTurret += int(player.Challenges["killsNearEnemyTurret"])
	if player.LargestMultiKill > a.thresholds.MultikillMin {
		acc.multikillGames++
	}
	if player.LargestMultiKill > acc.largestMultikill {
		acc.largestMultikill = player.LargestMultiKill
	}

	acc.overview.TotalKills += player.Kills
	acc.overview.TotalDeaths += player.Deaths
	acc.overview.TotalAssists += player.Assists
	acc.overview.TotalDamageDealt += player.TotalDamageDealtToChampions
	acc.overview.TotalGoldEarned += player.GoldEarned
}

// finalize runs the derived ratio pass and assembles the summary.
func (a *Aggregator) finalize(acc *accumulator, puuid string) *PlayerSummary {
	t := a.thresholds

	summary := &PlayerSummary{
		Puuid:          puuid,
		GeneratedAt:    time.Now().UTC(),
		TotalMatches:   len(acc.matches),
		SkippedMatches: acc.skipped,
		Overview:       acc.overview,
		ChampionStats:  acc.championStats,
		Itemization: Itemization{
			MostCommonItems:          map[string]int{},
			SummonerSpellPreferences: map[string]int{},
		},
		GameFlow: GameFlow{
			PreferredGameModes: map[string]int{},
		},
		BehavioralInsights: BehavioralInsights{
			Strengths:           []string{},
			AreasForImprovement: []string{},
		},
		RecentMatchesDetailed: []*MatchInfo{},
		RecentMatches:         []CompactMatch{},
	}

	totalMatches := len(acc.matches)
	if totalMatches == 0 {
		// No processed matches: every rate stays at its zero value so the
		// consumers can render a uniform "no data" state.
		return summary
	}

	matchCount := float64(totalMatches)
	totalMinutes := float64(acc.totalGameTime) / 60

	summary.Overview.AvgKda = CalculateKda(acc.overview.TotalKills, acc.overview.TotalDeaths, acc.overview.TotalAssists)

	summary.Performance = PerformanceStats{
		AvgKda:               summary.Overview.AvgKda,
		WinRate:              float64(acc.overview.TotalWins) / matchCount * 100,
		AvgKillParticipation: acc.totalKillParticipation / matchCount,
		AvgVisionScore:       float64(acc.totalVisionScore) / matchCount,
	}
	if totalMinutes > 0 {
		summary.Performance.AvgDamagePerMinute = float64(acc.overview.TotalDamageDealt) / totalMinutes
		summary.Performance.AvgGoldPerMinute = float64(acc.overview.TotalGoldEarned) / totalMinutes
		summary.Performance.AvgCsPerMinute = float64(acc.totalCs) / totalMinutes
	}

	summary.CombatStyle.AvgDamageToChampions = float64(acc.overview.TotalDamageDealt) / matchCount
	summary.CombatStyle.AvgDamageTaken = float64(acc.totalDamageTaken) / matchCount

	totalDamage := acc.totalPhysicalDamage + acc.totalMagicDamage + acc.totalTrueDamage
	if totalDamage > 0 {
		summary.CombatStyle.DamageTypeDistribution = DamageTypeDistribution{
			PhysicalPercent: float64(acc.totalPhysicalDamage) / float64(totalDamage) * 100,
			MagicPercent:    float64(acc.totalMagicDamage) / float64(totalDamage) * 100,
			TruePercent:     float64(acc.totalTrueDamage) / float64(totalDamage) * 100,
		}
	}

	summary.CombatStyle.Survivability.AvgDeaths = float64(acc.overview.TotalDeaths) / matchCount
	summary.CombatStyle.Survivability.AvgLongestTimeAlive = float64(acc.totalLongestAlive) / matchCount
	if acc.overview.TotalDeaths > 0 {
		summary.CombatStyle.Survivability.AvgDamageTakenPerDeath = float64(acc.totalDamageTaken) / float64(acc.overview.TotalDeaths)
	}

	summary.CombatStyle.Aggression = Aggression{
		AvgMultikills:    float64(acc.multikillGames) / matchCount,
		LargestMultikill: acc.largestMultikill,
		SoloKillsTotal:   acc.soloKills,
		KillsUnderTurret: acc.killsUnderTurret,
	}

	// Champion analysis. Ties on games played keep the first-seen order.
	summary.ChampionAnalysis.ChampionPoolSize = len(acc.championStats)
	rankings := make([]ChampionRanking, 0, len(acc.championOrder))
	for _, name := range acc.championOrder {
		stats := acc.championStats[name]
		ranking := ChampionRanking{
			Name:   name,
			Games:  stats.GamesPlayed,
			AvgKda: stats.AvgKda,
		}
		if stats.GamesPlayed > 0 {
			ranking.WinRate = float64(stats.Wins) / float64(stats.GamesPlayed) * 100
			ranking.AvgDamage = float64(stats.TotalDamage) / float64(stats.GamesPlayed)
		}
		rankings = append(rankings, ranking)
	}
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Games > rankings[j].Games
	})
	if len(rankings) > t.TopChampions {
		rankings = rankings[:t.TopChampions]
	}
	summary.ChampionAnalysis.MostPlayedChampions = rankings
	summary.ChampionAnalysis.ChampionDiversity = float64(len(acc.championStats)) / matchCount

	// Itemization tables, top N by frequency with insertion order tie breaks.
	summary.Itemization.MostCommonItems = topCounts(acc.itemUsage, acc.itemOrder, t.TopItems)
	summary.Itemization.SummonerSpellPreferences = topCounts(acc.spellUsage, acc.spellOrder, t.TopSpellPairs)
	summary.Itemization.BuildDiversity = float64(len(acc.itemUsage)) / matchCount

	// Game flow.
	summary.GameFlow.AvgGameDuration = float64(acc.totalGameTime) / matchCount
	for _, match := range acc.matches {
		summary.GameFlow.PreferredGameModes[match.GameMode]++
	}
	summary.GameFlow.PerformanceByGameLength = a.bucketByDuration(acc.matches)

	// Behavioral insights.
	summary.BehavioralInsights.ConsistencyScore = consistencyScore(acc.matches)
	summary.BehavioralInsights.ImprovementTrend = a.improvementTrend(acc.matches)
	a.summaryInsights(summary)

	// Most recent first.
	sort.SliceStable(acc.matches, func(i, j int) bool {
		return acc.matches[i].GameCreation > acc.matches[j].GameCreation
	})

	recent := t.RecentMatches
	if recent > len(acc.matches) {
		recent = len(acc.matches)
	}
	summary.RecentMatchesDetailed = acc.matches[:recent]
	for _, match := range acc.matches[:recent] {
		summary.RecentMatches = append(summary.RecentMatches, CompactMatch{
			GameId:       match.GameId,
			GameCreation: match.GameCreation,
			GameDuration: match.GameDuration,
			GameMode:     match.GameMode,
			ChampionName: match.Champion.Name,
			Kills:        match.Performance.Kills,
			Deaths:       match.Performance.Deaths,
			Assists:      match.Performance.Assists,
			DamageDealt:  match.Combat.DamageToChampions,
			GoldEarned:   match.Economy.GoldEarned,
			Win:          match.Performance.Win,
		})
	}

	return summary
}

// bucketByDuration splits the matches in short, medium and long games.
func (a *Aggregator) bucketByDuration(matches []*MatchInfo) PerformanceByDuration {
	t := a.thresholds.GameLength

	var short, medium, long []*MatchInfo
	for _, match := range matches {
		switch {
		case match.GameDuration < t.ShortMaxSeconds:
			short = append(short, match)
		case match.GameDuration < t.MediumMaxSeconds:
			medium = append(medium, match)
		default:
			long = append(long, match)
		}
	}

	return PerformanceByDuration{
		ShortGames:  durationBucket(short),
		MediumGames: durationBucket(medium),
		LongGames:   durationBucket(long),
	}
}

func durationBucket(matches []*MatchInfo) DurationBucket {
	bucket := DurationBucket{Count: len(matches)}
	if len(matches) == 0 {
		return bucket
	}

	wins := 0
	kdaSum := 0.0
	for _, match := range matches {
		if match.Performance.Win {
			wins++
		}
		kdaSum += match.Performance.Kda
	}

	bucket.WinRate = float64(wins) / float64(len(matches)) * 100
	bucket.AvgKda = kdaSum / float64(len(matches))
	return bucket
}

// consistencyScore is a bounded heuristic over the KDA spread:
// max(0, 1 - variance/(mean+1)) * 100.
func consistencyScore(matches []*MatchInfo) float64 {
	if len(matches) == 0 {
		return 0
	}

	mean := 0.0
	for _, match := range matches {
		mean += match.Performance.Kda
	}
	mean /= float64(len(matches))

	variance := 0.0
	for _, match := range matches {
		diff := match.Performance.Kda - mean
		variance += diff * diff
	}
	variance /= float64(len(matches))

	score := 1 - variance/(mean+1)
	if score < 0 {
		score = 0
	}
	return score * 100
}

// improvementTrend compares the average KDA of the earliest 40% of the
// matches against the most recent 40%, by game creation.
func (a *Aggregator) improvementTrend(matches []*MatchInfo) float64 {
	sampleSize := int(float64(len(matches)) * a.thresholds.TrendSampleRatio)
	if sampleSize == 0 {
		return 0
	}

	sorted := make([]*MatchInfo, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].GameCreation < sorted[j].GameCreation
	})

	earlyAvg := averageKda(sorted[:sampleSize])
	recentAvg := averageKda(sorted[len(sorted)-sampleSize:])

	// A zero early average would be a division by zero, not a trend.
	if earlyAvg == 0 {
		return 0
	}

	return (recentAvg - earlyAvg) / earlyAvg * 100
}

func averageKda(matches []*MatchInfo) float64 {
	if len(matches) == 0 {
		return 0
	}

	sum := 0.0
	for _, match := range matches {
		sum += match.Performance.Kda
	}
	return sum / float64(len(matches))
}

// summaryInsights fills the summary level strengths and areas lists.
func (a *Aggregator) summaryInsights(summary *PlayerSummary) {
	t := a.thresholds.SummaryInsights

	if summary.Performance.AvgKillParticipation > t.HighParticipation {
		summary.BehavioralInsights.Strengths = append(summary.BehavioralInsights.Strengths, "High team fight participation")
	}
	if summary.Performance.WinRate > t.StrongWinRate {
		summary.BehavioralInsights.Strengths = append(summary.BehavioralInsights.Strengths, "Strong win rate")
	}
	if summary.ChampionAnalysis.ChampionDiversity < t.FocusedPool {
		summary.BehavioralInsights.Strengths = append(summary.BehavioralInsights.Strengths, "Focused champion pool mastery")
	}
	if summary.CombatStyle.Survivability.AvgDeaths < t.GoodSurvivability {
		summary.BehavioralInsights.Strengths = append(summary.BehavioralInsights.Strengths, "Good survivability")
	}

	if summary.Performance.AvgVisionScore < t.LowVisionScore {
		summary.BehavioralInsights.AreasForImprovement = append(summary.BehavioralInsights.AreasForImprovement, "Vision control")
	}
	if summary.Performance.AvgCsPerMinute < t.LowCsPerMinute {
		summary.BehavioralInsights.AreasForImprovement = append(summary.BehavioralInsights.AreasForImprovement, "Farm efficiency")
	}
	if summary.Performance.WinRate < t.LowWinRate {
		summary.BehavioralInsights.AreasForImprovement = append(summary.BehavioralInsights.AreasForImprovement, "Overall game impact")
	}
}

// buildMatchInfo creates the normalized per match view of the target player.
func buildMatchInfo(match *matchfetcher.MatchData, player *matchfetcher.MatchPlayer, killParticipation float64) *MatchInfo {
	duration := match.Info.GameDuration
	minutes := float64(duration) / 60

	items := make([]int, 0, 7)
	for _, item := range player.Items() {
		if item != 0 {
			items = append(items, item)
		}
	}

	challenges := player.Challenges
	if challenges == nil {
		challenges = map[string]float64{}
	}

	info := &MatchInfo{
		GameId:       match.Info.GameId,
		GameCreation: match.Info.GameCreation.UnixMilli(),
		GameDuration: duration,
		GameMode:     match.Info.GameMode,
		GameVersion:  match.Info.GameVersion,
		Champion: ChampionInfo{
			Name:  player.ChampionName,
			Id:    player.ChampionId,
			Level: player.ChampionLevel,
		},
		Performance: MatchPerformance{
			Kills:             player.Kills,
			Deaths:            player.Deaths,
			Assists:           player.Assists,
			Kda:               CalculateKda(player.Kills, player.Deaths, player.Assists),
			Win:               player.Win,
			KillParticipation: killParticipation,
		},
		Combat: MatchCombat{
			DamageToChampions:   player.TotalDamageDealtToChampions,
			TotalDamageDealt:    player.TotalDamageDealt,
			DamageTaken:         player.TotalDamageTaken,
			PhysicalDamage:      player.PhysicalDamageDealt,
			MagicDamage:         player.MagicDamageDealt,
			TrueDamage:          player.TrueDamageDealt,
			LargestKillingSpree: player.LargestKillingSpree,
			LargestMultikill:    player.LargestMultiKill,
			HealingDone:         player.TotalHeal,
		},
		Economy: MatchEconomy{
			GoldEarned: player.GoldEarned,
			Cs:         player.TotalCs(),
		},
		Vision: MatchVision{
			VisionScore: player.VisionScore,
			WardsPlaced: player.WardsPlaced,
			WardsKilled: player.WardsKilled,
		},
		Items:          items,
		SummonerSpells: []int{player.Summoner1Id, player.Summoner2Id},
		Challenges:     challenges,
	}

	if minutes > 0 {
		info.Economy.GoldPerMinute = float64(player.GoldEarned) / minutes
		info.Economy.CsPerMinute = float64(player.TotalCs()) / minutes
	}

	return info
}

// findParticipant returns the participant matching the puuid, or nil.
func findParticipant(match *matchfetcher.MatchData, puuid string) *matchfetcher.MatchPlayer {
	for i := range match.Info.Participants {
		if match.Info.Participants[i].Puuid == puuid {
			return &match.Info.Participants[i]
		}
	}
	return nil
}

// topCounts keeps the N highest counts of a frequency table.
// Ties keep the first-seen order of the keys.
func topCounts(counts map[string]int, order []string, limit int) map[string]int {
	keys := make([]string, len(order))
	copy(keys, order)
	sort.SliceStable(keys, func(i, j int) bool {
		return counts[keys[i]] > counts[keys[j]]
	})

	if len(keys) > limit {
		keys = keys[:limit]
	}

	top := make(map[string]int, len(keys))
	for _, key := range keys {
		top[key] = counts[key]
	}
	return top
}

// CalculateKda computes (kills + assists) / deaths.
// A deathless game returns kills + assists instead of a division by zero.
func CalculateKda(kills, deaths, assists int) float64 {
	if deaths == 0 {
		return float64(kills + assists)
	}
	return float64(kills+assists) / float64(deaths)
}
