package aggregator

import "time"

// PlayerSummary is the aggregate produced for one (player, match set) pair.
// It is built by a single pass over the raw matches plus a finalization pass,
// and is never mutated afterwards.
type PlayerSummary struct {
	Puuid          string    `json:"puuid"`
	GeneratedAt    time.Time `json:"generated_at"`
	TotalMatches   int       `json:"total_matches"`
	SkippedMatches int       `json:"skipped_matches"`

	Performance        PerformanceStats   `json:"performance"`
	CombatStyle        CombatStyle        `json:"combat_style"`
	ChampionAnalysis   ChampionAnalysis   `json:"champion_analysis"`
	Itemization        Itemization        `json:"itemization"`
	GameFlow           GameFlow           `json:"game_flow"`
	BehavioralInsights BehavioralInsights `json:"behavioral_insights"`

	// Detailed match data for AI context.
	RecentMatchesDetailed []*MatchInfo `json:"recent_matches_detailed"`

	// Legacy fields kept for compatibility with older summary consumers.
	Overview      Overview                  `json:"overview"`
	ChampionStats map[string]*ChampionStats `json:"champion_stats"`
	RecentMatches []CompactMatch            `json:"recent_matches"`
}

// PerformanceStats holds the averaged performance metrics.
type PerformanceStats struct {
	AvgKda               float64 `json:"avg_kda"`
	WinRate              float64 `json:"win_rate"`
	AvgKillParticipation float64 `json:"avg_kill_participation"`
	AvgDamagePerMinute   float64 `json:"avg_damage_per_minute"`
	AvgGoldPerMinute     float64 `json:"avg_gold_per_minute"`
	AvgVisionScore       float64 `json:"avg_vision_score"`
	AvgCsPerMinute       float64 `json:"avg_cs_per_minute"`
}

// CombatStyle holds the combat analytics of the player.
type CombatStyle struct {
	AvgDamageToChampions   float64                `json:"avg_damage_to_champions"`
	AvgDamageTaken         float64                `json:"avg_damage_taken"`
	DamageTypeDistribution DamageTypeDistribution `json:"damage_type_distribution"`
	Survivability          Survivability          `json:"survivability"`
	Aggression             Aggression             `json:"aggression"`
}

// DamageTypeDistribution is the percentage split of the dealt damage types.
type DamageTypeDistribution struct {
	PhysicalPercent float64 `json:"physical_percent"`
	MagicPercent    float64 `json:"magic_percent"`
	TruePercent     float64 `json:"true_percent"`
}

// Survivability stats of the player.
type Survivability struct {
	AvgDeaths              float64 `json:"avg_deaths"`
	AvgLongestTimeAlive    float64 `json:"avg_longest_time_alive"`
	AvgDamageTakenPerDeath float64 `json:"avg_damage_taken_per_death"`
}

// Aggression stats of the player.
type Aggression struct {
	AvgMultikills    float64 `json:"avg_multikills"`
	LargestMultikill int     `json:"largest_multikill"`
	SoloKillsTotal   int     `json:"solo_kills_total"`
	KillsUnderTurret int     `json:"kills_under_turret"`
}

// ChampionAnalysis summarizes the champion pool of the player.
type ChampionAnalysis struct {
	ChampionPoolSize    int               `json:"champion_pool_size"`
	MostPlayedChampions []ChampionRanking `json:"most_played_champions"`
	ChampionDiversity   float64           `json:"champion_diversity"`
}

// ChampionRanking is one entry of the most played champions list.
type ChampionRanking struct {
	Name      string  `json:"name"`
	Games     int     `json:"games"`
	WinRate   float64 `json:"win_rate"`
	AvgKda    float64 `json:"avg_kda"`
	AvgDamage float64 `json:"avg_damage"`
}

// ChampionStats is the running stat table of a single champion.
type ChampionStats struct {
	GamesPlayed          int     `json:"games_played"`
	Wins                 int     `json:"wins"`
	Losses               int     `json:"losses"`
	TotalKills           int     `json:"total_kills"`
	TotalDeaths          int     `json:"total_deaths"`
	TotalAssists         int     `json:"total_assists"`
	TotalDamage          int     `json:"total_damage"`
	AvgKda               float64 `json:"avg_kda"`
	AvgKillParticipation float64 `json:"avg_kill_participation"`
}

// Itemization holds the frequency tables of items and summoner spells.
type Itemization struct {
	MostCommonItems map[string]int `json:"most_common_items"`
	BuildDiversity  float64        `json:"build_diversity"`

	// Keyed by "spell1-spell2" in pick order. The key is order sensitive,
	// so (flash, ignite) and (ignite, flash) count as separate loadouts.
	SummonerSpellPreferences map[string]int `json:"summoner_spell_preferences"`
}

// GameFlow holds the game mode and game length breakdowns.
type GameFlow struct {
	AvgGameDuration         float64               `json:"avg_game_duration"`
	PreferredGameModes      map[string]int        `json:"preferred_game_modes"`
	PerformanceByGameLength PerformanceByDuration `json:"performance_by_game_length"`
}

// PerformanceByDuration buckets the matches by duration.
type PerformanceByDuration struct {
	ShortGames  DurationBucket `json:"short_games"`
	MediumGames DurationBucket `json:"medium_games"`
	LongGames   DurationBucket `json:"long_games"`
}

// DurationBucket is the aggregated performance of one game length bucket.
type DurationBucket struct {
	Count   int     `json:"count"`
	WinRate float64 `json:"win_rate"`
	AvgKda  float64 `json:"avg_kda"`
}

// BehavioralInsights holds the heuristic summary of the play patterns.
// The scores are bounded heuristics over the match set, not statistical
// guarantees.
type BehavioralInsights struct {
	ConsistencyScore    float64  `json:"consistency_score"`
	ImprovementTrend    float64  `json:"improvement_trend"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
}

// Overview is the legacy running totals block.
type Overview struct {
	TotalKills       int     `json:"total_kills"`
	TotalDeaths      int     `json:"total_deaths"`
	TotalAssists     int     `json:"total_assists"`
	TotalWins        int     `json:"total_wins"`
	TotalLosses      int     `json:"total_losses"`
	TotalDamageDealt int     `json:"total_damage_dealt"`
	TotalGoldEarned  int     `json:"total_gold_earned"`
	AvgKda           float64 `json:"avg_kda"`
}

// MatchInfo is the normalized per match view of the target player.
// Computed once per match and never mutated after creation.
type MatchInfo struct {
	GameId         int64              `json:"game_id"`
	GameCreation   int64              `json:"game_creation"`
	GameDuration   int                `json:"game_duration"`
	GameMode       string             `json:"game_mode"`
	GameVersion    string             `json:"game_version"`
	Champion       ChampionInfo       `json:"champion"`
	Performance    MatchPerformance   `json:"performance"`
	Combat         MatchCombat        `json:"combat"`
	Economy        MatchEconomy       `json:"economy"`
	Vision         MatchVision        `json:"vision"`
	Items          []int              `json:"items"`
	SummonerSpells []int              `json:"summoner_spells"`
	Challenges     map[string]float64 `json:"challenges"`
}

// ChampionInfo identifies the champion played on a match.
type ChampionInfo struct {
	Name  string `json:"name"`
	Id    int    `json:"id"`
	Level int    `json:"level"`
}

// MatchPerformance is the per match performance block.
type MatchPerformance struct {
	Kills             int     `json:"kills"`
	Deaths            int     `json:"deaths"`
	Assists           int     `json:"assists"`
	Kda               float64 `json:"kda"`
	Win               bool    `json:"win"`
	KillParticipation float64 `json:"kill_participation"`
}

// MatchCombat is the per match combat block.
type MatchCombat struct {
	DamageToChampions   int `json:"damage_to_champions"`
	TotalDamageDealt    int `json:"total_damage_dealt"`
	DamageTaken         int `json:"damage_taken"`
	PhysicalDamage      int `json:"physical_damage"`
	MagicDamage         int `json:"magic_damage"`
	TrueDamage          int `json:"true_damage"`
	LargestKillingSpree int `json:"largest_killing_spree"`
	LargestMultikill    int `json:"largest_multikill"`
	HealingDone         int `json:"healing_done"`
}

// MatchEconomy is the per match economy block.
type MatchEconomy struct {
	GoldEarned    int     `json:"gold_earned"`
	Cs            int     `json:"cs"`
	GoldPerMinute float64 `json:"gold_per_minute"`
	CsPerMinute   float64 `json:"cs_per_minute"`
}

// MatchVision is the per match vision block.
type MatchVision struct {
	VisionScore int `json:"vision_score"`
	WardsPlaced int `json:"wards_placed"`
	WardsKilled int `json:"wards_killed"`
}

// CompactMatch is the legacy compact shape of a recent match.
type CompactMatch struct {
	GameId       int64  `json:"game_id"`
	GameCreation int64  `json:"game_creation"`
	GameDuration int    `json:"game_duration"`
	GameMode     string `json:"game_mode"`
	ChampionName string `json:"champion_name"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	DamageDealt  int    `json:"damage_dealt"`
	GoldEarned   int    `json:"gold_earned"`
	Win          bool   `json:"win"`
}

// MatchSummary wraps one MatchInfo with the heuristic fields used as AI context.
type MatchSummary struct {
	MatchId        int64          `json:"match_id"`
	Puuid          string         `json:"puuid"`
	GeneratedAt    time.Time      `json:"generated_at"`
	MatchData      *MatchInfo     `json:"match_data"`
	AiInsights     MatchInsights  `json:"ai_insights"`
	ContextualData ContextualData `json:"contextual_data"`
}

// MatchInsights are the fixed threshold heuristics of a single match.
type MatchInsights struct {
	PerformanceRating string   `json:"performance_rating"`
	KeyStrengths      []string `json:"key_strengths"`
	ImprovementAreas  []string `json:"improvement_areas"`
	NotableEvents     []string `json:"notable_events"`
}

// ContextualData carries the team snapshots and the phase buckets of a match.
type ContextualData struct {
	TeamComposition  TeamComposition      `json:"team_composition"`
	EnemyComposition TeamComposition      `json:"enemy_composition"`
	TimelineSummary  MatchTimelineSummary `json:"match_timeline_summary"`
}

// TeamComposition is a snapshot of one side of the match.
type TeamComposition struct {
	Champions []TeamChampion `json:"champions"`
	TeamStats TeamStats      `json:"team_stats"`
}

// TeamChampion is one player of a team snapshot.
type TeamChampion struct {
	Champion     string `json:"champion"`
	Role         string `json:"role"`
	SummonerName string `json:"summoner_name"`
}

// TeamStats are the combined totals of one team.
type TeamStats struct {
	TotalKills   int `json:"total_kills"`
	TotalDeaths  int `json:"total_deaths"`
	TotalAssists int `json:"total_assists"`
	TotalDamage  int `json:"total_damage"`
	TotalGold    int `json:"total_gold"`
}

// MatchTimelineSummary holds the qualitative phase buckets.
// These are proxies over the final scoreboard, not timeline derived data.
type MatchTimelineSummary struct {
	EarlyGamePerformance string `json:"early_game_performance"`
	MidGamePerformance   string `json:"mid_game_performance"`
	LateGamePerformance  string `json:"late_game_performance"`
}

// Result is the output pair of one aggregation call.
type Result struct {
	Summary        *PlayerSummary
	MatchSummaries []*MatchSummary

	// Matches excluded because the target player was missing or the record
	// was nil. Kept for diagnostics only.
	Skipped int
}
