package aggregator

// ScoreTier awards points when a value reaches the minimum.
type ScoreTier struct {
	Min    float64
	Points int
}

// RatingBucket maps a minimum score to a qualitative label.
type RatingBucket struct {
	MinScore int
	Label    string
}

// RatingThresholds drive the per match performance rating.
// The score is out of 100: KDA up to 40, kill participation up to 30 and the
// win bonus worth 30.
type RatingThresholds struct {
	KdaTiers          []ScoreTier
	ParticipationTier []ScoreTier
	WinPoints         int
	Buckets           []RatingBucket
	DefaultLabel      string
}

// MatchStrengthThresholds drive the per match key strengths list.
type MatchStrengthThresholds struct {
	HighKda          float64
	StrongTeamFight  float64
	ExcellentFarming float64
	GoodVision       int
	HighDamage       int
	LowDeaths        int
	DefaultEntry     string
}

// MatchImprovementThresholds drive the per match improvement areas list.
type MatchImprovementThresholds struct {
	HighDeaths       int
	LowCsPerMinute   float64
	LowVision        int
	LowParticipation float64
	LowDamage        int
	DefaultEntry     string
}

// NotableEventThresholds drive the per match notable events list.
type NotableEventThresholds struct {
	Multikill        int
	KillingSpree     int
	HighKills        int
	HighGold         int
	FastWinMaxSecond int
}

// PhaseThresholds drive the qualitative early/mid/late buckets.
// They are proxies over the final scoreboard since per minute timeline data is
// not available to the aggregation.
type PhaseThresholds struct {
	EarlyStrongKda   float64
	EarlyStrongCs    float64
	EarlyGoodKda     float64
	EarlyGoodCs      float64
	EarlyAverageKda  float64
	EarlyAverageCs   float64
	MidStrongKp      float64
	MidStrongDamage  int
	MidGoodKp        float64
	MidGoodDamage    int
	MidAverageKp     float64
	MidAverageDamage int
	LateStrongDeaths int
	LateStrongDamage int
	LateGoodDeaths   int
	LateAverageDeath int
}

// SummaryInsightThresholds drive the summary level strengths and areas lists.
type SummaryInsightThresholds struct {
	HighParticipation float64
	StrongWinRate     float64
	FocusedPool       float64
	GoodSurvivability float64
	LowVisionScore    float64
	LowCsPerMinute    float64
	LowWinRate        float64
}

// GameLengthBuckets split the matches by duration in seconds.
type GameLengthBuckets struct {
	ShortMaxSeconds  int
	MediumMaxSeconds int
}

// Thresholds groups every heuristic knob of the aggregation, so the rules can
// be tuned and tested independently of the fold itself.
type Thresholds struct {
	Rating            RatingThresholds
	MatchStrengths    MatchStrengthThresholds
	MatchImprovements MatchImprovementThresholds
	NotableEvents     NotableEventThresholds
	Phases            PhaseThresholds
	SummaryInsights   SummaryInsightThresholds
	GameLength        GameLengthBuckets

	// Fraction of the match set compared on each end for the improvement trend.
	TrendSampleRatio float64

	// Multikills above this value count as a multikill game.
	MultikillMin int

	TopChampions  int
	TopItems      int
	TopSpellPairs int
	RecentMatches int
}

// DefaultThresholds returns the standard heuristic table.
func DefaultThresholds() *Thresholds {
	return &Thresholds{
		Rating: RatingThresholds{
			KdaTiers: []ScoreTier{
				{Min: 3, Points: 40},
				{Min: 2, Points: 30},
				{Min: 1.5, Points: 20},
				{Min: 1, Points: 10},
			},
			ParticipationTier: []ScoreTier{
				{Min: 0.7, Points: 30},
				{Min: 0.5, Points: 20},
				{Min: 0.3, Points: 10},
			},
			WinPoints: 30,
			Buckets: []RatingBucket{
				{MinScore: 80, Label: "Excellent"},
				{MinScore: 60, Label: "Good"},
				{MinScore: 40, Label: "Average"},
				{MinScore: 20, Label: "Below Average"},
			},
			DefaultLabel: "Poor",
		},
		MatchStrengths: MatchStrengthThresholds{
			HighKda:          2.5,
			StrongTeamFight:  0.6,
			ExcellentFarming: 6,
			GoodVision:       15,
			HighDamage:       20000,
			LowDeaths:        3,
			DefaultEntry:     "Consistent gameplay",
		},
		MatchImprovements: MatchImprovementThresholds{
			HighDeaths:       8,
			LowCsPerMinute:   4,
			LowVision:        8,
			LowParticipation: 0.4,
			LowDamage:        10000,
			DefaultEntry:     "Continue current performance level",
		},
		NotableEvents: NotableEventThresholds{
			Multikill:        3,
			KillingSpree:     5,
			HighKills:        15,
			HighGold:         15000,
			FastWinMaxSecond: 1200,
		},
		Phases: PhaseThresholds{
			EarlyStrongKda:   2,
			EarlyStrongCs:    5,
			EarlyGoodKda:     1.5,
			EarlyGoodCs:      4,
			EarlyAverageKda:  1,
			EarlyAverageCs:   3,
			MidStrongKp:      0.7,
			MidStrongDamage:  15000,
			MidGoodKp:        0.5,
			MidGoodDamage:    10000,
			MidAverageKp:     0.3,
			MidAverageDamage: 5000,
			LateStrongDeaths: 5,
			LateStrongDamage: 20000,
			LateGoodDeaths:   7,
			LateAverageDeath: 8,
		},
		SummaryInsights: SummaryInsightThresholds{
			HighParticipation: 0.6,
			StrongWinRate:     55,
			FocusedPool:       0.3,
			GoodSurvivability: 6,
			LowVisionScore:    10,
			LowCsPerMinute:    5,
			LowWinRate:        45,
		},
		GameLength: GameLengthBuckets{
			ShortMaxSeconds:  1200,
			MediumMaxSeconds: 2100,
		},
		TrendSampleRatio: 0.4,
		MultikillMin:     1,
		TopChampions:     5,
		TopItems:         10,
		TopSpellPairs:    5,
		RecentMatches:    5,
	}
}
