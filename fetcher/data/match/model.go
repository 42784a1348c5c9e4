package matchfetcher

// MatchData is the return type of the match_v5 endpoint.
// The data lake stores the exact same shape, so the aggregation pipeline
// consumes this model regardless of where the match came from.
type MatchData struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata contains the match id and the participant puuids.
type MatchMetadata struct {
	MatchId      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

// MatchInfo contains the basic match metadata.
// Any field missing on the raw JSON decodes to its zero value, which is the
// documented default for the aggregation.
type MatchInfo struct {
	EndOfGameResult string        `json:"endOfGameResult"`
	GameId          int64         `json:"gameId"`
	GameCreation    RiotTime      `json:"gameCreation"`
	GameDuration    int           `json:"gameDuration"`
	GameMode        string        `json:"gameMode"`
	GameVersion     string        `json:"gameVersion"`
	Participants    []MatchPlayer `json:"participants"`
	PlatformId      string        `json:"platformId"`
	QueueId         int           `json:"queueId"`
	Teams           []TeamInfo    `json:"teams"`
}

// MatchPlayer contains the stats and information about a given player in a Match.
type MatchPlayer struct {
	Assists                     int                `json:"assists"`
	ChampionLevel               int                `json:"champLevel"`
	ChampionId                  int                `json:"championId"`
	ChampionName                string             `json:"championName"`
	Challenges                  map[string]float64 `json:"challenges"`
	Deaths                      int                `json:"deaths"`
	GoldEarned                  int                `json:"goldEarned"`
	GoldSpent                   int                `json:"goldSpent"`
	IndividualPosition          string             `json:"individualPosition"`
	Item0                       int                `json:"item0"`
	Item1                       int                `json:"item1"`
	Item2                       int                `json:"item2"`
	Item3                       int                `json:"item3"`
	Item4                       int                `json:"item4"`
	Item5                       int                `json:"item5"`
	Item6                       int                `json:"item6"`
	Kills                       int                `json:"kills"`
	LargestKillingSpree         int                `json:"largestKillingSpree"`
	LargestMultiKill            int                `json:"largestMultiKill"`
	LongestTimeSpentLiving      int                `json:"longestTimeSpentLiving"`
	MagicDamageDealt            int                `json:"magicDamageDealt"`
	MagicDamageDealtToChampions int                `json:"magicDamageDealtToChampions"`
	MagicDamageTaken            int                `json:"magicDamageTaken"`
	NeutralMinionsKilled        int                `json:"neutralMinionsKilled"`
	PhysicalDamageDealt         int                `json:"physicalDamageDealt"`
	PhysicalDamageTaken         int                `json:"physicalDamageTaken"`
	Puuid                       string             `json:"puuid"`
	RiotIdGameName              string             `json:"riotIdGameName"`
	RiotIdTagline               string             `json:"riotIdTagline"`
	Summoner1Id                 int                `json:"summoner1Id"`
	Summoner2Id                 int                `json:"summoner2Id"`
	SummonerLevel               int                `json:"summonerLevel"`
	SummonerName                string             `json:"summonerName"`
	TeamId                      int                `json:"teamId"`
	TeamPosition                string             `json:"teamPosition"`
	TotalDamageDealt            int                `json:"totalDamageDealt"`
	TotalDamageDealtToChampions int                `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int                `json:"totalDamageTaken"`
	TotalHeal                   int                `json:"totalHeal"`
	TotalMinionsKilled          int                `json:"totalMinionsKilled"`
	TrueDamageDealt             int                `json:"trueDamageDealt"`
	TrueDamageTaken             int                `json:"trueDamageTaken"`
	VisionScore                 int                `json:"visionScore"`
	WardsKilled                 int                `json:"wardsKilled"`
	WardsPlaced                 int                `json:"wardsPlaced"`
	Win                         bool               `json:"win"`
}

// TeamInfo contains the bans, id and if the team won.
type TeamInfo struct {
	Bans   []Ban `json:"bans"`
	TeamId int   `json:"teamId"`
	Win    bool  `json:"win"`
}

// Ban information.
type Ban struct {
	ChampionId int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

// Items returns the item slots of the player, empty slots included.
func (p *MatchPlayer) Items() []int {
	return []int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

// TotalCs returns the lane and jungle creep score combined.
func (p *MatchPlayer) TotalCs() int {
	return p.TotalMinionsKilled + p.NeutralMinionsKilled
}
