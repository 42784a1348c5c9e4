package filters

// AccountSearchParams are the query parameters of the riot account proxy.
type AccountSearchParams struct {
	GameName string `form:"gameName" binding:"required"`
	TagLine  string `form:"tagLine" binding:"required"`
	Region   string `form:"region"`
}

// SummonerParams are the query parameters of the riot summoner proxy.
type SummonerParams struct {
	Puuid    string `form:"puuid" binding:"required"`
	Platform string `form:"platform"`
}

// MatchHistoryParams are the query parameters of the riot match proxy.
type MatchHistoryParams struct {
	Puuid  string `form:"puuid" binding:"required"`
	Region string `form:"region"`
	Count  int    `form:"count"`
}

// LakePlayerParams are the query parameters of the lake player endpoint.
type LakePlayerParams struct {
	Puuid          string `form:"puuid" binding:"required"`
	Cluster        string `form:"cluster"`
	Platform       string `form:"platform"`
	IncludeMatches bool   `form:"includeMatches"`
	MatchCount     int    `form:"matchCount"`
}

// LakeMatchParams are the query parameters of the lake match endpoint.
type LakeMatchParams struct {
	Puuid           string `form:"puuid" binding:"required"`
	MatchId         string `form:"matchId" binding:"required"`
	Cluster         string `form:"cluster"`
	Platform        string `form:"platform"`
	IncludeTimeline bool   `form:"includeTimeline"`
}
