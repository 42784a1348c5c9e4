package filters

// SummaryGenerateParams are the query parameters of the summary generation endpoint.
type SummaryGenerateParams struct {
	Puuid    string `form:"puuid" binding:"required"`
	Cluster  string `form:"cluster"`
	Platform string `form:"platform"`
	Limit    int    `form:"limit"`
}

// SummaryGetParams are the query parameters of the summary read endpoints.
type SummaryGetParams struct {
	Puuid string `form:"puuid" binding:"required"`
}

// AnalysisParams are the query parameters of the bedrock analysis endpoint.
type AnalysisParams struct {
	Puuid          string `form:"puuid" binding:"required"`
	Persona        string `form:"persona"`
	IncludeMatches bool   `form:"includeMatches"`
	MatchCount     int    `form:"matchCount"`
}

// QuickInsightParams is the body of the quick insight endpoint.
type QuickInsightParams struct {
	Puuid    string `json:"puuid" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// RoastParams is the body of the roast endpoint.
type RoastParams struct {
	Puuid  string `json:"puuid" binding:"required"`
	Rating string `json:"rating"`
}

// MatchAnalysisParams are the query parameters of the single match analysis endpoint.
type MatchAnalysisParams struct {
	Puuid  string `form:"puuid" binding:"required"`
	GameId int64  `form:"gameId" binding:"required"`
}
