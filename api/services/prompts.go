package services

import "fmt"

// Persona identifiers accepted by the analysis endpoint.
const (
	PersonaInsights    = "insights"
	PersonaRoast       = "roast"
	PersonaImprovement = "improvement"
)

// Quick insight categories.
const (
	CategoryMacro = "macro"
	CategoryMicro = "micro"
	CategoryDraft = "draft"
)

// personaConfig binds a persona to its system prompt and sampling values.
type personaConfig struct {
	system      string
	temperature float64
	maxTokens   int
}

var personas = map[string]personaConfig{
	PersonaInsights: {
		system: "You are an expert League of Legends coach reviewing a player's year of ranked games. " +
			"Base every statement on the statistics you are given, citing the numbers that support it. " +
			"Cover their playstyle identity, their champion pool, their strongest habits and the two or " +
			"three patterns that cost them the most games. Be direct but encouraging.",
		temperature: 0.6,
		maxTokens:   4000,
	},
	PersonaRoast: {
		system: "You are a stand-up comedian doing a roast of a League of Legends player based on their " +
			"yearly stats. Be funny and merciless about the numbers, never about the person. Every joke " +
			"must reference a real statistic from the data. End with one backhanded compliment.",
		temperature: 0.9,
		maxTokens:   4000,
	},
	PersonaImprovement: {
		system: "You are a high-elo League of Legends analyst writing an improvement plan. From the " +
			"statistics provided, identify the three highest impact weaknesses and give concrete, " +
			"practicable drills for each. Order them by expected win rate gain and explain the reasoning.",
		temperature: 0.7,
		maxTokens:   5000,
	},
}

var quickInsightPrompts = map[string]string{
	CategoryMacro: "In at most three sentences, what does this player's vision, objective and game " +
		"length data say about their macro play? Stats: %s",
	CategoryMicro: "In at most three sentences, what do this player's KDA, damage and cs numbers say " +
		"about their mechanics? Stats: %s",
	CategoryDraft: "In at most three sentences, what does this player's champion pool and win rate per " +
		"champion suggest they should pick more or less? Stats: %s",
}

// analysisPrompt builds the user message of a full player analysis.
func analysisPrompt(summaryJson string, matchesJson string) string {
	prompt := fmt.Sprintf("Here is the player's aggregated yearly summary:\n\n%s", summaryJson)
	if matchesJson != "" {
		prompt += fmt.Sprintf("\n\nAnd their most recent analyzed matches:\n\n%s", matchesJson)
	}

	return prompt + "\n\nWrite your analysis now."
}

// roastPrompt builds the user message of a roast, clamping the requested rating.
func roastPrompt(summaryJson string, rating string) string {
	if rating != "pg13" {
		rating = "pg"
	}

	return fmt.Sprintf("Keep the roast %s rated. Here are the stats:\n\n%s", rating, summaryJson)
}

// matchAnalysisPrompt builds the user message of a single match breakdown.
func matchAnalysisPrompt(matchJson string) string {
	return fmt.Sprintf("Give a short breakdown of this single match: what went well, what went wrong "+
		"and the one decision that mattered most. At most five sentences.\n\n%s", matchJson)
}
