package constants

// Chat and context constants
const (
	// DefaultMaxContextSize is the max number of turns kept per chat.
	DefaultMaxContextSize = 60
)

// AI model constants
const (
	// GeminiModelName is the Gemini model used for needs extraction.
	GeminiModelName = "gemini-2.5-flash"

	// AITemperature keeps extraction near-deterministic.
	AITemperature = 0.1

	// AITopK top-K sampling parameter
	AITopK = 20

	// AITopP top-P sampling parameter
	AITopP = 0.9

	// MaxRetries max attempts per extraction request
	MaxRetries = 3

	// RetryDelay seconds to wait between attempts
	RetryDelay = 10
)

// Build tier keys. Exactly these four tiers exist.
const (
	TierBudgetOffice   = "budget_office"
	TierMidRangeGaming = "mid_range_gaming"
	TierHighEndGaming  = "high_end_gaming"
	TierProWorkstation = "professional_workstation"
)

// Budget thresholds of the tier selection policy.
const (
	// HighEndGamingBudget is the inclusive lower bound for the high-end
	// gaming tier. Any gaming budget at or above it maps to the same tier;
	// there is deliberately no upper bound.
	HighEndGamingBudget = 1600

	// FallbackOfficeBudget is the inclusive cap for the budget-office tier
	// when the use case is unknown.
	FallbackOfficeBudget = 700

	// FallbackMidRangeBudget is the inclusive cap for the mid-range tier
	// when the use case is unknown.
	FallbackMidRangeBudget = 1600
)

// Part price lookup constants
const (
	// SerpAPIBaseURL is the search endpoint of the price lookup service.
	SerpAPIBaseURL = "https://serpapi.com/search.json"

	// LookupTimeout seconds per price lookup request
	LookupTimeout = 20
)
