package entity

import "strings"

// UseCase is the closed set of PC purposes the advisor recognizes.
type UseCase string

const (
	UseCaseGaming  UseCase = "gaming"
	UseCaseOffice  UseCase = "office"
	UseCaseEditing UseCase = "editing"

	// UseCaseUnknown is the "not yet determined" sentinel.
	UseCaseUnknown UseCase = "unknown"
)

// NeedsRecord is what the intent extractor derives from a full conversation
// transcript. It is recomputed fresh every turn; conversation history is the
// only durable state and is owned by the caller.
type NeedsRecord struct {
	// Budget in whole dollars. 0 means "not yet determined".
	Budget int `json:"budget"`

	// UseCase is one of gaming, office, editing or unknown.
	UseCase UseCase `json:"use_case"`

	// Confirmed is true only once the user has explicitly affirmed the
	// restated budget and use case.
	Confirmed bool `json:"has_confirmed"`
}

// EmptyNeeds is the all-sentinel record every extraction failure degrades to.
func EmptyNeeds() NeedsRecord {
	return NeedsRecord{Budget: 0, UseCase: UseCaseUnknown, Confirmed: false}
}

// Normalize canonicalizes a record coming off the wire so it is always a
// valid value of the closed domain: negative budgets become the sentinel 0,
// and free-form use-case strings ("high-end gaming") collapse onto the
// matching keyword, or onto unknown.
func (n NeedsRecord) Normalize() NeedsRecord {
	if n.Budget < 0 {
		n.Budget = 0
	}
	lower := strings.ToLower(string(n.UseCase))
	switch {
	case strings.Contains(lower, string(UseCaseGaming)):
		n.UseCase = UseCaseGaming
	case strings.Contains(lower, string(UseCaseEditing)):
		n.UseCase = UseCaseEditing
	case strings.Contains(lower, string(UseCaseOffice)):
		n.UseCase = UseCaseOffice
	default:
		n.UseCase = UseCaseUnknown
	}
	return n
}
