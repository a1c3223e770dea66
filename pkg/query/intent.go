// Package query implements the pure query core of RegattaDB: the
// QueryIntent value object, the input sanitizer, the deterministic SQL
// builder, and the result summarizer. The package performs no I/O; the
// classifier and the store are external collaborators.
package query

// QueryType enumerates the closed set of intent kinds the classifier may
// produce. Anything outside this set maps to the default TypeRaceListing
// variant rather than undefined behavior.
type QueryType string

const (
	// TypeSailorSearch looks up skippers with aggregate race, win and
	// podium counts.
	TypeSailorSearch QueryType = "sailor_search"

	// TypeDatabaseStatus reports database-wide statistics.
	TypeDatabaseStatus QueryType = "database_status"

	// TypeRegattaListing lists distinct regattas.
	TypeRegattaListing QueryType = "regatta_listing"

	// TypeClubRoster lists skippers grouped under their yacht clubs.
	TypeClubRoster QueryType = "club_roster"

	// TypeRaceListing is the raw race/result listing and the default
	// variant for unrecognized classifier output.
	TypeRaceListing QueryType = "race_listing"

	// TypeWinner lists first-place finishes; it composes an implicit
	// position-equals-first condition with any explicit filters.
	TypeWinner QueryType = "winner"
)

// TimeFrameThisYear is the only symbolic time frame the builder expands.
// An explicit year on the intent always wins over it.
const TimeFrameThisYear = "this_year"

// ParseQueryType maps a raw classifier string to a QueryType.
// Unknown or empty input returns the default TypeRaceListing.
func ParseQueryType(s string) QueryType {
	switch QueryType(s) {
	case TypeSailorSearch, TypeDatabaseStatus, TypeRegattaListing,
		TypeClubRoster, TypeRaceListing, TypeWinner:
		return QueryType(s)
	default:
		return TypeRaceListing
	}
}

// Intent is the structured interpretation of a free-text question.
// It is produced by the classifier, consumed once by Build, and never
// persisted. Zero values mean the field is absent.
type Intent struct {
	Type        QueryType `json:"queryType"`
	SailorName  string    `json:"sailorName,omitempty"`
	YachtClub   string    `json:"yachtClub,omitempty"`
	RegattaName string    `json:"regattaName,omitempty"`
	Location    string    `json:"location,omitempty"`
	Year        int       `json:"year,omitempty"`
	Position    int       `json:"position,omitempty"`
	TimeFrame   string    `json:"timeFrame,omitempty"`
}
