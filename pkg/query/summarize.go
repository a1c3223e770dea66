package query

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// StatusRow holds database-wide statistics scanned from the status
// template. Earliest and Latest are nil when the store has no dated
// races.
type StatusRow struct {
	Skippers int
	Races    int
	Results  int
	Earliest *time.Time
	Latest   *time.Time
}

// SailorStats holds one aggregate row from the sailor search template.
type SailorStats struct {
	Name         string
	YachtClub    string
	Races        int
	Wins         int
	Podiums      int
	BestPosition int
}

// Rows carries already-fetched query results into the summarizer.
// Status is set for database_status intents, Sailors for sailor_search;
// Count is the number of rows the query returned for any type.
type Rows struct {
	Status  *StatusRow
	Sailors []SailorStats
	Count   int
}

// noResults maps each query type to its fixed empty-result message.
var noResults = map[QueryType]string{
	TypeSailorSearch:   "No sailors match that search.",
	TypeRegattaListing: "No regattas match that search.",
	TypeClubRoster:     "No club members match that search.",
	TypeRaceListing:    "No races match that search.",
	TypeWinner:         "No winning results match that search.",
}

// Summarize turns rows returned by the store into a human-readable
// message, keyed by intent type. It is pure formatting over
// already-fetched rows and has no side effects.
func Summarize(qt QueryType, rows Rows) string {
	if qt == TypeDatabaseStatus {
		return summarizeStatus(rows.Status)
	}

	if rows.Count == 0 {
		if msg, ok := noResults[qt]; ok {
			return msg
		}
		return noResults[TypeRaceListing]
	}

	if qt == TypeSailorSearch && len(rows.Sailors) == 1 {
		return summarizeSailor(rows.Sailors[0])
	}

	noun := "records"
	if rows.Count == 1 {
		noun = "record"
	}
	return fmt.Sprintf("Found %s matching %s.",
		humanize.Comma(int64(rows.Count)), noun)
}

func summarizeStatus(st *StatusRow) string {
	if st == nil {
		st = &StatusRow{}
	}
	msg := fmt.Sprintf(
		"The database holds %s skippers, %s races and %s results",
		humanize.Comma(int64(st.Skippers)),
		humanize.Comma(int64(st.Races)),
		humanize.Comma(int64(st.Results)),
	)
	if st.Earliest != nil && st.Latest != nil {
		msg += fmt.Sprintf(", spanning %s to %s",
			st.Earliest.Format("2006-01-02"),
			st.Latest.Format("2006-01-02"))
	}
	return msg + "."
}

func summarizeSailor(s SailorStats) string {
	name := s.Name
	if s.YachtClub != "" {
		name = fmt.Sprintf("%s (%s)", s.Name, s.YachtClub)
	}
	races := "races"
	if s.Races == 1 {
		races = "race"
	}
	msg := fmt.Sprintf("%s has %d recorded %s with %d wins",
		name, s.Races, races, s.Wins)
	if s.BestPosition > 0 {
		msg += fmt.Sprintf("; best finish: %s", Ordinal(s.BestPosition))
	}
	return msg + "."
}

// Ordinal formats a finishing position with its English ordinal suffix:
// 1 -> "1st", 2 -> "2nd", 3 -> "3rd", 11..13 -> "11th".."13th",
// everything else "Nth".
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
