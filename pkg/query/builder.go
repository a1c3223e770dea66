package query

import (
	"fmt"
	"strings"
	"time"
)

// baseTemplates maps each query type to a complete, statically known SQL
// skeleton. Each template carries its own FROM/JOIN shape and its own
// placeholder numbering; templates are never mixed across query types.
// Every non-status template joins all three tables so that any sanitized
// filter can be appended to any of them.
var baseTemplates = map[QueryType]string{
	TypeSailorSearch: `SELECT s.name, s.yacht_club,
  COUNT(res.id) AS races,
  COUNT(*) FILTER (WHERE res.position = 1) AS wins,
  COUNT(*) FILTER (WHERE res.position <= 3) AS podiums,
  MIN(res.position) AS best_position
FROM skippers s
JOIN results res ON res.skipper_id = s.id
JOIN races r ON r.id = res.race_id
WHERE 1=1`,

	TypeDatabaseStatus: `SELECT
  (SELECT COUNT(*) FROM skippers) AS skippers,
  (SELECT COUNT(*) FROM races) AS races,
  (SELECT COUNT(*) FROM results) AS results,
  (SELECT MIN(regatta_date) FROM races) AS earliest,
  (SELECT MAX(regatta_date) FROM races) AS latest`,

	TypeRegattaListing: `SELECT DISTINCT r.regatta_name, r.regatta_date, r.category
FROM races r
LEFT JOIN results res ON res.race_id = r.id
LEFT JOIN skippers s ON s.id = res.skipper_id
WHERE 1=1`,

	TypeClubRoster: `SELECT DISTINCT s.name, s.yacht_club
FROM skippers s
LEFT JOIN results res ON res.skipper_id = s.id
LEFT JOIN races r ON r.id = res.race_id
WHERE 1=1`,

	TypeRaceListing: `SELECT r.regatta_name, r.regatta_date, r.category,
  r.boat_name, r.sail_number, s.name, s.yacht_club,
  res.position, res.total_points
FROM races r
LEFT JOIN results res ON res.race_id = r.id
LEFT JOIN skippers s ON s.id = res.skipper_id
WHERE 1=1`,

	TypeWinner: `SELECT r.regatta_name, r.regatta_date, r.category,
  r.boat_name, r.sail_number, s.name, s.yacht_club,
  res.position, res.total_points
FROM races r
JOIN results res ON res.race_id = r.id
LEFT JOIN skippers s ON s.id = res.skipper_id
WHERE 1=1`,
}

// groupBy is applied only for aggregate templates and must match the
// non-aggregated columns exactly.
var groupBy = map[QueryType]string{
	TypeSailorSearch: "GROUP BY s.name, s.yacht_club",
}

// defaultOrderBy is used for query types without an entry in orderBy.
const defaultOrderBy = "ORDER BY r.regatta_date DESC, res.position ASC"

var orderBy = map[QueryType]string{
	TypeSailorSearch:   "ORDER BY wins DESC, races DESC, s.name ASC",
	TypeDatabaseStatus: "",
	TypeRegattaListing: "ORDER BY r.regatta_date DESC, r.regatta_name ASC",
	TypeClubRoster:     "ORDER BY s.yacht_club ASC, s.name ASC",
	TypeRaceListing:    defaultOrderBy,
	TypeWinner:         defaultOrderBy,
}

// Build translates a QueryIntent into a SQL template with positional
// parameters. The returned template contains no client-supplied text;
// all variable data appears only via placeholders. An unrecognized query
// type falls back to the default listing template with no special
// clauses. Build never fails.
func Build(intent Intent) (string, []any) {
	qt := ParseQueryType(string(intent.Type))

	base, ok := baseTemplates[qt]
	if !ok {
		qt = TypeRaceListing
		base = baseTemplates[qt]
	}

	// The database-wide status template has no WHERE shape; intent
	// filters do not apply to it.
	if qt == TypeDatabaseStatus {
		return base, nil
	}

	var clauses []string
	var params []any

	// Append order is significant and deterministic:
	// sailor name -> club -> position cutoff -> regatta name ->
	// location -> year.
	if v, ok := CleanString(intent.SailorName); ok {
		params = append(params, wildcard(v))
		clauses = append(clauses,
			fmt.Sprintf("AND s.name ILIKE $%d", len(params)))
	}
	if v, ok := CleanString(intent.YachtClub); ok {
		params = append(params, wildcard(v))
		clauses = append(clauses,
			fmt.Sprintf("AND s.yacht_club ILIKE $%d", len(params)))
	}
	if v, ok := CleanPosition(intent.Position); ok {
		params = append(params, v)
		clauses = append(clauses,
			fmt.Sprintf("AND res.position <= $%d", len(params)))
	}
	if v, ok := CleanString(intent.RegattaName); ok {
		params = append(params, wildcard(v))
		clauses = append(clauses,
			fmt.Sprintf("AND r.regatta_name ILIKE $%d", len(params)))
	}
	// The schema has no location column; a location mention is matched
	// against the regatta name, which usually carries the venue.
	if v, ok := CleanString(intent.Location); ok {
		params = append(params, wildcard(v))
		clauses = append(clauses,
			fmt.Sprintf("AND r.regatta_name ILIKE $%d", len(params)))
	}
	if year, ok := filterYear(intent); ok {
		params = append(params, year)
		clauses = append(clauses,
			fmt.Sprintf("AND EXTRACT(YEAR FROM r.regatta_date) = $%d",
				len(params)))
	}

	// Winner composes the first-place condition with explicit filters
	// instead of replacing them.
	if qt == TypeWinner {
		clauses = append(clauses, "AND res.position = 1")
	}

	parts := []string{base}
	parts = append(parts, clauses...)
	if g := groupBy[qt]; g != "" {
		parts = append(parts, g)
	}
	ob, ok := orderBy[qt]
	if !ok {
		ob = defaultOrderBy
	}
	if ob != "" {
		parts = append(parts, ob)
	}

	return strings.Join(parts, "\n"), params
}

// filterYear resolves the year filter. An explicit year wins over the
// symbolic "this_year" time frame, which expands to the current calendar
// year at build time.
func filterYear(intent Intent) (int, bool) {
	if year, ok := CleanYear(intent.Year); ok && intent.Year != 0 {
		return year, true
	}
	if intent.TimeFrame == TimeFrameThisYear {
		return time.Now().Year(), true
	}
	return 0, false
}

// wildcard wraps a sanitized value for substring-style ILIKE matching.
// The wrapping is applied to the parameter, never to the template.
func wildcard(s string) string {
	return "%" + s + "%"
}
