package ioask

import (
	"github.com/jackc/pgx/v5"
	"github.com/sailstats/regattadb/pkg/query"
)

// scan consumes the result set according to the query type. Status and
// sailor search rows carry data the summarizer needs; the listing types
// only need a row count.
func scan(qt query.QueryType, rows pgx.Rows) (*query.Rows, error) {
	defer rows.Close()

	switch qt {
	case query.TypeDatabaseStatus:
		return scanStatus(rows)
	case query.TypeSailorSearch:
		return scanSailors(rows)
	default:
		return scanCount(rows)
	}
}

func scanStatus(rows pgx.Rows) (*query.Rows, error) {
	var st query.StatusRow
	if rows.Next() {
		err := rows.Scan(
			&st.Skippers,
			&st.Races,
			&st.Results,
			&st.Earliest,
			&st.Latest,
		)
		if err != nil {
			return nil, ScanError(err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, ScanError(err)
	}
	return &query.Rows{Status: &st, Count: 1}, nil
}

func scanSailors(rows pgx.Rows) (*query.Rows, error) {
	var sailors []query.SailorStats
	for rows.Next() {
		var (
			s    query.SailorStats
			club *string
			best *int
		)
		err := rows.Scan(
			&s.Name, &club, &s.Races, &s.Wins, &s.Podiums, &best,
		)
		if err != nil {
			return nil, ScanError(err)
		}
		if club != nil {
			s.YachtClub = *club
		}
		if best != nil {
			s.BestPosition = *best
		}
		sailors = append(sailors, s)
	}
	if err := rows.Err(); err != nil {
		return nil, ScanError(err)
	}
	return &query.Rows{Sailors: sailors, Count: len(sailors)}, nil
}

func scanCount(rows pgx.Rows) (*query.Rows, error) {
	var count int
	for rows.Next() {
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, ScanError(err)
	}
	return &query.Rows{Count: count}, nil
}
