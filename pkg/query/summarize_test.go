package query_test

import (
	"testing"
	"time"

	"github.com/sailstats/regattadb/pkg/query"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeNoRows(t *testing.T) {
	tests := []struct {
		qt   query.QueryType
		want string
	}{
		{query.TypeSailorSearch, "No sailors match that search."},
		{query.TypeRegattaListing, "No regattas match that search."},
		{query.TypeClubRoster, "No club members match that search."},
		{query.TypeRaceListing, "No races match that search."},
		{query.TypeWinner, "No winning results match that search."},
		{"bogus", "No races match that search."},
	}

	for _, v := range tests {
		got := query.Summarize(v.qt, query.Rows{})
		assert.Equal(t, v.want, got, "type %s", v.qt)
	}
}

func TestSummarizeStatus(t *testing.T) {
	t.Run("empty store is nil-safe", func(t *testing.T) {
		got := query.Summarize(query.TypeDatabaseStatus, query.Rows{})
		assert.Equal(t,
			"The database holds 0 skippers, 0 races and 0 results.", got)
	})

	t.Run("counts and date range", func(t *testing.T) {
		earliest := time.Date(2023, 4, 1, 0, 0, 0, 0, time.Local)
		latest := time.Date(2024, 9, 15, 0, 0, 0, 0, time.Local)
		got := query.Summarize(query.TypeDatabaseStatus, query.Rows{
			Status: &query.StatusRow{
				Skippers: 1200,
				Races:    3400,
				Results:  5600,
				Earliest: &earliest,
				Latest:   &latest,
			},
		})
		assert.Equal(t,
			"The database holds 1,200 skippers, 3,400 races and "+
				"5,600 results, spanning 2023-04-01 to 2024-09-15.",
			got)
	})

	t.Run("missing dates omit the range", func(t *testing.T) {
		got := query.Summarize(query.TypeDatabaseStatus, query.Rows{
			Status: &query.StatusRow{Skippers: 2, Races: 3, Results: 3},
		})
		assert.Equal(t,
			"The database holds 2 skippers, 3 races and 3 results.", got)
	})
}

func TestSummarizeSingleSailor(t *testing.T) {
	rows := query.Rows{
		Count: 1,
		Sailors: []query.SailorStats{
			{
				Name:         "Ann Davis",
				YachtClub:    "SYC",
				Races:        12,
				Wins:         3,
				BestPosition: 1,
			},
		},
	}
	got := query.Summarize(query.TypeSailorSearch, rows)
	assert.Equal(t,
		"Ann Davis (SYC) has 12 recorded races with 3 wins; "+
			"best finish: 1st.", got)
}

func TestSummarizeSailorWithoutClub(t *testing.T) {
	rows := query.Rows{
		Count: 1,
		Sailors: []query.SailorStats{
			{Name: "Ben", Races: 1, Wins: 0, BestPosition: 2},
		},
	}
	got := query.Summarize(query.TypeSailorSearch, rows)
	assert.Equal(t,
		"Ben has 1 recorded race with 0 wins; best finish: 2nd.", got)
}

func TestSummarizeGenericCount(t *testing.T) {
	got := query.Summarize(query.TypeRaceListing, query.Rows{Count: 42})
	assert.Equal(t, "Found 42 matching records.", got)

	got = query.Summarize(query.TypeWinner, query.Rows{Count: 1})
	assert.Equal(t, "Found 1 matching record.", got)

	// Multi-row sailor searches get the generic sentence too.
	got = query.Summarize(query.TypeSailorSearch, query.Rows{
		Count: 2,
		Sailors: []query.SailorStats{
			{Name: "Ann"}, {Name: "Ben"},
		},
	})
	assert.Equal(t, "Found 2 matching records.", got)
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1st"}, {2, "2nd"}, {3, "3rd"}, {4, "4th"},
		{11, "11th"}, {12, "12th"}, {13, "13th"},
		{21, "21st"}, {22, "22nd"}, {23, "23rd"},
		{101, "101st"}, {111, "111th"},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, query.Ordinal(v.n))
	}
}
