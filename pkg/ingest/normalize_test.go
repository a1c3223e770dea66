package ingest_test

import (
	"strings"
	"testing"
	"time"

	"github.com/sailstats/regattadb/pkg/columns"
	"github.com/sailstats/regattadb/pkg/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw(line int) ingest.RawRow {
	return ingest.RawRow{
		Line: line,
		Values: map[columns.Field]string{
			columns.FieldRegattaName: "Spring Cup",
			columns.FieldRegattaDate: "04/01/2024",
			columns.FieldSkipper:     "Ann Davis",
			columns.FieldYachtClub:   "SYC",
			columns.FieldCategory:    "Laser",
			columns.FieldPosition:    "1",
			columns.FieldTotalPoints: "12.5",
			columns.FieldBoatName:    "Sea Sprite",
			columns.FieldSailNumber:  "USA 123",
		},
	}
}

func TestNormalizeValidRow(t *testing.T) {
	n := ingest.NewNormalizer(300)

	row, err := n.Normalize(validRaw(2))
	require.NoError(t, err)

	assert.Equal(t, 2, row.Line)
	assert.Equal(t, "Spring Cup", row.RegattaName)
	assert.Equal(t, "Ann Davis", row.Skipper)
	assert.Equal(t, "SYC", row.YachtClub)
	assert.Equal(t, "Laser", row.Category)
	assert.Equal(t, "Sea Sprite", row.BoatName)
	assert.Equal(t, "USA 123", row.SailNumber)

	want := time.Date(2024, 4, 1, 0, 0, 0, 0, time.Local)
	assert.True(t, want.Equal(row.RegattaDate))

	require.NotNil(t, row.Position)
	assert.Equal(t, 1, *row.Position)
	require.NotNil(t, row.TotalPoints)
	assert.Equal(t, 12.5, *row.TotalPoints)
	assert.True(t, row.HasResult())
}

func TestNormalizeTrimsAndNulls(t *testing.T) {
	n := ingest.NewNormalizer(300)
	raw := ingest.RawRow{
		Line: 3,
		Values: map[columns.Field]string{
			columns.FieldRegattaName: "  Spring Cup  ",
			columns.FieldRegattaDate: "2024-04-01",
			columns.FieldSkipper:     " Ben ",
			columns.FieldYachtClub:   "   ",
			columns.FieldPosition:    "2",
		},
	}

	row, err := n.Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "Spring Cup", row.RegattaName)
	assert.Equal(t, "Ben", row.Skipper)
	assert.Empty(t, row.YachtClub, "whitespace-only becomes null")
	assert.Nil(t, row.TotalPoints)
	assert.True(t, row.HasResult())
}

func TestNormalizeNoResultFields(t *testing.T) {
	n := ingest.NewNormalizer(300)
	raw := ingest.RawRow{
		Line: 4,
		Values: map[columns.Field]string{
			columns.FieldRegattaName: "Spring Cup",
			columns.FieldRegattaDate: "2024-04-01",
			columns.FieldSkipper:     "Ben",
		},
	}

	row, err := n.Normalize(raw)
	require.NoError(t, err)
	assert.False(t, row.HasResult())
}

func TestNormalizeErrors(t *testing.T) {
	n := ingest.NewNormalizer(300)

	tests := []struct {
		name   string
		mutate func(*ingest.RawRow)
		substr string
	}{
		{
			name: "missing regatta name",
			mutate: func(r *ingest.RawRow) {
				delete(r.Values, columns.FieldRegattaName)
			},
			substr: "regatta_name",
		},
		{
			name: "missing skipper",
			mutate: func(r *ingest.RawRow) {
				r.Values[columns.FieldSkipper] = "  "
			},
			substr: "skipper",
		},
		{
			name: "missing date",
			mutate: func(r *ingest.RawRow) {
				delete(r.Values, columns.FieldRegattaDate)
			},
			substr: "regatta_date",
		},
		{
			name: "unparseable date names the string",
			mutate: func(r *ingest.RawRow) {
				r.Values[columns.FieldRegattaDate] = "not-a-date"
			},
			substr: `invalid date "not-a-date"`,
		},
		{
			name: "non-numeric position",
			mutate: func(r *ingest.RawRow) {
				r.Values[columns.FieldPosition] = "DNF"
			},
			substr: `"DNF" is not a positive integer`,
		},
		{
			name: "zero position",
			mutate: func(r *ingest.RawRow) {
				r.Values[columns.FieldPosition] = "0"
			},
			substr: "positive integer",
		},
		{
			name: "non-numeric points",
			mutate: func(r *ingest.RawRow) {
				r.Values[columns.FieldTotalPoints] = "n/a"
			},
			substr: `"n/a" is not a number`,
		},
		{
			name: "oversized field is fatal, not truncated",
			mutate: func(r *ingest.RawRow) {
				r.Values[columns.FieldBoatName] = strings.Repeat("x", 301)
			},
			substr: "exceeds 300 characters",
		},
	}

	for _, v := range tests {
		t.Run(v.name, func(t *testing.T) {
			raw := validRaw(7)
			v.mutate(&raw)

			_, err := n.Normalize(raw)
			require.Error(t, err)

			var rowErr *ingest.RowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, 7, rowErr.Line, "error carries line number")
			assert.Contains(t, err.Error(), "line 7")
			assert.Contains(t, err.Error(), v.substr)
		})
	}
}
