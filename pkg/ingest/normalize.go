package ingest

import (
	"strconv"
	"strings"

	"github.com/sailstats/regattadb/pkg/columns"
)

// Normalizer validates raw CSV rows against the ingestion policy.
type Normalizer struct {
	maxFieldLen int
}

// NewNormalizer creates a Normalizer with the given per-column ceiling
// for textual fields.
func NewNormalizer(maxFieldLen int) *Normalizer {
	return &Normalizer{maxFieldLen: maxFieldLen}
}

// Normalize parses and validates one ingestion row. Every textual field
// is trimmed and an empty string becomes null. The strict ingestion
// policy requires regatta name, skipper and date to be present.
// Violations return a *RowError carrying the offending line number;
// oversized input is a fatal error for the row, never truncated.
func (n *Normalizer) Normalize(raw RawRow) (*Row, error) {
	values := map[columns.Field]string{}
	for _, f := range columns.AllFields() {
		v := strings.TrimSpace(raw.Values[f])
		if v == "" {
			continue
		}
		if len(v) > n.maxFieldLen {
			return nil, rowErrorf(raw.Line, f,
				"value exceeds %d characters", n.maxFieldLen)
		}
		values[f] = v
	}

	row := &Row{
		Line:        raw.Line,
		RegattaName: values[columns.FieldRegattaName],
		Skipper:     values[columns.FieldSkipper],
		YachtClub:   values[columns.FieldYachtClub],
		Category:    values[columns.FieldCategory],
		BoatName:    values[columns.FieldBoatName],
		SailNumber:  values[columns.FieldSailNumber],
	}

	if row.RegattaName == "" {
		return nil, rowErrorf(raw.Line, columns.FieldRegattaName,
			"required field is missing")
	}
	if row.Skipper == "" {
		return nil, rowErrorf(raw.Line, columns.FieldSkipper,
			"required field is missing")
	}

	rawDate := values[columns.FieldRegattaDate]
	if rawDate == "" {
		return nil, rowErrorf(raw.Line, columns.FieldRegattaDate,
			"required field is missing")
	}
	date, err := ParseDate(rawDate)
	if err != nil {
		return nil, rowErrorf(raw.Line, columns.FieldRegattaDate,
			"%s", err.Error())
	}
	row.RegattaDate = date

	// A non-numeric non-empty value is a row-level error, never a
	// silent null.
	if v := values[columns.FieldPosition]; v != "" {
		pos, err := strconv.Atoi(v)
		if err != nil || pos < 1 {
			return nil, rowErrorf(raw.Line, columns.FieldPosition,
				"%q is not a positive integer", v)
		}
		row.Position = &pos
	}

	if v := values[columns.FieldTotalPoints]; v != "" {
		pts, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, rowErrorf(raw.Line, columns.FieldTotalPoints,
				"%q is not a number", v)
		}
		row.TotalPoints = &pts
	}

	return row, nil
}
