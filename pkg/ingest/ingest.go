// Package ingest implements the pure CSV row normalization core: it
// parses and validates one ingestion row into a canonical record or a
// per-row error. Reading files and writing to the database happen in
// internal/ioimport.
package ingest

import (
	"fmt"
	"time"

	"github.com/sailstats/regattadb/pkg/columns"
)

// RawRow is one CSV row as read from the source: canonical field ->
// raw string, tagged with its originating line number.
type RawRow struct {
	// Line is the 1-based source line number, counting from the header
	// line, so operators can locate the offending CSV row without
	// re-scanning the file.
	Line int

	Values map[columns.Field]string
}

// Row is a normalized, validated ingestion record. Optional textual
// fields use the empty string for null; optional numeric fields use nil.
type Row struct {
	Line int

	RegattaName string
	RegattaDate time.Time
	Skipper     string

	YachtClub  string
	Category   string
	BoatName   string
	SailNumber string

	Position    *int
	TotalPoints *float64
}

// HasResult reports whether the row carries a finishing position or
// total points. Rows without either never create a result record.
func (r *Row) HasResult() bool {
	return r.Position != nil || r.TotalPoints != nil
}

// RowError is a fatal validation error for one CSV row. It always
// carries the 1-based source line number.
type RowError struct {
	Line  int
	Field columns.Field
	Msg   string
}

func (e *RowError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Field, e.Msg)
}

func rowErrorf(
	line int, field columns.Field, format string, args ...any,
) *RowError {
	return &RowError{
		Line:  line,
		Field: field,
		Msg:   fmt.Sprintf(format, args...),
	}
}
