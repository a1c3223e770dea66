package ioimport

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/sailstats/regattadb/pkg/columns"
	"github.com/sailstats/regattadb/pkg/ingest"
)

// requiredFields must be present in the CSV header for an upload to be
// accepted at all. Other canonical fields are optional.
var requiredFields = []columns.Field{
	columns.FieldRegattaName,
	columns.FieldSkipper,
	columns.FieldRegattaDate,
}

// readCSV parses the CSV file into raw rows keyed by canonical field.
// The first line is the header; data lines are numbered from 2 so error
// messages match what users see in a spreadsheet. Header names that do
// not resolve to a canonical field are ignored.
func readCSV(
	path string,
	mapping columns.Mapping,
) ([]ingest.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, FileError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, FileError(path, err)
	}

	// fields[i] is the canonical field for column i, or "" if the
	// column is not recognized.
	fields := make([]columns.Field, len(header))
	present := map[columns.Field]bool{}
	for i, name := range header {
		if f, ok := mapping.Resolve(name); ok {
			fields[i] = f
			present[f] = true
		}
	}

	var missing []string
	for _, f := range requiredFields {
		if !present[f] {
			missing = append(missing, string(f))
		}
	}
	if len(missing) > 0 {
		return nil, HeaderError(path, missing)
	}

	var rows []ingest.RawRow
	line := 1
	for {
		line++
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, FileError(path, err)
		}

		raw := ingest.RawRow{
			Line:   line,
			Values: map[columns.Field]string{},
		}
		for i, val := range record {
			if i >= len(fields) || fields[i] == "" {
				continue
			}
			raw.Values[fields[i]] = val
		}
		rows = append(rows, raw)
	}

	return rows, nil
}
