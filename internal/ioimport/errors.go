package ioimport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sailstats/regattadb/pkg/errcode"
)

// FileError creates an error for when the CSV file cannot be opened or
// read.
func FileError(path string, err error) error {
	msg := `Cannot read CSV file

<em>File:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Permission denied
  - Malformed CSV (unbalanced quotes, inconsistent column count)

<em>How to fix:</em>
  1. Check the path: <em>ls -l %s</em>
  2. Verify the file is valid CSV with a header line`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.ImportFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read CSV file: %w", err),
	}
}

// HeaderError creates an error for when the CSV header line lacks
// required columns.
func HeaderError(path string, missing []string) error {
	msg := `CSV header is missing required columns

<em>File:</em> %s
<em>Missing columns:</em> %v

<em>Required columns:</em>
  - regatta name (aliases: regatta, event)
  - skipper (aliases: helm, sailor, name)
  - date (aliases: regatta date)

<em>How to fix:</em>
  1. Add the missing columns to the CSV header
  2. Or map your header names in columns.yaml`

	vars := []any{path, missing}

	return &gn.Error{
		Code: errcode.ImportHeaderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("missing required columns: %v", missing),
	}
}

// RowValidationError creates an error for a row that failed validation.
// The whole upload is rejected; no rows are stored.
func RowValidationError(err error) error {
	msg := `CSV row failed validation, nothing was imported

<em>Problem:</em> %v

<em>How to fix:</em>
  1. Correct the reported line in the CSV file
  2. Re-run the import; uploads are all-or-nothing`

	vars := []any{err}

	return &gn.Error{
		Code: errcode.ImportRowError,
		Msg:  msg,
		Vars: vars,
		Err:  err,
	}
}

// LoadError creates an error for when the bulk load transaction fails.
func LoadError(err error) error {
	msg := `Bulk load failed, the transaction was rolled back

<em>Problem:</em> %v

No rows from this upload were stored.

<em>How to fix:</em>
  1. Check database connectivity and disk space
  2. Check the log file for details
  3. Re-run the import`

	vars := []any{err}

	return &gn.Error{
		Code: errcode.ImportLoadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bulk load failed: %w", err),
	}
}

// NotConnectedError creates an error for when import is attempted
// without a database connection.
func NotConnectedError() error {
	msg := `Not connected to the database

<em>How to fix:</em>
  1. Run <em>regattadb create</em> to initialize the database
  2. Check connection settings in the config file`

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("database connection not established"),
	}
}
