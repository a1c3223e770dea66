package ioask

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sailstats/regattadb/pkg/errcode"
)

// QueryError creates an error for query execution failures.
func QueryError(err error) error {
	msg := `Cannot run the query

<em>Possible causes:</em>
  - Database connection lost
  - Schema not created yet

<em>How to fix:</em>
  1. Run <em>regattadb create</em> to initialize the database
  2. Check the log file for details`

	return &gn.Error{
		Code: errcode.AskQueryError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("query failed: %w", err),
	}
}

// ScanError creates an error for result set decoding failures.
func ScanError(err error) error {
	msg := `Cannot read query results

<em>How to fix:</em>
  1. Re-run <em>regattadb create</em> to refresh the schema
  2. Check the log file for details`

	return &gn.Error{
		Code: errcode.AskScanError,
		Vars: nil,
		Msg:  msg,
		Err:  fmt.Errorf("scan failed: %w", err),
	}
}
