package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sailstats/regattadb/pkg/errcode"
)

// NotConnectedError creates an error for when a schema operation is
// attempted without a database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for GORM connection failures.
func GORMConnectionError(err error) error {
	msg := `Cannot connect to database with GORM

<em>Possible causes:</em>
  - Connection pool not initialized
  - Database configuration issue
  - GORM driver problem

<em>How to fix:</em>
  1. Ensure database operator is connected
  2. Check database configuration`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// CreateSchemaError creates an error for schema creation failures.
func CreateSchemaError(err error) error {
	msg := `Cannot create database schema

<em>Possible causes:</em>
  - Insufficient database permissions
  - Invalid schema definitions

<em>How to fix:</em>
  1. Check database user has CREATE permissions
  2. Check database logs for details`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to create schema: %w", err),
	}
}

// DestructiveError creates an error for when a destructive operation is
// attempted while destructive operations are disabled.
func DestructiveError(op string) error {
	msg := `Destructive operation <em>%s</em> is disabled

<em>How to fix:</em>
  1. Set <em>database.allow_destructive: true</em> in the config file
  2. Or set <em>REGATTADB_DATABASE_ALLOW_DESTRUCTIVE=true</em>`

	vars := []any{op}

	return &gn.Error{
		Code: errcode.DBClearError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("destructive operation %q not allowed", op),
	}
}

// ClearError creates an error for failures while deleting all rows.
func ClearError(err error) error {
	msg := `Cannot clear database

The transaction was rolled back; no rows were deleted.

<em>How to fix:</em>
  1. Check database connectivity
  2. Check the log file for details`

	return &gn.Error{
		Code: errcode.DBClearError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to clear database: %w", err),
	}
}
