// Package regattadb defines the public contracts of RegattaDB.
// Implementations live in internal/io* packages; pkg packages stay pure.
package regattadb

import (
	"context"
	"time"

	"github.com/sailstats/regattadb/pkg/ingest"
	"github.com/sailstats/regattadb/pkg/query"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and
// updates. Schema management is idempotent - safe to run multiple times.
type SchemaManager interface {
	// Create creates or updates the database schema.
	// If tables already exist and overwrite is requested, behavior is
	// gated by the destructive-operations config value.
	Create(ctx context.Context, overwrite bool) error

	// Clear removes all rows from results, races and skippers inside one
	// transaction. It refuses to run unless destructive operations are
	// explicitly allowed by configuration.
	Clear(ctx context.Context) (*ClearResult, error)
}

// Importer ingests regatta results from a CSV file into the database.
type Importer interface {
	// Import validates every row of the CSV file, then loads all rows in
	// a single transaction. A single bad row rejects the whole upload.
	Import(ctx context.Context, path string) (*ImportResult, error)

	// Load inserts already-normalized rows in one all-or-nothing
	// transaction and returns the number of rows inserted.
	Load(ctx context.Context, rows []ingest.Row) (int, error)
}

// Answerer turns a free-text question into a parameterized SQL query,
// runs it, and summarizes the rows into a human-readable message.
type Answerer interface {
	Ask(ctx context.Context, text string) (*Answer, error)
}

// ImportResult describes a successful CSV import.
type ImportResult struct {
	// BatchID uniquely identifies this import run in the logs.
	BatchID string

	// RowsImported equals the number of input rows (not the number of
	// result rows, which may be fewer).
	RowsImported int

	// Skippers is the number of distinct skipper names seen in the batch.
	Skippers int

	// Results is the number of result rows created (rows that carried a
	// position or total points).
	Results int

	Elapsed time.Duration
}

// ClearResult records row counts removed by a clear operation.
// The counts double as the operation's backup record in the logs.
type ClearResult struct {
	Skippers int
	Races    int
	Results  int
}

// Answer is the outcome of one classify-then-query cycle.
type Answer struct {
	// Intent is the structured interpretation of the question.
	Intent query.Intent

	// Message is the human-readable summary of the query result.
	Message string

	// Rows is the number of rows the query returned.
	Rows int

	Elapsed time.Duration
}
