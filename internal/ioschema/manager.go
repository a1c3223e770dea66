// Package ioschema implements the SchemaManager interface for database
// schema management. This is an impure I/O package that wraps GORM
// AutoMigrate functionality and destructive table operations.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/sailstats/regattadb/pkg/config"
	"github.com/sailstats/regattadb/pkg/db"
	"github.com/sailstats/regattadb/pkg/regattadb"
	"github.com/sailstats/regattadb/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// manager implements the regattadb.SchemaManager interface using GORM
// AutoMigrate.
type manager struct {
	cfg      *config.Config
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(cfg *config.Config, op db.Operator) regattadb.SchemaManager {
	return &manager{cfg: cfg, operator: op}
}

// Create creates the database schema using GORM AutoMigrate. With
// overwrite set, all existing tables are dropped first; this is refused
// unless destructive operations are enabled in the configuration.
func (m *manager) Create(ctx context.Context, overwrite bool) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	if overwrite {
		if !m.cfg.Database.AllowDestructive {
			return DestructiveError("drop tables")
		}
		if err := m.operator.DropAllTables(ctx); err != nil {
			return err
		}
		slog.Info("Dropped existing tables",
			"database", m.cfg.Database.Database)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}

	slog.Info("Schema created",
		"database", m.cfg.Database.Database,
		"tables", len(schema.AllModels()),
	)
	return nil
}

// Clear deletes all rows from all tables in a single transaction,
// keeping the schema in place. Child tables go first so foreign keys
// never block the deletes. Returns the number of rows removed from each
// table.
func (m *manager) Clear(ctx context.Context) (*regattadb.ClearResult, error) {
	pool := m.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}
	if !m.cfg.Database.AllowDestructive {
		return nil, DestructiveError("clear data")
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, ClearError(err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var res regattadb.ClearResult
	counts := []struct {
		table string
		dst   *int
	}{
		{"results", &res.Results},
		{"races", &res.Races},
		{"skippers", &res.Skippers},
	}

	for _, c := range counts {
		tag, err := tx.Exec(ctx, "DELETE FROM "+c.table)
		if err != nil {
			return nil, ClearError(err)
		}
		*c.dst = int(tag.RowsAffected())
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, ClearError(err)
	}

	slog.Info("Database cleared",
		"skippers", res.Skippers,
		"races", res.Races,
		"results", res.Results,
	)
	return &res, nil
}
