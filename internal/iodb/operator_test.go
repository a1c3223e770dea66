package iodb_test

import (
	"context"
	"testing"

	"github.com/sailstats/regattadb/internal/iodb"
	"github.com/sailstats/regattadb/internal/iotesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: These are integration tests that require PostgreSQL.
//
// Configuration is loaded using the full config system:
//  1. Environment variables (REGATTADB_DATABASE_*)
//  2. Config file (~/.config/regattadb/config.yaml)
//  3. Built-in defaults (postgres/postgres/regattadb_test)
//
// The database name is always forced to "regattadb_test" for safety.
// Skip with: go test -short

func TestPgxOperator_Connect(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	err := op.Connect(ctx, iotesting.GetTestDatabaseConfig())
	require.NoError(t, err, "Connect should succeed with valid config")

	defer op.Close()

	exists, err := op.TableExists(ctx, "nonexistent_table")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestPgxOperator_Connect_InvalidHost(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	ctx := context.Background()

	cfg := iotesting.GetTestDatabaseConfig()
	cfg.Host = "invalid-host-that-does-not-exist"

	err := op.Connect(ctx, cfg)
	assert.Error(t, err)
}

func TestPgxOperator_NotConnected(t *testing.T) {
	op := iodb.NewPgxOperator()
	ctx := context.Background()

	_, err := op.TableExists(ctx, "skippers")
	assert.Error(t, err)

	_, err = op.HasTables(ctx)
	assert.Error(t, err)

	err = op.DropAllTables(ctx)
	assert.Error(t, err)

	assert.Nil(t, op.Pool())
	assert.NoError(t, op.Close(), "Close without Connect is a no-op")
}
