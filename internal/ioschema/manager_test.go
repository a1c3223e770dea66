package ioschema_test

import (
	"context"
	"testing"

	"github.com/sailstats/regattadb/internal/iodb"
	"github.com/sailstats/regattadb/internal/ioschema"
	"github.com/sailstats/regattadb/internal/iotesting"
	"github.com/sailstats/regattadb/pkg/regattadb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ImplementsInterface(t *testing.T) {
	cfg := iotesting.GetTestConfig()
	op := iodb.NewPgxOperator()
	var _ regattadb.SchemaManager = ioschema.NewManager(cfg, op)
}

func TestManager_NotConnected(t *testing.T) {
	cfg := iotesting.GetTestConfig()
	op := iodb.NewPgxOperator()
	mgr := ioschema.NewManager(cfg, op)

	err := mgr.Create(context.Background(), false)
	assert.Error(t, err)

	_, err = mgr.Clear(context.Background())
	assert.Error(t, err)
}

func TestManager_CreateAndClear(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	mgr := ioschema.NewManager(cfg, op)
	require.NoError(t, mgr.Create(ctx, true))

	for _, table := range []string{"skippers", "races", "results"} {
		exists, err := op.TableExists(ctx, table)
		require.NoError(t, err)
		assert.True(t, exists, table)
	}

	// Clearing an empty schema succeeds with zero counts.
	res, err := mgr.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Skippers)
	assert.Equal(t, 0, res.Races)
	assert.Equal(t, 0, res.Results)

	// Create without overwrite is idempotent on an existing schema.
	require.NoError(t, mgr.Create(ctx, false))
}

func TestManager_DestructiveDisabled(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()
	cfg.Database.AllowDestructive = false

	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	mgr := ioschema.NewManager(cfg, op)

	err := mgr.Create(ctx, true)
	assert.Error(t, err)

	_, err = mgr.Clear(ctx)
	assert.Error(t, err)
}
