package schema_test

import (
	"testing"

	"github.com/sailstats/regattadb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "skippers", schema.Skipper{}.TableName())
	assert.Equal(t, "races", schema.Race{}.TableName())
	assert.Equal(t, "results", schema.Result{}.TableName())
}

func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	require.Len(t, models, 3)

	// Referenced tables must come before their dependents so that
	// AutoMigrate can create foreign keys in one pass.
	_, ok := models[0].(*schema.Skipper)
	assert.True(t, ok, "skippers first")
	_, ok = models[1].(*schema.Race)
	assert.True(t, ok, "races second")
	_, ok = models[2].(*schema.Result)
	assert.True(t, ok, "results last")
}
