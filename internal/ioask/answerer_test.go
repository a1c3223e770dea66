package ioask_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sailstats/regattadb/internal/ioask"
	"github.com/sailstats/regattadb/internal/iodb"
	"github.com/sailstats/regattadb/internal/ioimport"
	"github.com/sailstats/regattadb/internal/ioschema"
	"github.com/sailstats/regattadb/internal/iotesting"
	"github.com/sailstats/regattadb/pkg/ingest"
	"github.com/sailstats/regattadb/pkg/query"
	"github.com/sailstats/regattadb/pkg/regattadb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClassifier returns a fixed intent or error without any network.
type fakeClassifier struct {
	intent *query.Intent
	err    error
}

func (f *fakeClassifier) Classify(
	_ context.Context,
	_ string,
) (*query.Intent, error) {
	return f.intent, f.err
}

// failingStore rejects every query.
type failingStore struct{ err error }

func (s *failingStore) Query(
	_ context.Context,
	_ string,
	_ ...any,
) (pgx.Rows, error) {
	return nil, s.err
}

func TestAsk_ClassifierErrorPropagates(t *testing.T) {
	boom := errors.New("no network")
	a := ioask.New(
		&fakeClassifier{err: boom},
		&failingStore{err: errors.New("unused")},
	)

	_, err := a.Ask(context.Background(), "who won?")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestAsk_StoreErrorPropagates(t *testing.T) {
	a := ioask.New(
		&fakeClassifier{intent: &query.Intent{Type: query.TypeRaceListing}},
		&failingStore{err: errors.New("connection refused")},
	)

	_, err := a.Ask(context.Background(), "list races")
	assert.Error(t, err)
}

func setupAnswerer(
	t *testing.T,
	intent *query.Intent,
) (regattadb.Answerer, regattadb.Importer) {
	t.Helper()
	ctx := context.Background()

	cfg := iotesting.GetTestConfig()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	t.Cleanup(func() { op.Close() })

	mgr := ioschema.NewManager(cfg, op)
	require.NoError(t, mgr.Create(ctx, true))

	a := ioask.New(&fakeClassifier{intent: intent}, op.Pool())
	return a, ioimport.New(cfg, op)
}

func testRows(t *testing.T) []ingest.Row {
	t.Helper()
	pos1, pos2 := 1, 2
	return []ingest.Row{
		{
			Line:        2,
			RegattaName: "Spring Cup",
			RegattaDate: date(t, "2024-06-14"),
			Skipper:     "Ann Davis",
			YachtClub:   "SYC",
			Position:    &pos1,
		},
		{
			Line:        3,
			RegattaName: "Spring Cup",
			RegattaDate: date(t, "2024-06-14"),
			Skipper:     "Ben Ito",
			Position:    &pos2,
		},
	}
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := ingest.ParseDate(s)
	require.NoError(t, err)
	return parsed
}

func TestAsk_DatabaseStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	a, imp := setupAnswerer(t, &query.Intent{Type: query.TypeDatabaseStatus})

	_, err := imp.Load(ctx, testRows(t))
	require.NoError(t, err)

	ans, err := a.Ask(ctx, "what is in the database?")
	require.NoError(t, err)
	assert.Equal(t,
		"The database holds 2 skippers, 2 races and 2 results, "+
			"spanning 2024-06-14 to 2024-06-14.",
		ans.Message)
}

func TestAsk_Winner(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	a, imp := setupAnswerer(t, &query.Intent{
		Type:        query.TypeWinner,
		RegattaName: "Spring Cup",
	})

	_, err := imp.Load(ctx, testRows(t))
	require.NoError(t, err)

	ans, err := a.Ask(ctx, "who won the Spring Cup?")
	require.NoError(t, err)
	assert.Equal(t, 1, ans.Rows)
	assert.Equal(t, "Found 1 matching record.", ans.Message)
}

func TestAsk_SailorSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	a, imp := setupAnswerer(t, &query.Intent{
		Type:       query.TypeSailorSearch,
		SailorName: "Ann",
	})

	_, err := imp.Load(ctx, testRows(t))
	require.NoError(t, err)

	ans, err := a.Ask(ctx, "how has Ann done?")
	require.NoError(t, err)
	assert.Equal(t,
		"Ann Davis (SYC) has 1 recorded race with 1 wins; best finish: 1st.",
		ans.Message)
}

func TestAsk_EmptyStore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	a, _ := setupAnswerer(t, &query.Intent{Type: query.TypeRaceListing})

	ans, err := a.Ask(ctx, "list all races")
	require.NoError(t, err)
	assert.Equal(t, 0, ans.Rows)
	assert.Equal(t, "No races match that search.", ans.Message)
}
