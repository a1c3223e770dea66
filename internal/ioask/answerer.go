// Package ioask implements the Answerer interface: a free-text question
// is classified into a structured intent, translated into parameterized
// SQL by the pure query package, executed against PostgreSQL, and the
// rows are summarized into a one-line message.
package ioask

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sailstats/regattadb/pkg/query"
	"github.com/sailstats/regattadb/pkg/regattadb"
)

// Store runs one parameterized query. *pgxpool.Pool satisfies it; tests
// substitute a fake.
type Store interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// answerer implements the regattadb.Answerer interface.
type answerer struct {
	classifier query.Classifier
	store      Store
}

// New creates a new Answerer from a classifier and a store.
func New(classifier query.Classifier, store Store) regattadb.Answerer {
	return &answerer{classifier: classifier, store: store}
}

// Ask runs the classify, build, execute, summarize pipeline for one
// question. The SQL template is statically known per query type; the
// question text only ever reaches the database as query parameters.
func (a *answerer) Ask(
	ctx context.Context,
	text string,
) (*regattadb.Answer, error) {
	start := time.Now()

	intent, err := a.classifier.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	sql, params := query.Build(*intent)

	pgxRows, err := a.store.Query(ctx, sql, params...)
	if err != nil {
		return nil, QueryError(err)
	}

	rows, err := scan(intent.Type, pgxRows)
	if err != nil {
		return nil, err
	}

	ans := &regattadb.Answer{
		Intent:  *intent,
		Message: query.Summarize(intent.Type, *rows),
		Rows:    rows.Count,
		Elapsed: time.Since(start),
	}

	slog.Info("Question answered",
		"query_type", intent.Type,
		"rows", ans.Rows,
		"duration", ans.Elapsed,
	)
	return ans, nil
}
