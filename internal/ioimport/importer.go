// Package ioimport implements the Importer interface for ingesting
// regatta results from CSV files into PostgreSQL. This is an impure I/O
// package that reads CSV files and performs transactional bulk inserts.
package ioimport

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/sailstats/regattadb/internal/iocolumns"
	"github.com/sailstats/regattadb/pkg/config"
	"github.com/sailstats/regattadb/pkg/db"
	"github.com/sailstats/regattadb/pkg/ingest"
	"github.com/sailstats/regattadb/pkg/regattadb"
	"golang.org/x/sync/errgroup"
)

// importer implements the Importer interface.
type importer struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a new Importer.
func New(cfg *config.Config, op db.Operator) regattadb.Importer {
	return &importer{cfg: cfg, operator: op}
}

// Import validates every row of the CSV file, then loads all rows in a
// single all-or-nothing transaction. Validation runs before any storage
// mutation, so a single bad row rejects the entire upload with its line
// number and no partial import occurs.
func (imp *importer) Import(
	ctx context.Context,
	path string,
) (*regattadb.ImportResult, error) {
	if imp.operator.Pool() == nil {
		return nil, NotConnectedError()
	}

	batchID := uuid.New().String()
	startTime := time.Now()
	slog.Info("Starting CSV import",
		"batch_id", batchID,
		"path", path,
	)

	mapping, err := iocolumns.Load(imp.cfg.HomeDir)
	if err != nil {
		return nil, err
	}

	rawRows, err := readCSV(path, mapping)
	if err != nil {
		return nil, err
	}

	gn.Info("(1/2) Validating <em>%s</em> rows...",
		humanize.Comma(int64(len(rawRows))))
	rows, err := imp.normalizeAll(ctx, rawRows)
	if err != nil {
		return nil, err
	}

	gn.Info("(2/2) Loading rows into the database...")
	inserted, err := imp.Load(ctx, rows)
	if err != nil {
		return nil, err
	}

	res := &regattadb.ImportResult{
		BatchID:      batchID,
		RowsImported: inserted,
		Skippers:     countDistinctSkippers(rows),
		Results:      countResults(rows),
		Elapsed:      time.Since(startTime),
	}

	slog.Info("CSV import complete",
		"batch_id", batchID,
		"rows", res.RowsImported,
		"skippers", res.Skippers,
		"results", res.Results,
		"duration", gnfmt.TimeString(res.Elapsed.Seconds()),
	)

	return res, nil
}

// normalizeAll validates all raw rows concurrently, preserving row
// order. The first validation failure cancels the remaining work and
// rejects the whole batch.
func (imp *importer) normalizeAll(
	ctx context.Context,
	rawRows []ingest.RawRow,
) ([]ingest.Row, error) {
	normalizer := ingest.NewNormalizer(imp.cfg.Import.MaxFieldLen)
	rows := make([]ingest.Row, len(rawRows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(imp.cfg.JobsNumber)

	for i, raw := range rawRows {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			row, err := normalizer.Normalize(raw)
			if err != nil {
				return RowValidationError(err)
			}
			rows[i] = *row
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func countDistinctSkippers(rows []ingest.Row) int {
	seen := map[string]struct{}{}
	for _, row := range rows {
		if row.Skipper != "" {
			seen[row.Skipper] = struct{}{}
		}
	}
	return len(seen)
}

func countResults(rows []ingest.Row) int {
	var n int
	for _, row := range rows {
		if row.HasResult() {
			n++
		}
	}
	return n
}
