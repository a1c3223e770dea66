package ioimport

import (
	"context"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/jackc/pgx/v5"
	"github.com/sailstats/regattadb/pkg/ingest"
)

// Load inserts all rows inside a single transaction. Skippers are
// upserted by name, a race row is inserted for every CSV row, and a
// result row links the two when the CSV row carries a finishing
// position or points. Any failure rolls back the whole upload.
func (imp *importer) Load(
	ctx context.Context,
	rows []ingest.Row,
) (int, error) {
	pool := imp.operator.Pool()
	if pool == nil {
		return 0, NotConnectedError()
	}
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, LoadError(err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	skipperIDs, err := upsertSkippers(ctx, tx, rows)
	if err != nil {
		return 0, LoadError(err)
	}

	raceIDs, err := imp.insertRaces(ctx, tx, rows)
	if err != nil {
		return 0, LoadError(err)
	}

	resCount, err := imp.insertResults(ctx, tx, rows, raceIDs, skipperIDs)
	if err != nil {
		return 0, LoadError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, LoadError(err)
	}

	slog.Info("Transaction committed",
		"races", len(rows),
		"skippers", len(skipperIDs),
		"results", resCount,
	)
	return len(rows), nil
}

// upsertSkippers inserts or updates one skipper per distinct name and
// returns a name to id map. When the same name appears several times in
// an upload, the last non-empty yacht club wins; an empty club never
// erases a stored one.
func upsertSkippers(
	ctx context.Context,
	tx pgx.Tx,
	rows []ingest.Row,
) (map[string]int, error) {
	clubs := map[string]string{}
	var names []string
	for _, row := range rows {
		if _, ok := clubs[row.Skipper]; !ok {
			names = append(names, row.Skipper)
			clubs[row.Skipper] = row.YachtClub
		} else if row.YachtClub != "" {
			clubs[row.Skipper] = row.YachtClub
		}
	}

	query := `
		INSERT INTO skippers (name, yacht_club)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE
		SET yacht_club = COALESCE(EXCLUDED.yacht_club, skippers.yacht_club),
		    updated_at = NOW()
		RETURNING id`

	batch := &pgx.Batch{}
	for _, name := range names {
		batch.Queue(query, name, nullString(clubs[name]))
	}

	ids := make(map[string]int, len(names))
	br := tx.SendBatch(ctx, batch)
	for _, name := range names {
		var id int
		if err := br.QueryRow().Scan(&id); err != nil {
			br.Close()
			return nil, err
		}
		ids[name] = id
	}
	if err := br.Close(); err != nil {
		return nil, err
	}
	return ids, nil
}

// insertRaces inserts one race per row, in row order, and returns the
// generated ids indexed like rows. Races are never deduplicated: two
// identical rows describe two races.
func (imp *importer) insertRaces(
	ctx context.Context,
	tx pgx.Tx,
	rows []ingest.Row,
) ([]int, error) {
	query := `
		INSERT INTO races
		  (regatta_name, regatta_date, category, boat_name, sail_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	bar := pb.Full.Start(len(rows))
	bar.Set("prefix", "Loading races: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	ids := make([]int, 0, len(rows))
	batchSize := imp.cfg.Database.BatchSize

	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		chunk := rows[start:end]

		batch := &pgx.Batch{}
		for _, row := range chunk {
			batch.Queue(query,
				row.RegattaName,
				row.RegattaDate,
				nullString(row.Category),
				nullString(row.BoatName),
				nullString(row.SailNumber),
			)
		}

		br := tx.SendBatch(ctx, batch)
		for range chunk {
			var id int
			if err := br.QueryRow().Scan(&id); err != nil {
				br.Close()
				return nil, err
			}
			ids = append(ids, id)
		}
		if err := br.Close(); err != nil {
			return nil, err
		}
		bar.Add(len(chunk))
	}
	return ids, nil
}

// insertResults links races to skippers for the rows that carry a
// finishing position or total points. Returns the number of result rows
// inserted.
func (imp *importer) insertResults(
	ctx context.Context,
	tx pgx.Tx,
	rows []ingest.Row,
	raceIDs []int,
	skipperIDs map[string]int,
) (int, error) {
	query := `
		INSERT INTO results (race_id, skipper_id, position, total_points)
		VALUES ($1, $2, $3, $4)`

	batch := &pgx.Batch{}
	var count int
	for i, row := range rows {
		if !row.HasResult() {
			continue
		}
		batch.Queue(query,
			raceIDs[i],
			skipperIDs[row.Skipper],
			row.Position,
			row.TotalPoints,
		)
		count++
	}
	if count == 0 {
		return 0, nil
	}

	br := tx.SendBatch(ctx, batch)
	for range count {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return 0, err
		}
	}
	if err := br.Close(); err != nil {
		return 0, err
	}
	return count, nil
}

// nullString maps the empty string to SQL NULL.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
