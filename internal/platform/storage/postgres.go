package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/solederva/feedsync/internal/platform"
	"github.com/solederva/feedsync/internal/platform/models"
	"github.com/solederva/feedsync/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/solederva/feedsync/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres persists per-feed product state and sync-run history.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a new Postgres store.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// FeedState returns the product-state store view scoped to feedURL,
// usable as the syncer's state store.
func (p Postgres) FeedState(feedURL string) FeedState {
	return FeedState{
		db:      p.db,
		feedURL: feedURL,
	}
}

// FeedState is the per-feed product state stored in Postgres.
type FeedState struct {
	db      *sql.DB
	feedURL string
}

// Load reads the persisted product state of the feed. A feed with no rows
// yields empty state.
func (p FeedState) Load(ctx context.Context) (*models.SyncState, error) {
	var rows []pgmodels.ProductState

	err := table.ProductState.SELECT(table.ProductState.AllColumns).
		WHERE(table.ProductState.FeedURL.EQ(pg.String(p.feedURL))).
		ORDER_BY(table.ProductState.ProductCode.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil {
		return nil, fmt.Errorf("can't load product state: %w", err)
	}

	return toAppState(rows), nil
}

// Save replaces the feed's product state rows with the provided state.
func (p FeedState) Save(ctx context.Context, state *models.SyncState) error {
	updatedAt := time.Now().UTC()
	if state.LastSync != nil {
		updatedAt = *state.LastSync
	}
	rows := toDBProductStates(p.feedURL, state, updatedAt)

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		_, err := table.ProductState.DELETE().
			WHERE(table.ProductState.FeedURL.EQ(pg.String(p.feedURL))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete stale product state: %w", err)
		}

		if len(rows) == 0 {
			return nil
		}

		_, err = table.ProductState.INSERT(table.ProductState.MutableColumns).
			MODELS(rows).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't insert product state: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("can't save product state: %w", err)
	}

	return nil
}

// StartRun creates a new unfinished sync run for the feed and returns it.
// It returns ErrAlreadyRunning if the previous run is not finished yet.
func (p Postgres) StartRun(ctx context.Context, feedURL string) (*models.SyncRun, error) {
	run := &models.SyncRun{
		FeedURL: feedURL,
	}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		lastRun, err := getLastRun(ctx, tx, feedURL)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get last run from database: %w", err)
		}

		if lastRun != nil && lastRun.FinishedAt == nil && lastRun.Success == nil {
			return platform.ErrAlreadyRunning
		}

		newRun := toDBRun(run)
		err = table.SyncRun.INSERT(table.SyncRun.FeedURL).
			MODEL(newRun).
			RETURNING(table.SyncRun.ID, table.SyncRun.CreatedAt).
			QueryContext(ctx, tx, newRun)
		if err != nil {
			return fmt.Errorf("can't insert run into database: %w", err)
		}

		run.ID = int(newRun.ID)
		run.CreatedAt = newRun.CreatedAt

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't add run: %w", err)
	}

	return run, nil
}

// FinishRun sets the run as finished and updates its statistics.
func (p Postgres) FinishRun(ctx context.Context, run *models.SyncRun) error {
	columnList := table.SyncRun.AllColumns.Except(table.SyncRun.ID, table.SyncRun.CreatedAt, table.SyncRun.FeedURL)

	result, err := table.SyncRun.UPDATE(columnList).
		MODEL(toDBRun(run)).
		WHERE(table.SyncRun.ID.EQ(pg.Int32(int32(run.ID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update run: %w", err)
	}

	return nil
}

func getLastRun(ctx context.Context, tx *sql.Tx, feedURL string) (*pgmodels.SyncRun, error) {
	var lastRun pgmodels.SyncRun

	err := table.SyncRun.SELECT(table.SyncRun.AllColumns).
		WHERE(table.SyncRun.FeedURL.EQ(pg.String(feedURL))).
		ORDER_BY(table.SyncRun.CreatedAt.DESC()).
		LIMIT(1).
		QueryContext(ctx, tx, &lastRun)
	if err != nil {
		return nil, err
	}

	return &lastRun, nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rollbackErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
