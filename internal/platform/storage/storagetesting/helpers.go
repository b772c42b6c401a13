// Package storagetesting contains helpers for tests run against a real
// Postgres instance pointed to by the DATABASE_URL environment variable.
package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/solederva/feedsync/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/solederva/feedsync/internal/platform/storage/gen/postgres/public/model"
	_ "github.com/lib/pq"
)

// Open opens connection to DB. Tests are skipped when DATABASE_URL is not set.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertRuns is a helper test function to insert sync runs.
func InsertRuns(t *testing.T, exc qrm.Executable, runs ...pgmodels.SyncRun) {
	t.Helper()

	if len(runs) == 0 {
		return
	}

	toInsert := make([]pgmodels.SyncRun, 0, len(runs))
	toInsert = append(toInsert, runs...)

	_, err := table.SyncRun.INSERT(table.SyncRun.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert runs", err)
	}
}

// InsertProductStates is a helper test function to insert product state rows.
func InsertProductStates(t *testing.T, exc qrm.Executable, states ...pgmodels.ProductState) {
	t.Helper()

	if len(states) == 0 {
		return
	}

	toInsert := make([]pgmodels.ProductState, 0, len(states))
	toInsert = append(toInsert, states...)

	_, err := table.ProductState.INSERT(table.ProductState.MutableColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert product states", err)
	}
}

// GetRuns is a helper test function to get all sync runs.
func GetRuns(t *testing.T, queryable qrm.Queryable) []pgmodels.SyncRun {
	t.Helper()

	runs := []pgmodels.SyncRun{}
	err := table.SyncRun.SELECT(table.SyncRun.AllColumns).
		WHERE(table.SyncRun.ID.IS_NOT_NULL()).
		Query(queryable, &runs)
	if err != nil {
		t.Fatal("can't get runs", err)
	}

	return runs
}

// GetProductStates is a helper test function to get all product state rows.
func GetProductStates(t *testing.T, queryable qrm.Queryable) []pgmodels.ProductState {
	t.Helper()

	states := []pgmodels.ProductState{}
	err := table.ProductState.SELECT(table.ProductState.AllColumns).
		WHERE(table.ProductState.ID.IS_NOT_NULL()).
		ORDER_BY(table.ProductState.ProductCode.ASC()).
		Query(queryable, &states)
	if err != nil {
		t.Fatal("can't get product states", err)
	}

	return states
}

// CleanupData removes all rows written by the tests.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.ProductState.DELETE().WHERE(table.ProductState.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete product state data", err)
	}

	_, err = table.SyncRun.DELETE().WHERE(table.SyncRun.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete runs data", err)
	}
}
