package storage

import (
	"sort"
	"time"

	"github.com/solederva/feedsync/internal/platform/models"

	pgmodels "github.com/solederva/feedsync/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toDBRun(run *models.SyncRun) *pgmodels.SyncRun {
	return &pgmodels.SyncRun{
		FeedURL:           run.FeedURL,
		FinishedAt:        run.FinishedAt,
		Success:           run.IsSuccess,
		StatusMessage:     run.StatusMessage,
		CreatedProducts:   run.Created,
		UpdatedProducts:   run.Updated,
		UnchangedProducts: run.Unchanged,
		FailedProducts:    run.Failed,
	}
}

func toDBProductStates(feedURL string, state *models.SyncState, updatedAt time.Time) []pgmodels.ProductState {
	rows := make([]pgmodels.ProductState, 0, len(state.RemoteIDs))
	for _, code := range sortedCodes(state.RemoteIDs) {
		rows = append(rows, pgmodels.ProductState{
			FeedURL:     feedURL,
			ProductCode: code,
			RemoteID:    state.RemoteIDs[code],
			ContentHash: state.Hashes[code],
			UpdatedAt:   updatedAt,
		})
	}
	return rows
}

// sortedCodes returns the product codes in lexicographic order so state
// rows are written deterministically.
func sortedCodes(remoteIDs map[string]string) []string {
	codes := make([]string, 0, len(remoteIDs))
	for code := range remoteIDs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func toAppState(rows []pgmodels.ProductState) *models.SyncState {
	state := models.NewSyncState()
	for ix := range rows {
		state.RemoteIDs[rows[ix].ProductCode] = rows[ix].RemoteID
		if rows[ix].ContentHash != "" {
			state.Hashes[rows[ix].ProductCode] = rows[ix].ContentHash
		}
		if state.LastSync == nil || rows[ix].UpdatedAt.After(*state.LastSync) {
			updatedAt := rows[ix].UpdatedAt
			state.LastSync = &updatedAt
		}
	}
	return state
}
