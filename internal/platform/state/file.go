// Package state persists sync state between runs.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/solederva/feedsync/internal/platform/models"
)

// FileStore keeps sync state in a single JSON file, rewritten atomically.
type FileStore struct {
	path   string
	logger *zerolog.Logger
}

// NewFileStore returns a FileStore persisting to path.
func NewFileStore(path string, logger *zerolog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

// Load reads the state file. An absent or empty file yields empty state
// (the initial-upload path); an unreadable file is logged as corrupted and
// also degrades to empty state, so the two cases stay distinguishable in
// logs without aborting the run.
func (s *FileStore) Load(_ context.Context) (*models.SyncState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Info().
				Str("path", s.path).
				Msg("no sync state file, starting with empty state")
			return models.NewSyncState(), nil
		}
		return nil, fmt.Errorf("can't read sync state file: %w", err)
	}

	if len(data) == 0 {
		s.logger.Info().
			Str("path", s.path).
			Msg("empty sync state file, starting with empty state")
		return models.NewSyncState(), nil
	}

	var state models.SyncState
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn().
			Err(err).
			Str("path", s.path).
			Msg("sync state file corrupted, falling back to empty state")
		return models.NewSyncState(), nil
	}

	state.Normalize()
	return &state, nil
}

// Save rewrites the state file atomically via a temp file and rename.
func (s *FileStore) Save(_ context.Context, state *models.SyncState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("can't marshal sync state: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".sync-state-*")
	if err != nil {
		return fmt.Errorf("can't create temp state file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("can't write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("can't close temp state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("can't replace sync state file: %w", err)
	}

	return nil
}
