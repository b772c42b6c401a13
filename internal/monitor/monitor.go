// Package monitor polls a vendor feed on an interval and triggers a sync
// cycle whenever the feed content changes.
package monitor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/solederva/feedsync/internal/platform/models"
	"github.com/solederva/feedsync/internal/syncer"
)

// Default monitor settings.
const (
	DefaultInterval       = 15 * time.Minute
	DefaultErrorThreshold = 5
)

//go:generate mockery --name Trigger --filename trigger.go
//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name StateStore --filename statestore.go

// Trigger starts one sync cycle for a feed.
type Trigger interface {
	TriggerSync(ctx context.Context, feedURL string, mode syncer.Mode) error
}

// Fetcher fetches feed files from feed url.
type Fetcher interface {
	FetchFile(ctx context.Context, url string) (io.ReadCloser, error)
}

// StateStore reads persisted sync state, used to pick the first cycle's mode.
type StateStore interface {
	Load(ctx context.Context) (*models.SyncState, error)
}

// Option is a Monitor configuration function.
type Option func(*Monitor)

// Monitor periodically downloads the feed, skips cycles whose content
// fingerprint matches the previous download, and triggers a sync otherwise.
type Monitor struct {
	fetcher         Fetcher
	trigger         Trigger
	store           StateStore
	logger          *zerolog.Logger
	interval        time.Duration
	errorThreshold  int
	lastFingerprint string
}

// New returns a Monitor with the provided options applied.
func New(fetcher Fetcher, trigger Trigger, store StateStore, logger *zerolog.Logger, ops ...Option) *Monitor {
	monitor := &Monitor{
		fetcher:        fetcher,
		trigger:        trigger,
		store:          store,
		logger:         logger,
		interval:       DefaultInterval,
		errorThreshold: DefaultErrorThreshold,
	}

	for _, op := range ops {
		op(monitor)
	}

	return monitor
}

// WithInterval sets the polling interval.
func WithInterval(interval time.Duration) Option {
	return func(m *Monitor) {
		m.interval = interval
	}
}

// WithErrorThreshold sets how many consecutive failed cycles are tolerated
// before Run gives up.
func WithErrorThreshold(threshold int) Option {
	return func(m *Monitor) {
		m.errorThreshold = threshold
	}
}

// Run polls feedURL until ctx is cancelled or errorThreshold consecutive
// cycles fail. The first cycle runs immediately.
func (m *Monitor) Run(ctx context.Context, feedURL string) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	failures := 0

	for {
		err := m.cycle(ctx, feedURL)
		switch {
		case errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			failures++
			m.logger.Error().
				Err(err).
				Str("feedUrl", feedURL).
				Int("consecutiveFailures", failures).
				Msg("monitor cycle failed")

			if failures >= m.errorThreshold {
				return fmt.Errorf("giving up after %d failed cycles: %w", failures, err)
			}
		default:
			failures = 0
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (m *Monitor) cycle(ctx context.Context, feedURL string) error {
	fingerprint, err := m.fingerprint(ctx, feedURL)
	if err != nil {
		return err
	}

	if fingerprint == m.lastFingerprint {
		m.logger.Debug().
			Str("feedUrl", feedURL).
			Msg("feed unchanged, skipping cycle")

		return nil
	}

	mode, err := m.resolveMode(ctx)
	if err != nil {
		return err
	}

	if err := m.trigger.TriggerSync(ctx, feedURL, mode); err != nil {
		return fmt.Errorf("can't trigger sync: %w", err)
	}

	m.lastFingerprint = fingerprint

	m.logger.Info().
		Str("feedUrl", feedURL).
		Str("mode", string(mode)).
		Msg("sync triggered")

	return nil
}

func (m *Monitor) fingerprint(ctx context.Context, feedURL string) (string, error) {
	feedFile, err := m.fetcher.FetchFile(ctx, feedURL)
	if err != nil {
		return "", fmt.Errorf("can't fetch feed: %w", err)
	}
	defer feedFile.Close()

	digest := sha256.New()
	if _, err := io.Copy(digest, feedFile); err != nil {
		return "", fmt.Errorf("can't read feed: %w", err)
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

// resolveMode picks the initial mode when no product has been synced yet
// and the update mode afterwards.
func (m *Monitor) resolveMode(ctx context.Context) (syncer.Mode, error) {
	state, err := m.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("can't load sync state: %w", err)
	}

	if state.LastSync == nil && len(state.RemoteIDs) == 0 {
		return syncer.ModeInitial, nil
	}

	return syncer.ModeUpdate, nil
}
