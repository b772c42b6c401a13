package syncer

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/solederva/feedsync/internal/canonical"
	"github.com/solederva/feedsync/internal/platform/models"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name RunStore --filename runstore.go

// Fetcher fetches a feed file.
type Fetcher interface {
	FetchFile(ctx context.Context, url string) (io.ReadCloser, error)
}

// RunStore records sync-run history.
type RunStore interface {
	// StartRun creates a new run if no run for the feed is still running.
	StartRun(ctx context.Context, feedURL string) (*models.SyncRun, error)
	// FinishRun finishes the provided run and updates its statistics.
	FinishRun(ctx context.Context, run *models.SyncRun) error
}

// StoreFactory returns the state store for one feed URL.
type StoreFactory func(feedURL string) StateStore

// ServiceOption is custom configuration of Service.
type ServiceOption func(s *Service)

// Service runs whole sync cycles: fetch, parse, reconcile.
type Service struct {
	fetcher Fetcher
	catalog Catalog
	stores  StoreFactory
	runs    RunStore
	logger  *zerolog.Logger
	clock   Clock
	ops     []Option
}

// NewService returns a new Service.
func NewService(
	fetcher Fetcher,
	catalog Catalog,
	stores StoreFactory,
	logger *zerolog.Logger,
	ops ...ServiceOption,
) *Service {
	svc := &Service{
		fetcher: fetcher,
		catalog: catalog,
		stores:  stores,
		logger:  logger,
		clock:   systemClock{},
	}

	for _, op := range ops {
		op(svc)
	}

	return svc
}

// SyncFeed fetches the canonical feed from feedURL and runs one sync
// cycle against the remote catalog.
func (s *Service) SyncFeed(ctx context.Context, feedURL string, mode Mode) (Result, error) {
	var run *models.SyncRun
	if s.runs != nil {
		var err error
		if run, err = s.runs.StartRun(ctx, feedURL); err != nil {
			return Result{}, fmt.Errorf("can't start sync cycle: %w", err)
		}
	}

	file, err := s.fetcher.FetchFile(ctx, feedURL)
	if err != nil {
		return Result{}, s.finishRun(ctx, run, Result{}, fmt.Errorf("can't fetch feed file: %w", err))
	}
	defer file.Close()

	products, err := canonical.ReadCatalog(file, s.logger)
	if err != nil {
		return Result{}, s.finishRun(ctx, run, Result{}, fmt.Errorf("can't parse feed file: %w", err))
	}

	result, err := New(s.catalog, s.stores(feedURL), s.logger, s.ops...).Sync(ctx, products, mode)
	return result, s.finishRun(ctx, run, result, err)
}

// finishRun records the run outcome. It preserves the original status
// error when finishing itself fails.
func (s *Service) finishRun(ctx context.Context, run *models.SyncRun, result Result, status error) error {
	if run == nil {
		return status
	}

	if status != nil {
		run.StatusMessage = lo.ToPtr(status.Error())
	}
	run.IsSuccess = lo.ToPtr(status == nil)
	run.FinishedAt = s.clock.Now()
	run.Created = lo.ToPtr(result.Created)
	run.Updated = lo.ToPtr(result.Updated)
	run.Unchanged = lo.ToPtr(result.Unchanged)
	run.Failed = lo.ToPtr(result.Failed)

	err := s.runs.FinishRun(ctx, run)
	if err != nil && status == nil {
		return fmt.Errorf("can't finish sync cycle: %w", err)
	}
	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed sync cycle: %w (fail reason: %w)", err, status)
	}

	return status
}

// WithServiceClock sets Service's custom Clock, used for run timestamps.
func WithServiceClock(c Clock) ServiceOption {
	return func(s *Service) {
		s.clock = c
	}
}

// WithRunStore sets Service's run history store.
func WithRunStore(runs RunStore) ServiceOption {
	return func(s *Service) {
		s.runs = runs
	}
}

// WithSyncerOptions passes options to the per-cycle Syncer.
func WithSyncerOptions(ops ...Option) ServiceOption {
	return func(s *Service) {
		s.ops = ops
	}
}
