// Package syncer keeps the remote catalog synchronized with a parsed
// canonical feed, driving the minimal set of create/update calls from
// persisted sync state.
package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/solederva/feedsync/internal/platform/models"
	"golang.org/x/time/rate"
)

//go:generate mockery --name Catalog --filename catalog.go
//go:generate mockery --name StateStore --filename statestore.go

// DefaultCallInterval is the minimum delay between remote catalog calls.
const DefaultCallInterval = 500 * time.Millisecond

// Catalog mutates the remote product catalog.
type Catalog interface {
	// Create creates a remote product and returns its remote id.
	Create(ctx context.Context, product models.CatalogProduct) (string, error)
	// Update updates the remote product identified by remoteID.
	Update(ctx context.Context, remoteID string, product models.CatalogProduct) error
}

// StateStore loads and persists sync state.
type StateStore interface {
	Load(ctx context.Context) (*models.SyncState, error)
	Save(ctx context.Context, state *models.SyncState) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() *time.Time
}

// Mode selects the sync behavior for already-known products.
type Mode string

// Sync modes. Initial creates missing products and never updates known
// ones; update additionally pushes changed products.
const (
	ModeInitial Mode = "initial"
	ModeUpdate  Mode = "update"
)

// ParseMode parses raw into a Mode. Empty raw defaults to ModeUpdate.
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case ModeInitial, ModeUpdate:
		return Mode(raw), nil
	case "":
		return ModeUpdate, nil
	default:
		return "", fmt.Errorf("unknown sync mode %q", raw)
	}
}

// Result holds the statistics of one sync cycle.
type Result struct {
	Created   int32
	Updated   int32
	Unchanged int32
	Failed    int32
}

// Option is custom configuration of Syncer.
type Option func(s *Syncer)

// Syncer is the change-detection sync controller.
type Syncer struct {
	catalog Catalog
	store   StateStore
	logger  *zerolog.Logger
	limiter *rate.Limiter
	clock   Clock
}

// New returns a new Syncer.
func New(catalog Catalog, store StateStore, logger *zerolog.Logger, ops ...Option) *Syncer {
	syn := &Syncer{
		catalog: catalog,
		store:   store,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Every(DefaultCallInterval), 1),
		clock:   systemClock{},
	}

	for _, op := range ops {
		op(syn)
	}

	return syn
}

// Sync runs one cycle over products. Per-product remote failures are
// counted and logged but never abort the batch; state is persisted once at
// the end of the cycle.
func (s *Syncer) Sync(ctx context.Context, products []models.CatalogProduct, mode Mode) (Result, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("can't load sync state: %w", err)
	}
	state.Normalize()

	var result Result
	for ix := range products {
		if err := s.syncProduct(ctx, state, &products[ix], mode, &result); err != nil {
			return result, err
		}
	}

	state.LastSync = s.clock.Now()
	if err := s.store.Save(ctx, state); err != nil {
		return result, fmt.Errorf("can't save sync state: %w", err)
	}

	return result, nil
}

// syncProduct applies one state-machine transition. It returns an error
// only when the context is cancelled; remote failures are absorbed into
// the result.
func (s *Syncer) syncProduct(
	ctx context.Context,
	state *models.SyncState,
	product *models.CatalogProduct,
	mode Mode,
	result *Result,
) error {
	hash := ContentHash(product)

	remoteID, known := state.RemoteIDs[product.Code]
	if !known {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}

		remoteID, err := s.catalog.Create(ctx, *product)
		if err != nil {
			// Remains unseen; no partial state is written.
			result.Failed++
			s.logger.Error().
				Err(err).
				Str("productCode", product.Code).
				Msg("can't create remote product")
			return nil
		}

		state.RemoteIDs[product.Code] = remoteID
		state.Hashes[product.Code] = hash
		result.Created++
		s.logger.Info().
			Str("productCode", product.Code).
			Str("remoteId", remoteID).
			Msg("created remote product")
		return nil
	}

	if mode == ModeInitial || state.Hashes[product.Code] == hash {
		result.Unchanged++
		return nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	if err := s.catalog.Update(ctx, remoteID, *product); err != nil {
		// Old hash is retained so the change is retried next cycle.
		result.Failed++
		s.logger.Error().
			Err(err).
			Str("productCode", product.Code).
			Str("remoteId", remoteID).
			Msg("can't update remote product")
		return nil
	}

	state.Hashes[product.Code] = hash
	result.Updated++
	s.logger.Info().
		Str("productCode", product.Code).
		Str("remoteId", remoteID).
		Msg("updated remote product")
	return nil
}

// WithClock sets Syncer's custom Clock.
func WithClock(c Clock) Option {
	return func(s *Syncer) {
		s.clock = c
	}
}

// WithLimiter sets Syncer's remote-call rate limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(s *Syncer) {
		s.limiter = l
	}
}
