package converter

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/solederva/feedsync/internal/platform/models"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Decoder --filename decoder.go

// Decoder decodes a source feed into per-product parse results.
type Decoder interface {
	Decode(context.Context, io.Reader, chan<- models.ParseResult) error
}

// Pipeline streams a source feed through decoding and normalization.
type Pipeline struct {
	decoder   Decoder
	converter *Converter
	logger    *zerolog.Logger
}

// NewPipeline returns a Pipeline decoding with decoder and normalizing
// with converter.
func NewPipeline(decoder Decoder, converter *Converter, logger *zerolog.Logger) *Pipeline {
	return &Pipeline{
		decoder:   decoder,
		converter: converter,
		logger:    logger,
	}
}

// Run decodes and normalizes every product in feed. Products that fail to
// decode or normalize are skipped with a logged warning; Run returns the
// normalized products and the number of skipped ones. Only a malformed
// document aborts the whole run.
func (p *Pipeline) Run(ctx context.Context, feed io.Reader) ([]models.NormalizedProduct, int, error) {
	results := make(chan models.ParseResult)
	skipped := 0

	var products []models.NormalizedProduct

	errGroup, egCtx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		defer close(results)
		if err := p.decoder.Decode(egCtx, feed, results); err != nil {
			return fmt.Errorf("can't decode feed file: %w", err)
		}
		return nil
	})

	errGroup.Go(func() error {
		for result := range results {
			if result.Error != nil {
				skipped++
				p.logger.Warn().
					Err(result.Error).
					Str("productCode", result.Product.Code).
					Msg("skipping product with decoding error")
				continue
			}

			product, err := p.converter.Convert(result.Product)
			if err != nil {
				skipped++
				p.logger.Warn().
					Err(err).
					Str("productName", result.Product.Name).
					Msg("skipping product")
				continue
			}

			products = append(products, product)
		}
		return nil
	})

	if err := errGroup.Wait(); err != nil {
		return nil, skipped, err
	}

	return products, skipped, nil
}
