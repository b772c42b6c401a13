package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/solederva/feedsync/internal/platform/rabbitmq"
	"github.com/solederva/feedsync/internal/syncer"
	"github.com/solederva/feedsync/pkg/v1/commander"
)

// FeedSyncer syncs feed files from feed url into the catalog.
type FeedSyncer interface {
	SyncFeed(ctx context.Context, feedURL string, mode syncer.Mode) (syncer.Result, error)
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq    *rabbitmq.RabbitMQ
	syncer FeedSyncer
	logger *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(rmq *rabbitmq.RabbitMQ, feedSyncer FeedSyncer, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:    rmq,
		syncer: feedSyncer,
		logger: logger,
	}
}

// Start starts consuming and handling sync commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeMessage(message)
		if err != nil {
			return err
		}

		mode, err := syncer.ParseMode(cmd.Mode)
		if err != nil {
			return fmt.Errorf("can't handle sync command: %w", err)
		}

		h.logger.Debug().
			Str("feedUrl", cmd.FeedURL).
			Str("mode", string(mode)).
			Msg("sync started")

		result, err := h.syncer.SyncFeed(ctx, cmd.FeedURL, mode)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		h.logger.Debug().
			Str("feedUrl", cmd.FeedURL).
			Int32("created", result.Created).
			Int32("updated", result.Updated).
			Int32("unchanged", result.Unchanged).
			Int32("failed", result.Failed).
			Msg("sync finished")

		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func decodeMessage(msg []byte) (*commander.SyncCommand, error) {
	var cmd commander.SyncCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode sync command: %w", err)
	}

	return &cmd, err
}
