package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/solederva/feedsync/internal/catalog"
	"github.com/solederva/feedsync/internal/handler"
	"github.com/solederva/feedsync/internal/platform/rabbitmq"
	"github.com/solederva/feedsync/internal/syncer"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume sync commands from RabbitMQ and run sync cycles",
	RunE:  runWorker,
}

func runWorker(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if cfg.Catalog.BaseURL == "" {
		return fmt.Errorf("CATALOG_URL is not set")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		return fmt.Errorf("can't open RabbitMQ connection: %w", err)
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		return fmt.Errorf("can't open RabbitMQ connection: %w", err)
	}

	pgDB, err := openDatabase()
	if err != nil {
		return err
	}

	client := catalog.NewClient(
		&http.Client{Timeout: cfg.HTTPTimeout},
		cfg.Catalog.BaseURL,
		cfg.Catalog.AccessToken,
		cfg.Catalog.Vendor,
	)

	serviceOps := []syncer.ServiceOption{
		syncer.WithSyncerOptions(
			syncer.WithLimiter(rate.NewLimiter(rate.Every(cfg.Sync.CallInterval), 1)),
		),
	}
	if pgDB != nil {
		serviceOps = append(serviceOps, syncer.WithRunStore(newRunStore(pgDB)))
	}

	service := syncer.NewService(
		newFetcher(),
		client,
		func(feedURL string) syncer.StateStore {
			return newStateStore(pgDB, feedURL)
		},
		&logger,
		serviceOps...,
	)

	han := handler.NewHandler(conn, service, &logger)

	// start consuming and handling messages
	if err := han.Start(ctx, cfg.RabbitMQ.Queue); err != nil {
		return fmt.Errorf("can't start consuming: %w", err)
	}

	logger.Info().Msg("feedsync worker up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}

	if pgDB != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := pgDB.Close(); err != nil {
				logger.Error().
					Err(err).
					Msg("can't close Postgres connection")
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")

	return nil
}
