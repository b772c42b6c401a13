package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/solederva/feedsync/internal/catalog"
	"github.com/solederva/feedsync/internal/monitor"
	"github.com/solederva/feedsync/internal/platform/rabbitmq"
	"github.com/solederva/feedsync/internal/syncer"
	"github.com/solederva/feedsync/pkg/v1/commander"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var monitorFeedURL string

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Poll a feed and trigger a sync whenever its content changes",
	RunE:  runMonitor,
}

func init() {
	monitorCmd.Flags().StringVar(&monitorFeedURL, "feed-url", "", "feed URL to poll (defaults to FEED_URL)")
}

// triggerFunc adapts a function to the monitor's Trigger interface.
type triggerFunc func(ctx context.Context, feedURL string, mode syncer.Mode) error

func (f triggerFunc) TriggerSync(ctx context.Context, feedURL string, mode syncer.Mode) error {
	return f(ctx, feedURL, mode)
}

func runMonitor(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	feedURL := monitorFeedURL
	if feedURL == "" {
		feedURL = cfg.FeedURL
	}
	if feedURL == "" {
		return fmt.Errorf("no feed URL, set --feed-url or FEED_URL")
	}

	pgDB, err := openDatabase()
	if err != nil {
		return err
	}
	if pgDB != nil {
		defer pgDB.Close()
	}

	trigger, err := newTrigger(pgDB)
	if err != nil {
		return err
	}

	mon := monitor.New(
		newFetcher(),
		trigger,
		newStateStore(pgDB, feedURL),
		&logger,
		monitor.WithInterval(cfg.Monitor.Interval),
		monitor.WithErrorThreshold(cfg.Monitor.ErrorThreshold),
	)

	logger.Info().
		Str("feedUrl", feedURL).
		Dur("interval", cfg.Monitor.Interval).
		Msg("feed monitor up and running")

	return mon.Run(ctx, feedURL)
}

// newTrigger publishes sync commands to the worker queue when RabbitMQ is
// configured and runs sync cycles in-process otherwise.
func newTrigger(pgDB *sql.DB) (monitor.Trigger, error) {
	if cfg.RabbitMQ.URL != "" {
		amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			return nil, fmt.Errorf("can't open RabbitMQ connection: %w", err)
		}

		conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
		if err != nil {
			return nil, fmt.Errorf("can't open RabbitMQ connection: %w", err)
		}

		cmdr := commander.NewSyncCommander(commander.NewRabbitMQSender(conn, cfg.RabbitMQ.RoutingKey))

		return triggerFunc(func(ctx context.Context, feedURL string, mode syncer.Mode) error {
			return cmdr.SendSyncCommand(ctx, feedURL, string(mode))
		}), nil
	}

	if cfg.Catalog.BaseURL == "" {
		return nil, fmt.Errorf("CATALOG_URL is not set")
	}

	client := catalog.NewClient(
		&http.Client{Timeout: cfg.HTTPTimeout},
		cfg.Catalog.BaseURL,
		cfg.Catalog.AccessToken,
		cfg.Catalog.Vendor,
	)

	service := syncer.NewService(
		newFetcher(),
		client,
		func(feedURL string) syncer.StateStore {
			return newStateStore(pgDB, feedURL)
		},
		&logger,
		syncer.WithSyncerOptions(
			syncer.WithLimiter(rate.NewLimiter(rate.Every(cfg.Sync.CallInterval), 1)),
		),
	)

	return triggerFunc(func(ctx context.Context, feedURL string, mode syncer.Mode) error {
		_, err := service.SyncFeed(ctx, feedURL, mode)
		return err
	}), nil
}
