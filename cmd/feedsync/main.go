package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/solederva/feedsync/cmd/feedsync/config"
	"github.com/solederva/feedsync/internal/fetcher"
	"github.com/solederva/feedsync/internal/platform/state"
	"github.com/solederva/feedsync/internal/platform/storage"
	"github.com/solederva/feedsync/internal/syncer"
	"github.com/spf13/cobra"
)

// UserAgent is user agent header value used when fetching feed files.
const UserAgent = "feedsync/0.0.1"

var (
	cfg    config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "feedsync",
	Short:         "Vendor feed conversion and marketplace catalog sync",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

		if err := env.Parse(&cfg); err != nil {
			return fmt.Errorf("can't parse env variables: %w", err)
		}

		return nil
	},
}

func main() {
	rootCmd.AddCommand(
		convertCmd,
		syncCmd,
		workerCmd,
		monitorCmd,
		sendCmd,
		repairCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newFetcher() *fetcher.Fetcher {
	return fetcher.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, UserAgent)
}

// openFeed opens a canonical feed from an HTTP(S) URL or a local file path.
func openFeed(ctx context.Context, feed string) (io.ReadCloser, error) {
	if strings.HasPrefix(feed, "http://") || strings.HasPrefix(feed, "https://") {
		return newFetcher().FetchFile(ctx, feed)
	}

	feedFile, err := os.Open(feed)
	if err != nil {
		return nil, fmt.Errorf("can't open feed file: %w", err)
	}

	return feedFile, nil
}

// openDatabase opens the Postgres connection when DATABASE_URL is set.
func openDatabase() (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("can't open Postgres connection: %w", err)
	}

	return pgDB, nil
}

// newStateStore returns the feed's state store: Postgres when a database
// connection is provided, the JSON file store otherwise.
func newStateStore(pgDB *sql.DB, feedURL string) syncer.StateStore {
	if pgDB != nil {
		return storage.NewPostgres(pgDB).FeedState(feedURL)
	}

	return state.NewFileStore(cfg.StateFile, &logger)
}

func newRunStore(pgDB *sql.DB) syncer.RunStore {
	return storage.NewPostgres(pgDB)
}
