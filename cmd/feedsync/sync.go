package main

import (
	"fmt"
	"net/http"

	"github.com/solederva/feedsync/internal/canonical"
	"github.com/solederva/feedsync/internal/catalog"
	"github.com/solederva/feedsync/internal/syncer"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	syncFeed string
	syncMode string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sync cycle of a canonical feed against the remote catalog",
	RunE:  runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncFeed, "feed", "", "canonical feed file or URL (required)")
	syncCmd.Flags().StringVar(&syncMode, "mode", string(syncer.ModeUpdate), "sync mode: initial or update")
	_ = syncCmd.MarkFlagRequired("feed")
}

func runSync(cmd *cobra.Command, _ []string) error {
	mode, err := syncer.ParseMode(syncMode)
	if err != nil {
		return err
	}

	if cfg.Catalog.BaseURL == "" {
		return fmt.Errorf("CATALOG_URL is not set")
	}

	feedFile, err := openFeed(cmd.Context(), syncFeed)
	if err != nil {
		return err
	}
	defer feedFile.Close()

	products, err := canonical.ReadCatalog(feedFile, &logger)
	if err != nil {
		return fmt.Errorf("can't read canonical feed: %w", err)
	}

	pgDB, err := openDatabase()
	if err != nil {
		return err
	}
	if pgDB != nil {
		defer pgDB.Close()
	}

	client := catalog.NewClient(
		&http.Client{Timeout: cfg.HTTPTimeout},
		cfg.Catalog.BaseURL,
		cfg.Catalog.AccessToken,
		cfg.Catalog.Vendor,
	)

	syn := syncer.New(
		client,
		newStateStore(pgDB, syncFeed),
		&logger,
		syncer.WithLimiter(rate.NewLimiter(rate.Every(cfg.Sync.CallInterval), 1)),
	)

	result, err := syn.Sync(cmd.Context(), products, mode)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	logger.Info().
		Int32("created", result.Created).
		Int32("updated", result.Updated).
		Int32("unchanged", result.Unchanged).
		Int32("failed", result.Failed).
		Msg("sync finished")

	return nil
}
