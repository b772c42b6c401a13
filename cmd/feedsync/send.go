package main

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/solederva/feedsync/internal/platform/rabbitmq"
	"github.com/solederva/feedsync/internal/syncer"
	"github.com/solederva/feedsync/pkg/v1/commander"
	"github.com/spf13/cobra"
)

var (
	sendFeedURL string
	sendMode    string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Publish a sync command to the worker queue",
	RunE:  runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendFeedURL, "feed-url", "", "feed URL to sync (required)")
	sendCmd.Flags().StringVar(&sendMode, "mode", string(syncer.ModeUpdate), "sync mode: initial or update")
	_ = sendCmd.MarkFlagRequired("feed-url")
}

func runSend(cmd *cobra.Command, _ []string) error {
	mode, err := syncer.ParseMode(sendMode)
	if err != nil {
		return err
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		return fmt.Errorf("can't open RabbitMQ connection: %w", err)
	}
	defer amqpConnection.Close()

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		return fmt.Errorf("can't open RabbitMQ connection: %w", err)
	}

	cmdr := commander.NewSyncCommander(commander.NewRabbitMQSender(conn, cfg.RabbitMQ.RoutingKey))

	if err := cmdr.SendSyncCommand(cmd.Context(), sendFeedURL, string(mode)); err != nil {
		return fmt.Errorf("can't send sync command: %w", err)
	}

	logger.Info().
		Str("feedUrl", sendFeedURL).
		Str("mode", string(mode)).
		Msg("sync command sent")

	return nil
}
