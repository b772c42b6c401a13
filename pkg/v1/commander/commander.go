// Package commander publishes sync commands for the feedsync worker.
package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// SyncCommand orders the worker to run one sync cycle for a feed.
type SyncCommand struct {
	FeedURL string `json:"feedUrl"`
	Mode    string `json:"mode,omitempty"`
}

// SyncCommander sends sync commands.
type SyncCommander struct {
	sender Sender
}

// NewSyncCommander returns a new SyncCommander using the provided sender for sending messages.
func NewSyncCommander(sender Sender) SyncCommander {
	return SyncCommander{
		sender: sender,
	}
}

// SendSyncCommand sends a sync command for feedURL with the provided mode.
func (c SyncCommander) SendSyncCommand(ctx context.Context, feedURL, mode string) error {
	cmd := SyncCommand{
		FeedURL: feedURL,
		Mode:    mode,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal sync command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
