// Package notify delivers best-effort chat notifications for assignment
// events. Delivery failures are the caller's to log; they must never fail the
// request that triggered them.
package notify

import (
	"context"
	"fmt"

	"github.com/zulandar/pitstop/internal/config"
	"github.com/zulandar/pitstop/internal/notify/discord"
	"github.com/zulandar/pitstop/internal/notify/slack"
)

// Notifier posts a plain-text message to the configured channel.
type Notifier interface {
	Post(ctx context.Context, text string) error
}

// New returns the Notifier selected by cfg.Platform, or nil (disabled) when
// the platform is empty.
func New(cfg config.NotifyConfig) (Notifier, error) {
	switch cfg.Platform {
	case "":
		return nil, nil
	case "slack":
		return slack.New(slack.Opts{Token: cfg.Token, ChannelID: cfg.Channel})
	case "discord":
		return discord.New(discord.Opts{Token: cfg.Token, ChannelID: cfg.Channel})
	default:
		return nil, fmt.Errorf("notify: unknown platform %q", cfg.Platform)
	}
}
