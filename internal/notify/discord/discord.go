// Package discord implements the notify Notifier for Discord.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// session abstracts the discordgo.Session methods we use, enabling test mocks.
type session interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts messages to a single Discord channel over the REST API.
type Notifier struct {
	sess      session
	channelID string
}

// Opts holds parameters for creating a Discord Notifier.
type Opts struct {
	Token     string // bot token (without the "Bot " prefix)
	ChannelID string // channel to post to
	// For testing: inject a mock session instead of the real API.
	Session session
}

// New creates a Discord Notifier.
func New(opts Opts) (*Notifier, error) {
	if opts.Session == nil && opts.Token == "" {
		return nil, fmt.Errorf("discord: bot token is required")
	}
	if opts.ChannelID == "" {
		return nil, fmt.Errorf("discord: channel is required")
	}
	sess := opts.Session
	if sess == nil {
		s, err := discordgo.New("Bot " + opts.Token)
		if err != nil {
			return nil, fmt.Errorf("discord: create session: %w", err)
		}
		sess = s
	}
	return &Notifier{sess: sess, channelID: opts.ChannelID}, nil
}

// Post sends a plain-text message to the configured channel.
func (n *Notifier) Post(ctx context.Context, text string) error {
	_, err := n.sess.ChannelMessageSend(n.channelID, text, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("discord: send message: %w", err)
	}
	return nil
}
