// Package slack delivers threat alerts to a Slack channel via Block Kit
// messages. Delivery is best-effort by contract: callers decide what a
// failed send means, this package just reports it.
package slack

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"
)

// Client posts to one channel on behalf of one bot token.
type Client struct {
	api       *goslack.Client
	channelID string
	logger    *slog.Logger
}

// NewClient builds a client against the public Slack API.
func NewClient(token, channelID string) *Client {
	return newClient(channelID, goslack.New(token))
}

// NewClientWithAPIURL targets a custom API base URL. Tests point this at an
// httptest server.
func NewClientWithAPIURL(token, channelID, apiURL string) *Client {
	return newClient(channelID, goslack.New(token, goslack.OptionAPIURL(apiURL)))
}

func newClient(channelID string, api *goslack.Client) *Client {
	return &Client{
		api:       api,
		channelID: channelID,
		logger:    slog.Default().With("component", "slack-client"),
	}
}

// PostMessage sends one Block Kit message to the configured channel,
// bounded by timeout.
func (c *Client) PostMessage(ctx context.Context, blocks []goslack.Block, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, _, err := c.api.PostMessageContext(ctx, c.channelID, goslack.MsgOptionBlocks(blocks...)); err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return nil
}
