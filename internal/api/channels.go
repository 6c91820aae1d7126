package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// Channel is a connected distribution target.
type Channel struct {
	ID          string `json:"id"`
	Provider    string `json:"provider"`
	DisplayName string `json:"displayName"`
}

// ListChannels fetches the caller's connected channels.
func (c *Client) ListChannels(ctx context.Context) ([]Channel, error) {
	var out []Channel
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/channels", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ConnectChannel links a new channel to the account.
func (c *Client) ConnectChannel(ctx context.Context, provider, handle string) (*Channel, error) {
	body := map[string]string{"provider": provider, "handle": handle}
	var out Channel
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/channels/connect", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Monetization returns the raw monetization report. The shape varies per
// provider, so it is rendered as-is rather than decoded into a struct.
func (c *Client) Monetization(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/monetization", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
