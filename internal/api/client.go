// Package api is the JSON REST client for the CastGate gateway. It owns the
// bearer-header discipline, the structured error payload decoding, and the
// quota classification used by every write path.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mpetrenko/castgate/internal/common"
	"github.com/mpetrenko/castgate/internal/session"
)

// Client performs authenticated requests against the gateway REST API.
// The credential is read from the session store on every request, so a
// refresh or logout is picked up without rebuilding the client.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	store   *session.Store
}

// NewClient constructs a gateway client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, store *session.Store) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	return &Client{
		baseURL: parsed,
		http:    &http.Client{Timeout: timeout},
		store:   store,
	}, nil
}

// doJSON performs one JSON request. A stored credential is attached as a
// bearer header when present. Responses with status >= 400 are decoded into
// *APIError; transport failures map to common.ErrUnavailable.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var requestBody []byte
	if body != nil {
		var err error
		requestBody, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	}

	ref, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("parse request path: %w", err)
	}
	requestURL := c.baseURL.ResolveReference(ref)
	req, err := http.NewRequestWithContext(ctx, method, requestURL.String(), bytes.NewReader(requestBody))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.store.Get(ctx); token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(resp.Body)
		return newAPIError(resp.StatusCode, resp.Status, raw)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
