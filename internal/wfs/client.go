package wfs

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ClientOptions configures the WFS client.
type ClientOptions struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client issues GetFeature queries against a single WFS endpoint. A
// transport failure or non-2xx status aborts the run; there is no retry.
type Client struct {
	http *http.Client
	opts ClientOptions
}

// NewClient creates a Client with the given options.
func NewClient(opts ClientOptions) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "rcn-wroclaw/1.0"
	}
	return &Client{
		http: &http.Client{Timeout: opts.Timeout},
		opts: opts,
	}
}

// GetFeature executes the request and returns the raw response body.
func (c *Client) GetFeature(ctx context.Context, r Request) ([]byte, error) {
	rawURL, err := r.URL(c.opts.BaseURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "wfs: create request")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)

	zap.L().Debug("wfs: GetFeature", zap.String("url", rawURL))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "wfs: get features")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, eris.Errorf("wfs: unexpected status %d from %s", resp.StatusCode, c.opts.BaseURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "wfs: read response body")
	}

	return body, nil
}
