package superdata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/ktiva/ktiva-api/internal/config"
	"github.com/ktiva/ktiva-api/internal/store"
)

// defaultTimeout bounds every request to the record service.
const defaultTimeout = 30 * time.Second

// Client is a thin JSON/HTTP client for the record service. It is
// constructed once at startup and shared by the store implementations.
type Client struct {
	baseURL    string
	apiKey     string
	databaseID string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client from configuration. Missing connection
// settings fail immediately with store.ErrNotConfigured rather than on
// first use. If log is nil, a default logger will be used.
func NewClient(cfg config.SuperdataConfig, log *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL missing", store.ErrNotConfigured)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key missing", store.ErrNotConfigured)
	}
	if cfg.DatabaseID == "" {
		return nil, fmt.Errorf("%w: database ID missing", store.ErrNotConfigured)
	}
	if log == nil {
		log = slog.Default()
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		databaseID: cfg.DatabaseID,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     log.With(slog.String("component", "superdata_client")),
	}, nil
}

// do performs one JSON request against the record service. path is
// relative to the database root (e.g. "texts", "texts/"+id). A non-nil
// out receives the decoded response body. 404 responses map to
// store.ErrNotFound; other failures become StoreError transport errors.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
	out any,
) error {
	endpoint := fmt.Sprintf("%s/databases/%s/%s", c.baseURL, c.databaseID, path)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return store.NewStoreError("superdata", method, "failed to encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return store.NewStoreError("superdata", method, "failed to build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("record service request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()))
		return store.NewStoreError("superdata", method, "transport failure", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close response body", slog.String("error", cerr.Error()))
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s %s", store.ErrNotFound, method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("record service returned error status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))
		return store.NewStoreError("superdata", method,
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return store.NewStoreError("superdata", method, "failed to decode response", err)
	}
	return nil
}
