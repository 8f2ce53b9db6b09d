package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/datagetws/orders-api/internal/service/models/order"
	"github.com/spf13/viper"
)

// Client posts newly created orders to the admin panel API.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for the given admin endpoint.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}

	return &Client{
		url:        url,
		httpClient: httpClient,
	}
}

// MustNewClient creates a client configured from viper.
func MustNewClient() *Client {
	url := viper.GetString("admin.api_url")
	if url == "" {
		panic("admin.api_url is not set in config")
	}

	timeoutSeconds := viper.GetInt("admin.timeout_seconds")
	if timeoutSeconds == 0 {
		timeoutSeconds = 5
	}

	return NewClient(url, &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second})
}

// Notify delivers the order to the admin API as a JSON POST. Any failure is
// returned to the caller for logging only; delivery is at most once, with no
// retry.
func (c *Client) Notify(ctx context.Context, o order.Order) error {
	body, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal order %d: %w", o.ID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build admin request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post order %d to admin api: %w", o.ID, err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("admin api returned status %d for order %d", resp.StatusCode, o.ID)
	}

	return nil
}
