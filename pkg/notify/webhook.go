package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-banner/components/banner"
)

// WebhookConfig configures the webhook notifications client.
type WebhookConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// WebhookClient publishes banner save intents to a REST endpoint,
// one path per channel.
type WebhookClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ banner.NotificationsClient = (*WebhookClient)(nil)

// NewWebhookClient builds a client for the configured endpoint.
func NewWebhookClient(cfg WebhookConfig) (*WebhookClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("notify: base url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &WebhookClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  httpClient,
	}, nil
}

type savePayload struct {
	Channel string           `json:"channel"`
	Event   banner.SaveEvent `json:"event"`
}

// PublishBannerSave posts the save event to <base>/<channel>.
func (c *WebhookClient) PublishBannerSave(ctx context.Context, channel string, event banner.SaveEvent) error {
	body, err := json.Marshal(savePayload{Channel: channel, Event: event})
	if err != nil {
		return fmt.Errorf("notify: encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+channel, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: http request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return fmt.Errorf("notify: remote error %d: %s", resp.StatusCode, buf.String())
	}
	return nil
}
