// Package push integrates with the external push delivery service: an
// outbound client posting to the Expo push API and an inbound dispatcher
// routing notification events from the platform layer.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/akulov/healthmate/internal/models"
)

// DefaultEndpoint is the Expo push delivery endpoint.
const DefaultEndpoint = "https://exp.host/--/api/v2/push/send"

// maxResponseBytes bounds how much of the provider response is read for
// logging.
const maxResponseBytes = 4096

// Client delivers notifications through the Expo push API. Delivery is
// fire-and-forget: the provider response is logged, not tracked, and there
// are no retries.
type Client struct {
	endpoint string
	http     *http.Client
	log      *zap.Logger
}

// NewClient creates a push client. An empty endpoint selects
// DefaultEndpoint.
func NewClient(endpoint string, log *zap.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{},
		log:      log,
	}
}

// message is the Expo push request payload.
type message struct {
	To    string                   `json:"to"`
	Sound string                   `json:"sound"`
	Title string                   `json:"title"`
	Body  string                   `json:"body"`
	Data  *models.NotificationData `json:"data,omitempty"`
}

// Deliver posts one notification to the delivery service. The token is
// required; a non-2xx provider status is reported as an error.
func (c *Client) Deliver(ctx context.Context, token, title, body string, data *models.NotificationData) error {
	if token == "" {
		return errors.New("push token is required")
	}
	payload, err := json.Marshal(message{
		To:    token,
		Sound: "default",
		Title: title,
		Body:  body,
		Data:  data,
	})
	if err != nil {
		return fmt.Errorf("encode push payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send push request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push provider returned %d: %s", resp.StatusCode, respBody)
	}
	c.log.Info("push notification sent",
		zap.String("title", title),
		zap.ByteString("response", respBody),
	)
	return nil
}
