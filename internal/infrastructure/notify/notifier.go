// Package notify delivers webhook notifications for content state
// transitions. Delivery is best-effort; a failed notification is the
// dispatcher's problem, never the publisher's.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Config holds the configuration for the webhook notifier.
type Config struct {
	WebhookURL string
	Timeout    time.Duration
}

// WebhookNotifier posts events to a configured webhook endpoint.
type WebhookNotifier struct {
	url  string
	http *http.Client
}

// NewWebhookNotifier creates a notifier. An empty URL yields a notifier that
// silently drops events, so deployments without a webhook stay valid.
func NewWebhookNotifier(cfg Config) *WebhookNotifier {
	return &WebhookNotifier{
		url:  cfg.WebhookURL,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// event is the wire envelope for a notification.
type event struct {
	Event     string         `json:"event"`
	Payload   map[string]any `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

// Notify posts an event to the webhook.
func (n *WebhookNotifier) Notify(ctx context.Context, name string, payload map[string]any) error {
	if n.url == "" {
		return nil
	}

	body, err := json.Marshal(event{
		Event:     name,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
