package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Notifier posts Mattermost-style webhook messages. Delivery is strictly
// best effort; callers log the returned error and move on.
type Notifier struct {
	client *http.Client
}

func NewNotifier() *Notifier {
	return &Notifier{client: &http.Client{Timeout: 10 * time.Second}}
}

type webhookMessage struct {
	Text     string `json:"text"`
	Username string `json:"username"`
	IconURL  string `json:"icon_url,omitempty"`
}

// Send posts text to the webhook. An empty URL is a silent no-op so every
// call site can stay unconditional.
func (n *Notifier) Send(ctx context.Context, webhookURL, text string) error {
	if webhookURL == "" {
		return nil
	}
	payload, err := json.Marshal(webhookMessage{Text: text, Username: "AV Quote Pro"})
	if err != nil {
		return fmt.Errorf("notify: encode: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("notify: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
