package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Notifier delivers fire-and-forget owner notifications. Implementations
// must not block the caller indefinitely; callers ignore delivery failures
// beyond logging them.
type Notifier interface {
	Notify(ctx context.Context, title, content string) error
}

// Webhook POSTs notifications as JSON to a configured endpoint.
type Webhook struct {
	url    string
	client *http.Client
}

func NewWebhook(url string) *Webhook {
	return &Webhook{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type webhookPayload struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (w *Webhook) Notify(ctx context.Context, title, content string) error {
	body, err := json.Marshal(webhookPayload{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("notification POST: %w", err)
	}
	defer func() { io.Copy(io.Discard, resp.Body); resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification webhook returned %d", resp.StatusCode)
	}
	return nil
}

// Noop discards notifications. Used when no webhook URL is configured.
type Noop struct{}

func (Noop) Notify(context.Context, string, string) error { return nil }

// FromURL returns a webhook notifier, or a no-op one when url is empty.
func FromURL(url string) Notifier {
	if url == "" {
		return Noop{}
	}
	return NewWebhook(url)
}
