package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"labline/models"
)

// Transport executes outbound commands against the messaging channel. The
// production implementation forwards to the gateway collaborator; tests use a
// recorder.
type Transport interface {
	SendText(ctx context.Context, to, text string) error
	SendMedia(ctx context.Context, to, mediaRef, caption string) error
	React(ctx context.Context, to, emoji string) error
}

// commandEnvelope is the wire form POSTed to the gateway callback.
type commandEnvelope struct {
	To      string                 `json:"to"`
	Command models.OutboundCommand `json:"command"`
}

// HTTPTransport delivers commands to the messaging gateway over its callback
// endpoint. Delivery guarantees beyond a single POST are the gateway's job.
type HTTPTransport struct {
	CallbackURL string
	Client      *http.Client
}

func NewHTTPTransport(callbackURL string) *HTTPTransport {
	return &HTTPTransport{
		CallbackURL: callbackURL,
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *HTTPTransport) SendText(ctx context.Context, to, text string) error {
	return t.post(ctx, to, models.Reply(text))
}

func (t *HTTPTransport) SendMedia(ctx context.Context, to, mediaRef, caption string) error {
	return t.post(ctx, to, models.SendMedia(mediaRef, caption))
}

func (t *HTTPTransport) React(ctx context.Context, to, emoji string) error {
	return t.post(ctx, to, models.React(emoji))
}

func (t *HTTPTransport) post(ctx context.Context, to string, cmd models.OutboundCommand) error {
	if t.CallbackURL == "" {
		return fmt.Errorf("transport callback URL not configured")
	}
	b, err := json.Marshal(commandEnvelope{To: to, Command: cmd})
	if err != nil {
		return fmt.Errorf("failed to marshal outbound command: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.CallbackURL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver command: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("gateway rejected command: status %d", resp.StatusCode)
	}
	return nil
}
