package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/swcstudio/domainscan/internal/progress"
)

// WebhookNotifier posts terminal scan events to an HTTP endpoint. It plugs
// into the progress publisher as a subscriber; non-terminal events are
// ignored so the endpoint sees one POST per finished scan.
type WebhookNotifier struct {
	URL    string
	Client *http.Client
}

// NewWebhookNotifier returns a notifier for url. An empty url yields a
// notifier whose Notify is a no-op.
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

type webhookPayload struct {
	ScanID   string `json:"scan_id"`
	Hostname string `json:"hostname"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// Notify implements progress.Subscriber. Delivery failures are warnings;
// a dead webhook must never fail a scan.
func (n *WebhookNotifier) Notify(ev progress.Event) {
	if n == nil || n.URL == "" || !ev.Status.Terminal() {
		return
	}
	if err := n.send(ev); err != nil {
		fmt.Printf("[!] Webhook notification failed: %v\n", err)
	}
}

func (n *WebhookNotifier) send(ev progress.Event) error {
	body, err := json.Marshal(webhookPayload{
		ScanID:   ev.ScanID,
		Hostname: ev.Hostname,
		Status:   string(ev.Status),
		Message:  ev.Message,
	})
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	resp, err := n.Client.Post(n.URL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("posting to %s: %w", n.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned non-2xx status %d", resp.StatusCode)
	}
	return nil
}
