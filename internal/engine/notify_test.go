package engine

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/swcstudio/domainscan/internal/progress"
)

func TestWebhookNotifierPostsTerminalEvents(t *testing.T) {
	var received []webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p webhookPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("decoding payload: %v", err)
		}
		received = append(received, p)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL)
	n.Notify(progress.Event{ScanID: "s1", Hostname: "example.com", Status: progress.StatusStarted})
	n.Notify(progress.Event{ScanID: "s1", Hostname: "example.com", Status: progress.StatusScanning, Progress: 50})
	n.Notify(progress.Event{ScanID: "s1", Hostname: "example.com", Status: progress.StatusCompleted, Progress: 100, Message: "Scan complete"})

	if len(received) != 1 {
		t.Fatalf("webhook received %d posts, want 1 (terminal events only)", len(received))
	}
	if received[0].ScanID != "s1" || received[0].Status != "completed" {
		t.Errorf("payload = %+v", received[0])
	}
}

func TestWebhookNotifierEmptyURLIsNoop(t *testing.T) {
	n := NewWebhookNotifier("")
	// Must not panic or attempt a request.
	n.Notify(progress.Event{Status: progress.StatusCompleted})
}
