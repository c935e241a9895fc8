package probes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/swcstudio/domainscan/internal/models"
)

func TestReachProbeSuccess(t *testing.T) {
	const body = "0123456789"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	c := NewReachClient("domainscan-test/1.0", 5*time.Second)
	c.Scheme = "http"

	perf, err := c.Probe(context.Background(), srv.Listener.Addr().String())
	if err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if perf.UptimePercent != 100 {
		t.Errorf("UptimePercent = %v, want 100", perf.UptimePercent)
	}
	if perf.ContentSizeBytes != int64(len(body)) {
		t.Errorf("ContentSizeBytes = %d, want %d", perf.ContentSizeBytes, len(body))
	}
	if perf.ResponseTimeMs < 0 || perf.ResponseTimeMs >= UnreachableSentinelMs {
		t.Errorf("ResponseTimeMs = %d, want a real measurement", perf.ResponseTimeMs)
	}
	if perf.LoadTimeMs < perf.ResponseTimeMs {
		t.Errorf("LoadTimeMs %d < ResponseTimeMs %d", perf.LoadTimeMs, perf.ResponseTimeMs)
	}
}

func TestReachProbeFailureAndSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.Listener.Addr().String()
	srv.Close()

	c := NewReachClient("domainscan-test/1.0", 2*time.Second)
	c.Scheme = "http"

	_, err := c.Probe(context.Background(), addr)
	var netErr *models.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}

	perf := UnreachablePerformance()
	if perf.ResponseTimeMs != UnreachableSentinelMs || perf.UptimePercent != 0 {
		t.Errorf("unexpected sentinel sample: %+v", perf)
	}
	if perf.ContentSizeBytes != 0 || perf.LoadTimeMs != UnreachableSentinelMs {
		t.Errorf("unexpected sentinel sample: %+v", perf)
	}
}
