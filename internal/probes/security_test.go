package probes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/swcstudio/domainscan/internal/models"
)

func testSecurityClient() *SecurityClient {
	c := NewSecurityClient("domainscan-test/1.0", 5*time.Second)
	c.Scheme = "http"
	return c
}

func TestSecurityAuditAllHeadersPresent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Strict-Transport-Security", "max-age=63072000")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Content-Security-Policy", "default-src 'self'")
	}))
	defer srv.Close()

	info, err := testSecurityClient().Audit(context.Background(), srv.Listener.Addr().String())
	if err != nil {
		t.Fatalf("Audit: %v", err)
	}
	if len(info.Vulnerabilities) != 0 {
		t.Errorf("Vulnerabilities = %v, want none", info.Vulnerabilities)
	}
	if len(info.Headers) != len(SecurityHeaderChecklist) {
		t.Errorf("Headers = %d entries, want %d", len(info.Headers), len(SecurityHeaderChecklist))
	}
	if info.Headers["x-frame-options"] != "DENY" {
		t.Errorf("x-frame-options = %q", info.Headers["x-frame-options"])
	}
	// Plain HTTP connection: not encrypted.
	if info.TLSEnabled {
		t.Error("TLSEnabled = true over plain HTTP")
	}
}

func TestSecurityAuditMissingHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
	}))
	defer srv.Close()

	info, err := testSecurityClient().Audit(context.Background(), srv.Listener.Addr().String())
	if err != nil {
		t.Fatalf("Audit: %v", err)
	}
	if len(info.Vulnerabilities) != 4 {
		t.Fatalf("Vulnerabilities = %v, want 4 entries", info.Vulnerabilities)
	}
	want := "Missing strict-transport-security header"
	if info.Vulnerabilities[0] != want {
		t.Errorf("first vulnerability = %q, want %q", info.Vulnerabilities[0], want)
	}
}

func TestSecurityAuditToleratesErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	info, err := testSecurityClient().Audit(context.Background(), srv.Listener.Addr().String())
	if err != nil {
		t.Fatalf("Audit on 503: %v", err)
	}
	if info.Headers["x-frame-options"] != "SAMEORIGIN" {
		t.Errorf("headers not inspected on non-2xx response: %v", info.Headers)
	}
}

func TestSecurityAuditTLSDetection(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	c := NewSecurityClient("domainscan-test/1.0", 5*time.Second)
	c.Scheme = "https"
	info, err := c.Audit(context.Background(), srv.Listener.Addr().String())
	if err != nil {
		t.Fatalf("Audit: %v", err)
	}
	if !info.TLSEnabled {
		t.Error("TLSEnabled = false over HTTPS")
	}
}

func TestSecurityAuditConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.Listener.Addr().String()
	srv.Close()

	_, err := testSecurityClient().Audit(context.Background(), addr)
	var netErr *models.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}

	degraded := FailedSecurityAudit()
	if degraded.TLSEnabled || len(degraded.Headers) != 0 || len(degraded.Vulnerabilities) != 1 {
		t.Errorf("unexpected degraded audit value: %+v", degraded)
	}
}
