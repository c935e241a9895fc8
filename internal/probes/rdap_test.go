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

const rdapFixture = `{
  "objectClassName": "domain",
  "ldhName": "example.com",
  "events": [
    {"eventAction": "registration", "eventDate": "2010-01-01T08:30:00Z"},
    {"eventAction": "expiration", "eventDate": "2030-01-01T08:30:00Z"},
    {"eventAction": "last changed", "eventDate": "2024-05-10T00:00:00Z"}
  ]
}`

func TestRDAPLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/domain/example.com" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, rdapFixture)
	}))
	defer srv.Close()

	c := NewRDAPClient(srv.URL+"/domain/", "domainscan-test/1.0", 5*time.Second)
	info, err := c.Lookup(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if info.CreatedAt != "2010-01-01" {
		t.Errorf("CreatedAt = %q, want 2010-01-01", info.CreatedAt)
	}
	if info.ExpiresAt != "2030-01-01" {
		t.Errorf("ExpiresAt = %q, want 2030-01-01", info.ExpiresAt)
	}
}

func TestRDAPLookupNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewRDAPClient(srv.URL+"/domain/", "domainscan-test/1.0", 5*time.Second)
	_, err := c.Lookup(context.Background(), "nosuchdomain.invalid")
	var netErr *models.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestRDAPUnparseableDatePassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"events":[{"eventAction":"registration","eventDate":"sometime in 2010"}]}`)
	}))
	defer srv.Close()

	c := NewRDAPClient(srv.URL+"/", "domainscan-test/1.0", 5*time.Second)
	info, err := c.Lookup(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if info.CreatedAt != "sometime in 2010" {
		t.Errorf("CreatedAt = %q", info.CreatedAt)
	}
}
