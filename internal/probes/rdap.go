package probes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/swcstudio/domainscan/internal/models"
)

const (
	defaultRDAPBaseURL = "https://rdap.org/domain/"
	rdapTimeout        = 10 * time.Second
	rdapMaxBody        = 1024 * 1024 // 1MB
)

// RegistrationInfo is the subset of registration metadata the pipeline uses
type RegistrationInfo struct {
	CreatedAt string `json:"created_at,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// rdapResponse mirrors the parts of an RDAP domain object we read
type rdapResponse struct {
	Events []struct {
		EventAction string `json:"eventAction"`
		EventDate   string `json:"eventDate"`
	} `json:"events"`
}

// RDAPClient queries the RDAP bootstrap service for registration metadata
type RDAPClient struct {
	BaseURL   string
	UserAgent string
	client    *http.Client
}

// NewRDAPClient creates a registration-lookup client. An empty baseURL falls
// back to the public rdap.org bootstrap endpoint.
func NewRDAPClient(baseURL, userAgent string, timeout time.Duration) *RDAPClient {
	if baseURL == "" {
		baseURL = defaultRDAPBaseURL
	}
	if timeout <= 0 {
		timeout = rdapTimeout
	}
	return &RDAPClient{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// Lookup fetches registration metadata for hostname. Failures are typed as
// NetworkError; the registration stage skips silently on any error.
func (c *RDAPClient) Lookup(ctx context.Context, hostname string) (*RegistrationInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+hostname, nil)
	if err != nil {
		return nil, &models.NetworkError{Op: "registration lookup", Hostname: hostname, Err: err}
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/rdap+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &models.NetworkError{Op: "registration lookup", Hostname: hostname, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &models.NetworkError{
			Op:       "registration lookup",
			Hostname: hostname,
			Err:      fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, rdapMaxBody))
	if err != nil {
		return nil, &models.NetworkError{Op: "registration lookup", Hostname: hostname, Err: err}
	}

	var parsed rdapResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &models.NetworkError{Op: "registration lookup", Hostname: hostname, Err: err}
	}

	info := &RegistrationInfo{}
	for _, ev := range parsed.Events {
		switch ev.EventAction {
		case "registration":
			info.CreatedAt = formatEventDate(ev.EventDate)
		case "expiration":
			info.ExpiresAt = formatEventDate(ev.EventDate)
		}
	}
	return info, nil
}

// formatEventDate reduces an RDAP RFC 3339 timestamp to its date part.
// Unparseable values pass through verbatim.
func formatEventDate(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02")
}
