package probes

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/swcstudio/domainscan/internal/models"
)

// SecurityHeaderChecklist is the fixed set of response headers the audit
// inspects, in reporting order.
var SecurityHeaderChecklist = []string{
	"strict-transport-security",
	"x-frame-options",
	"x-content-type-options",
	"x-xss-protection",
	"content-security-policy",
}

// SecurityClient performs the status-tolerant audit fetch. Non-2xx responses
// are inspected like any other; only transport failure is an error.
type SecurityClient struct {
	Scheme    string
	UserAgent string
	client    *http.Client
}

// NewSecurityClient creates a security-audit client with a bounded timeout
func NewSecurityClient(userAgent string, timeout time.Duration) *SecurityClient {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &SecurityClient{
		Scheme:    "https",
		UserAgent: userAgent,
		client:    newProbeHTTPClient(timeout),
	}
}

// Audit checks whether the connection was encrypted and which checklist
// headers are present. Every absent checklist header becomes a
// vulnerability entry.
func (c *SecurityClient) Audit(ctx context.Context, hostname string) (*models.SecurityInfo, error) {
	url := fmt.Sprintf("%s://%s/", c.Scheme, hostname)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &models.NetworkError{Op: "security audit", Hostname: hostname, Err: err}
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &models.NetworkError{Op: "security audit", Hostname: hostname, Err: err}
	}
	defer resp.Body.Close()

	info := &models.SecurityInfo{
		TLSEnabled:      resp.TLS != nil,
		Headers:         make(map[string]string),
		Vulnerabilities: []string{},
	}

	for _, name := range SecurityHeaderChecklist {
		value := resp.Header.Get(name)
		if value != "" {
			info.Headers[strings.ToLower(name)] = value
		} else {
			info.Vulnerabilities = append(info.Vulnerabilities, fmt.Sprintf("Missing %s header", name))
		}
	}

	return info, nil
}

// FailedSecurityAudit is the degraded value substituted when the audit fetch
// itself fails: no TLS, no headers, and a single entry noting the failure.
func FailedSecurityAudit() *models.SecurityInfo {
	return &models.SecurityInfo{
		TLSEnabled:      false,
		Headers:         map[string]string{},
		Vulnerabilities: []string{"Security audit failed - unable to connect"},
	}
}
