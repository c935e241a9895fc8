package probes

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/swcstudio/domainscan/internal/models"
)

// UnreachableSentinelMs is the round-trip value reported when the probe
// fails, so downstream analysis can treat "probe failed" and "very slow"
// uniformly via one threshold check.
const UnreachableSentinelMs = 9999

// ReachClient issues a timed reachability probe against the target
type ReachClient struct {
	Scheme    string
	UserAgent string
	client    *http.Client
}

// NewReachClient creates a reachability prober with a bounded timeout
func NewReachClient(userAgent string, timeout time.Duration) *ReachClient {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &ReachClient{
		Scheme:    "https",
		UserAgent: userAgent,
		client:    newProbeHTTPClient(timeout),
	}
}

// Probe measures response time (headers received) and load time (body fully
// read) for the target's root document
func (c *ReachClient) Probe(ctx context.Context, hostname string) (models.PerformanceInfo, error) {
	url := fmt.Sprintf("%s://%s/", c.Scheme, hostname)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.PerformanceInfo{}, &models.NetworkError{Op: "reachability probe", Hostname: hostname, Err: err}
	}
	req.Header.Set("User-Agent", c.UserAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return models.PerformanceInfo{}, &models.NetworkError{Op: "reachability probe", Hostname: hostname, Err: err}
	}
	defer resp.Body.Close()
	responseTime := time.Since(start)

	size, err := io.Copy(io.Discard, io.LimitReader(resp.Body, fetchMaxBody))
	if err != nil {
		return models.PerformanceInfo{}, &models.NetworkError{Op: "reachability probe", Hostname: hostname, Err: err}
	}
	loadTime := time.Since(start)

	return models.PerformanceInfo{
		ResponseTimeMs:   responseTime.Milliseconds(),
		UptimePercent:    100,
		ContentSizeBytes: size,
		LoadTimeMs:       loadTime.Milliseconds(),
	}, nil
}

// UnreachablePerformance is the degraded-but-present sample substituted when
// the probe fails: sentinel round-trip values and zero uptime.
func UnreachablePerformance() models.PerformanceInfo {
	return models.PerformanceInfo{
		ResponseTimeMs:   UnreachableSentinelMs,
		UptimePercent:    0,
		ContentSizeBytes: 0,
		LoadTimeMs:       UnreachableSentinelMs,
	}
}
