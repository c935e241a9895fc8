// Package scanner drives the ordered stage pipeline for a single scan:
// DNS, registration lookup, content fetch, performance probe, and the
// security-header audit. The requested depth controls which stages run.
package scanner

import (
	"context"

	"github.com/swcstudio/domainscan/internal/models"
	"github.com/swcstudio/domainscan/internal/probes"
)

// DNSResolver resolves all supported record types for a hostname
type DNSResolver interface {
	Lookup(ctx context.Context, hostname string) ([]models.DNSRecord, error)
}

// RegistrationClient looks up registration/creation-date metadata
type RegistrationClient interface {
	Lookup(ctx context.Context, hostname string) (*probes.RegistrationInfo, error)
}

// ContentFetcher retrieves and parses the target's root document
type ContentFetcher interface {
	Fetch(ctx context.Context, hostname string) (*models.WebData, error)
}

// ReachabilityProber issues a timed reachability probe
type ReachabilityProber interface {
	Probe(ctx context.Context, hostname string) (models.PerformanceInfo, error)
}

// SecurityAuditor inspects TLS usage and security-header presence
type SecurityAuditor interface {
	Audit(ctx context.Context, hostname string) (*models.SecurityInfo, error)
}

// Clients holds the injectable network clients the pipeline calls.
// Using interfaces keeps the package testable without real network access.
type Clients struct {
	DNS          DNSResolver
	Registration RegistrationClient
	Content      ContentFetcher
	Reach        ReachabilityProber
	Security     SecurityAuditor
}

// Reporter receives checkpoint and warning callbacks while a scan runs
type Reporter interface {
	// Checkpoint reports a completed step as a 0-100 percentage.
	Checkpoint(progress int, message string)
	// Warn reports a non-fatal stage problem.
	Warn(message string)
}

// NopReporter discards all callbacks
type NopReporter struct{}

func (NopReporter) Checkpoint(int, string) {}
func (NopReporter) Warn(string)            {}
