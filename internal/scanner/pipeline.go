package scanner

import (
	"context"
	"fmt"

	"github.com/swcstudio/domainscan/internal/models"
	"github.com/swcstudio/domainscan/internal/probes"
)

// Fixed progress checkpoints emitted after each stage. Informative only;
// the guaranteed property is that emissions never decrease per scan.
const (
	CheckpointDNS          = 30
	CheckpointRegistration = 50
	CheckpointContent      = 70
	CheckpointPerformance  = 85
	CheckpointSecurity     = 95
)

// Pipeline executes the scan stages in strict order against one hostname
type Pipeline struct {
	Clients Clients
}

// New creates a pipeline over the given stage clients
func New(clients Clients) *Pipeline {
	return &Pipeline{Clients: clients}
}

// Run executes the stages selected by result.Depth, filling in
// result.Infrastructure and result.WebData. Each stage is independently
// fault-tolerant: a failure is reported as a warning and the stage
// contributes an empty or degraded value instead of aborting the scan.
//
// The returned strings are baseline insights collected by the stages
// (currently only the registration creation date) for the synthesizer to
// fold into the final analysis.
func (p *Pipeline) Run(ctx context.Context, result *models.ScanResult, rep Reporter) []string {
	if rep == nil {
		rep = NopReporter{}
	}
	hostname := result.Hostname

	// DNS stage: always runs. Failure yields an empty record list.
	var records []models.DNSRecord
	err := runStage("dns", func() error {
		var lookupErr error
		records, lookupErr = p.Clients.DNS.Lookup(ctx, hostname)
		return lookupErr
	})
	if err != nil {
		rep.Warn(fmt.Sprintf("DNS lookup failed: %v", err))
		records = nil
	}
	if records == nil {
		records = []models.DNSRecord{}
	}
	result.Infrastructure.DNSRecords = records
	rep.Checkpoint(CheckpointDNS, "DNS resolution complete")

	// Registration stage: standard depth and deeper. Failure skips silently.
	var insights []string
	if result.Depth.AtLeast(models.DepthStandard) {
		var reg *probes.RegistrationInfo
		err := runStage("registration", func() error {
			var lookupErr error
			reg, lookupErr = p.Clients.Registration.Lookup(ctx, hostname)
			return lookupErr
		})
		if err == nil && reg != nil && reg.CreatedAt != "" {
			insights = append(insights, fmt.Sprintf("Domain registered on %s", reg.CreatedAt))
		}
		rep.Checkpoint(CheckpointRegistration, "Registration lookup complete")
	}

	if result.Depth != models.DepthComprehensive {
		return insights
	}

	// Content stage: failure leaves WebData empty; the remaining stages
	// still run and report degraded-but-present values.
	var web *models.WebData
	err = runStage("content", func() error {
		var fetchErr error
		web, fetchErr = p.Clients.Content.Fetch(ctx, hostname)
		return fetchErr
	})
	if err != nil {
		rep.Warn(fmt.Sprintf("content fetch failed: %v", err))
		web = nil
	}
	result.WebData = web
	rep.Checkpoint(CheckpointContent, "Content fetch complete")

	// Performance stage: failure reports the unreachable sentinel sample.
	var perf models.PerformanceInfo
	err = runStage("performance", func() error {
		var probeErr error
		perf, probeErr = p.Clients.Reach.Probe(ctx, hostname)
		return probeErr
	})
	if err != nil {
		rep.Warn(fmt.Sprintf("performance probe failed: %v", err))
		perf = probes.UnreachablePerformance()
	}
	result.Infrastructure.Performance = &perf
	rep.Checkpoint(CheckpointPerformance, "Performance probe complete")

	// Security stage: failure reports the failed-audit value.
	var sec *models.SecurityInfo
	err = runStage("security", func() error {
		var auditErr error
		sec, auditErr = p.Clients.Security.Audit(ctx, hostname)
		return auditErr
	})
	if err != nil || sec == nil {
		if err != nil {
			rep.Warn(fmt.Sprintf("security audit failed: %v", err))
		}
		sec = probes.FailedSecurityAudit()
	}
	result.Infrastructure.Security = sec
	rep.Checkpoint(CheckpointSecurity, "Security audit complete")

	if result.WebData != nil {
		result.Infrastructure.Technologies = DetectTechnologies(result.WebData.Title)
	}

	return insights
}

// runStage executes one stage inside a deferred recover so a panicking
// client is reported as a stage error rather than crashing the scan.
func runStage(name string, fn func() error) (retErr error) {
	defer func() {
		if r := recover(); r != nil {
			retErr = fmt.Errorf("stage %q panicked: %v", name, r)
		}
	}()
	return fn()
}
