package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/swcstudio/domainscan/internal/engine"
	"github.com/swcstudio/domainscan/internal/models"
)

// Version is set via ldflags at build time.
var Version = "dev"

// WriteHeader prints the tool banner.
func WriteHeader(w io.Writer, noColor bool) {
	if noColor {
		fmt.Fprintf(w, "domainscan %s\n\n", Version)
	} else {
		fmt.Fprintf(w, "\033[1mdomainscan %s\033[0m\n\n", Version)
	}
}

// WriteSummary prints a human-readable rendition of one scan result.
func WriteSummary(w io.Writer, result *models.ScanResult, noColor bool) {
	fmt.Fprintln(w)
	if noColor {
		fmt.Fprintf(w, "Hostname: %s\n", result.Hostname)
		fmt.Fprintf(w, "Depth: %s\n", result.Depth)
		fmt.Fprintf(w, "Risk: %s\n", result.Analysis.RiskLevel)
	} else {
		fmt.Fprintf(w, "\033[1mHostname:\033[0m %s\n", result.Hostname)
		fmt.Fprintf(w, "\033[1mDepth:\033[0m %s\n", result.Depth)
		fmt.Fprintf(w, "\033[1mRisk:\033[0m %s\n", colorRisk(result.Analysis.RiskLevel))
	}

	if len(result.Infrastructure.DNSRecords) > 0 {
		fmt.Fprintln(w)
		for _, rec := range result.Infrastructure.DNSRecords {
			fmt.Fprintf(w, "  %-6s %s\n", rec.Type, strings.Join(rec.Values, ", "))
		}
	} else {
		fmt.Fprintln(w)
		warn(w, "No DNS records found", noColor)
	}

	if len(result.Infrastructure.Technologies) > 0 {
		fmt.Fprintf(w, "\nTechnologies: %s\n", strings.Join(result.Infrastructure.Technologies, ", "))
	}

	if sec := result.Infrastructure.Security; sec != nil {
		fmt.Fprintln(w)
		if sec.TLSEnabled {
			fmt.Fprintln(w, "TLS: enabled")
		} else {
			warn(w, "TLS: not enabled", noColor)
		}
		for _, v := range sec.Vulnerabilities {
			warn(w, v, noColor)
		}
	}

	if perf := result.Infrastructure.Performance; perf != nil {
		fmt.Fprintf(w, "\nResponse time: %dms, load time: %dms, content: %d bytes\n",
			perf.ResponseTimeMs, perf.LoadTimeMs, perf.ContentSizeBytes)
	}

	if len(result.Analysis.Insights) > 0 {
		fmt.Fprintln(w)
		for _, line := range result.Analysis.Insights {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	if len(result.Analysis.Recommendations) > 0 {
		fmt.Fprintln(w)
		for _, line := range result.Analysis.Recommendations {
			warn(w, line, noColor)
		}
	}
}

// WriteBatchSummary prints one line per scanned host plus the batch totals.
func WriteBatchSummary(w io.Writer, batch *engine.BatchResult, noColor bool) {
	fmt.Fprintln(w)
	for _, r := range batch.Results {
		if noColor {
			fmt.Fprintf(w, "%-40s %s\n", r.Hostname, r.Analysis.RiskLevel)
		} else {
			fmt.Fprintf(w, "%-40s %s\n", r.Hostname, colorRisk(r.Analysis.RiskLevel))
		}
	}
	fmt.Fprintf(w, "\n%d scanned, %d completed, %d failed\n",
		batch.Summary.Total, batch.Summary.Completed, batch.Summary.Errors)
}

func warn(w io.Writer, message string, noColor bool) {
	if noColor {
		fmt.Fprintf(w, "! %s\n", message)
	} else {
		fmt.Fprintf(w, "\033[33m!\033[0m %s\n", message)
	}
}

func colorRisk(level models.RiskLevel) string {
	switch level {
	case models.RiskHigh:
		return fmt.Sprintf("\033[31m%s\033[0m", level)
	case models.RiskMedium:
		return fmt.Sprintf("\033[33m%s\033[0m", level)
	default:
		return fmt.Sprintf("\033[32m%s\033[0m", level)
	}
}
