// Package analysis reduces assembled infrastructure facts into a risk
// classification, recommendations, and insights. Synthesize is pure and
// deterministic; risk only ever escalates within one evaluation.
package analysis

import (
	"fmt"
	"strings"

	"github.com/swcstudio/domainscan/internal/models"
)

// SlowResponseThresholdMs is the round-trip time above which a host is
// considered slow. The unreachable sentinel (9999) trips the same check,
// which is the point: probe failure and extreme slowness are treated alike.
const SlowResponseThresholdMs = 1000

// Synthesize computes the analysis for a scan. Security and performance
// facts are only evaluated when their stage ran (non-nil); a standard-depth
// scan therefore never gets flagged for missing TLS. baseInsights are
// stage-collected lines (e.g. the registration date) placed ahead of the
// synthesizer's own.
func Synthesize(infra *models.Infrastructure, web *models.WebData, baseInsights []string) models.Analysis {
	risk := models.RiskLow
	var recommendations []string

	if len(infra.DNSRecords) == 0 {
		risk = raise(risk, models.RiskHigh)
		recommendations = append(recommendations,
			"No DNS records found - domain may be misconfigured or unregistered")
	}

	if infra.Security != nil {
		if !infra.Security.TLSEnabled {
			risk = raise(risk, models.RiskMedium)
			recommendations = append(recommendations,
				"Enable TLS/HTTPS for secure communication")
		}
		if len(infra.Security.Vulnerabilities) > 0 {
			risk = raise(risk, models.RiskMedium)
			recommendations = append(recommendations,
				"Address missing security headers")
		}
	}

	if infra.Performance != nil && infra.Performance.ResponseTimeMs > SlowResponseThresholdMs {
		risk = raise(risk, models.RiskMedium)
		recommendations = append(recommendations,
			"Optimize server response time")
	}

	insights := append([]string{}, baseInsights...)
	if len(infra.Technologies) > 0 {
		insights = append(insights,
			fmt.Sprintf("Detected technologies: %s", strings.Join(infra.Technologies, ", ")))
	}
	if web != nil {
		insights = append(insights,
			fmt.Sprintf("Page contains %d links and %d images", web.LinkCount, web.ImageCount))
	}

	if recommendations == nil {
		recommendations = []string{}
	}
	return models.Analysis{
		RiskLevel:       risk,
		Recommendations: recommendations,
		Insights:        insights,
	}
}

// raise escalates current to at least target, never downgrading
func raise(current, target models.RiskLevel) models.RiskLevel {
	if target.Rank() > current.Rank() {
		return target
	}
	return current
}
