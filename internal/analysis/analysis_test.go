package analysis

import (
	"strings"
	"testing"

	"github.com/swcstudio/domainscan/internal/models"
)

func fullHeaders() map[string]string {
	return map[string]string{
		"strict-transport-security": "max-age=63072000",
		"x-frame-options":           "DENY",
		"x-content-type-options":    "nosniff",
		"x-xss-protection":          "1; mode=block",
		"content-security-policy":   "default-src 'self'",
	}
}

func TestEmptyDNSForcesHigh(t *testing.T) {
	// Every other signal is good; the DNS-empty rule alone forces high.
	infra := &models.Infrastructure{
		DNSRecords: []models.DNSRecord{},
		Security: &models.SecurityInfo{
			TLSEnabled:      true,
			Headers:         fullHeaders(),
			Vulnerabilities: []string{},
		},
		Performance: &models.PerformanceInfo{ResponseTimeMs: 50, UptimePercent: 100},
	}

	got := Synthesize(infra, nil, nil)
	if got.RiskLevel != models.RiskHigh {
		t.Errorf("RiskLevel = %s, want high", got.RiskLevel)
	}
	if len(got.Recommendations) != 1 || !strings.Contains(got.Recommendations[0], "No DNS records") {
		t.Errorf("Recommendations = %v", got.Recommendations)
	}
}

func TestHighNeverDowngraded(t *testing.T) {
	// DNS-empty (high) evaluated before the TLS rule (medium); the medium
	// rule must not pull the level back down.
	infra := &models.Infrastructure{
		Security: &models.SecurityInfo{TLSEnabled: false, Headers: map[string]string{}},
	}
	got := Synthesize(infra, nil, nil)
	if got.RiskLevel != models.RiskHigh {
		t.Errorf("RiskLevel = %s, want high", got.RiskLevel)
	}
}

func TestMissingTLSRaisesMedium(t *testing.T) {
	infra := &models.Infrastructure{
		DNSRecords: []models.DNSRecord{{Type: models.DNSRecordA, Values: []string{"192.0.2.1"}}},
		Security: &models.SecurityInfo{
			TLSEnabled:      false,
			Headers:         fullHeaders(),
			Vulnerabilities: []string{},
		},
	}
	got := Synthesize(infra, nil, nil)
	if got.RiskLevel != models.RiskMedium {
		t.Errorf("RiskLevel = %s, want medium", got.RiskLevel)
	}
}

func TestHeaderVulnerabilitiesRaiseMedium(t *testing.T) {
	infra := &models.Infrastructure{
		DNSRecords: []models.DNSRecord{{Type: models.DNSRecordA, Values: []string{"192.0.2.1"}}},
		Security: &models.SecurityInfo{
			TLSEnabled:      true,
			Headers:         map[string]string{},
			Vulnerabilities: []string{"Missing x-frame-options header"},
		},
	}
	got := Synthesize(infra, nil, nil)
	if got.RiskLevel != models.RiskMedium {
		t.Errorf("RiskLevel = %s, want medium", got.RiskLevel)
	}
}

func TestSlowResponseRaisesMedium(t *testing.T) {
	infra := &models.Infrastructure{
		DNSRecords:  []models.DNSRecord{{Type: models.DNSRecordA, Values: []string{"192.0.2.1"}}},
		Performance: &models.PerformanceInfo{ResponseTimeMs: 9999, UptimePercent: 0},
	}
	got := Synthesize(infra, nil, nil)
	if got.RiskLevel != models.RiskMedium {
		t.Errorf("RiskLevel = %s, want medium", got.RiskLevel)
	}
}

func TestStandardDepthSkipsSecuritySignals(t *testing.T) {
	// Security and performance are nil when those stages did not run;
	// a good DNS answer alone stays low-risk.
	infra := &models.Infrastructure{
		DNSRecords: []models.DNSRecord{{Type: models.DNSRecordA, Values: []string{"192.0.2.1"}}},
	}
	got := Synthesize(infra, nil, []string{"Domain registered on 2010-01-01"})
	if got.RiskLevel != models.RiskLow {
		t.Errorf("RiskLevel = %s, want low", got.RiskLevel)
	}
	if len(got.Insights) != 1 || got.Insights[0] != "Domain registered on 2010-01-01" {
		t.Errorf("Insights = %v", got.Insights)
	}
	if len(got.Recommendations) != 0 {
		t.Errorf("Recommendations = %v, want none", got.Recommendations)
	}
}

func TestInsightsFromTechnologiesAndWebData(t *testing.T) {
	infra := &models.Infrastructure{
		DNSRecords:   []models.DNSRecord{{Type: models.DNSRecordA, Values: []string{"192.0.2.1"}}},
		Technologies: []string{"WordPress", "Shopify"},
	}
	web := &models.WebData{LinkCount: 12, ImageCount: 4}

	got := Synthesize(infra, web, nil)
	if len(got.Insights) != 2 {
		t.Fatalf("Insights = %v, want 2 lines", got.Insights)
	}
	if got.Insights[0] != "Detected technologies: WordPress, Shopify" {
		t.Errorf("tech insight = %q", got.Insights[0])
	}
	if got.Insights[1] != "Page contains 12 links and 4 images" {
		t.Errorf("web insight = %q", got.Insights[1])
	}
}
