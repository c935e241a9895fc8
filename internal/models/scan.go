package models

import (
	"time"

	"github.com/google/uuid"
)

// ScanRequest is the validated input to a single scan
type ScanRequest struct {
	Hostname string `json:"hostname"`
	Depth    Depth  `json:"depth"`
}

// DNSRecord groups all values observed for one record type
type DNSRecord struct {
	Type   DNSRecordType `json:"type"`
	Values []string      `json:"values"`
}

// SecurityInfo is derived from the security-header audit, never user-supplied
type SecurityInfo struct {
	TLSEnabled      bool              `json:"tls_enabled"`
	Headers         map[string]string `json:"headers"`
	Vulnerabilities []string          `json:"vulnerabilities"`
}

// PerformanceInfo holds a single-probe performance sample.
// UptimePercent is a point sample (0 or 100), not an SLA measurement.
type PerformanceInfo struct {
	ResponseTimeMs   int64   `json:"response_time_ms"`
	UptimePercent    float64 `json:"uptime_percent"`
	ContentSizeBytes int64   `json:"content_size_bytes"`
	LoadTimeMs       int64   `json:"load_time_ms"`
}

// Infrastructure aggregates the facts contributed by the pipeline stages.
// Security and Performance are nil when their stage did not run at the
// requested depth, so the synthesizer can tell "not measured" from "bad".
type Infrastructure struct {
	DNSRecords   []DNSRecord      `json:"dns_records"`
	Technologies []string         `json:"technologies,omitempty"`
	Security     *SecurityInfo    `json:"security,omitempty"`
	Performance  *PerformanceInfo `json:"performance,omitempty"`
}

// WebData holds content extracted from the target's root document.
// Populated only at comprehensive depth.
type WebData struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Headings    []string `json:"headings,omitempty"`
	LinkCount   int      `json:"link_count"`
	ImageCount  int      `json:"image_count"`
}

// Analysis is the synthesized assessment over the assembled infrastructure
type Analysis struct {
	RiskLevel       RiskLevel `json:"risk_level"`
	Recommendations []string  `json:"recommendations"`
	Insights        []string  `json:"insights"`
}

// ScanResult is the unit of value produced and cached. It is immutable once
// returned; a fresh scan produces a new value that replaces the cached entry.
type ScanResult struct {
	ScanID         string         `json:"scan_id"`
	Hostname       string         `json:"hostname"`
	Timestamp      time.Time      `json:"timestamp"`
	Depth          Depth          `json:"depth"`
	Infrastructure Infrastructure `json:"infrastructure"`
	WebData        *WebData       `json:"web_data,omitempty"`
	Analysis       Analysis       `json:"analysis"`
}

// NewScanResult creates a scan result shell with a fresh scan ID.
// The ID is unique per invocation, never reused across refreshes.
func NewScanResult(hostname string, depth Depth) *ScanResult {
	return &ScanResult{
		ScanID:    uuid.New().String(),
		Hostname:  hostname,
		Timestamp: time.Now(),
		Depth:     depth,
		Infrastructure: Infrastructure{
			DNSRecords: []DNSRecord{},
		},
	}
}
