package models

import (
	"strings"

	govalidator "github.com/asaskevich/govalidator/v11"
)

// NormalizeHostname lower-cases and trims a hostname so that equivalent
// spellings share one cache key. Normalization is idempotent.
func NormalizeHostname(hostname string) string {
	s := strings.ToLower(strings.TrimSpace(hostname))
	return strings.TrimSuffix(s, ".")
}

// ValidateHostname checks that a normalized hostname is a plausible DNS name.
// Returns a ValidationError on rejection.
func ValidateHostname(hostname string) error {
	if hostname == "" {
		return &ValidationError{Field: "hostname", Message: "must not be empty"}
	}
	if govalidator.IsIPv4(hostname) || govalidator.IsIPv6(hostname) {
		return &ValidationError{Field: "hostname", Message: "IP addresses are not scannable targets"}
	}
	if !govalidator.IsDNSName(hostname) {
		return &ValidationError{Field: "hostname", Message: "not a valid DNS name"}
	}
	return nil
}
