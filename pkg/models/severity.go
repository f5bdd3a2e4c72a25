package models

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of an alert
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// Severities is the closed set of accepted severity levels, in rank order.
// AlertHarvest internally labels alerts CRITICAL/MAJOR/WARNING; that
// vocabulary belongs to the upstream service and is not enforced here.
// This table may need revision once the upstream contract is confirmed.
var Severities = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
	SeverityInfo,
}

// ParseSeverity matches a severity level case-insensitively and returns
// its canonical lowercase form.
func ParseSeverity(s string) (Severity, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, sev := range Severities {
		if normalized == string(sev) {
			return sev, nil
		}
	}
	return "", fmt.Errorf("invalid severity %q, must be one of: %s", s, SeverityNames())
}

// SeverityNames returns the accepted severity levels as a comma-separated string
func SeverityNames() string {
	names := make([]string, len(Severities))
	for i, sev := range Severities {
		names[i] = string(sev)
	}
	return strings.Join(names, ", ")
}
