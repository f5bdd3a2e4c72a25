package models

import (
	"fmt"
	"strconv"
	"strings"
)

// AlertDraft represents the payload for creating an alert in AlertHarvest
type AlertDraft struct {
	Location  string   `json:"location"`
	Severity  Severity `json:"severity"`
	Message   string   `json:"message"`
	Source    string   `json:"source"`
	Timestamp string   `json:"timestamp,omitempty"`
}

// AlertID identifies an alert in AlertHarvest. Existence is authoritative
// only upstream; locally an id just has to be a positive integer.
type AlertID int64

// ParseAlertID parses a single alert id
func ParseAlertID(s string) (AlertID, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("alert id is required")
	}
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("alert id must be a number, got: %s", s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("alert id must be a positive integer, got: %d", id)
	}
	return AlertID(id), nil
}

// ParseAlertIDBatch parses a comma-separated list of alert ids. Every token
// must parse or the whole batch is rejected, so a malformed batch never
// reaches the network.
func ParseAlertIDBatch(s string) ([]AlertID, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("alert ids are required (comma-separated)")
	}
	tokens := strings.Split(s, ",")
	ids := make([]AlertID, 0, len(tokens))
	for _, token := range tokens {
		id, err := ParseAlertID(token)
		if err != nil {
			return nil, fmt.Errorf("invalid alert id %q in list: %v", strings.TrimSpace(token), err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
