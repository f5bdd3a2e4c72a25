package models

// FailureKind classifies why an operation failed
type FailureKind string

const (
	// FailureValidation means the input was malformed and nothing was sent upstream
	FailureValidation FailureKind = "validation_error"
	// FailureUpstreamRejected means AlertHarvest answered with a client error
	FailureUpstreamRejected FailureKind = "upstream_rejected"
	// FailureUpstreamUnavailable means AlertHarvest could not be reached or failed server-side
	FailureUpstreamUnavailable FailureKind = "upstream_unavailable"
	// FailureUnexpectedResponse means AlertHarvest answered 2xx with a body that could not be parsed
	FailureUnexpectedResponse FailureKind = "unexpected_response"
)

// OperationOutcome is the uniform result returned from every tool
// invocation. Failures are data here, never faults: a caller always gets
// an outcome back, with Kind set when Success is false.
type OperationOutcome struct {
	InvocationID string                 `json:"invocationId"`
	Success      bool                   `json:"success"`
	Kind         FailureKind            `json:"kind,omitempty"`
	Summary      string                 `json:"summary"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// SuccessOutcome builds a successful outcome
func SuccessOutcome(summary string, details map[string]interface{}) OperationOutcome {
	return OperationOutcome{
		Success: true,
		Summary: summary,
		Details: details,
	}
}

// FailureOutcome builds a failed outcome of the given kind
func FailureOutcome(kind FailureKind, summary string, details map[string]interface{}) OperationOutcome {
	return OperationOutcome{
		Success: false,
		Kind:    kind,
		Summary: summary,
		Details: details,
	}
}
