package alertharvest

import "fmt"

// RejectedError means AlertHarvest understood the request and refused it:
// a 4xx status, or a 2xx body whose status field reports an error.
type RejectedError struct {
	StatusCode int
	Body       string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("alertharvest rejected request: status %d: %s", e.StatusCode, e.Body)
}

// UnavailableError means the request never got a usable answer: a transport
// failure (connection refused, timeout, DNS) or a 5xx status.
type UnavailableError struct {
	StatusCode int // 0 for transport-level failures
	Err        error
}

func (e *UnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("alertharvest unavailable: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("alertharvest unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// UnexpectedResponseError means AlertHarvest answered 2xx but the body
// could not be parsed into the expected shape.
type UnexpectedResponseError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected alertharvest response: status %d: %v: %s", e.StatusCode, e.Err, e.Body)
}

func (e *UnexpectedResponseError) Unwrap() error {
	return e.Err
}
