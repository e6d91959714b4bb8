package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// FallbackMessage is reported when a failure carries no message of its own.
const FallbackMessage = "An unexpected error occurred."

// FallbackStatus is reported when a failure carries no HTTP status.
const FallbackStatus = http.StatusInternalServerError

// Failure is the normalized record returned instead of an error.
type Failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func newFailure(message string, status int) *Failure {
	if message == "" {
		message = FallbackMessage
	}
	if status == 0 {
		status = FallbackStatus
	}
	return &Failure{Success: false, Message: message, Status: status}
}

// Response is an HTTP error response handed back to the caller verbatim.
type Response struct {
	URL        string      `json:"url"`
	Status     int         `json:"status"`
	StatusText string      `json:"statusText"`
	Header     http.Header `json:"headers"`
	// Data is the decoded error body.
	Data any `json:"data"`
}

// Result is the outcome of one request. Exactly one of the three outcomes is meaningful:
// Failure or Response when set, otherwise Body.
type Result struct {
	// Body is the decoded body of a successful response, possibly nil.
	Body     any
	Response *Response
	Failure  *Failure
}

// OK reports whether the request completed with a non-error status.
func (r Result) OK() bool {
	return r.Response == nil && r.Failure == nil
}

// Value returns the outcome the caller branches on: the body, the error response or the failure record.
func (r Result) Value() any {
	switch {
	case r.Failure != nil:
		return r.Failure
	case r.Response != nil:
		return r.Response
	default:
		return r.Body
	}
}

// MarshalJSON encodes Value.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Value())
}

// Decode copies Value into v through its json representation.
func (r Result) Decode(v any) error {
	if raw, ok := r.Body.([]byte); ok && r.OK() {
		return json.Unmarshal(raw, v)
	}

	data, err := json.Marshal(r.Value())
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}
