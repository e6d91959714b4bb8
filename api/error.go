package api

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError describes a failed request.
// Response is set when the server answered; Data and Status may be set without it.
type RequestError struct {
	Method   string
	URL      string
	Status   int
	Data     any
	Response *Response
	Err      error
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}

	msg := fmt.Sprintf("[%s] %q", e.Method, e.URL)
	if e.Status != 0 {
		msg += fmt.Sprintf(": %d %s", e.Status, http.StatusText(e.Status))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying error.
func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Message returns the message embedded in Data, if any.
func (e *RequestError) Message() string {
	switch data := e.Data.(type) {
	case map[string]any:
		if m, ok := data["message"].(string); ok {
			return m
		}
	case interface{ ErrorMessage() string }:
		return data.ErrorMessage()
	}
	return ""
}

// Normalize turns err into a Result.
// The first RequestError in the chain that embeds a response wins and is returned verbatim.
// Otherwise a Failure is built from the first embedded message and status found,
// falling back to FallbackMessage and FallbackStatus.
func Normalize(err error) Result {
	var (
		message string
		status  int
	)

	for e := err; e != nil; e = errors.Unwrap(e) {
		reqErr, ok := e.(*RequestError)
		if !ok {
			continue
		}
		if reqErr.Response != nil {
			return Result{Response: reqErr.Response}
		}
		if message == "" {
			message = reqErr.Message()
		}
		if status == 0 {
			status = reqErr.Status
		}
	}

	return Result{Failure: newFailure(message, status)}
}
