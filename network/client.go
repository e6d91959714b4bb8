// Package network provides the shared HTTP client used for backend communication.
package network

import (
	"net/http"
	"time"
)

// Client is the HTTP client shared across the application so that connections are pooled.
// It carries no overall request timeout; a request runs until the server answers or the transport fails.
var Client = &http.Client{
	Transport: newTransport(),
}

// newTransport initializes an http.Transport with pool and handshake parameters sized for a single backend.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.IdleConnTimeout = 90 * time.Second
	t.TLSHandshakeTimeout = 10 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}
