package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ResponseType selects how a successful response body is decoded.
type ResponseType string

const (
	// ResponseAuto picks json, text or blob from the response Content-Type.
	ResponseAuto ResponseType = ""
	ResponseJSON ResponseType = "json"
	ResponseText ResponseType = "text"
	ResponseBlob ResponseType = "blob"
)

// HeaderPolicy decides how request headers combine with DefaultHeaders.
type HeaderPolicy string

const (
	// HeaderMerge keeps every default header the request does not set itself.
	HeaderMerge HeaderPolicy = "merge"
	// HeaderReplace drops the defaults as soon as the request supplies any header set.
	HeaderReplace HeaderPolicy = "replace"
)

// ParseHeaderPolicy converts a configuration value into a HeaderPolicy.
func ParseHeaderPolicy(s string) (HeaderPolicy, error) {
	switch p := HeaderPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case HeaderMerge, HeaderReplace:
		return p, nil
	case "":
		return HeaderMerge, nil
	default:
		return "", fmt.Errorf("unknown header policy %q", s)
	}
}

// DefaultHeaders returns a fresh copy of the headers sent with every request.
func DefaultHeaders() http.Header {
	return http.Header{
		"Content-Type": {"application/json"},
		"Accept":       {"application/json"},
	}
}

// MergeHeaders combines defaults with the caller's headers according to policy.
// Neither argument is modified.
func MergeHeaders(defaults, override http.Header, policy HeaderPolicy) http.Header {
	if policy == HeaderReplace && override != nil {
		return override.Clone()
	}

	merged := defaults.Clone()
	if merged == nil {
		merged = http.Header{}
	}
	for k, v := range override {
		merged[http.CanonicalHeaderKey(k)] = append([]string(nil), v...)
	}
	return merged
}

// Options describes a single request. Every field is optional.
type Options struct {
	// Method defaults to GET.
	Method string
	// Headers are combined with DefaultHeaders by the client's HeaderPolicy.
	Headers http.Header
	// Body is sent as is when it is a string, []byte or io.Reader and json-encoded otherwise.
	Body any
	// Query is merged into the query string of the resolved URL.
	Query url.Values
	// BaseURL replaces the client's base URL for this request only.
	BaseURL string
	ResponseType ResponseType
}

// merge overlays other onto o: non-zero scalar fields win, headers and query values merge per key.
func (o Options) merge(other Options) Options {
	if other.Method != "" {
		o.Method = other.Method
	}
	if other.Headers != nil {
		o.Headers = MergeHeaders(o.Headers, other.Headers, HeaderMerge)
	}
	if other.Body != nil {
		o.Body = other.Body
	}
	if other.Query != nil {
		q := url.Values{}
		for k, v := range o.Query {
			q[k] = v
		}
		for k, v := range other.Query {
			q[k] = v
		}
		o.Query = q
	}
	if other.BaseURL != "" {
		o.BaseURL = other.BaseURL
	}
	if other.ResponseType != ResponseAuto {
		o.ResponseType = other.ResponseType
	}
	return o
}

func (o Options) method() string {
	if o.Method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(o.Method)
}
