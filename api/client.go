// Package api provides the backend request helper.
//
// A Client captures its base URL once and issues exactly one HTTP request per call.
// Requests never return an error: transport failures and error statuses come back
// inside the Result so callers branch on data instead of handling errors.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kollel-app/kollel/constant"
	"github.com/kollel-app/kollel/log"
	"github.com/kollel-app/kollel/network"
	"github.com/samber/lo"
)

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// RequestFunc performs one request against a captured base URL.
type RequestFunc func(ctx context.Context, url string, options ...Options) Result

// Client issues requests against a fixed base URL.
type Client struct {
	baseURL string
	doer    Doer
	policy  HeaderPolicy
}

// ClientOption customizes a Client at construction time.
type ClientOption func(*Client)

// WithDoer replaces the shared network client.
func WithDoer(d Doer) ClientOption {
	return func(c *Client) {
		if d != nil {
			c.doer = d
		}
	}
}

// WithHeaderPolicy selects how request headers combine with DefaultHeaders.
func WithHeaderPolicy(p HeaderPolicy) ClientOption {
	return func(c *Client) {
		if p != "" {
			c.policy = p
		}
	}
}

// New returns a Client bound to baseURL. The value is copied; later configuration changes do not reach it.
func New(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		doer:    network.Client,
		policy:  HeaderMerge,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Use returns the request function of a new Client bound to baseURL.
func Use(baseURL string, opts ...ClientOption) RequestFunc {
	return New(baseURL, opts...).Request
}

// BaseURL returns the base URL captured at construction.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request sends one request to url resolved against the base URL.
// Multiple options are overlaid in order. The call never panics and never retries.
func (c *Client) Request(ctx context.Context, url string, options ...Options) (result Result) {
	opts := lo.Reduce(options, func(acc Options, o Options, _ int) Options {
		return acc.merge(o)
	}, Options{})

	method := opts.method()
	target := url

	defer func() {
		if r := recover(); r != nil {
			result = c.recovered(&RequestError{Method: method, URL: target, Err: fmt.Errorf("panic: %v", r)})
		}
	}()

	req, err := c.newRequest(ctx, url, opts)
	if err != nil {
		return c.recovered(err)
	}
	target = req.URL.String()

	log.Debugf("%s %s", method, target)

	resp, err := c.doer.Do(req)
	if err != nil {
		return c.recovered(&RequestError{Method: method, URL: target, Err: err})
	}
	defer resp.Body.Close()

	data, err := decodeBody(resp, method, opts.ResponseType)
	if err != nil {
		return c.recovered(&RequestError{Method: method, URL: target, Err: err})
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 600 {
		return c.recovered(&RequestError{
			Method: method,
			URL:    target,
			Status: resp.StatusCode,
			Data:   data,
			Response: &Response{
				URL:        target,
				Status:     resp.StatusCode,
				StatusText: http.StatusText(resp.StatusCode),
				Header:     resp.Header,
				Data:       data,
			},
		})
	}

	return Result{Body: data}
}

// newRequest builds the outgoing request from opts.
func (c *Client) newRequest(ctx context.Context, url string, opts Options) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	method := opts.method()
	base := lo.Ternary(opts.BaseURL != "", opts.BaseURL, c.baseURL)

	target, err := withQuery(JoinURL(base, url), opts.Query)
	if err != nil {
		return nil, &RequestError{Method: method, URL: url, Err: err}
	}

	body, isJSON, err := encodeBody(opts.Body)
	if err != nil {
		return nil, &RequestError{Method: method, URL: target, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &RequestError{Method: method, URL: target, Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header = MergeHeaders(DefaultHeaders(), opts.Headers, c.policy)
	if isJSON {
		// a json body is always labelled, whatever the header policy dropped
		for k, v := range DefaultHeaders() {
			if req.Header.Get(k) == "" {
				req.Header[k] = v
			}
		}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", constant.UserAgent)
	}

	return req, nil
}

// recovered logs err and normalizes it into a Result.
func (c *Client) recovered(err error) Result {
	log.Warnf("request failed: %v", err)
	return Normalize(err)
}
