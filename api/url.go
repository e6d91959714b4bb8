package api

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var protocolPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]+:`)

// JoinURL resolves input against base.
// Absolute URLs and paths that already start with base are returned untouched.
func JoinURL(base, input string) string {
	if base == "" || base == "/" || protocolPattern.MatchString(input) {
		return input
	}

	base = strings.TrimSuffix(base, "/")
	if strings.HasPrefix(input, base) {
		return input
	}

	input = strings.TrimPrefix(input, "/")
	if input == "" {
		return base
	}
	return base + "/" + input
}

// withQuery merges query into the query string of target; query keys replace existing ones.
func withQuery(target string, query url.Values) (string, error) {
	if len(query) == 0 {
		return target, nil
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	q := u.Query()
	for k, v := range query {
		q[k] = v
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
