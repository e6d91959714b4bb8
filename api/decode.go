package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

var jsonContentType = regexp.MustCompile("^application/(?:[\\w!#$%&*.^`~-]*\\+)?json$")

var textContentTypes = []string{"image/svg", "application/xml", "application/xhtml", "application/html"}

// nullBodyStatuses never carry a body.
var nullBodyStatuses = []int{101, 204, 205, 304}

// detectResponseType maps a Content-Type header onto a ResponseType. A missing header is treated as json.
func detectResponseType(contentType string) ResponseType {
	mediaType := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	switch {
	case mediaType == "":
		return ResponseJSON
	case jsonContentType.MatchString(mediaType):
		return ResponseJSON
	case strings.HasPrefix(mediaType, "text/"), lo.Contains(textContentTypes, mediaType):
		return ResponseText
	default:
		return ResponseBlob
	}
}

// decodeBody reads and decodes the body of resp. A response without a body decodes to nil.
func decodeBody(resp *http.Response, method string, rt ResponseType) (any, error) {
	if method == http.MethodHead || lo.Contains(nullBodyStatuses, resp.StatusCode) {
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	if rt == ResponseAuto {
		rt = detectResponseType(resp.Header.Get("Content-Type"))
	}

	switch rt {
	case ResponseJSON:
		return parseJSON(raw), nil
	case ResponseText:
		return string(raw), nil
	default:
		return raw, nil
	}
}

// parseJSON decodes raw keeping numbers exact. Input that is not a single json value is returned as a string.
func parseJSON(raw []byte) any {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return string(raw)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return string(raw)
	}
	return v
}

// encodeBody prepares body for sending and reports whether it was json-encoded.
func encodeBody(body any) (io.Reader, bool, error) {
	switch b := body.(type) {
	case nil:
		return nil, false, nil
	case string:
		return strings.NewReader(b), false, nil
	case []byte:
		return bytes.NewReader(b), false, nil
	case io.Reader:
		return b, false, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, false, fmt.Errorf("encode body: %w", err)
		}
		return bytes.NewReader(data), true, nil
	}
}
