package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// PostJSON marshals body and POSTs it. The raw response is handed back
// untouched: adapters branch on status and content type themselves.
func PostJSON(h http.Client, ctx context.Context, url string, body any, headers map[string]string) (*http.Response, error) {

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, val := range headers {
		req.Header.Set(key, val)
	}

	return h.Do(req)
}

// Fetch GETs a resource and returns the raw response; used for follow-up
// image retrieval when a provider answers with a URL instead of bytes.
func Fetch(h http.Client, ctx context.Context, url string, headers map[string]string) (*http.Response, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	for key, val := range headers {
		req.Header.Set(key, val)
	}

	return h.Do(req)
}

// Snippet bounds upstream response text before it travels into error values.
func Snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 8<<10 {
		s = s[:8<<10]
	}
	return s
}
