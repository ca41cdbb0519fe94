package github

import (
	"fmt"
	"net/http"
	"time"
)

// cacheHintTransport rewrites the freshness headers of successful GET
// responses so the httpcache layer above it may reuse them for maxAge.
type cacheHintTransport struct {
	base   http.RoundTripper
	maxAge time.Duration
}

func newCacheHintTransport(base http.RoundTripper, maxAge time.Duration) *cacheHintTransport {
	return &cacheHintTransport{base: base, maxAge: maxAge}
}

// RoundTrip implements http.RoundTripper.
func (t *cacheHintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if req.Method != http.MethodGet || resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, nil
	}

	resp.Header.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(t.maxAge.Seconds())))
	resp.Header.Del("Expires")
	if resp.Header.Get("Date") == "" {
		resp.Header.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	}

	return resp, nil
}
