package lookup_test

import (
	"io"
	"net/http"
	"strings"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func httpBody(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}
