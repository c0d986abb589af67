// Package network provides a pre-configured HTTP client shared by all platform API calls.
package network

import (
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/samber/lo"
	"golang.org/x/net/publicsuffix"
)

// Client is the singleton HTTP client shared across the application.
// Its cookie jar carries the platform session token between the auth exchange
// and subsequent API requests, so authorization rides along ambiently.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
	Jar:       NewJar(),
}

// NewJar constructs a cookie jar with proper public-suffix scoping.
func NewJar() http.CookieJar {
	return lo.Must(cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List}))
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
