// Package rt implements the platform resolvers: episode and series extraction over the SVOD REST API.
package rt

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rtgrab-cli/rtgrab/auth"
	"github.com/rtgrab-cli/rtgrab/constant"
	"github.com/rtgrab-cli/rtgrab/key"
	"github.com/rtgrab-cli/rtgrab/network"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Client is the shared authenticated-fetch capability behind both resolvers.
// Episode and series resolution are methods on it rather than one extending
// the other; the session state they share is the HTTP client's cookie jar.
type Client struct {
	http     *http.Client
	domain   string
	api      string
	apiRoot  string
	authBase string
	perPage  int

	credential mo.Option[auth.Credentials]
}

// Options configure a Client. Zero-valued fields fall back to the global
// configuration and the shared network client.
type Options struct {
	HTTP     *http.Client
	Domain   string
	API      string
	AuthBase string
	PerPage  int

	Credential mo.Option[auth.Credentials]
}

// New constructs a Client, resolving unset options from the global configuration.
// The credential is taken from the config first, then from the system keyring
// when enabled; absence of both simply means anonymous access.
func New(opts Options) *Client {
	c := &Client{
		http:       opts.HTTP,
		domain:     opts.Domain,
		api:        opts.API,
		authBase:   opts.AuthBase,
		perPage:    opts.PerPage,
		credential: opts.Credential,
	}

	if c.http == nil {
		c.http = network.Client
	}
	if c.domain == "" {
		c.domain = strings.TrimSuffix(viper.GetString(key.APIDomain), "/")
	}
	if c.api == "" {
		c.api = strings.TrimSuffix(viper.GetString(key.APIBase), "/")
	}
	if c.authBase == "" {
		c.authBase = strings.TrimSuffix(viper.GetString(key.APIAuthBase), "/")
	}
	if c.perPage <= 0 {
		c.perPage = viper.GetInt(key.APIPerPage)
	}
	if c.credential.IsAbsent() {
		c.credential = configuredCredentials()
	}

	// Listing links in API responses are rooted at the authority, not the
	// versioned base path.
	if u, err := url.Parse(c.api); err == nil {
		c.apiRoot = u.Scheme + "://" + u.Host
	} else {
		c.apiRoot = c.api
	}

	return c
}

// configuredCredentials resolves the optional login from config or keyring.
func configuredCredentials() mo.Option[auth.Credentials] {
	username := viper.GetString(key.AuthUsername)
	password := viper.GetString(key.AuthPassword)
	if username != "" && password != "" {
		return mo.Some(auth.Credentials{Username: username, Password: password})
	}

	if viper.GetBool(key.AuthUseKeyring) {
		if saved, err := auth.GetCredentials(); err == nil && saved.Username != "" {
			return mo.Some(saved)
		}
	}

	return mo.None[auth.Credentials]()
}

// getJSON performs a GET and decodes the 2xx response body into out.
// Non-2xx responses become a *StatusError carrying the raw body.
func (c *Client) getJSON(rawURL string, out any) error {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.doJSON(req, out)
}

// postForm performs a form-encoded POST and decodes the 2xx response body into out.
func (c *Client) postForm(rawURL string, form url.Values, out any) error {
	req, err := http.NewRequest(http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.doJSON(req, out)
}

func (c *Client) doJSON(req *http.Request, out any) error {
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", req.URL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: body}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse %s: %w", req.URL, err)
	}
	return nil
}

// withQuery returns rawURL with the given query parameters set, overriding
// any existing values for the same keys.
func withQuery(rawURL string, params map[string]string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url %s: %w", rawURL, err)
	}

	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
