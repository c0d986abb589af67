package rt

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/metafates/gache"
	"github.com/rtgrab-cli/rtgrab/filesystem"
	"github.com/rtgrab-cli/rtgrab/log"
	"github.com/rtgrab-cli/rtgrab/where"
)

const (
	// clientID is the platform's fixed public OAuth client identifier for the password grant.
	clientID = "4338d2b4bdc8db1239360f28e72f0d9ddb1fd01e7a38fbb07b4b1f4ba4564cc5"

	// sessionCookie carries the session token on every API request.
	sessionCookie = "rt_access_token"
)

// sessionCacher persists the session token between runs. Tokens outlive a
// single invocation, so re-running the login exchange every time would be
// wasteful and rate-limit prone.
var sessionCacher = gache.New[string](&gache.Options{
	Path:       where.Session(),
	Lifetime:   time.Hour * 24,
	FileSystem: &filesystem.GacheFs{},
})

// EnsureSession makes sure a session token is available before gated requests.
// Idempotent per process: a token already in the cookie jar short-circuits
// without any network traffic. Missing credentials mean anonymous access, not
// an error. A failed exchange is reported as a warning and extraction
// continues unauthenticated; content that actually requires membership will
// surface a MembersOnlyError later, at resolution time.
func (c *Client) EnsureSession() {
	if c.hasSessionCookie() {
		return
	}

	if token, expired, err := sessionCacher.Get(); err == nil && !expired && token != "" {
		c.setSessionCookie(token)
		return
	}

	credential, ok := c.credential.Get()
	if !ok {
		return
	}

	var token tokenResponse
	err := c.postForm(c.authBase+"/oauth/token", url.Values{
		"client_id":  {clientID},
		"grant_type": {"password"},
		"username":   {credential.Username},
		"password":   {credential.Password},
	}, &token)
	if err != nil {
		log.Warn(loginFailureMessage(err))
		return
	}

	if token.AccessToken != "" {
		c.setSessionCookie(token.AccessToken)
		_ = sessionCacher.Set(token.AccessToken)
	}
}

// loginFailureMessage builds the warning for a failed credential exchange,
// preferring the backend's own explanation when the error body carries one.
func loginFailureMessage(err error) string {
	msg := "unable to log in"

	var status *StatusError
	if !errors.As(err, &status) {
		return msg
	}

	var body tokenErrorResponse
	if json.Unmarshal(status.Body, &body) != nil {
		return msg
	}

	for _, detail := range []string{body.ExtraInfo, body.ErrorDescription, body.ErrorCode} {
		if detail != "" {
			return msg + ": " + detail
		}
	}
	return msg
}

func (c *Client) hasSessionCookie() bool {
	if c.http.Jar == nil {
		return false
	}

	u, err := url.Parse(c.api)
	if err != nil {
		return false
	}

	for _, cookie := range c.http.Jar.Cookies(u) {
		if cookie.Name == sessionCookie && cookie.Value != "" {
			return true
		}
	}
	return false
}

func (c *Client) setSessionCookie(token string) {
	if c.http.Jar == nil {
		return
	}

	u, err := url.Parse(c.api)
	if err != nil {
		return
	}

	c.http.Jar.SetCookies(u, []*http.Cookie{{
		Name:  sessionCookie,
		Value: token,
		Path:  "/",
	}})
}
