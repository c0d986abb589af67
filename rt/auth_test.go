package rt

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rtgrab-cli/rtgrab/auth"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoginFailureMessage(t *testing.T) {
	Convey("loginFailureMessage", t, func() {
		Convey("Prefers extra_info over error_description over error", func() {
			err := &StatusError{Code: 401, Body: []byte(`{"extra_info":"a","error_description":"b","error":"c"}`)}
			So(loginFailureMessage(err), ShouldEqual, "unable to log in: a")

			err = &StatusError{Code: 401, Body: []byte(`{"error_description":"b","error":"c"}`)}
			So(loginFailureMessage(err), ShouldEqual, "unable to log in: b")

			err = &StatusError{Code: 401, Body: []byte(`{"error":"c"}`)}
			So(loginFailureMessage(err), ShouldEqual, "unable to log in: c")
		})

		Convey("Falls back to the generic message", func() {
			So(loginFailureMessage(&StatusError{Code: 401, Body: []byte(`{}`)}), ShouldEqual, "unable to log in")
			So(loginFailureMessage(&StatusError{Code: 401, Body: []byte(`garbage`)}), ShouldEqual, "unable to log in")
		})
	})
}

func TestEnsureSession(t *testing.T) {
	credential := mo.Some(auth.Credentials{Username: "user@example.com", Password: "hunter2"})

	Convey("EnsureSession", t, func() {
		Convey("A session cookie already in the jar short-circuits", func() {
			var requests int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests++
			}))
			defer server.Close()

			client := newTestClient(server, credential)
			client.setSessionCookie("already-there")

			client.EnsureSession()
			client.EnsureSession()
			So(requests, ShouldEqual, 0)
		})

		Convey("No configured credential means anonymous access, silently", func() {
			var requests int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests++
			}))
			defer server.Close()

			client := newTestClient(server, mo.None[auth.Credentials]())
			client.EnsureSession()
			So(requests, ShouldEqual, 0)
			So(client.hasSessionCookie(), ShouldBeFalse)
		})

		Convey("A failed exchange warns and proceeds unauthenticated", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error_description":"bad credentials"}`))
			}))
			defer server.Close()

			client := newTestClient(server, credential)
			So(client.EnsureSession, ShouldNotPanic)
			So(client.hasSessionCookie(), ShouldBeFalse)
		})

		Convey("A successful exchange stores the token as a session cookie", func() {
			// Form values are captured here and asserted after the call;
			// assertions need the test goroutine, not the server's.
			var form url.Values
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/oauth/token" {
					http.NotFound(w, r)
					return
				}
				_ = r.ParseForm()
				form = r.PostForm
				writeJSON(w, map[string]string{"access_token": "fresh-token"})
			}))
			defer server.Close()

			client := newTestClient(server, credential)
			client.EnsureSession()

			So(form.Get("grant_type"), ShouldEqual, "password")
			So(form.Get("client_id"), ShouldEqual, clientID)
			So(form.Get("username"), ShouldEqual, "user@example.com")
			So(client.hasSessionCookie(), ShouldBeTrue)
		})
	})
}
