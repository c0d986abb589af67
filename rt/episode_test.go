package rt

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rtgrab-cli/rtgrab/auth"
	"github.com/rtgrab-cli/rtgrab/source"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

const testMasterPlaylist = `#EXTM3U
#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=4000000,RESOLUTION=1920x1080
1080/playlist.m3u8
#EXT-X-STREAM-INF:PROGRAM-ID=1,BANDWIDTH=1400000,RESOLUTION=1280x720
720/playlist.m3u8
`

// episodeHandler serves the videos + metadata endpoints for one episode.
func episodeHandler(displayID string, metadata map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/episodes/" + displayID + "/videos":
			writeJSON(w, map[string]any{"data": []map[string]any{{
				"attributes": map[string]string{"url": "http://" + r.Host + "/hls/master.m3u8"},
			}}})

		case "/hls/master.m3u8":
			_, _ = w.Write([]byte(testMasterPlaylist))

		case "/api/v1/episodes/" + displayID:
			writeJSON(w, map[string]any{"data": []any{metadata}})

		default:
			http.NotFound(w, r)
		}
	}
}

func TestEpisode(t *testing.T) {
	Convey("Episode", t, func() {
		Convey("Full resolution", func() {
			metadata := map[string]any{
				"id":   9156,
				"uuid": "ffac77ab-e0b4-4c1d-9c05-2ff2e927a6cf",
				"attributes": map[string]any{
					"title":         "The Game Announcement",
					"description":   "A game is announced.",
					"show_title":    "Million Dollars, But...",
					"season_number": 2,
					"season_id":     "s2",
					"number":        "1",
					"channel_id":    "rt",
					"length":        372,
				},
				"included": map[string]any{
					"images": []map[string]any{{
						"type": "episode_image",
						"attributes": map[string]string{
							"thumb": "https://cdn.example.com/t.png",
							"large": "https://cdn.example.com/l.png",
						},
					}},
				},
			}
			server := httptest.NewServer(episodeHandler("the-game-announcement", metadata))
			defer server.Close()

			ep, err := newTestClient(server, mo.None[auth.Credentials]()).Episode("the-game-announcement")
			So(err, ShouldBeNil)

			So(ep.ID, ShouldEqual, "9156")
			So(ep.DisplayID, ShouldEqual, "the-game-announcement")
			So(ep.Title, ShouldEqual, "The Game Announcement")
			So(ep.EpisodeTitle, ShouldEqual, ep.Title)
			So(ep.Series, ShouldEqual, "Million Dollars, But...")
			So(ep.EpisodeID, ShouldEqual, "ffac77ab-e0b4-4c1d-9c05-2ff2e927a6cf")
			So(ep.SeasonNumber.MustGet(), ShouldEqual, 2)
			So(ep.EpisodeNumber.MustGet(), ShouldEqual, 1)
			So(ep.Duration.MustGet(), ShouldEqual, 372)

			Convey("Formats are non-empty and ranked best first", func() {
				So(ep.Formats, ShouldHaveLength, 2)
				So(ep.Formats[0].Quality, ShouldEqual, "1080p")
			})

			Convey("Thumbnails carry one entry per present size tag", func() {
				So(ep.Thumbnails, ShouldHaveLength, 2)
				So(ep.Thumbnails[0].ID, ShouldEqual, "thumb")
				So(ep.Thumbnails[1].ID, ShouldEqual, "large")
			})
		})

		Convey("Title falls back to display_title", func() {
			metadata := map[string]any{
				"id": 1,
				"attributes": map[string]any{
					"display_title": "Fallback Title",
					"caption":       "Fallback description.",
				},
			}
			server := httptest.NewServer(episodeHandler("fallback", metadata))
			defer server.Close()

			ep, err := newTestClient(server, mo.None[auth.Credentials]()).Episode("fallback")
			So(err, ShouldBeNil)
			So(ep.Title, ShouldEqual, "Fallback Title")
			So(ep.Description, ShouldEqual, "Fallback description.")
		})

		Convey("Non-numeric counters resolve to absent, not an error", func() {
			metadata := map[string]any{
				"id": 2,
				"attributes": map[string]any{
					"title":         "Oddball",
					"season_number": "not-a-number",
				},
			}
			server := httptest.NewServer(episodeHandler("oddball", metadata))
			defer server.Close()

			ep, err := newTestClient(server, mo.None[auth.Credentials]()).Episode("oddball")
			So(err, ShouldBeNil)
			So(ep.SeasonNumber.IsAbsent(), ShouldBeTrue)
			So(ep.EpisodeNumber.IsAbsent(), ShouldBeTrue)
			So(ep.Duration.IsAbsent(), ShouldBeTrue)
		})

		Convey("Thumbnails exclude non-episode image types", func() {
			metadata := map[string]any{
				"id": 3,
				"attributes": map[string]any{
					"title": "Filtered",
				},
				"included": map[string]any{
					"images": []map[string]any{
						{
							"type":       "episode_image",
							"attributes": map[string]string{"thumb": "A"},
						},
						{
							"type":       "show_image",
							"attributes": map[string]string{"thumb": "B"},
						},
					},
				},
			}
			server := httptest.NewServer(episodeHandler("filtered", metadata))
			defer server.Close()

			ep, err := newTestClient(server, mo.None[auth.Credentials]()).Episode("filtered")
			So(err, ShouldBeNil)
			So(ep.Thumbnails, ShouldResemble, []source.Thumbnail{{ID: "thumb", URL: "A"}})
		})

		Convey("A 403 with access=false is a members-only failure", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(map[string]any{"access": false})
			}))
			defer server.Close()

			_, err := newTestClient(server, mo.None[auth.Credentials]()).Episode("first-only")
			So(err, ShouldNotBeNil)

			var membersOnly *MembersOnlyError
			So(errors.As(err, &membersOnly), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "first-only is only available for members")
		})

		Convey("A 403 without the explicit access flag propagates unchanged", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(map[string]any{"message": "nope"})
			}))
			defer server.Close()

			_, err := newTestClient(server, mo.None[auth.Credentials]()).Episode("odd-403")
			So(err, ShouldNotBeNil)

			var membersOnly *MembersOnlyError
			So(errors.As(err, &membersOnly), ShouldBeFalse)

			var status *StatusError
			So(errors.As(err, &status), ShouldBeTrue)
			So(status.Code, ShouldEqual, http.StatusForbidden)
		})
	})
}
