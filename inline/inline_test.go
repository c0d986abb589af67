package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rtgrab-cli/rtgrab/filesystem"
	"github.com/rtgrab-cli/rtgrab/rt"
	"github.com/rtgrab-cli/rtgrab/source"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

// fakeResolver serves canned records and fails on request.
type fakeResolver struct {
	episodes map[string]*source.Episode
	failures map[string]error
	series   *source.Series
}

func (f *fakeResolver) Episode(displayID string) (*source.Episode, error) {
	if err, ok := f.failures[displayID]; ok {
		return nil, err
	}
	if episode, ok := f.episodes[displayID]; ok {
		return episode, nil
	}
	return nil, &rt.StatusError{Code: 404}
}

func (f *fakeResolver) Series(string) (*source.Series, error) {
	return f.series, nil
}

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		resolver := &fakeResolver{
			episodes: map[string]*source.Episode{
				"million-dollars-but-s2-e1": {ID: "23", DisplayID: "million-dollars-but-s2-e1", Title: "S2E1"},
				"million-dollars-but-s2-e3": {ID: "25", DisplayID: "million-dollars-but-s2-e3", Title: "S2E3"},
			},
			failures: map[string]error{
				"million-dollars-but-s2-e2": &rt.MembersOnlyError{DisplayID: "million-dollars-but-s2-e2"},
			},
			series: &source.Series{
				ID:    "million-dollars-but",
				Title: "Million Dollars, But...",
				Entries: []string{
					"https://roosterteeth.com/watch/million-dollars-but-s2-e1",
					"https://roosterteeth.com/watch/million-dollars-but-s2-e2",
					"https://roosterteeth.com/watch/million-dollars-but-s2-e3",
				},
			},
		}

		Convey("Episode URL emits a single record", func() {
			var out bytes.Buffer
			err := Run(&Options{
				URL:      "https://roosterteeth.com/watch/million-dollars-but-s2-e1",
				Resolver: resolver,
				Out:      &out,
			})

			So(err, ShouldBeNil)

			var episode source.Episode
			So(json.Unmarshal(out.Bytes(), &episode), ShouldBeNil)
			So(episode.ID, ShouldEqual, "23")
			So(episode.Title, ShouldEqual, "S2E1")
		})

		Convey("Series URL without resolve emits only entries", func() {
			var out bytes.Buffer
			err := Run(&Options{
				URL:      "https://roosterteeth.com/series/million-dollars-but",
				Resolver: resolver,
				Out:      &out,
			})

			So(err, ShouldBeNil)

			var output SeriesOutput
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Entries, ShouldHaveLength, 3)
			So(output.Episodes, ShouldBeEmpty)
			So(output.Failures, ShouldBeEmpty)
		})

		Convey("Series resolve isolates per-entry failures", func() {
			var out bytes.Buffer
			err := Run(&Options{
				URL:      "https://roosterteeth.com/series/million-dollars-but",
				Resolver: resolver,
				Resolve:  true,
				Out:      &out,
			})

			So(err, ShouldBeNil)

			var output SeriesOutput
			So(json.Unmarshal(out.Bytes(), &output), ShouldBeNil)
			So(output.Episodes, ShouldHaveLength, 2)
			So(output.Episodes[0].ID, ShouldEqual, "23")
			So(output.Episodes[1].ID, ShouldEqual, "25")
			So(output.Failures, ShouldHaveLength, 1)
			So(output.Failures[0].Entry, ShouldEqual, "https://roosterteeth.com/watch/million-dollars-but-s2-e2")
			So(output.Failures[0].Reason, ShouldEqual, "million-dollars-but-s2-e2 is only available for members")
		})

		Convey("Unsupported URL is rejected", func() {
			err := Run(&Options{
				URL:      "https://example.com/whatever",
				Resolver: resolver,
				Out:      &bytes.Buffer{},
			})

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unsupported url")
		})
	})
}

func TestResolveEntries(t *testing.T) {
	Convey("resolveEntries", t, func() {
		resolver := &fakeResolver{
			episodes: map[string]*source.Episode{
				"ep-one": {ID: "1", DisplayID: "ep-one"},
			},
		}

		Convey("Non-episode entries are recorded, not fatal", func() {
			episodes, failures := resolveEntries(resolver, []string{
				"https://roosterteeth.com/series/not-an-episode",
				"https://roosterteeth.com/episode/ep-one",
			})

			So(episodes, ShouldHaveLength, 1)
			So(failures, ShouldHaveLength, 1)
			So(failures[0].Reason, ShouldEqual, "not an episode url")
		})
	})
}
