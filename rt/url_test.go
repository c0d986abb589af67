package rt

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDispatch(t *testing.T) {
	Convey("Dispatch", t, func() {
		Convey("Episode pages", func() {
			for _, pageURL := range []string{
				"http://roosterteeth.com/episode/million-dollars-but-season-2-million-dollars-but-the-game-announcement",
				"https://roosterteeth.com/watch/million-dollars-but-season-2-million-dollars-but-the-game-announcement",
			} {
				kind, id := Dispatch(pageURL)
				So(kind, ShouldEqual, KindEpisode)
				So(id, ShouldEqual, "million-dollars-but-season-2-million-dollars-but-the-game-announcement")
			}
		})

		Convey("Channel subdomains", func() {
			kind, id := Dispatch("http://achievementhunter.roosterteeth.com/episode/off-topic-31")
			So(kind, ShouldEqual, KindEpisode)
			So(id, ShouldEqual, "off-topic-31")
		})

		Convey("Series pages", func() {
			kind, id := Dispatch("https://roosterteeth.com/series/sunday-driving")
			So(kind, ShouldEqual, KindSeries)
			So(id, ShouldEqual, "sunday-driving")
		})

		Convey("Identifier stops at query strings and fragments", func() {
			_, id := Dispatch("https://roosterteeth.com/watch/some-episode?utm=1#t=5")
			So(id, ShouldEqual, "some-episode")
		})

		Convey("Unrelated URLs are unknown", func() {
			kind, id := Dispatch("https://example.com/watch/some-episode")
			So(kind, ShouldEqual, KindUnknown)
			So(id, ShouldBeEmpty)
		})
	})
}
