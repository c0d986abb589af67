package rt

import (
	"regexp"

	"github.com/rtgrab-cli/rtgrab/util"
)

// Page URL patterns. Episode pages live under /episode/ or /watch/, on the
// apex domain or any channel subdomain; series pages under /series/.
var (
	episodePattern = regexp.MustCompile(`^https?://(?:.+?\.)?roosterteeth\.com/(?:episode|watch)/(?P<id>[^/?#&]+)`)
	seriesPattern  = regexp.MustCompile(`^https?://(?:.+?\.)?roosterteeth\.com/series/(?P<id>[\w\-]+)`)
)

// Kind classifies a supported page URL.
type Kind int

const (
	KindUnknown Kind = iota
	KindEpisode
	KindSeries
)

// Dispatch classifies a page URL and extracts its identifier slug.
func Dispatch(pageURL string) (Kind, string) {
	if id := util.ReGroups(episodePattern, pageURL)["id"]; id != "" {
		return KindEpisode, id
	}
	if id := util.ReGroups(seriesPattern, pageURL)["id"]; id != "" {
		return KindSeries, id
	}
	return KindUnknown, ""
}
