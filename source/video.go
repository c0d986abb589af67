// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

// Video represents a streamable video variant derived from an adaptive manifest.
type Video struct {
	// Direct URL to the variant playlist.
	URL string `json:"url"`
	// Quality label (e.g. "1080p", "720p").
	Quality string `json:"quality,omitempty"`
	// Peak bandwidth declared by the manifest, bits per second.
	Bandwidth uint32 `json:"bandwidth,omitempty"`
	// Resolution as declared (e.g. "1920x1080").
	Resolution string `json:"resolution,omitempty"`
	// Container extension (e.g. "mp4").
	Extension string `json:"extension,omitempty"`
	// Ordering index, 0 is best.
	Index uint16 `json:"index"`
}

// String returns the quality or URL for display.
func (v *Video) String() string {
	if v.Quality != "" {
		return v.Quality
	}
	return v.URL
}
