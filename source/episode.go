// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

import (
	"github.com/samber/mo"
)

// Episode is the normalized record for a single playable episode.
// Immutable once returned by a resolver; never persisted by this module.
type Episode struct {
	// Platform-assigned numeric identifier, the record's identity.
	ID string `json:"id"`
	// Human-readable slug used for lookup.
	DisplayID   string `json:"display_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	Thumbnails []Thumbnail `json:"thumbnails,omitempty"`

	// Series and season placement.
	Series       string         `json:"series,omitempty"`
	SeasonNumber mo.Option[int] `json:"season_number"`
	SeasonID     string         `json:"season_id,omitempty"`

	// EpisodeTitle mirrors Title, matching the downstream record shape.
	EpisodeTitle  string         `json:"episode"`
	EpisodeNumber mo.Option[int] `json:"episode_number"`
	// Platform UUID for the episode.
	EpisodeID string `json:"episode_id,omitempty"`

	// Playable stream variants, best first. Non-empty on success.
	Formats []*Video `json:"formats"`

	ChannelID string `json:"channel_id,omitempty"`
	// Duration in seconds.
	Duration mo.Option[int] `json:"duration"`
}

// Thumbnail is one preview image, keyed by its size tag.
type Thumbnail struct {
	// Size tag: thumb, small, medium or large.
	ID  string `json:"id"`
	URL string `json:"url"`
}

// String returns the canonical display representation of the episode.
func (e *Episode) String() string {
	if e.Title != "" {
		return e.Title
	}
	return e.DisplayID
}

// BestThumbnail returns the largest available thumbnail URL.
func (e *Episode) BestThumbnail() (string, bool) {
	for _, tag := range []string{"large", "medium", "small", "thumb"} {
		for _, t := range e.Thumbnails {
			if t.ID == tag && t.URL != "" {
				return t.URL, true
			}
		}
	}
	return "", false
}

// BestFormat returns the highest-ranked stream variant.
func (e *Episode) BestFormat() (*Video, bool) {
	if len(e.Formats) == 0 {
		return nil, false
	}
	return e.Formats[0], true
}
