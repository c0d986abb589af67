package rt

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rtgrab-cli/rtgrab/hls"
	"github.com/rtgrab-cli/rtgrab/log"
	"github.com/rtgrab-cli/rtgrab/source"
)

// Episode resolves an episode slug into a normalized record with playable formats.
//
// An authorization failure that the backend explicitly confirms with
// access=false becomes a *MembersOnlyError; every other failure propagates
// unchanged.
func (c *Client) Episode(displayID string) (*source.Episode, error) {
	c.EnsureSession()

	base := c.api + "/episodes/" + displayID

	var videos videosResponse
	if err := c.getJSON(base+"/videos", &videos); err != nil {
		var status *StatusError
		if errors.As(err, &status) && status.Code == http.StatusForbidden {
			var access accessResponse
			if json.Unmarshal(status.Body, &access) == nil && access.Access != nil && !*access.Access {
				return nil, &MembersOnlyError{DisplayID: displayID}
			}
		}
		return nil, err
	}
	if len(videos.Data) == 0 || videos.Data[0].Attributes.URL == "" {
		return nil, fmt.Errorf("no video manifest for %s", displayID)
	}

	formats, err := hls.Variants(c.http, videos.Data[0].Attributes.URL)
	if err != nil {
		return nil, err
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("no playable formats for %s", displayID)
	}

	var meta episodeResponse
	if err := c.getJSON(base, &meta); err != nil {
		return nil, err
	}
	if len(meta.Data) == 0 {
		return nil, fmt.Errorf("missing episode metadata for %s", displayID)
	}

	doc := meta.Data[0]
	attributes := doc.Attributes

	title := attributes.Title
	if title == "" {
		title = attributes.DisplayTitle
	}
	description := attributes.Description
	if description == "" {
		description = attributes.Caption
	}

	log.Infof("resolved %s (%s)", displayID, title)

	return &source.Episode{
		ID:            doc.ID.String(),
		DisplayID:     displayID,
		Title:         title,
		Description:   description,
		Thumbnails:    thumbnails(doc.Included.Images),
		Series:        attributes.ShowTitle,
		SeasonNumber:  attributes.SeasonNumber.Get(),
		SeasonID:      attributes.SeasonID,
		EpisodeTitle:  title,
		EpisodeNumber: attributes.Number.Get(),
		EpisodeID:     doc.UUID,
		Formats:       formats,
		ChannelID:     attributes.ChannelID,
		Duration:      attributes.Length.Get(),
	}, nil
}

// thumbnails collects preview images from episode_image entries, one thumbnail
// per present size tag. Other image types (banners, posters) are skipped.
func thumbnails(images []episodeImage) []source.Thumbnail {
	var result []source.Thumbnail

	for _, image := range images {
		if image.Type != "episode_image" {
			continue
		}

		for _, tagged := range []struct {
			tag string
			url string
		}{
			{"thumb", image.Attributes.Thumb},
			{"small", image.Attributes.Small},
			{"medium", image.Attributes.Medium},
			{"large", image.Attributes.Large},
		} {
			if tagged.url != "" {
				result = append(result, source.Thumbnail{ID: tagged.tag, URL: tagged.url})
			}
		}
	}

	return result
}
