// Package hls derives playable stream variants from adaptive streaming manifests.
package hls

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/grafov/m3u8"
	"github.com/rtgrab-cli/rtgrab/log"
	"github.com/rtgrab-cli/rtgrab/source"
)

// Variants fetches a manifest URL and expands it into stream variants, best first.
//
// A master playlist yields one variant per EXT-X-STREAM-INF entry, with relative
// URIs resolved against the manifest location. A plain media playlist yields a
// single variant pointing at the manifest itself.
func Variants(client *http.Client, manifestURL string) ([]*source.Video, error) {
	resp, err := client.Get(manifestURL)
	if err != nil {
		return nil, fmt.Errorf("fetch manifest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch manifest: unexpected status %d", resp.StatusCode)
	}

	playlist, listType, err := m3u8.DecodeFrom(resp.Body, true)
	if err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	base, err := url.Parse(manifestURL)
	if err != nil {
		return nil, fmt.Errorf("parse manifest url: %w", err)
	}

	if listType != m3u8.MASTER {
		// Single-rendition manifest. The stream is the manifest itself.
		return []*source.Video{{URL: manifestURL, Extension: "mp4"}}, nil
	}

	master := playlist.(*m3u8.MasterPlaylist)

	var videos []*source.Video
	for _, variant := range master.Variants {
		if variant == nil || variant.URI == "" {
			continue
		}

		videos = append(videos, &source.Video{
			URL:        resolve(base, variant.URI),
			Quality:    qualityLabel(variant.Resolution, variant.Bandwidth),
			Bandwidth:  variant.Bandwidth,
			Resolution: variant.Resolution,
			Extension:  "mp4",
		})
	}

	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].Bandwidth > videos[j].Bandwidth
	})
	for i, v := range videos {
		v.Index = uint16(i)
	}

	log.Debugf("derived %d variants from %s", len(videos), manifestURL)
	return videos, nil
}

// resolve absolutizes a possibly relative variant URI against the manifest location.
func resolve(base *url.URL, uri string) string {
	ref, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	return base.ResolveReference(ref).String()
}

// qualityLabel condenses a declared resolution into the conventional "<height>p" label.
func qualityLabel(resolution string, bandwidth uint32) string {
	if _, height, ok := strings.Cut(resolution, "x"); ok && height != "" {
		return height + "p"
	}
	if bandwidth > 0 {
		return fmt.Sprintf("%dk", bandwidth/1000)
	}
	return ""
}
