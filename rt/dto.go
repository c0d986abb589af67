package rt

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// API response envelopes. The backend wraps everything in a "data" array,
// even single-document lookups.

type videosResponse struct {
	Data []struct {
		Attributes struct {
			URL string `json:"url"`
		} `json:"attributes"`
	} `json:"data"`
}

type episodeResponse struct {
	Data []episodeDocument `json:"data"`
}

type episodeDocument struct {
	ID         json.Number       `json:"id"`
	UUID       string            `json:"uuid"`
	Attributes episodeAttributes `json:"attributes"`
	Included   struct {
		Images []episodeImage `json:"images"`
	} `json:"included"`
}

type episodeAttributes struct {
	Title        string  `json:"title"`
	DisplayTitle string  `json:"display_title"`
	Description  string  `json:"description"`
	Caption      string  `json:"caption"`
	ShowTitle    string  `json:"show_title"`
	SeasonNumber flexInt `json:"season_number"`
	SeasonID     string  `json:"season_id"`
	Number       flexInt `json:"number"`
	ChannelID    string  `json:"channel_id"`
	Length       flexInt `json:"length"`
}

type episodeImage struct {
	Type       string `json:"type"`
	Attributes struct {
		Thumb  string `json:"thumb"`
		Small  string `json:"small"`
		Medium string `json:"medium"`
		Large  string `json:"large"`
	} `json:"attributes"`
}

type showResponse struct {
	Data []struct {
		Attributes struct {
			Title string `json:"title"`
		} `json:"attributes"`
		Links struct {
			Seasons string `json:"seasons"`
		} `json:"links"`
	} `json:"data"`
}

type seasonsResponse struct {
	Data []struct {
		Attributes struct {
			Slug string `json:"slug"`
		} `json:"attributes"`
		Links struct {
			Episodes string `json:"episodes"`
		} `json:"links"`
	} `json:"data"`
}

type listingResponse struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Data       []struct {
		CanonicalLinks struct {
			Self string `json:"self"`
		} `json:"canonical_links"`
	} `json:"data"`
}

// accessResponse is the body of a 403 on the videos endpoint. Only an explicit
// false denies access; a missing field means the failure had another cause.
type accessResponse struct {
	Access *bool `json:"access"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type tokenErrorResponse struct {
	ExtraInfo        string `json:"extra_info"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error"`
}

// flexInt decodes numeric fields the backend serializes inconsistently:
// JSON numbers, numeric strings, or nothing at all. Anything non-numeric
// decodes to an absent value, never an error.
type flexInt struct {
	value mo.Option[int]
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		f.set(n.String())
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		f.set(strings.TrimSpace(s))
	}
	return nil
}

func (f *flexInt) set(s string) {
	if i, err := strconv.Atoi(s); err == nil {
		f.value = mo.Some(i)
		return
	}
	if fl, err := strconv.ParseFloat(s, 64); err == nil {
		f.value = mo.Some(int(fl))
	}
}

// Get returns the decoded value, or None when the source was missing or non-numeric.
func (f flexInt) Get() mo.Option[int] {
	return f.value
}
