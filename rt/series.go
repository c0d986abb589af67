package rt

import (
	"fmt"
	"strconv"

	"github.com/rtgrab-cli/rtgrab/log"
	"github.com/rtgrab-cli/rtgrab/source"
	"github.com/rtgrab-cli/rtgrab/util"
)

// Series resolves a series slug into the ordered list of its episode page
// references, walking show -> seasons -> paginated episode listings.
//
// Entries are left unresolved; the caller dispatches each one separately so a
// single gated episode cannot abort the rest. Any listing failure, however,
// aborts the whole resolution: partial listings would corrupt downstream
// playlist numbering.
func (c *Client) Series(slug string) (*source.Series, error) {
	var show showResponse
	if err := c.getJSON(c.api+"/shows/"+slug, &show); err != nil {
		return nil, err
	}
	if len(show.Data) == 0 {
		return nil, fmt.Errorf("show %s not found", slug)
	}

	var seasons seasonsResponse
	if err := c.getJSON(c.apiRoot+show.Data[0].Links.Seasons, &seasons); err != nil {
		return nil, err
	}

	var entries []string
	for _, season := range seasons.Data {
		seasonEntries, err := c.seasonEpisodes(c.apiRoot+season.Links.Episodes, season.Attributes.Slug)
		if err != nil {
			return nil, err
		}
		entries = append(entries, seasonEntries...)
	}

	log.Infof("series %s: %s across %s", slug,
		util.Quantify(len(entries), "episode", "episodes"),
		util.Quantify(len(seasons.Data), "season", "seasons"))

	return &source.Series{
		ID:      slug,
		Title:   show.Data[0].Attributes.Title,
		Entries: entries,
	}, nil
}

// seasonEpisodes walks every page of one season's episode listing, in order,
// accumulating absolute episode page URLs. The response declares its own page
// number and total; the walk covers pages 1..total_pages exactly once and an
// empty season simply yields no entries.
func (c *Client) seasonEpisodes(listing, seasonSlug string) ([]string, error) {
	var entries []string

	for page := 1; ; page++ {
		pageURL, err := withQuery(listing, map[string]string{
			"page":     strconv.Itoa(page),
			"per_page": strconv.Itoa(c.perPage),
		})
		if err != nil {
			return nil, err
		}

		var resp listingResponse
		if err := c.getJSON(pageURL, &resp); err != nil {
			return nil, fmt.Errorf("season %s page %d: %w", seasonSlug, page, err)
		}

		if resp.Page != page {
			return nil, &PageMismatchError{Requested: page, Returned: resp.Page}
		}

		for _, item := range resp.Data {
			entries = append(entries, c.domain+item.CanonicalLinks.Self)
		}

		if page >= resp.TotalPages {
			return entries, nil
		}
	}
}
