// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

// Series is the resolved listing of a show: an ordered set of episode page references.
// Entries are deliberately left unresolved so the caller can dispatch each one
// independently; a single members-only episode must not abort the rest.
type Series struct {
	// Series slug.
	ID    string `json:"id"`
	Title string `json:"title"`
	// Episode page URLs in (season, page, in-page) order.
	// The ordering is significant for playlist numbering downstream.
	Entries []string `json:"entries"`
}

// String returns the series title.
func (s *Series) String() string {
	return s.Title
}

// Count returns the number of discovered episode references.
func (s *Series) Count() int {
	return len(s.Entries)
}
