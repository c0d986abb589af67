// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

// Resolver defines the required capabilities for turning page identifiers into records.
type Resolver interface {
	// Episode resolves a human-readable episode slug into a full record with playable formats.
	Episode(displayID string) (*Episode, error)

	// Series resolves a series slug into an ordered list of episode page references.
	Series(slug string) (*Series, error)
}
