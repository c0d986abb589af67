// Package inline implements the non-interactive resolution mode.
//
// It accepts a page URL, classifies it, resolves it through a source.Resolver
// and emits the result as JSON or a human-readable summary.
package inline

import (
	"fmt"
	"io"

	"github.com/rtgrab-cli/rtgrab/log"
	"github.com/rtgrab-cli/rtgrab/rt"
	"github.com/rtgrab-cli/rtgrab/source"
)

// Options encapsulates the parameters of a single inline run.
type Options struct {
	// Page URL to resolve.
	URL string

	// Resolver turns identifiers into records.
	Resolver source.Resolver

	// Resolve controls whether series entries are expanded into full
	// episode records. When false, a series run emits only the entry URLs.
	Resolve bool

	// Pretty switches the output from JSON to a human-readable summary.
	Pretty bool

	// Out is the destination stream.
	Out io.Writer
}

// Run executes the inline mode for the given options.
func Run(options *Options) error {
	kind, id := rt.Dispatch(options.URL)

	switch kind {
	case rt.KindEpisode:
		return runEpisode(options, id)
	case rt.KindSeries:
		return runSeries(options, id)
	default:
		return fmt.Errorf("unsupported url %q", options.URL)
	}
}

func runEpisode(options *Options, displayID string) error {
	episode, err := options.Resolver.Episode(displayID)
	if err != nil {
		return err
	}

	if options.Pretty {
		return prettyEpisode(options.Out, episode)
	}

	return jsonEpisode(options.Out, episode)
}

func runSeries(options *Options, slug string) error {
	series, err := options.Resolver.Series(slug)
	if err != nil {
		return err
	}

	output := &SeriesOutput{Series: series}

	if options.Resolve {
		output.Episodes, output.Failures = resolveEntries(options.Resolver, series.Entries)
	}

	if options.Pretty {
		return prettySeries(options.Out, output)
	}

	return jsonSeries(options.Out, output)
}

// resolveEntries expands entry URLs into full episode records one by one.
// A failing entry is recorded and skipped so that a single members-only
// episode does not abort the rest of the listing.
func resolveEntries(resolver source.Resolver, entries []string) (episodes []*source.Episode, failures []Failure) {
	for _, entry := range entries {
		kind, displayID := rt.Dispatch(entry)
		if kind != rt.KindEpisode {
			failures = append(failures, Failure{Entry: entry, Reason: "not an episode url"})
			continue
		}

		episode, err := resolver.Episode(displayID)
		if err != nil {
			log.Warn(err)
			failures = append(failures, Failure{Entry: entry, Reason: err.Error()})
			continue
		}

		episodes = append(episodes, episode)
	}

	return episodes, failures
}
