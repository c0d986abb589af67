package inline

import (
	"encoding/json"
	"io"

	"github.com/rtgrab-cli/rtgrab/source"
)

// SeriesOutput is the JSON record emitted for a series run.
type SeriesOutput struct {
	*source.Series

	// Episodes holds the resolved records when expansion was requested.
	Episodes []*source.Episode `json:"episodes,omitempty"`

	// Failures lists the entries that could not be resolved.
	Failures []Failure `json:"failures,omitempty"`
}

// Failure records a single entry that could not be resolved.
type Failure struct {
	Entry  string `json:"entry"`
	Reason string `json:"reason"`
}

func jsonEpisode(out io.Writer, episode *source.Episode) error {
	return encode(out, episode)
}

func jsonSeries(out io.Writer, output *SeriesOutput) error {
	return encode(out, output)
}

func encode(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
