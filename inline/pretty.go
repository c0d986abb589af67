package inline

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/rtgrab-cli/rtgrab/color"
	"github.com/rtgrab-cli/rtgrab/icon"
	"github.com/rtgrab-cli/rtgrab/source"
	"github.com/rtgrab-cli/rtgrab/style"
	"github.com/rtgrab-cli/rtgrab/util"
)

const fallbackWidth = 80

func terminalWidth() int {
	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

func prettyEpisode(out io.Writer, episode *source.Episode) error {
	var b strings.Builder

	b.WriteString(style.Bold(episode.String()))
	b.WriteRune('\n')

	if episode.Series != "" {
		b.WriteString(style.Faint(episode.Series))
		if season, ok := episode.SeasonNumber.Get(); ok {
			b.WriteString(style.Faint(fmt.Sprintf(" · Season %d", season)))
		}
		if number, ok := episode.EpisodeNumber.Get(); ok {
			b.WriteString(style.Faint(fmt.Sprintf(" · Episode %d", number)))
		}
		b.WriteRune('\n')
	}

	if episode.Description != "" {
		b.WriteRune('\n')
		b.WriteString(wordwrap.String(episode.Description, terminalWidth()))
		b.WriteRune('\n')
	}

	b.WriteRune('\n')
	b.WriteString(style.Fg(color.Purple)(util.Quantify(len(episode.Formats), "format", "formats")))
	b.WriteRune('\n')

	for _, format := range episode.Formats {
		b.WriteString(fmt.Sprintf("  %s %s\n", style.Fg(color.Green)(format.Quality), style.Faint(format.URL)))
	}

	_, err := fmt.Fprint(out, b.String())
	return err
}

func prettySeries(out io.Writer, output *SeriesOutput) error {
	var b strings.Builder

	b.WriteString(style.Bold(output.Series.String()))
	b.WriteRune('\n')
	b.WriteString(style.Faint(util.Quantify(output.Series.Count(), "episode", "episodes")))
	b.WriteRune('\n')

	if len(output.Episodes) > 0 || len(output.Failures) > 0 {
		b.WriteRune('\n')
		for _, episode := range output.Episodes {
			b.WriteString(fmt.Sprintf("%s %s\n", icon.Get(icon.Success), episode.String()))
		}
		for _, failure := range output.Failures {
			b.WriteString(fmt.Sprintf("%s %s %s\n", icon.Get(icon.Lock), failure.Entry, style.Faint(failure.Reason)))
		}
	} else {
		for _, entry := range output.Series.Entries {
			b.WriteString(style.Faint(entry))
			b.WriteRune('\n')
		}
	}

	_, err := fmt.Fprint(out, b.String())
	return err
}
