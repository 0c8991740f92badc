package engine

import (
	"fmt"
	"strings"

	"github.com/renamarr/renamarr/internal/models"
	"github.com/renamarr/renamarr/internal/utils"
)

// BuildFileName assembles the normalized file name for the context's file.
// The pieces are appended in fixed order: series title, episode label (for
// non-movies), episode title, subtitle tag, bit depth, codec, release group,
// and the original extension. The assembled name is sanitized as a final
// step.
func (e *Engine) BuildFileName(ctx *models.RelocationContext) (string, error) {
	series := ctx.FirstSeries()
	episode := ctx.FirstEpisode()

	var b strings.Builder
	b.WriteString(e.seriesTitle(series))

	if !series.IsMovie() {
		label, err := FormatEpisodeLabel(episode, series)
		if err != nil {
			return "", err
		}
		b.WriteString(" - ")
		b.WriteString(label)
	}

	episodeTitle, err := e.episodeTitle(episode)
	if err != nil {
		return "", err
	}
	b.WriteString(" - ")
	b.WriteString(episodeTitle)

	switch subs := ctx.File.Streams.TextStreams; {
	case len(subs) > 1:
		b.WriteString("[MULTISUB]")
	case len(subs) == 1:
		b.WriteString("[" + subs[0].LanguageCode + "sub]")
	}

	fmt.Fprintf(&b, "[%dbit]", ctx.File.Streams.Video.BitDepth)

	if codec := ctx.File.Streams.Video.CodecName; codec != "" {
		b.WriteString("[" + codec + "]")
	}

	if group := ctx.File.ReleaseGroup; group != "" {
		b.WriteString("[" + group + "]")
	}

	b.WriteString(ctx.File.Extension())

	name := utils.SanitizeFileName(b.String())
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyFileName
	}
	return name, nil
}
