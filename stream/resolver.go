package stream

import (
	"context"
	"strings"

	"github.com/contar-cli/contar/catalog"
	"github.com/contar-cli/contar/log"
	"github.com/contar-cli/contar/network"
)

// Resolver converts the stream and subtitle descriptors attached to an
// episode into ranked formats and a language-keyed subtitle map.
type Resolver struct {
	HLS  Extractor
	DASH Extractor
}

// NewResolver returns a resolver backed by the shared HTTP client.
func NewResolver() *Resolver {
	return &Resolver{
		HLS:  &HLSExtractor{HTTP: network.Client},
		DASH: &DASHExtractor{HTTP: network.Client},
	}
}

// Formats extracts and ranks every playable format reachable from the
// given descriptors. A failed extraction drops that descriptor and
// continues; unknown descriptor types are skipped silently. An empty
// result is a valid outcome, never an error.
func (r *Resolver) Formats(ctx context.Context, streams []catalog.Stream, itemID string) []*Format {
	var formats []*Format

	for _, descriptor := range streams {
		var extractor Extractor
		var group string

		switch descriptor.Type {
		case "HLS":
			extractor, group = r.HLS, GroupHLS
		case "DASH":
			extractor, group = r.DASH, GroupDASH
		default:
			continue
		}

		extracted, err := extractor.Extract(ctx, descriptor.URL, itemID)
		if err != nil {
			log.Warnf("dropping %s stream of %s: %v", group, itemID, err)
			continue
		}
		for _, f := range extracted {
			f.source = len(formats)
			formats = append(formats, f)
		}
	}

	Sort(formats)
	return formats
}

// SubtitleFile is one downloadable subtitle track reference.
type SubtitleFile struct {
	URL string `json:"url"`
	Ext string `json:"ext"`
}

// Subtitles maps subtitle descriptors by lower-cased language code.
// The API serves srt exclusively. A later descriptor for the same
// language overwrites the earlier one.
func (r *Resolver) Subtitles(subs []catalog.Subtitle) map[string][]SubtitleFile {
	out := make(map[string][]SubtitleFile, len(subs))
	for _, sub := range subs {
		lang := strings.ToLower(sub.Lang)
		out[lang] = []SubtitleFile{{URL: sub.URL, Ext: "srt"}}
	}
	return out
}
