package resolver

import (
	"fmt"
	"regexp"

	"github.com/contar-cli/contar/util"
)

// uuidRE matches the episode and series identifiers used by the site.
const uuidRE = `[\da-fA-F]{8}-[\da-fA-F]{4}-[\da-fA-F]{4}-[\da-fA-F]{4}-[\da-fA-F]{12}`

var urlPatterns = []struct {
	kind Kind
	re   *regexp.Regexp
}{
	{KindEpisode, regexp.MustCompile(`^https?://(?:www\.)?cont\.ar/watch/(?P<id>` + uuidRE + `)$`)},
	{KindSeries, regexp.MustCompile(`^https?://(?:www\.)?cont\.ar/serie/(?P<id>` + uuidRE + `)$`)},
	{KindChannel, regexp.MustCompile(`^https?://(?:www\.)?cont\.ar/channel/(?P<id>\d+)$`)},
	{KindGenre, regexp.MustCompile(`^https?://(?:www\.)?cont\.ar/browse/genre/(?P<id>\d+)$`)},
}

// ParseURL recognizes a cont.ar page URL and produces the resolution
// request for it. The original URL is carried along as the Referer for
// root resource fetches.
func ParseURL(raw string) (Request, error) {
	for _, pattern := range urlPatterns {
		if groups := util.ReGroups(pattern.re, raw); groups["id"] != "" {
			return Request{Kind: pattern.kind, ID: groups["id"], Referer: raw}, nil
		}
	}
	return Request{}, fmt.Errorf("unsupported URL: %s", raw)
}
