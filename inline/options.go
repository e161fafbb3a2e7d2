// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/contar-cli/contar/stream"
	"github.com/contar-cli/contar/util"
	"github.com/samber/mo"
)

// FormatPicker narrows a ranked format list down to a single format.
// Input lists are ordered worst to best; a nil result means nothing matched.
type FormatPicker func([]*stream.Format) *stream.Format

type Options struct {
	Out          io.Writer
	URL          string
	Json         bool
	FormatPicker mo.Option[FormatPicker]
	Subtitles    bool
}

// ParseFormatPicker parses a format selector description.
// Format: "best", "worst", or a zero-based index into the ranked list.
func ParseFormatPicker(description string) (FormatPicker, error) {
	switch description {
	case "best":
		return func(formats []*stream.Format) *stream.Format {
			if len(formats) == 0 {
				return nil
			}
			return formats[len(formats)-1]
		}, nil
	case "worst":
		return func(formats []*stream.Format) *stream.Format {
			if len(formats) == 0 {
				return nil
			}
			return formats[0]
		}, nil
	}

	idx, err := strconv.ParseUint(description, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("unknown format selector: %s", description)
	}

	return func(formats []*stream.Format) *stream.Format {
		if len(formats) == 0 {
			return nil
		}
		i := util.Min(idx, uint64(len(formats)-1))
		return formats[i]
	}, nil
}
