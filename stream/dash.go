package stream

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/zencoder/go-dash/v3/mpd"
)

// DASHExtractor derives formats from a DASH MPD manifest using the
// go-dash library. One format is emitted per representation; the media
// URL stays the manifest itself, segment addressing is the player's job.
type DASHExtractor struct {
	HTTP *http.Client
}

func (e *DASHExtractor) Extract(ctx context.Context, manifestURL, itemID string) ([]*Format, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, manifestURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := e.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("manifest fetch: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	manifest, err := mpd.ReadFromString(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse mpd: %w", err)
	}

	var formats []*Format
	for _, period := range manifest.Periods {
		for _, set := range period.AdaptationSets {
			if set == nil {
				continue
			}
			for _, rep := range set.Representations {
				if rep == nil {
					continue
				}

				f := &Format{
					URL:         manifestURL,
					ManifestURL: manifestURL,
					Ext:         "mp4",
					Protocol:    ProtocolDASH,
				}
				if rep.Bandwidth != nil {
					f.Bandwidth = int(*rep.Bandwidth) / 1000
				}
				if rep.Width != nil {
					f.Width = int(*rep.Width)
				}
				if rep.Height != nil {
					f.Height = int(*rep.Height)
				}
				if rep.Codecs != nil {
					f.Codecs = *rep.Codecs
				}

				if rep.ID != nil && *rep.ID != "" {
					f.ID = fmt.Sprintf("%s-%s", GroupDASH, *rep.ID)
				} else {
					f.ID = formatID(GroupDASH, f.Bandwidth, len(formats))
				}
				formats = append(formats, f)
			}
		}
	}
	return formats, nil
}
