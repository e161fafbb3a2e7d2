package stream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/grafov/m3u8"
)

// HLSExtractor derives formats from an HLS master playlist using the
// m3u8 library. Variants keep mp4 as the requested container and the
// native segment protocol; segment lists stay inside the library.
type HLSExtractor struct {
	HTTP *http.Client
}

func (e *HLSExtractor) Extract(ctx context.Context, manifestURL, itemID string) ([]*Format, error) {
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

	playlist, kind, err := m3u8.DecodeFrom(resp.Body, true)
	if err != nil {
		return nil, fmt.Errorf("parse m3u8: %w", err)
	}

	if kind != m3u8.MASTER {
		// A media playlist carries a single rendition with no variant
		// metadata; hand it over as-is.
		return []*Format{{
			ID:          GroupHLS,
			URL:         manifestURL,
			ManifestURL: manifestURL,
			Ext:         "mp4",
			Protocol:    ProtocolHLS,
		}}, nil
	}

	master := playlist.(*m3u8.MasterPlaylist)
	base, err := url.Parse(manifestURL)
	if err != nil {
		return nil, err
	}

	var formats []*Format
	for _, variant := range master.Variants {
		if variant == nil || variant.URI == "" {
			continue
		}

		f := &Format{
			URL:         resolveURL(base, variant.URI),
			ManifestURL: manifestURL,
			Ext:         "mp4",
			Protocol:    ProtocolHLS,
			Bandwidth:   int(variant.Bandwidth) / 1000,
			Codecs:      variant.Codecs,
			FrameRate:   variant.FrameRate,
		}
		fmt.Sscanf(variant.Resolution, "%dx%d", &f.Width, &f.Height)
		f.ID = formatID(GroupHLS, f.Bandwidth, len(formats))
		formats = append(formats, f)
	}
	return formats, nil
}

// formatID follows the group-bandwidth naming convention players expect,
// falling back to positional naming when the manifest omits bandwidth.
func formatID(group string, bandwidth, position int) string {
	if bandwidth > 0 {
		return fmt.Sprintf("%s-%d", group, bandwidth)
	}
	return fmt.Sprintf("%s-%d", group, position)
}

func resolveURL(base *url.URL, ref string) string {
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(parsed).String()
}
