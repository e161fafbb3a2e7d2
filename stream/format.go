// Package stream converts raw adaptive-stream descriptors into ranked,
// playable format records and subtitle maps.
//
// Manifest parsing itself is delegated to the m3u8 and go-dash libraries;
// this package only models the resulting variants and their ordering.
package stream

import "sort"

// Delivery protocols understood by downstream players.
const (
	ProtocolHLS  = "m3u8_native"
	ProtocolDASH = "http_dash_segments"
)

// Format group identifiers, one per manifest family.
const (
	GroupHLS  = "hls"
	GroupDASH = "dash"
)

// Format is one concrete playable variant derived from an adaptive-stream
// manifest.
type Format struct {
	ID          string  `json:"format_id"`
	URL         string  `json:"url"`
	ManifestURL string  `json:"manifest_url"`
	Ext         string  `json:"ext"`
	Protocol    string  `json:"protocol"`
	Width       int     `json:"width,omitempty"`
	Height      int     `json:"height,omitempty"`
	Bandwidth   int     `json:"tbr,omitempty"`
	Codecs      string  `json:"codecs,omitempty"`
	FrameRate   float64 `json:"fps,omitempty"`

	// source preserves the order in which descriptors and variants were
	// encountered, the final tie-break of the ranking.
	source int
}

// Sort orders formats ascending by preference, worst first, so that the
// last element is the best default pick. The order is total and stable:
// height, then bandwidth, then protocol (HLS preferred over DASH on
// ties), then source order.
func Sort(formats []*Format) {
	rank := func(protocol string) int {
		if protocol == ProtocolHLS {
			return 1
		}
		return 0
	}

	sort.SliceStable(formats, func(i, j int) bool {
		a, b := formats[i], formats[j]
		if a.Height != b.Height {
			return a.Height < b.Height
		}
		if a.Bandwidth != b.Bandwidth {
			return a.Bandwidth < b.Bandwidth
		}
		if rank(a.Protocol) != rank(b.Protocol) {
			return rank(a.Protocol) < rank(b.Protocol)
		}
		return a.source < b.source
	})
}
