package stream

import "context"

// Extractor turns one adaptive-stream manifest into concrete formats.
// Implementations fetch and parse the manifest; they do not download media.
type Extractor interface {
	Extract(ctx context.Context, manifestURL, itemID string) ([]*Format, error)
}
