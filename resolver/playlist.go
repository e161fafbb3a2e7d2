package resolver

import "github.com/contar-cli/contar/constant"

// Playlist is an ordered collection of resolved items or lazy series
// references. Entry order matches the API's returned order.
type Playlist struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Entries     []Entry `json:"entries"`
}

// Entry is a tagged variant: exactly one of Item or Ref is set.
// Channel and genre playlists defer series resolution to their consumer;
// series playlists carry fully resolved items.
type Entry struct {
	Item *PlayableItem `json:"item,omitempty"`
	Ref  *SeriesRef    `json:"ref,omitempty"`
}

// IsDeferred reports whether the entry is an unresolved reference.
func (e Entry) IsDeferred() bool {
	return e.Ref != nil
}

// Resolved wraps a fully built item as a playlist entry.
func Resolved(item *PlayableItem) Entry {
	return Entry{Item: item}
}

// Deferred wraps a series reference as a playlist entry.
func Deferred(ref *SeriesRef) Entry {
	return Entry{Ref: ref}
}

// SeriesRef is a lazy reference to a series: enough to identify and
// display it, nothing more has been fetched.
type SeriesRef struct {
	Kind  Kind   `json:"kind"`
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// newSeriesRef builds the lazy reference for a listed series.
func newSeriesRef(id, title string) *SeriesRef {
	return &SeriesRef{
		Kind:  KindSeries,
		ID:    id,
		Title: title,
		URL:   constant.SiteBase + "/serie/" + id,
	}
}
