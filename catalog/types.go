// Package catalog defines the typed decode targets for cont.ar API resources.
//
// Resources arrive wrapped in the API envelope (handled by the api package);
// the types here describe the shapes found inside the envelope's data field.
package catalog

// Series is the full metadata record for a series, including its nested
// season/episode listing. Fetched fresh per resolution request and never
// mutated after decoding.
type Series struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Year       Number       `json:"year"`
	StoryLarge string       `json:"story_large"`
	Seasons    List[Season] `json:"seasons"`
}

// Season groups episodes. The name field carries the season number; an
// episode's season membership is purely positional within this listing.
type Season struct {
	Name   Number        `json:"name"`
	Videos List[Episode] `json:"videos"`
}

// Episode is the raw episode record as returned by the videos resource,
// or embedded inside a season listing.
type Episode struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Synopsis    string     `json:"synopsis"`
	Serie       string     `json:"serie"`
	SerieName   string     `json:"serie_name"`
	Episode     Number     `json:"episode"`
	Length      Number     `json:"length"`
	PosterImage string     `json:"posterImage"`
	Streams     []Stream   `json:"streams"`
	Subtitles   List[Subtitle] `json:"subtitles"`
}

// Stream is a single adaptive-stream descriptor attached to an episode.
// Known types are "HLS" and "DASH"; anything else is ignored downstream.
type Stream struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Subtitle is a single subtitle descriptor attached to an episode.
type Subtitle struct {
	Lang string `json:"lang"`
	URL  string `json:"url"`
}

// Channel is the info record for a channel listing page.
type Channel struct {
	ID          Number `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListEntry is one row of a channel's series listing or a genre section's
// video listing. Only entries typed "SERIE" are resolvable.
type ListEntry struct {
	Type string `json:"type"`
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// SerieType is the ListEntry type tag of resolvable series references.
const SerieType = "SERIE"

// Section is a genre browse page.
type Section struct {
	Title  string          `json:"title"`
	Videos List[ListEntry] `json:"videos"`
}
