package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/contar-cli/contar/api"
	"github.com/contar-cli/contar/catalog"
	"github.com/contar-cli/contar/stream"
)

// PlayableItem is the resolved output unit handed to a downstream
// player or downloader. Formats are ranked worst to best; the last one
// is the default pick.
type PlayableItem struct {
	ID            string                           `json:"id"`
	Title         string                           `json:"title"`
	Description   string                           `json:"description"`
	Series        string                           `json:"series"`
	Episode       string                           `json:"episode"`
	EpisodeNumber *int                             `json:"episode_number"`
	SeasonNumber  *int                             `json:"season_number"`
	SeasonID      string                           `json:"season_id"`
	EpisodeID     string                           `json:"episode_id"`
	Duration      *int                             `json:"duration"`
	Thumbnail     string                           `json:"thumbnail"`
	ReleaseYear   *int                             `json:"release_year"`
	Formats       []*stream.Format                 `json:"formats"`
	Subtitles     map[string][]stream.SubtitleFile `json:"subtitles"`
}

// Episode resolves a single episode by id. Without an enclosing series
// traversal, the parent series is fetched to recover the season number
// and release year.
func (r *Resolver) Episode(ctx context.Context, id, referer string) (*PlayableItem, error) {
	ep, err := r.episodeInfo(ctx, id, refererHeader(referer))
	if err != nil {
		return nil, err
	}
	return r.buildItem(ctx, ep, buildContext{})
}

func (r *Resolver) episodeInfo(ctx context.Context, id string, headers http.Header) (*catalog.Episode, error) {
	data, err := r.api.Call(ctx, "videos/"+id, id, headers, "Downloading episode metadata")
	if err != nil {
		return nil, err
	}

	var ep catalog.Episode
	if err := json.Unmarshal(data, &ep); err != nil {
		return nil, &api.CallError{Path: "videos/" + id, ID: id, Err: fmt.Errorf("%w: %v", api.ErrMalformedResponse, err)}
	}
	return &ep, nil
}

// buildContext carries what a series-mode traversal already knows about
// the episode being built, so the parent series is fetched at most once.
type buildContext struct {
	series       *catalog.Series
	seasonNumber catalog.Number
}

// buildItem assembles a PlayableItem from a raw episode record.
func (r *Resolver) buildItem(ctx context.Context, ep *catalog.Episode, bc buildContext) (*PlayableItem, error) {
	formats := r.streams.Formats(ctx, ep.Streams, ep.ID)
	subtitles := r.streams.Subtitles(ep.Subtitles.Data)

	series := bc.series
	if series == nil {
		fetched, err := r.seriesInfo(ctx, ep.Serie, nil)
		if err != nil {
			return nil, err
		}
		series = fetched
	}

	seasonNumber := bc.seasonNumber
	if _, known := seasonNumber.Int(); !known {
		seasonNumber = seasonNumberOf(series, ep.ID)
	}

	return &PlayableItem{
		ID:            ep.ID,
		Title:         ep.Name,
		Description:   ep.Synopsis,
		Series:        ep.SerieName,
		Episode:       ep.Name,
		EpisodeNumber: ep.Episode.Ptr(),
		SeasonNumber:  seasonNumber.Ptr(),
		SeasonID:      ep.Serie,
		EpisodeID:     ep.ID,
		Duration:      ep.Length.Ptr(),
		Thumbnail:     ep.PosterImage,
		ReleaseYear:   series.Year.Ptr(),
		Formats:       formats,
		Subtitles:     subtitles,
	}, nil
}

// seasonNumberOf scans the series' season listing in order and returns
// the name of the first season structurally containing the episode.
// Membership is positional; episodes carry no season field of their own.
// Absence is not an error.
func seasonNumberOf(series *catalog.Series, episodeID string) catalog.Number {
	for _, season := range series.Seasons.Data {
		for _, ep := range season.Videos.Data {
			if ep.ID == episodeID {
				return season.Name
			}
		}
	}
	return catalog.Number{}
}

func (r *Resolver) seriesInfo(ctx context.Context, id string, headers http.Header) (*catalog.Series, error) {
	data, err := r.api.Call(ctx, "serie/"+id, id, headers, "Downloading series metadata")
	if err != nil {
		return nil, err
	}

	var series catalog.Series
	if err := json.Unmarshal(data, &series); err != nil {
		return nil, &api.CallError{Path: "serie/" + id, ID: id, Err: fmt.Errorf("%w: %v", api.ErrMalformedResponse, err)}
	}
	return &series, nil
}
