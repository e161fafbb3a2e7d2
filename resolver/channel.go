package resolver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/contar-cli/contar/api"
	"github.com/contar-cli/contar/catalog"
)

// Channel resolves a channel listing into a playlist of lazy series
// references. Listed resources that are not series are skipped.
func (r *Resolver) Channel(ctx context.Context, id, referer string) (*Playlist, error) {
	headers := refererHeader(referer)

	infoData, err := r.api.Call(ctx, "channel/info/"+id, id, headers, "Downloading channel info")
	if err != nil {
		return nil, err
	}
	var info catalog.Channel
	if err := json.Unmarshal(infoData, &info); err != nil {
		return nil, &api.CallError{Path: "channel/info/" + id, ID: id, Err: fmt.Errorf("%w: %v", api.ErrMalformedResponse, err)}
	}

	listData, err := r.api.Call(ctx, "channel/series/"+id, id, headers, "Downloading channel series list")
	if err != nil {
		return nil, err
	}
	var listing catalog.List[catalog.ListEntry]
	if err := json.Unmarshal(listData, &listing); err != nil {
		return nil, &api.CallError{Path: "channel/series/" + id, ID: id, Err: fmt.Errorf("%w: %v", api.ErrMalformedResponse, err)}
	}

	return &Playlist{
		ID:          id,
		Title:       info.Name,
		Description: info.Description,
		Entries:     deferredEntries(listing.Data),
	}, nil
}

// Genre resolves a genre browse section into a playlist of lazy series
// references. The playlist title is the section title; sections carry no
// description.
func (r *Resolver) Genre(ctx context.Context, id, referer string) (*Playlist, error) {
	data, err := r.api.Call(ctx, "full/section/"+id, id, refererHeader(referer), "Downloading genre section")
	if err != nil {
		return nil, err
	}

	var section catalog.Section
	if err := json.Unmarshal(data, &section); err != nil {
		return nil, &api.CallError{Path: "full/section/" + id, ID: id, Err: fmt.Errorf("%w: %v", api.ErrMalformedResponse, err)}
	}

	return &Playlist{
		ID:      id,
		Title:   section.Title,
		Entries: deferredEntries(section.Videos.Data),
	}, nil
}

// deferredEntries emits one lazy reference per listed series entry,
// preserving listing order. Entries of any other type are skipped.
func deferredEntries(listing []catalog.ListEntry) []Entry {
	var entries []Entry
	for _, entry := range listing {
		if entry.Type != catalog.SerieType {
			continue
		}
		entries = append(entries, Deferred(newSeriesRef(entry.UUID, entry.Name)))
	}
	return entries
}
