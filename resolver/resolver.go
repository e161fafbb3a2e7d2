// Package resolver walks the cont.ar resource hierarchy and assembles
// playable items and playlists out of it.
//
// A resolution request names a root resource by kind and id. Episode
// requests yield a single fully-populated item; series requests yield an
// eagerly resolved playlist; channel and genre requests yield playlists
// of lazy series references left for the consumer to resolve.
package resolver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/contar-cli/contar/api"
	"github.com/contar-cli/contar/key"
	"github.com/contar-cli/contar/stream"
	"github.com/spf13/viper"
)

// Kind discriminates the four recognized root resource kinds.
type Kind string

const (
	KindEpisode Kind = "episode"
	KindSeries  Kind = "series"
	KindChannel Kind = "channel"
	KindGenre   Kind = "genre"
)

// Request identifies one root resource to resolve. Referer, when set, is
// forwarded on root resource fetches.
type Request struct {
	Kind    Kind
	ID      string
	Referer string
}

// Result carries the outcome of a resolution: exactly one field is set.
type Result struct {
	Item     *PlayableItem `json:"item,omitempty"`
	Playlist *Playlist     `json:"playlist,omitempty"`
}

// Resolver resolves catalog hierarchies through an authenticated API
// client. Each call is independent; nothing is cached between requests.
type Resolver struct {
	api         *api.Client
	streams     *stream.Resolver
	concurrency int
}

// New returns a resolver with the configured series-mode concurrency.
func New(client *api.Client, streams *stream.Resolver) *Resolver {
	concurrency := viper.GetInt(key.ResolverConcurrency)
	if concurrency < 1 {
		concurrency = 1
	}
	return &Resolver{api: client, streams: streams, concurrency: concurrency}
}

// Resolve dispatches the request to the mode matching its kind.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Result, error) {
	switch req.Kind {
	case KindEpisode:
		item, err := r.Episode(ctx, req.ID, req.Referer)
		if err != nil {
			return nil, err
		}
		return &Result{Item: item}, nil
	case KindSeries:
		playlist, err := r.Series(ctx, req.ID, req.Referer)
		if err != nil {
			return nil, err
		}
		return &Result{Playlist: playlist}, nil
	case KindChannel:
		playlist, err := r.Channel(ctx, req.ID, req.Referer)
		if err != nil {
			return nil, err
		}
		return &Result{Playlist: playlist}, nil
	case KindGenre:
		playlist, err := r.Genre(ctx, req.ID, req.Referer)
		if err != nil {
			return nil, err
		}
		return &Result{Playlist: playlist}, nil
	default:
		return nil, fmt.Errorf("unknown resource kind %q", req.Kind)
	}
}

func refererHeader(referer string) http.Header {
	if referer == "" {
		return nil
	}
	headers := http.Header{}
	headers.Set("Referer", referer)
	return headers
}
