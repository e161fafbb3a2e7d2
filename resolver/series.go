package resolver

import (
	"context"

	"github.com/contar-cli/contar/catalog"
	"github.com/contar-cli/contar/log"
	"github.com/contar-cli/contar/util"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Series resolves every episode of a series into one playlist.
//
// The series is fetched once; season numbers come from the traversal
// context, never from a refetch. Episodes keep the API's season/episode
// order. Stream manifests of sibling episodes are resolved concurrently,
// bounded by the configured concurrency, with results written back by
// position so the emitted order is the source order. A fatal failure on
// any episode cancels the remaining work and fails the whole resolution;
// partial playlists are never returned.
func (r *Resolver) Series(ctx context.Context, id, referer string) (*Playlist, error) {
	series, err := r.seriesInfo(ctx, id, refererHeader(referer))
	if err != nil {
		return nil, err
	}

	type slot struct {
		episode catalog.Episode
		season  catalog.Number
	}

	var slots []slot
	for _, season := range series.Seasons.Data {
		for _, episode := range season.Videos.Data {
			slots = append(slots, slot{episode: episode, season: season.Name})
		}
	}

	log.Infof("resolving %s of %q", util.Quantify(len(slots), "episode", "episodes"), series.Name)

	items := make([]*PlayableItem, len(slots))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.concurrency)

	for i, s := range slots {
		i, s := i, s
		group.Go(func() error {
			episode := s.episode
			if len(episode.Streams) == 0 && len(episode.Subtitles.Data) == 0 {
				// Season listings occasionally elide stream descriptors;
				// refetch the full record before building. A failed
				// refetch fails the whole series resolution.
				full, err := r.episodeInfo(groupCtx, episode.ID, nil)
				if err != nil {
					return err
				}
				episode = *full
			}

			item, err := r.buildItem(groupCtx, &episode, buildContext{
				series:       series,
				seasonNumber: s.season,
			})
			if err != nil {
				return err
			}
			items[i] = item
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &Playlist{
		ID:          id,
		Title:       series.Name,
		Description: series.StoryLarge,
		Entries:     lo.Map(items, func(item *PlayableItem, _ int) Entry { return Resolved(item) }),
	}, nil
}
