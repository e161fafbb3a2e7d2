package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/contar-cli/contar/api"
	"github.com/contar-cli/contar/catalog"
	"github.com/contar-cli/contar/session"
	"github.com/contar-cli/contar/stream"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeExtractor produces one format per manifest without touching the network.
type fakeExtractor struct {
	protocol string
}

func (f *fakeExtractor) Extract(ctx context.Context, manifestURL, itemID string) ([]*stream.Format, error) {
	return []*stream.Format{{
		ID:          f.protocol + "-" + itemID,
		URL:         manifestURL,
		ManifestURL: manifestURL,
		Ext:         "mp4",
		Protocol:    f.protocol,
	}}, nil
}

// catalogServer is a scripted stand-in for the API: path -> envelope body.
type catalogServer struct {
	*httptest.Server
	serieCalls atomic.Int64
	videoCalls atomic.Int64
}

func newCatalogServer(routes map[string]string) *catalogServer {
	cs := &catalogServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/")
		switch {
		case strings.HasPrefix(path, "serie/"):
			cs.serieCalls.Add(1)
		case strings.HasPrefix(path, "videos/"):
			cs.videoCalls.Add(1)
		}

		body, ok := routes[path]
		if !ok {
			fmt.Fprint(w, `{"error":{"message":"not found"}}`)
			return
		}
		fmt.Fprint(w, body)
	}))
	return cs
}

func newTestResolver(srv *catalogServer) *Resolver {
	client := api.NewWith(srv.URL, srv.Client(), session.New())
	streams := &stream.Resolver{
		HLS:  &fakeExtractor{protocol: stream.ProtocolHLS},
		DASH: &fakeExtractor{protocol: stream.ProtocolDASH},
	}
	return New(client, streams)
}

func episodeJSON(id string, number int, withStreams bool) string {
	streams := "[]"
	if withStreams {
		streams = fmt.Sprintf(`[{"type":"HLS","url":"https://cdn/%s/master.m3u8"}]`, id)
	}
	return fmt.Sprintf(`{
		"id": %q,
		"name": "Episode %s",
		"synopsis": "synopsis of %s",
		"serie": "s1",
		"serie_name": "Vidas de Radio",
		"episode": %d,
		"length": 3185,
		"posterImage": "https://img/%s.jpg",
		"streams": %s,
		"subtitles": {"data": [{"lang": "ES", "url": "https://s/%s.srt"}]}
	}`, id, id, id, number, id, streams, id)
}

func seriesJSON(withStreams bool) string {
	return fmt.Sprintf(`{
		"id": "s1",
		"name": "Vidas de Radio",
		"year": "2018",
		"story_large": "Historias de la radio.",
		"seasons": {"data": [
			{"name": 1, "videos": {"data": [%s, %s]}},
			{"name": 2, "videos": {"data": [%s]}}
		]}
	}`,
		episodeJSON("e1", 1, withStreams),
		episodeJSON("e2", 2, withStreams),
		episodeJSON("e3", 1, withStreams))
}

func envelope(data string) string {
	return fmt.Sprintf(`{"data":%s}`, data)
}

func TestEpisodeMode(t *testing.T) {
	Convey("Episode mode", t, func() {
		ctx := context.Background()
		srv := newCatalogServer(map[string]string{
			"videos/e3": envelope(episodeJSON("e3", 1, true)),
			"serie/s1":  envelope(seriesJSON(true)),
		})
		defer srv.Close()
		r := newTestResolver(srv)

		Convey("Should recover the season number by positional scan", func() {
			item, err := r.Episode(ctx, "e3", "https://www.cont.ar/watch/e3")
			So(err, ShouldBeNil)

			So(item.ID, ShouldEqual, "e3")
			So(item.Title, ShouldEqual, "Episode e3")
			So(item.Series, ShouldEqual, "Vidas de Radio")
			So(item.SeasonNumber, ShouldNotBeNil)
			So(*item.SeasonNumber, ShouldEqual, 2)
			So(item.EpisodeNumber, ShouldNotBeNil)
			So(*item.EpisodeNumber, ShouldEqual, 1)
			So(item.ReleaseYear, ShouldNotBeNil)
			So(*item.ReleaseYear, ShouldEqual, 2018)
			So(item.Duration, ShouldNotBeNil)
			So(*item.Duration, ShouldEqual, 3185)
			So(item.Formats, ShouldHaveLength, 1)
			So(item.Subtitles["es"], ShouldHaveLength, 1)

			So(srv.serieCalls.Load(), ShouldEqual, 1)
		})

		Convey("Should yield a nil season number when the episode is in no season", func() {
			srv2 := newCatalogServer(map[string]string{
				"videos/ghost": envelope(`{"id":"ghost","name":"Ghost","serie":"s1","streams":[],"subtitles":{"data":[]}}`),
				"serie/s1":     envelope(seriesJSON(true)),
			})
			defer srv2.Close()
			r2 := newTestResolver(srv2)

			item, err := r2.Episode(ctx, "ghost", "")
			So(err, ShouldBeNil)
			So(item.SeasonNumber, ShouldBeNil)
			So(item.Formats, ShouldBeEmpty)
		})
	})
}

func TestSeriesMode(t *testing.T) {
	Convey("Series mode", t, func() {
		ctx := context.Background()

		Convey("Should resolve all episodes in source order with one series fetch", func() {
			srv := newCatalogServer(map[string]string{
				"serie/s1": envelope(seriesJSON(true)),
			})
			defer srv.Close()
			r := newTestResolver(srv)

			playlist, err := r.Series(ctx, "s1", "https://www.cont.ar/serie/s1")
			So(err, ShouldBeNil)

			So(playlist.Title, ShouldEqual, "Vidas de Radio")
			So(playlist.Description, ShouldEqual, "Historias de la radio.")
			So(playlist.Entries, ShouldHaveLength, 3)

			ids := []string{"e1", "e2", "e3"}
			seasons := []int{1, 1, 2}
			for i, entry := range playlist.Entries {
				So(entry.IsDeferred(), ShouldBeFalse)
				So(entry.Item.ID, ShouldEqual, ids[i])
				So(entry.Item.SeasonNumber, ShouldNotBeNil)
				So(*entry.Item.SeasonNumber, ShouldEqual, seasons[i])
			}

			// Season numbers came from the traversal context: the series
			// was fetched exactly once and no episode was refetched.
			So(srv.serieCalls.Load(), ShouldEqual, 1)
			So(srv.videoCalls.Load(), ShouldEqual, 0)
		})

		Convey("Should refetch stream-less listings and abort wholly on a failed child fetch", func() {
			routes := map[string]string{
				"serie/s5": envelope(`{
					"id": "s5", "name": "Cinco", "year": 2020, "story_large": "x",
					"seasons": {"data": [{"name": 1, "videos": {"data": [
						{"id":"c1"},{"id":"c2"},{"id":"c3"},{"id":"c4"},{"id":"c5"}
					]}}]}
				}`),
			}
			for _, id := range []string{"c1", "c2", "c4", "c5"} {
				routes["videos/"+id] = envelope(episodeJSON(id, 1, true))
			}
			routes["videos/c3"] = `{"error":{"message":"stream gone"}}`

			srv := newCatalogServer(routes)
			defer srv.Close()
			r := newTestResolver(srv)

			playlist, err := r.Series(ctx, "s5", "")
			So(playlist, ShouldBeNil)

			var apiErr *api.APIError
			So(errors.As(err, &apiErr), ShouldBeTrue)
			So(apiErr.Message, ShouldEqual, "stream gone")

			var callErr *api.CallError
			So(errors.As(err, &callErr), ShouldBeTrue)
			So(callErr.ID, ShouldEqual, "c3")
		})

		Convey("Should fail wholly when the series fetch fails", func() {
			srv := newCatalogServer(map[string]string{})
			defer srv.Close()
			r := newTestResolver(srv)

			playlist, err := r.Series(ctx, "missing", "")
			So(playlist, ShouldBeNil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestChannelMode(t *testing.T) {
	Convey("Channel mode", t, func() {
		ctx := context.Background()
		srv := newCatalogServer(map[string]string{
			"channel/info/242": envelope(`{"id":242,"name":"PAKAPAKA","description":"Canal infantil"}`),
			"channel/series/242": envelope(`[
				{"type":"SERIE","uuid":"u1","name":"Matilde"},
				{"type":"MOVIE","uuid":"u2","name":"Pelicula"},
				{"type":"SERIE","uuid":"u3","name":"Zamba"}
			]`),
		})
		defer srv.Close()
		r := newTestResolver(srv)

		Convey("Should emit lazy references for SERIE entries only", func() {
			playlist, err := r.Channel(ctx, "242", "https://www.cont.ar/channel/242")
			So(err, ShouldBeNil)

			So(playlist.Title, ShouldEqual, "PAKAPAKA")
			So(playlist.Description, ShouldEqual, "Canal infantil")
			So(playlist.Entries, ShouldHaveLength, 2)

			for _, entry := range playlist.Entries {
				So(entry.IsDeferred(), ShouldBeTrue)
				So(entry.Ref.Kind, ShouldEqual, KindSeries)
			}
			So(playlist.Entries[0].Ref.ID, ShouldEqual, "u1")
			So(playlist.Entries[0].Ref.Title, ShouldEqual, "Matilde")
			So(playlist.Entries[0].Ref.URL, ShouldEqual, "https://www.cont.ar/serie/u1")
			So(playlist.Entries[1].Ref.ID, ShouldEqual, "u3")
		})
	})
}

func TestGenreMode(t *testing.T) {
	Convey("Genre mode", t, func() {
		ctx := context.Background()
		srv := newCatalogServer(map[string]string{
			"full/section/46": envelope(`{
				"title": "Infantil",
				"videos": {"data": [
					{"type":"SERIE","uuid":"u1","name":"Matilde"},
					{"type":"BANNER","uuid":"u2","name":"Promo"}
				]}
			}`),
		})
		defer srv.Close()
		r := newTestResolver(srv)

		Convey("Should title the playlist from the section and skip non-series", func() {
			playlist, err := r.Genre(ctx, "46", "")
			So(err, ShouldBeNil)

			So(playlist.Title, ShouldEqual, "Infantil")
			So(playlist.Description, ShouldBeEmpty)
			So(playlist.Entries, ShouldHaveLength, 1)
			So(playlist.Entries[0].Ref.ID, ShouldEqual, "u1")
		})
	})
}

func TestResolveDispatch(t *testing.T) {
	Convey("Resolve", t, func() {
		ctx := context.Background()
		srv := newCatalogServer(map[string]string{
			"serie/s1": envelope(seriesJSON(true)),
		})
		defer srv.Close()
		r := newTestResolver(srv)

		Convey("Should dispatch series requests to a playlist result", func() {
			result, err := r.Resolve(ctx, Request{Kind: KindSeries, ID: "s1"})
			So(err, ShouldBeNil)
			So(result.Item, ShouldBeNil)
			So(result.Playlist, ShouldNotBeNil)
		})

		Convey("Should reject unknown kinds", func() {
			_, err := r.Resolve(ctx, Request{Kind: "radio", ID: "1"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSeasonNumberOf(t *testing.T) {
	Convey("seasonNumberOf", t, func() {
		series := &catalog.Series{}
		series.Seasons.Data = []catalog.Season{
			{Name: catalog.NumberOf(1)},
			{Name: catalog.NumberOf(2)},
		}
		series.Seasons.Data[0].Videos.Data = []catalog.Episode{{ID: "e1"}, {ID: "e2"}}
		series.Seasons.Data[1].Videos.Data = []catalog.Episode{{ID: "e3"}}

		Convey("Should return the containing season's name", func() {
			n, ok := seasonNumberOf(series, "e3").Int()
			So(ok, ShouldBeTrue)
			So(n, ShouldEqual, 2)
		})

		Convey("Should prefer the first structural match", func() {
			series.Seasons.Data[1].Videos.Data = append(series.Seasons.Data[1].Videos.Data, catalog.Episode{ID: "e1"})
			n, _ := seasonNumberOf(series, "e1").Int()
			So(n, ShouldEqual, 1)
		})

		Convey("Should be absent for an unknown episode", func() {
			_, ok := seasonNumberOf(series, "nope").Int()
			So(ok, ShouldBeFalse)
		})
	})
}

func TestParseURL(t *testing.T) {
	Convey("ParseURL", t, func() {
		Convey("Should recognize the four page kinds", func() {
			cases := []struct {
				url  string
				kind Kind
				id   string
			}{
				{"https://www.cont.ar/watch/d2815f05-f52f-499f-90d0-5671e9e71ce8", KindEpisode, "d2815f05-f52f-499f-90d0-5671e9e71ce8"},
				{"https://cont.ar/serie/353247d5-da97-4cb6-8571-c4fbab28c643", KindSeries, "353247d5-da97-4cb6-8571-c4fbab28c643"},
				{"https://www.cont.ar/channel/242", KindChannel, "242"},
				{"https://www.cont.ar/browse/genre/46", KindGenre, "46"},
			}

			for _, c := range cases {
				req, err := ParseURL(c.url)
				So(err, ShouldBeNil)
				So(req.Kind, ShouldEqual, c.kind)
				So(req.ID, ShouldEqual, c.id)
				So(req.Referer, ShouldEqual, c.url)
			}
		})

		Convey("Should reject unrelated URLs", func() {
			_, err := ParseURL("https://example.com/watch/d2815f05-f52f-499f-90d0-5671e9e71ce8")
			So(err, ShouldNotBeNil)

			_, err = ParseURL("https://www.cont.ar/watch/not-a-uuid")
			So(err, ShouldNotBeNil)
		})
	})
}
