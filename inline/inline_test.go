package inline

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/contar-cli/contar/resolver"
	"github.com/contar-cli/contar/stream"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func rankedFormats() []*stream.Format {
	return []*stream.Format{
		{ID: "hls-400", URL: "https://cdn/worst.m3u8", Protocol: stream.ProtocolHLS, Height: 360},
		{ID: "hls-1200", URL: "https://cdn/mid.m3u8", Protocol: stream.ProtocolHLS, Height: 480},
		{ID: "hls-4700", URL: "https://cdn/best.m3u8", Protocol: stream.ProtocolHLS, Height: 1080},
	}
}

func TestParseFormatPicker(t *testing.T) {
	Convey("ParseFormatPicker", t, func() {
		formats := rankedFormats()

		Convey("best picks the last ranked format", func() {
			pick, err := ParseFormatPicker("best")
			So(err, ShouldBeNil)
			So(pick(formats).ID, ShouldEqual, "hls-4700")
		})

		Convey("worst picks the first ranked format", func() {
			pick, err := ParseFormatPicker("worst")
			So(err, ShouldBeNil)
			So(pick(formats).ID, ShouldEqual, "hls-400")
		})

		Convey("an index picks by position, clamped to the list", func() {
			pick, err := ParseFormatPicker("1")
			So(err, ShouldBeNil)
			So(pick(formats).ID, ShouldEqual, "hls-1200")

			pick, err = ParseFormatPicker("99")
			So(err, ShouldBeNil)
			So(pick(formats).ID, ShouldEqual, "hls-4700")
		})

		Convey("pickers tolerate empty lists", func() {
			for _, selector := range []string{"best", "worst", "0"} {
				pick, err := ParseFormatPicker(selector)
				So(err, ShouldBeNil)
				So(pick(nil), ShouldBeNil)
			}
		})

		Convey("unknown selectors are rejected", func() {
			_, err := ParseFormatPicker("shiny")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestWrite(t *testing.T) {
	Convey("Write", t, func() {
		item := &resolver.PlayableItem{
			ID:      "e1",
			Title:   "Episode 1",
			Formats: rankedFormats(),
			Subtitles: map[string][]stream.SubtitleFile{
				"es": {{URL: "https://s/e1.srt", Ext: "srt"}},
			},
		}

		Convey("plain mode prints every format URL", func() {
			var out bytes.Buffer
			err := Write(&Options{Out: &out}, &resolver.Result{Item: item})
			So(err, ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			So(lines, ShouldResemble, []string{
				"https://cdn/worst.m3u8",
				"https://cdn/mid.m3u8",
				"https://cdn/best.m3u8",
			})
		})

		Convey("a format picker narrows the output to one URL", func() {
			pick, _ := ParseFormatPicker("best")

			var out bytes.Buffer
			err := Write(&Options{Out: &out, FormatPicker: mo.Some(pick)}, &resolver.Result{Item: item})
			So(err, ShouldBeNil)
			So(strings.TrimSpace(out.String()), ShouldEqual, "https://cdn/best.m3u8")
		})

		Convey("subtitle URLs are appended when requested", func() {
			var out bytes.Buffer
			err := Write(&Options{Out: &out, Subtitles: true}, &resolver.Result{Item: item})
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "https://s/e1.srt")
		})

		Convey("deferred playlist entries print their page URLs", func() {
			playlist := &resolver.Playlist{
				ID:    "242",
				Title: "PAKAPAKA",
				Entries: []resolver.Entry{
					resolver.Deferred(&resolver.SeriesRef{ID: "u1", URL: "https://www.cont.ar/serie/u1"}),
					resolver.Deferred(&resolver.SeriesRef{ID: "u3", URL: "https://www.cont.ar/serie/u3"}),
				},
			}

			var out bytes.Buffer
			err := Write(&Options{Out: &out}, &resolver.Result{Playlist: playlist})
			So(err, ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			So(lines, ShouldResemble, []string{
				"https://www.cont.ar/serie/u1",
				"https://www.cont.ar/serie/u3",
			})
		})

		Convey("json mode wraps the result with the requested URL", func() {
			var out bytes.Buffer
			err := Write(&Options{
				Out:  &out,
				URL:  "https://www.cont.ar/watch/e1",
				Json: true,
			}, &resolver.Result{Item: item})
			So(err, ShouldBeNil)

			var decoded Output
			So(json.Unmarshal(out.Bytes(), &decoded), ShouldBeNil)
			So(decoded.URL, ShouldEqual, "https://www.cont.ar/watch/e1")
			So(decoded.Item, ShouldNotBeNil)
			So(decoded.Item.ID, ShouldEqual, "e1")
			So(decoded.Playlist, ShouldBeNil)
		})
	})
}
