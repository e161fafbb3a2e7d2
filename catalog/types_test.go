package catalog

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNumber(t *testing.T) {
	Convey("Number", t, func() {
		decode := func(raw string) Number {
			var n Number
			So(json.Unmarshal([]byte(raw), &n), ShouldBeNil)
			return n
		}

		Convey("Should decode a JSON number", func() {
			v, ok := decode(`3`).Int()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 3)
		})

		Convey("Should decode a numeric string", func() {
			v, ok := decode(`"2016"`).Int()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 2016)
		})

		Convey("Should truncate a float", func() {
			v, ok := decode(`648.9`).Int()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 648)
		})

		Convey("Should treat null as absent", func() {
			_, ok := decode(`null`).Int()
			So(ok, ShouldBeFalse)
			So(decode(`null`).Ptr(), ShouldBeNil)
		})

		Convey("Should treat non-numeric values as absent, not an error", func() {
			_, ok := decode(`"especial"`).Int()
			So(ok, ShouldBeFalse)
		})

		Convey("Should round-trip through JSON", func() {
			out, err := json.Marshal(NumberOf(7))
			So(err, ShouldBeNil)
			So(string(out), ShouldEqual, "7")

			var absent Number
			out, err = json.Marshal(absent)
			So(err, ShouldBeNil)
			So(string(out), ShouldEqual, "null")
		})
	})
}

func TestList(t *testing.T) {
	Convey("List", t, func() {
		Convey("Should decode the wrapped data shape", func() {
			var l List[Subtitle]
			err := json.Unmarshal([]byte(`{"data":[{"lang":"ES","url":"https://s/es.srt"}]}`), &l)
			So(err, ShouldBeNil)
			So(l.Data, ShouldHaveLength, 1)
			So(l.Data[0].Lang, ShouldEqual, "ES")
		})

		Convey("Should decode a bare array", func() {
			var l List[ListEntry]
			err := json.Unmarshal([]byte(`[{"type":"SERIE","uuid":"u1","name":"n1"}]`), &l)
			So(err, ShouldBeNil)
			So(l.Data, ShouldHaveLength, 1)
		})

		Convey("Should decode null as empty", func() {
			var l List[Season]
			So(json.Unmarshal([]byte(`null`), &l), ShouldBeNil)
			So(l.Data, ShouldBeEmpty)
		})
	})
}

func TestSeriesDecoding(t *testing.T) {
	Convey("Series", t, func() {
		raw := `{
			"id": "353247d5-da97-4cb6-8571-c4fbab28c643",
			"name": "Vidas de Radio",
			"year": "2018",
			"story_large": "Historias de grandes personalidades de la radio.",
			"seasons": {"data": [
				{"name": 1, "videos": {"data": [
					{"id": "e1", "name": "Julio Lagos", "serie_name": "Vidas de Radio", "episode": 11, "length": "3185"}
				]}}
			]}
		}`

		var s Series
		So(json.Unmarshal([]byte(raw), &s), ShouldBeNil)

		year, _ := s.Year.Int()
		So(year, ShouldEqual, 2018)
		So(s.Seasons.Data, ShouldHaveLength, 1)

		season := s.Seasons.Data[0]
		So(season.Name.String(), ShouldEqual, "1")
		So(season.Videos.Data, ShouldHaveLength, 1)

		ep := season.Videos.Data[0]
		num, _ := ep.Episode.Int()
		So(num, ShouldEqual, 11)
		length, _ := ep.Length.Int()
		So(length, ShouldEqual, 3185)
	})
}
