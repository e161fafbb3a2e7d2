package session

import (
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSession(t *testing.T) {
	Convey("Session", t, func() {
		Convey("Should start without a token", func() {
			s := New()
			token, ok := s.Token()
			So(ok, ShouldBeFalse)
			So(token, ShouldBeEmpty)
		})

		Convey("Should expose the token after SetToken", func() {
			s := New()
			s.SetToken("abc123")
			token, ok := s.Token()
			So(ok, ShouldBeTrue)
			So(token, ShouldEqual, "abc123")
		})

		Convey("Should be safe for concurrent readers", func() {
			s := New()
			s.SetToken("abc123")

			tokens := make([]string, 16)
			var wg sync.WaitGroup
			for i := range tokens {
				i := i
				wg.Add(1)
				go func() {
					defer wg.Done()
					tokens[i], _ = s.Token()
				}()
			}
			wg.Wait()

			for _, token := range tokens {
				So(token, ShouldEqual, "abc123")
			}
		})
	})
}
