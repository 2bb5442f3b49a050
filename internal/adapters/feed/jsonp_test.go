package feed

import (
	"errors"
	"os"
	"testing"

	"github.com/okian/pbp/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestStripEnvelope(t *testing.T) {
	Convey("Given JSONP-wrapped bodies", t, func() {
		Convey("The standard callback envelope is stripped", func() {
			So(stripEnvelope(`angular.callbacks._8([{"event":"shot"}]);`),
				ShouldEqual, `[{"event":"shot"}]`)
		})

		Convey("The numeric suffix may vary", func() {
			So(stripEnvelope(`angular.callbacks._123({"a":1});`),
				ShouldEqual, `{"a":1}`)
		})

		Convey("Leading whitespace and trailing newlines are tolerated", func() {
			So(stripEnvelope("  angular.callbacks._8([1,2]);\n"), ShouldEqual, `[1,2]`)
		})

		Convey("Bare JSON passes through untouched", func() {
			So(stripEnvelope(`[{"event":"goal"}]`), ShouldEqual, `[{"event":"goal"}]`)
		})
	})
}

func TestDecodeEvents(t *testing.T) {
	Convey("Given raw play-by-play bodies", t, func() {
		Convey("A wrapped event array decodes into records", func() {
			records, err := decodeEvents(`angular.callbacks._8([{"event":"shot","details":{"time":"1:30"}}]);`)
			So(err, ShouldBeNil)
			So(len(records), ShouldEqual, 1)
			So(records[0]["event"], ShouldEqual, "shot")
		})

		Convey("Invalid JSON after stripping is a decode error", func() {
			_, err := decodeEvents(`angular.callbacks._8(<html>not json</html>);`)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrFeedDecode), ShouldBeTrue)
		})

		Convey("An object where an array is expected is a decode error", func() {
			_, err := decodeEvents(`angular.callbacks._8({"event":"shot"});`)
			So(errors.Is(err, ErrFeedDecode), ShouldBeTrue)
		})
	})
}

func TestParseSummary(t *testing.T) {
	Convey("Given decoded summary objects", t, func() {
		valid := map[string]any{
			"details": map[string]any{
				"id":              float64(21),
				"GameDateISO8601": "2024-01-14",
				"seasonId":        "5",
			},
			"homeTeam": map[string]any{
				"info": map[string]any{"id": float64(1), "abbreviation": "BOS"},
			},
			"visitingTeam": map[string]any{
				"info": map[string]any{"id": float64(2), "abbreviation": "TOR"},
			},
		}

		Convey("A complete object yields the identity block", func() {
			meta, err := parseSummary(valid)
			So(err, ShouldBeNil)
			So(meta.GameID, ShouldEqual, "21")
			So(meta.Date, ShouldEqual, "2024-01-14")
			So(meta.SeasonID, ShouldEqual, "5")
			So(meta.HomeID, ShouldEqual, 1)
			So(meta.AwayID, ShouldEqual, 2)
			So(meta.Abbrev(1), ShouldEqual, "BOS")
			So(meta.Abbrev(2), ShouldEqual, "TOR")
			So(meta.Abbrev(3), ShouldBeBlank)
		})

		Convey("Missing team identity is rejected", func() {
			delete(valid, "homeTeam")
			_, err := parseSummary(valid)
			So(err, ShouldNotBeNil)
		})
	})
}
