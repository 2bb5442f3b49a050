package app_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/okian/pbp/internal/adapters/feed"
	"github.com/okian/pbp/internal/app"
	"github.com/okian/pbp/internal/domain/event"
	"github.com/okian/pbp/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// stubFeeds implements app.Feeds from canned data.
type stubFeeds struct {
	records []map[string]any
	meta    event.GameMeta
	pbpErr  error
	sumErr  error
}

func (s *stubFeeds) PlayByPlay(_ context.Context, _ int) ([]map[string]any, error) {
	return s.records, s.pbpErr
}

func (s *stubFeeds) Summary(_ context.Context, _ int) (event.GameMeta, error) {
	return s.meta, s.sumErr
}

func TestServiceScrape(t *testing.T) {
	Convey("Given a service over stubbed feeds", t, func() {
		ctx := context.Background()
		meta := event.GameMeta{
			GameID: "21", Date: "2024-01-14", SeasonID: "5",
			HomeID: 1, AwayID: 2, HomeAbbrev: "BOS", AwayAbbrev: "TOR",
		}
		records := []map[string]any{
			{"event": "faceoff", "details": map[string]any{
				"homeWin": "1",
				"homePlayer": map[string]any{
					"firstName": "Hilary", "lastName": "Knight",
					"id": "102", "position": "F", "jerseyNumber": 21,
				},
				"visitingPlayer": map[string]any{
					"firstName": "Sarah", "lastName": "Nurse",
					"id": "202", "position": "F", "jerseyNumber": 20,
				},
				"period": map[string]any{"id": "1"},
				"time":   "0:00",
			}},
		}

		Convey("A successful scrape yields a bounded table", func() {
			svc, err := app.New(app.WithFeeds(&stubFeeds{records: records, meta: meta}))
			So(err, ShouldBeNil)

			table, err := svc.Scrape(ctx, 21)
			So(err, ShouldBeNil)
			rows := table.Maps()
			So(len(rows), ShouldEqual, 3)
			So(rows[0]["event_kind"], ShouldEqual, "start_of_game")
			So(rows[1]["event_kind"], ShouldEqual, "faceoff")
			So(rows[2]["event_kind"], ShouldEqual, "end_of_game")
		})

		Convey("An unknown game aborts with no partial table", func() {
			notFound := fmt.Errorf("game 999: %w", feed.ErrGameNotFound)
			svc, err := app.New(app.WithFeeds(&stubFeeds{pbpErr: notFound, meta: meta}))
			So(err, ShouldBeNil)

			table, err := svc.Scrape(ctx, 999)
			So(table, ShouldBeNil)
			So(errors.Is(err, feed.ErrGameNotFound), ShouldBeTrue)
		})

		Convey("A metadata failure is fatal for the game", func() {
			metaErr := fmt.Errorf("boom: %w", feed.ErrMetadataFetch)
			svc, err := app.New(app.WithFeeds(&stubFeeds{records: records, sumErr: metaErr}))
			So(err, ShouldBeNil)

			table, err := svc.Scrape(ctx, 21)
			So(table, ShouldBeNil)
			So(errors.Is(err, feed.ErrMetadataFetch), ShouldBeTrue)
		})
	})
}
