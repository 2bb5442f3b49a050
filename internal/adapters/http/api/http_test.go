package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/okian/pbp/internal/adapters/feed"
	"github.com/okian/pbp/internal/adapters/http/api"
	"github.com/okian/pbp/internal/domain/pipeline"
	"github.com/okian/pbp/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// stubScraper implements api.Dependencies.
type stubScraper struct {
	table *pipeline.Projection
	err   error
}

func (s *stubScraper) Scrape(_ context.Context, _ int) (*pipeline.Projection, error) {
	return s.table, s.err
}

func newMux(deps api.Dependencies) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps).Register(context.Background(), mux)
	return mux
}

func TestGameEndpoint(t *testing.T) {
	Convey("Given the games endpoint", t, func() {
		table := &pipeline.Projection{
			Header: []string{"game_id", "event_kind"},
			Records: [][]string{
				{"21", "start_of_game"},
				{"21", "end_of_game"},
			},
		}

		Convey("A valid game id returns the table as JSON", func() {
			mux := newMux(&stubScraper{table: table})
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/21/events", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			var rows []map[string]string
			So(json.Unmarshal(rec.Body.Bytes(), &rows), ShouldBeNil)
			So(len(rows), ShouldEqual, 2)
			So(rows[0]["event_kind"], ShouldEqual, "start_of_game")
		})

		Convey("The CSV format renders header plus records", func() {
			mux := newMux(&stubScraper{table: table})
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/21/events?format=csv", nil))

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Header().Get("Content-Type"), ShouldStartWith, "text/csv")
			So(rec.Body.String(), ShouldStartWith, "game_id,event_kind\n")
		})

		Convey("A non-numeric id is a bad request", func() {
			mux := newMux(&stubScraper{table: table})
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/abc/events", nil))

			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("An unknown game maps to 404", func() {
			mux := newMux(&stubScraper{err: fmt.Errorf("game 999: %w", feed.ErrGameNotFound)})
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/999/events", nil))

			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("Upstream feed failures map to 502", func() {
			mux := newMux(&stubScraper{err: fmt.Errorf("bad: %w", feed.ErrMetadataFetch)})
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/21/events", nil))

			So(rec.Code, ShouldEqual, http.StatusBadGateway)
		})
	})
}

func TestHealthEndpoint(t *testing.T) {
	Convey("Given the health endpoint", t, func() {
		mux := newMux(&stubScraper{})
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		Convey("It reports ok and stamps a request id", func() {
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, `"status":"ok"`)
			So(rec.Header().Get("X-Request-Id"), ShouldNotBeBlank)
		})
	})
}
