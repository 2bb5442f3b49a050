// Package app provides the core service that turns a game id into a
// normalized play-by-play table. Both the CLI and the HTTP API call it.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/pbp/internal/adapters/feed"
	"github.com/okian/pbp/internal/domain/event"
	"github.com/okian/pbp/internal/domain/pipeline"
	"github.com/okian/pbp/pkg/logger"
	"github.com/okian/pbp/pkg/metrics"
)

// Feeds abstracts the two vendor fetches the service depends on.
type Feeds interface {
	PlayByPlay(ctx context.Context, gameID int) ([]map[string]any, error)
	Summary(ctx context.Context, gameID int) (event.GameMeta, error)
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFeeds sets the feed client.
func WithFeeds(f Feeds) Option {
	return func(s *Service) {
		if f != nil {
			s.feeds = f
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// Service orchestrates fetch, decode, and normalization for one game at a
// time. It holds no cross-game state; each scrape owns its table for the
// duration of the call.
type Service struct {
	feeds Feeds
	pipe  *pipeline.Pipeline
	log   logger.Logger
}

// New constructs the service and its pipeline.
func New(opts ...Option) (*Service, error) {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get()
	}
	if s.feeds == nil {
		s.feeds = feed.NewClient(feed.WithLogger(s.log))
	}
	pipe, err := pipeline.New(pipeline.WithLogger(s.log))
	if err != nil {
		return nil, fmt.Errorf("app.new: %w", err)
	}
	s.pipe = pipe
	return s, nil
}

// Scrape fetches both feeds for a game and runs the normalization pipeline.
// The two fetches run concurrently; both must succeed before the pipeline
// starts. Any fetch or decode failure aborts the game with no partial
// result.
func (s *Service) Scrape(ctx context.Context, gameID int) (*pipeline.Projection, error) {
	scrapeID := uuid.NewString()
	s.log.Info(ctx, "scraping game",
		logger.Int("game_id", gameID),
		logger.String("scrape_id", scrapeID),
	)

	var (
		wg      sync.WaitGroup
		records []map[string]any
		meta    event.GameMeta
		pbpErr  error
		sumErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		records, pbpErr = s.feeds.PlayByPlay(ctx, gameID)
	}()
	go func() {
		defer wg.Done()
		meta, sumErr = s.feeds.Summary(ctx, gameID)
	}()
	wg.Wait()

	if pbpErr != nil {
		return nil, pbpErr
	}
	if sumErr != nil {
		return nil, sumErr
	}

	table, err := s.pipe.Run(ctx, records, meta)
	if err != nil {
		return nil, err
	}
	metrics.RecordGameScraped()
	s.log.Info(ctx, "game finished",
		logger.Int("game_id", gameID),
		logger.String("scrape_id", scrapeID),
		logger.Int("rows", len(table.Records)),
	)
	return table, nil
}
