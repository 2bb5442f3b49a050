// Package pipeline normalizes a single game's raw play-by-play records into
// the flat, ordered event table.
//
// The stages run strictly in order over the full row set; each consumes the
// previous stage's complete output. The goal dedup, goalie tracking, and
// score tracking stages are order-dependent, so no row-level parallelism is
// applied anywhere.
package pipeline

import (
	"context"
	"fmt"

	"github.com/okian/pbp/internal/domain/event"
	"github.com/okian/pbp/pkg/logger"
	"github.com/okian/pbp/pkg/metrics"
)

// Clock and period constants.
const (
	secondsPerPeriod = 1200 // 20-minute period

	// shootoutPeriod is the sentinel period for shootout rows and for the
	// end-of-game row of a game that reached a shootout.
	shootoutPeriod = 5

	// shootoutSeconds pins every shootout row to the end of overtime
	// (65:00); the vendor gives shootout attempts no meaningful clock.
	shootoutSeconds = 3900

	// sentinelTime fills rows that arrive with no clock at all.
	sentinelTime = "5:00"
)

// Option applies a configuration option to the Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(log logger.Logger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// Pipeline holds the rule tables shared by the stages.
type Pipeline struct {
	roles roleTable
	teams teamTable
	log   logger.Logger
}

// New builds a Pipeline and verifies the per-kind rule tables cover the
// closed kind enumeration.
func New(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		roles: newRoleTable(),
		teams: newTeamTable(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logger.Get()
	}
	if err := p.roles.verify(); err != nil {
		return nil, fmt.Errorf("pipeline.new: %w", err)
	}
	if err := p.teams.verify(); err != nil {
		return nil, fmt.Errorf("pipeline.new: %w", err)
	}
	return p, nil
}

// Run transforms the decoded raw records into the projected output table.
// It is a pure function of its two inputs: the same records and metadata
// always yield the same table.
func (p *Pipeline) Run(ctx context.Context, records []map[string]any, meta event.GameMeta) (*Projection, error) {
	t := p.flatten(records)
	p.synthesizeBoundaries(t)
	p.joinMetadata(t, meta)
	p.guaranteeColumns(t)
	p.reclassify(t)
	if err := p.resolveRoles(t); err != nil {
		return nil, err
	}
	p.attributeTeams(t, meta)
	p.normalizeClock(t)
	p.trackGoalies(t, meta)
	p.trackScore(t, meta)
	p.describe(t)

	out := p.project(t)
	metrics.RecordRowsEmitted(len(out.Records))
	p.log.Debug(ctx, "pipeline finished",
		logger.String("game_id", meta.GameID),
		logger.Int("rows", len(out.Records)),
	)
	return out, nil
}
