package pipeline

import (
	"strings"

	"github.com/okian/pbp/internal/domain/event"
	"github.com/okian/pbp/pkg/metrics"
)

// reclassify splits the ambiguous raw discriminants into specific kinds and
// removes the duplicate shot row the feed emits ahead of every goal.
func (p *Pipeline) reclassify(t *event.Table) {
	for _, r := range t.Rows {
		if r.Kind != "" {
			continue // synthetic boundary rows are already typed
		}
		r.Kind = classify(r)
	}
	p.dropGoalDuplicates(t)
}

func classify(r *event.Row) event.Kind {
	switch r.Field(fieldRawKind) {
	case event.RawShot:
		return event.Shot
	case event.RawBlockedShot:
		return event.BlockedShot
	case event.RawGoal:
		return event.Goal
	case event.RawFaceoff:
		return event.Faceoff
	case event.RawHit:
		return event.Hit
	case event.RawPenalty:
		return event.Penalty
	case event.RawShootout:
		if truthy(r.Field("details.isGoal")) {
			return event.ShootoutGoal
		}
		return event.ShootoutShot
	case event.RawPenaltyShot:
		if truthy(r.Field("details.isGoal")) {
			return event.PenaltyShotG
		}
		return event.PenaltyShotS
	case event.RawGoalieChange:
		in := r.HasField("details.goalieComingIn.id")
		out := r.HasField("details.goalieGoingOut.id")
		switch {
		case in && out:
			return event.GoalieSub
		case out:
			return event.GoaliePull
		default:
			return event.GoalieEntrance
		}
	default:
		return event.Kind(r.Field(fieldRawKind))
	}
}

// dropGoalDuplicates marks the shot row immediately preceding each goal row
// for deletion and copies its shot-type/quality fields forward onto the goal
// via a one-row lookback. Adjacent pairs only: unrelated shots and goals
// interleave, so global counts would misattribute.
func (p *Pipeline) dropGoalDuplicates(t *event.Table) {
	for i := 1; i < len(t.Rows); i++ {
		prev, cur := t.Rows[i-1], t.Rows[i]
		if cur.Kind != event.Goal || prev.Kind != event.Shot {
			continue
		}
		cur.SetField("details.shotType", prev.Field("details.shotType"))
		cur.SetField("details.shotQuality", prev.Field("details.shotQuality"))
		prev.Dropped = true
	}

	kept := t.Rows[:0]
	dropped := 0
	for _, r := range t.Rows {
		if r.Dropped {
			dropped++
			continue
		}
		kept = append(kept, r)
	}
	t.Rows = kept
	if dropped > 0 {
		metrics.RecordDuplicateShotsDropped(dropped)
	}
}

// truthy interprets the feed's flag convention ("1"/"true").
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true":
		return true
	default:
		return false
	}
}
