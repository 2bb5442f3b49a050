package pipeline

import (
	"strconv"

	"github.com/okian/pbp/internal/domain/event"
)

// Working column names for the vendor clock fields.
const (
	fieldRawKind = "event"
	fieldPeriod  = "details.period.id"
	fieldTime    = "details.time"
)

// synthesizeBoundaries injects the synthetic start-of-game and end-of-game
// rows bounding the real events. Missing period/time on real rows default to
// the overtime-complete sentinel first, so the boundary computation never
// sees absent values.
func (p *Pipeline) synthesizeBoundaries(t *event.Table) {
	shootout := false
	maxPeriod := 1
	lastTime := "0:00"
	for _, r := range t.Rows {
		if !r.HasField(fieldPeriod) {
			r.SetField(fieldPeriod, strconv.Itoa(shootoutPeriod))
		}
		if !r.HasField(fieldTime) {
			r.SetField(fieldTime, sentinelTime)
		}
		if r.Field(fieldRawKind) == event.RawShootout {
			shootout = true
		}
		if n := periodNumber(r.Field(fieldPeriod)); n > maxPeriod {
			maxPeriod = n
		}
		lastTime = r.Field(fieldTime)
	}

	start := syntheticRow(event.StartOfGame, 1, "0:00")
	endPeriod := maxPeriod
	if shootout {
		endPeriod = shootoutPeriod
	}
	end := syntheticRow(event.EndOfGame, endPeriod, lastTime)

	rows := make([]*event.Row, 0, len(t.Rows)+2)
	rows = append(rows, start)
	rows = append(rows, t.Rows...)
	rows = append(rows, end)
	t.Rows = rows
}

func syntheticRow(kind event.Kind, period int, clock string) *event.Row {
	r := &event.Row{
		Kind:   kind,
		Fields: make(map[string]string),
	}
	r.SetField(fieldRawKind, string(kind))
	r.SetField(fieldPeriod, strconv.Itoa(period))
	r.SetField(fieldTime, clock)
	return r
}
