package pipeline

import (
	"strconv"
	"strings"

	"github.com/okian/pbp/internal/domain/event"
)

// Overtime period labels the feed is known to emit instead of numbers.
var overtimeLabels = map[string]int{
	"OT1": 4,
	"OT2": 5,
	"OT3": 6,
	"OT4": 7,
}

// periodNumber normalizes a vendor period value: numeric strings parse
// directly, overtime labels map to periods 4 and up, anything else falls
// back to the shootout sentinel period.
func periodNumber(v string) int {
	v = strings.TrimSpace(v)
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if n, ok := overtimeLabels[strings.ToUpper(v)]; ok {
		return n
	}
	return shootoutPeriod
}

// clockSeconds converts an "M:SS" clock string to seconds within the period.
func clockSeconds(clock string) int {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	if len(parts) != 2 {
		return 0
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	s, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return m*60 + s
}

// normalizeClock converts per-period clock strings into absolute
// game-elapsed seconds. Shootout rows are pinned to the end of overtime:
// the feed gives shootout attempts no meaningful clock position. The
// end-of-game row takes the maximum elapsed value seen, which is the
// shootout pin when a shootout occurred.
func (p *Pipeline) normalizeClock(t *event.Table) {
	maxElapsed := 0
	for _, r := range t.Rows {
		r.Period = periodNumber(r.Field(fieldPeriod))
		r.TimeInPeriod = r.Field(fieldTime)

		switch {
		case r.Kind.IsShootout():
			r.GameSeconds = shootoutSeconds
		case r.Kind == event.EndOfGame:
			r.GameSeconds = maxElapsed
		default:
			r.GameSeconds = clockSeconds(r.TimeInPeriod) + secondsPerPeriod*(r.Period-1)
		}
		if r.GameSeconds > maxElapsed {
			maxElapsed = r.GameSeconds
		}
	}
}
