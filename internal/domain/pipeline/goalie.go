package pipeline

import "github.com/okian/pbp/internal/domain/event"

// trackGoalies runs the one genuinely stateful computation in the pipeline:
// a single linear scan over the chronologically ordered rows carrying two
// mutable slots, the goalie currently on ice for each side. Substitutions
// and entrances set the acting team's slot to the incoming goalie, pulls
// clear it. Each row records the slots' values after it is processed.
func (p *Pipeline) trackGoalies(t *event.Table, meta event.GameMeta) {
	var home, away string
	for _, r := range t.Rows {
		switch r.Kind {
		case event.GoalieSub, event.GoalieEntrance:
			if r.EventTeamID == meta.HomeID {
				home = r.Primary.Name
			} else if r.EventTeamID == meta.AwayID {
				away = r.Primary.Name
			}
		case event.GoaliePull:
			if r.EventTeamID == meta.HomeID {
				home = ""
			} else if r.EventTeamID == meta.AwayID {
				away = ""
			}
		}
		r.HomeGoalie = home
		r.AwayGoalie = away
	}
}
