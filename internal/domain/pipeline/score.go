package pipeline

import "github.com/okian/pbp/internal/domain/event"

// trackScore maintains the running home/away score. Each row shows the
// score as of immediately before it happened, so a goal row displays the
// pre-goal score (the standard play-by-play convention). Shootout attempts
// never touch the regulation counters; if a shootout occurred, the winning
// side (more shootout goals) gets one extra goal on the end-of-game row
// only.
//
// Scored penalty shots arrive with a companion goal record in the feed, so
// only goal-kind rows increment the counters.
func (p *Pipeline) trackScore(t *event.Table, meta event.GameMeta) {
	var home, away int
	var soHome, soAway int
	for _, r := range t.Rows {
		if r.Kind == event.ShootoutGoal {
			if r.EventTeamID == meta.HomeID {
				soHome++
			} else if r.EventTeamID == meta.AwayID {
				soAway++
			}
		}
		if r.Kind == event.EndOfGame {
			if soHome > soAway {
				home++
			} else if soAway > soHome {
				away++
			}
		}

		r.HomeScore = home
		r.AwayScore = away

		if r.Kind == event.Goal {
			if r.EventTeamID == meta.HomeID {
				home++
			} else if r.EventTeamID == meta.AwayID {
				away++
			}
		}
	}
}
