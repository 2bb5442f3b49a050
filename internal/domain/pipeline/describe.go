package pipeline

import (
	"strings"

	"github.com/okian/pbp/internal/domain/event"
)

// describe renders the human-readable sentence for each row. Templates
// tolerate absent actors: when a slot's name is empty its clause is
// omitted, so an unassisted goal ends in "unassisted" and a row with no
// resolvable primary actor keeps only its kind/team prefix.
func (p *Pipeline) describe(t *event.Table) {
	for _, r := range t.Rows {
		r.Description = describeRow(r)
	}
}

func describeRow(r *event.Row) string {
	switch r.Kind {
	case event.StartOfGame:
		return "Start of game"
	case event.EndOfGame:
		return "End of game"
	case event.Shot:
		return withActor(r.EventTeam+" shot", "by", r.Primary.Name)
	case event.BlockedShot:
		s := withActor(r.EventTeam+" shot", "by", r.Primary.Name)
		return withActor(s, "blocked by", r.Secondary.Name)
	case event.Goal:
		return describeGoal(r)
	case event.Faceoff:
		s := withActor(r.EventTeam+" faceoff won", "by", r.Primary.Name)
		return withActor(s, "against", r.Secondary.Name)
	case event.Hit:
		return withActor(r.EventTeam+" hit", "by", r.Primary.Name)
	case event.Penalty:
		s := withActor(r.EventTeam+" penalty", "taken by", r.Primary.Name)
		return withActor(s, "served by", r.Secondary.Name)
	case event.GoalieSub:
		s := withActor(r.EventTeam+" goalie change:", "", r.Primary.Name)
		return withActor(s, "in for", r.Secondary.Name)
	case event.GoalieEntrance:
		return withActor(r.EventTeam+" goalie", "", r.Primary.Name) + " enters"
	case event.GoaliePull:
		return withActor(r.EventTeam+" goalie", "", r.Primary.Name) + " pulled"
	case event.ShootoutShot:
		return withActor(r.EventTeam+" shootout attempt", "by", r.Primary.Name)
	case event.ShootoutGoal:
		return withActor(r.EventTeam+" shootout goal", "by", r.Primary.Name)
	case event.PenaltyShotS:
		return withActor(r.EventTeam+" penalty shot", "by", r.Primary.Name)
	case event.PenaltyShotG:
		return withActor(r.EventTeam+" penalty shot goal", "by", r.Primary.Name)
	default:
		return ""
	}
}

func describeGoal(r *event.Row) string {
	s := withActor(r.EventTeam+" goal", "scored by", r.Primary.Name)
	switch {
	case r.Secondary.Name != "" && r.Tertiary.Name != "":
		return s + ", assisted by " + r.Secondary.Name + " and " + r.Tertiary.Name
	case r.Secondary.Name != "":
		return s + ", assisted by " + r.Secondary.Name
	default:
		return s + ", unassisted"
	}
}

// withActor appends "link name" to base, omitting the clause entirely when
// the name is absent.
func withActor(base, link, name string) string {
	if name == "" {
		return base
	}
	if link == "" {
		return strings.TrimSpace(base + " " + name)
	}
	return base + " " + link + " " + name
}
