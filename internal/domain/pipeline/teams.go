package pipeline

import (
	"fmt"
	"strconv"

	"github.com/okian/pbp/internal/domain/event"
)

// teamSource yields the raw team id value for one kind.
type teamSource func(*event.Row, event.GameMeta) string

// teamTable maps every kind to its team id source field. Verified complete
// at pipeline construction.
type teamTable map[event.Kind]teamSource

func newTeamTable() teamTable {
	field := func(key string) teamSource {
		return func(r *event.Row, _ event.GameMeta) string { return r.Field(key) }
	}
	none := func(_ *event.Row, _ event.GameMeta) string { return event.Absent }
	shooterTeam := field("details.shooterTeamId")

	return teamTable{
		event.StartOfGame: none,
		event.EndOfGame:   none,

		event.Goal:         field("details.team.id"),
		event.Shot:         shooterTeam,
		event.BlockedShot:  shooterTeam,
		event.ShootoutShot: shooterTeam,
		event.ShootoutGoal: shooterTeam,
		event.PenaltyShotS: shooterTeam,
		event.PenaltyShotG: shooterTeam,

		event.Hit:     field("details.teamId"),
		event.Penalty: field("details.againstTeam.id"),

		event.GoalieSub:      field("details.teamId"),
		event.GoaliePull:     field("details.teamId"),
		event.GoalieEntrance: field("details.teamId"),

		// The faceoff record carries no team field of its own; the
		// winning side's team comes from the homeWin flag.
		event.Faceoff: func(r *event.Row, meta event.GameMeta) string {
			if truthy(r.Field("details.homeWin")) {
				return strconv.Itoa(meta.HomeID)
			}
			return strconv.Itoa(meta.AwayID)
		},
	}
}

func (tt teamTable) verify() error {
	for _, k := range event.Kinds() {
		if _, ok := tt[k]; !ok {
			return fmt.Errorf("team table missing kind %q", k)
		}
	}
	if len(tt) != len(event.Kinds()) {
		return fmt.Errorf("team table has %d entries, want %d", len(tt), len(event.Kinds()))
	}
	return nil
}

// attributeTeams resolves which side owns each event and maps the team id
// to an abbreviation through the two-entry home/away table.
func (p *Pipeline) attributeTeams(t *event.Table, meta event.GameMeta) {
	for _, r := range t.Rows {
		src := p.teams[r.Kind]
		id, err := strconv.Atoi(src(r, meta))
		if err != nil {
			id = 0
		}
		r.EventTeamID = id
		r.EventTeam = meta.Abbrev(id)
	}
}
