package pipeline

import "github.com/okian/pbp/internal/domain/event"

// Player field-group prefixes referenced by the rule tables.
var playerGroups = []string{
	"details.shooter",
	"details.blocker",
	"details.homePlayer",
	"details.visitingPlayer",
	"details.goalieComingIn",
	"details.goalieGoingOut",
	"details.takenBy",
	"details.servedBy",
	"details.player",
	"details.scoredBy",
}

// Scalar fields referenced by the rule tables.
var scalarFields = []string{
	fieldRawKind,
	fieldPeriod,
	fieldTime,
	"details.isGoal",
	"details.homeWin",
	"details.team.id",
	"details.teamId",
	"details.shooterTeamId",
	"details.againstTeam.id",
	"details.shotType",
	"details.shotQuality",
	"details.description",
	"details.minutes",
	"details.isPowerPlay",
}

// guaranteeColumns ensures every row carries the full superset of dotted
// fields the downstream rules reference. Feeds omit whole field groups for
// event kinds that never occurred in a game; absent fields get the explicit
// absent marker so no rule ever reads a missing key.
func (p *Pipeline) guaranteeColumns(t *event.Table) {
	keys := make([]string, 0, len(scalarFields)+len(playerGroups)*5)
	keys = append(keys, scalarFields...)
	for _, g := range playerGroups {
		keys = append(keys,
			g+".firstName",
			g+".lastName",
			g+".id",
			g+".position",
			g+".jerseyNumber",
		)
	}
	for _, r := range t.Rows {
		for _, k := range keys {
			if _, ok := r.Fields[k]; !ok {
				r.SetField(k, event.Absent)
			}
		}
	}
}
