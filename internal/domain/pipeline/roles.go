package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/pbp/internal/domain/event"
)

// accessor extracts one actor slot from a row's kind-specific fields.
// A nil accessor means the kind does not define that slot.
type accessor func(*event.Row) event.Player

// roleSpec names the field groups that populate the three actor slots for
// one event kind.
type roleSpec struct {
	primary   accessor
	secondary accessor
	tertiary  accessor
}

// roleTable maps every kind to its role spec. Completeness against the
// closed kind enumeration is verified at pipeline construction.
type roleTable map[event.Kind]roleSpec

func newRoleTable() roleTable {
	shooter := fromGroup("details.shooter")
	return roleTable{
		event.StartOfGame: {},
		event.EndOfGame:   {},

		event.Shot:         {primary: shooter},
		event.BlockedShot:  {primary: shooter, secondary: fromGroup("details.blocker")},
		event.ShootoutShot: {primary: shooter},
		event.ShootoutGoal: {primary: shooter},
		event.PenaltyShotS: {primary: shooter},
		event.PenaltyShotG: {primary: shooter},

		event.Faceoff: {primary: faceoffWinner, secondary: faceoffLoser},

		event.GoalieSub:      {primary: fromGroup("details.goalieComingIn"), secondary: fromGroup("details.goalieGoingOut")},
		event.GoalieEntrance: {primary: fromGroup("details.goalieComingIn")},
		event.GoaliePull:     {primary: fromGroup("details.goalieGoingOut")},

		event.Penalty: {primary: fromGroup("details.takenBy"), secondary: penaltyServer},
		event.Hit:     {primary: fromGroup("details.player")},

		event.Goal: {
			primary:   fromGroup("details.scoredBy"),
			secondary: fromGroup("assistor_1"),
			tertiary:  fromGroup("assistor_2"),
		},
	}
}

// verify checks the table covers the closed kind enumeration exactly.
func (rt roleTable) verify() error {
	for _, k := range event.Kinds() {
		if _, ok := rt[k]; !ok {
			return fmt.Errorf("role table missing kind %q", k)
		}
	}
	if len(rt) != len(event.Kinds()) {
		return fmt.Errorf("role table has %d entries, want %d", len(rt), len(event.Kinds()))
	}
	return nil
}

// resolveRoles fills the actor slots per the role table. Goal assist lists
// are flattened into numbered field groups first.
func (p *Pipeline) resolveRoles(t *event.Table) error {
	for _, r := range t.Rows {
		if r.Kind == event.Goal {
			flattenAssists(r)
		}
		spec, ok := p.roles[r.Kind]
		if !ok {
			return fmt.Errorf("resolve roles: unknown kind %q", r.Kind)
		}
		if spec.primary != nil {
			r.Primary = spec.primary(r)
		}
		if spec.secondary != nil {
			r.Secondary = spec.secondary(r)
		}
		if spec.tertiary != nil {
			r.Tertiary = spec.tertiary(r)
		}
	}
	return nil
}

// fromGroup builds an accessor reading the standard player field group under
// the given dotted prefix.
func fromGroup(prefix string) accessor {
	return func(r *event.Row) event.Player {
		return playerAt(r, prefix)
	}
}

// playerAt assembles a Player from prefix.firstName/lastName/id/position/
// jerseyNumber. An all-absent name yields the empty string, never a joined
// pair of absent markers. Sweater numbers default to 0 when absent.
func playerAt(r *event.Row, prefix string) event.Player {
	first := strings.TrimSpace(r.Field(prefix + ".firstName"))
	last := strings.TrimSpace(r.Field(prefix + ".lastName"))
	name := strings.TrimSpace(first + " " + last)

	sweater := 0
	if n, err := strconv.Atoi(r.Field(prefix + ".jerseyNumber")); err == nil {
		sweater = n
	}
	return event.Player{
		Name:     name,
		ID:       r.Field(prefix + ".id"),
		Position: r.Field(prefix + ".position"),
		Sweater:  sweater,
	}
}

// faceoffWinner resolves the winning side's player from the homeWin flag.
func faceoffWinner(r *event.Row) event.Player {
	if truthy(r.Field("details.homeWin")) {
		return playerAt(r, "details.homePlayer")
	}
	return playerAt(r, "details.visitingPlayer")
}

func faceoffLoser(r *event.Row) event.Player {
	if truthy(r.Field("details.homeWin")) {
		return playerAt(r, "details.visitingPlayer")
	}
	return playerAt(r, "details.homePlayer")
}

// penaltyServer returns the serving player only when it differs from the
// player who took the penalty.
func penaltyServer(r *event.Row) event.Player {
	server := playerAt(r, "details.servedBy")
	if server.ID != event.Absent && server.ID == r.Field("details.takenBy.id") {
		return event.Player{}
	}
	return server
}

// flattenAssists flattens a goal's variable-length assist list (0-2 entries
// in practice) into numbered assistor_{n} field groups for the role table.
func flattenAssists(r *event.Row) {
	if r.Raw == nil {
		return
	}
	details, ok := r.Raw["details"].(map[string]any)
	if !ok {
		return
	}
	assists, ok := details["assists"].([]any)
	if !ok {
		return
	}
	for i, a := range assists {
		entry, ok := a.(map[string]any)
		if !ok {
			continue
		}
		flattenInto(r.Fields, fmt.Sprintf("assistor_%d", i+1), entry)
	}
}
