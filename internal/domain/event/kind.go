// Package event contains the normalized play-by-play domain types shared
// between the pipeline and the adapters.
package event

// Kind is the normalized, mutually exclusive category of a play-by-play row.
type Kind string

// The closed set of normalized event kinds.
const (
	StartOfGame    Kind = "start_of_game"
	EndOfGame      Kind = "end_of_game"
	Shot           Kind = "shot"
	BlockedShot    Kind = "blocked_shot"
	Goal           Kind = "goal"
	Faceoff        Kind = "faceoff"
	Hit            Kind = "hit"
	Penalty        Kind = "penalty"
	GoalieSub      Kind = "goalie_sub"
	GoaliePull     Kind = "goalie_pull"
	GoalieEntrance Kind = "goalie_entrance"
	ShootoutShot   Kind = "shootout_shot"
	ShootoutGoal   Kind = "shootout_goal"
	PenaltyShotS   Kind = "penalty_shot_shot"
	PenaltyShotG   Kind = "penalty_shot_goal"
)

// Raw discriminants as they arrive from the vendor feed. The ambiguous ones
// (goalie_change, shootout, penaltyshot) are split into specific kinds by the
// reclassifier.
const (
	RawShot         = "shot"
	RawBlockedShot  = "blocked_shot"
	RawGoal         = "goal"
	RawFaceoff      = "faceoff"
	RawHit          = "hit"
	RawPenalty      = "penalty"
	RawGoalieChange = "goalie_change"
	RawShootout     = "shootout"
	RawPenaltyShot  = "penaltyshot"
)

// Kinds returns every normalized kind. Rule tables are verified against this
// list at construction time.
func Kinds() []Kind {
	return []Kind{
		StartOfGame, EndOfGame,
		Shot, BlockedShot, Goal, Faceoff, Hit, Penalty,
		GoalieSub, GoaliePull, GoalieEntrance,
		ShootoutShot, ShootoutGoal,
		PenaltyShotS, PenaltyShotG,
	}
}

// IsShootout reports whether k is one of the shootout attempt kinds.
func (k Kind) IsShootout() bool {
	return k == ShootoutShot || k == ShootoutGoal
}

// String returns the kind as it appears in the output table.
func (k Kind) String() string { return string(k) }
