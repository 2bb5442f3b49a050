package event

import "strings"

// Absent is the explicit marker written into guaranteed columns that the
// vendor feed did not supply for this game.
const Absent = ""

// Player is one resolved actor slot on a row.
type Player struct {
	Name     string
	ID       string
	Position string
	Sweater  int
}

// GameMeta is the identity block from the summary feed, stamped onto every
// row of the game.
type GameMeta struct {
	GameID     string
	Date       string
	SeasonID   string
	HomeID     int
	AwayID     int
	HomeAbbrev string
	AwayAbbrev string
}

// Abbrev maps a team id through the two-entry home/away table. Unknown ids
// map to the absent marker.
func (m GameMeta) Abbrev(teamID int) string {
	switch teamID {
	case m.HomeID:
		return m.HomeAbbrev
	case m.AwayID:
		return m.AwayAbbrev
	default:
		return Absent
	}
}

// Row is one normalized play-by-play event. The pipeline builds it
// incrementally: the flattener fills the dotted-key field map, later stages
// fill the typed outputs.
type Row struct {
	// Raw holds the vendor record as decoded; nil on synthetic boundary
	// rows. The role resolver reads array-valued payloads (assists) from
	// here because the flattener leaves arrays alone.
	Raw map[string]any

	// Fields holds the flattened dotted-key view of Raw plus any working
	// columns stages write back.
	Fields map[string]string

	Kind Kind

	GameID   string
	GameDate string
	SeasonID string

	Period       int
	TimeInPeriod string
	GameSeconds  int

	Primary   Player
	Secondary Player
	Tertiary  Player

	EventTeamID int
	EventTeam   string

	HomeScore int
	AwayScore int

	HomeGoalie string
	AwayGoalie string

	Description string

	// Dropped marks rows scheduled for removal by the reclassifier
	// (duplicate shot rows preceding goals).
	Dropped bool
}

// Field returns the flattened value for a dotted key, or Absent.
func (r *Row) Field(key string) string {
	if r.Fields == nil {
		return Absent
	}
	return r.Fields[key]
}

// SetField writes a working column.
func (r *Row) SetField(key, val string) {
	if r.Fields == nil {
		r.Fields = make(map[string]string)
	}
	r.Fields[key] = val
}

// HasField reports whether a dotted key carries a non-absent value.
func (r *Row) HasField(key string) bool {
	return strings.TrimSpace(r.Field(key)) != Absent
}

// Table is the ordered per-game row set every stage consumes and produces.
type Table struct {
	Rows []*Row
}

// Last returns the final row, or nil for an empty table.
func (t *Table) Last() *Row {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[len(t.Rows)-1]
}
