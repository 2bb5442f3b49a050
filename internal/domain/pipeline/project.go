package pipeline

import (
	"strconv"

	"github.com/okian/pbp/internal/domain/event"
)

// Columns is the fixed, ordered public column list of the output table.
var Columns = []string{
	"game_id",
	"game_date",
	"season_id",
	"event_index",
	"event_kind",
	"period",
	"time_in_period",
	"game_seconds",
	"event_team",
	"event_team_id",
	"event_primary_player_name",
	"event_primary_player_id",
	"event_primary_player_position",
	"event_primary_player_sweater_number",
	"event_secondary_player_name",
	"event_secondary_player_id",
	"event_secondary_player_position",
	"event_secondary_player_sweater_number",
	"event_tertiary_player_name",
	"event_tertiary_player_id",
	"event_tertiary_player_position",
	"event_tertiary_player_sweater_number",
	"home_score",
	"away_score",
	"current_home_goalie",
	"current_away_goalie",
	"shot_type",
	"shot_quality",
	"penalty_name",
	"penalty_minutes",
	"power_play",
	"description",
}

// Projection is the finished output table: one record per event, in
// chronological order, under the public column names. Working columns are
// gone; no record is mutated after projection.
type Projection struct {
	Header  []string
	Records [][]string
}

// Maps returns the records as column-keyed maps, preserving record order.
func (p *Projection) Maps() []map[string]string {
	out := make([]map[string]string, len(p.Records))
	for i, rec := range p.Records {
		m := make(map[string]string, len(p.Header))
		for j, col := range p.Header {
			m[col] = rec[j]
		}
		out[i] = m
	}
	return out
}

// project renames the working fields to their public names and selects the
// fixed output column order.
func (p *Pipeline) project(t *event.Table) *Projection {
	out := &Projection{
		Header:  Columns,
		Records: make([][]string, 0, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Records = append(out.Records, []string{
			r.GameID,
			r.GameDate,
			r.SeasonID,
			strconv.Itoa(i),
			r.Kind.String(),
			strconv.Itoa(r.Period),
			r.TimeInPeriod,
			strconv.Itoa(r.GameSeconds),
			r.EventTeam,
			strconv.Itoa(r.EventTeamID),
			r.Primary.Name,
			r.Primary.ID,
			r.Primary.Position,
			sweater(r.Primary),
			r.Secondary.Name,
			r.Secondary.ID,
			r.Secondary.Position,
			sweater(r.Secondary),
			r.Tertiary.Name,
			r.Tertiary.ID,
			r.Tertiary.Position,
			sweater(r.Tertiary),
			strconv.Itoa(r.HomeScore),
			strconv.Itoa(r.AwayScore),
			r.HomeGoalie,
			r.AwayGoalie,
			r.Field("details.shotType"),
			r.Field("details.shotQuality"),
			r.Field("details.description"),
			r.Field("details.minutes"),
			r.Field("details.isPowerPlay"),
			r.Description,
		})
	}
	return out
}

// sweater renders a sweater number, leaving unset slots blank rather than
// printing 0 for actors that do not exist.
func sweater(pl event.Player) string {
	if pl.Name == "" && pl.ID == "" {
		return ""
	}
	return strconv.Itoa(pl.Sweater)
}
