package pipeline

import (
	"testing"

	"github.com/okian/pbp/internal/domain/event"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFlatten(t *testing.T) {
	Convey("Given nested raw records", t, func() {
		p := testPipeline(t)
		records := []map[string]any{
			rec("shot", map[string]any{
				"shooter":       person("Sarah", "Nurse", "202", "F", 20),
				"shooterTeamId": 2,
				"time":          "1:30",
				"period":        map[string]any{"id": "1"},
				"isGoal":        false,
			}),
		}
		tbl := p.flatten(records)

		Convey("Nested paths become dotted keys", func() {
			So(len(tbl.Rows), ShouldEqual, 1)
			r := tbl.Rows[0]
			So(r.Field("event"), ShouldEqual, "shot")
			So(r.Field("details.shooter.firstName"), ShouldEqual, "Sarah")
			So(r.Field("details.shooter.jerseyNumber"), ShouldEqual, "20")
			So(r.Field("details.period.id"), ShouldEqual, "1")
			So(r.Field("details.isGoal"), ShouldEqual, "0")
		})

		Convey("The raw record stays attached for array handling", func() {
			So(tbl.Rows[0].Raw, ShouldNotBeNil)
		})
	})
}

func TestSynthesizeBoundaries(t *testing.T) {
	Convey("Given flattened real rows", t, func() {
		p := testPipeline(t)

		Convey("A regulation game gets bounding rows from its own clock", func() {
			rows := []*event.Row{
				flatRow(map[string]string{fieldRawKind: "faceoff", fieldPeriod: "1", fieldTime: "0:00"}),
				flatRow(map[string]string{fieldRawKind: "goal", fieldPeriod: "3", fieldTime: "19:10"}),
			}
			tbl := &event.Table{Rows: rows}
			p.synthesizeBoundaries(tbl)

			So(len(tbl.Rows), ShouldEqual, 4)
			So(tbl.Rows[0].Kind, ShouldEqual, event.StartOfGame)
			So(tbl.Rows[0].Field(fieldPeriod), ShouldEqual, "1")
			So(tbl.Rows[0].Field(fieldTime), ShouldEqual, "0:00")
			So(tbl.Rows[3].Kind, ShouldEqual, event.EndOfGame)
			So(tbl.Rows[3].Field(fieldPeriod), ShouldEqual, "3")
			So(tbl.Rows[3].Field(fieldTime), ShouldEqual, "19:10")
		})

		Convey("A shootout forces the shootout period marker on the end row", func() {
			rows := []*event.Row{
				flatRow(map[string]string{fieldRawKind: "goal", fieldPeriod: "3", fieldTime: "12:00"}),
				flatRow(map[string]string{fieldRawKind: "shootout"}),
			}
			tbl := &event.Table{Rows: rows}
			p.synthesizeBoundaries(tbl)

			end := tbl.Last()
			So(end.Kind, ShouldEqual, event.EndOfGame)
			So(end.Field(fieldPeriod), ShouldEqual, "5")

			Convey("And the shootout row got the sentinel clock first", func() {
				So(tbl.Rows[2].Field(fieldPeriod), ShouldEqual, "5")
				So(tbl.Rows[2].Field(fieldTime), ShouldEqual, "5:00")
			})
		})
	})
}

func TestGuaranteeColumns(t *testing.T) {
	Convey("Given a row missing whole field groups", t, func() {
		p := testPipeline(t)
		r := flatRow(map[string]string{fieldRawKind: "hit"})
		tbl := &event.Table{Rows: []*event.Row{r}}
		p.guaranteeColumns(tbl)

		Convey("Every rule-table field exists afterwards", func() {
			for _, key := range []string{
				"details.shooter.firstName",
				"details.blocker.id",
				"details.goalieComingIn.jerseyNumber",
				"details.againstTeam.id",
				"details.shotType",
				"details.isPowerPlay",
			} {
				_, ok := r.Fields[key]
				So(ok, ShouldBeTrue)
				So(r.Field(key), ShouldEqual, event.Absent)
			}
		})

		Convey("Present values are left alone", func() {
			So(r.Field(fieldRawKind), ShouldEqual, "hit")
		})
	})
}
