package pipeline

import (
	"testing"

	"github.com/okian/pbp/internal/domain/event"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRoleTableCompleteness(t *testing.T) {
	Convey("The role table covers every normalized kind", t, func() {
		So(newRoleTable().verify(), ShouldBeNil)
	})
}

func TestResolveRoles(t *testing.T) {
	Convey("Given a pipeline with the standard role table", t, func() {
		p := testPipeline(t)

		Convey("A shot resolves the shooter as primary", func() {
			r := flatRow(map[string]string{
				"details.shooter.firstName":    "Sarah",
				"details.shooter.lastName":     "Nurse",
				"details.shooter.id":           "202",
				"details.shooter.position":     "F",
				"details.shooter.jerseyNumber": "20",
			})
			r.Kind = event.Shot
			tbl := &event.Table{Rows: []*event.Row{r}}
			So(p.resolveRoles(tbl), ShouldBeNil)
			So(r.Primary.Name, ShouldEqual, "Sarah Nurse")
			So(r.Primary.ID, ShouldEqual, "202")
			So(r.Primary.Position, ShouldEqual, "F")
			So(r.Primary.Sweater, ShouldEqual, 20)
			So(r.Secondary.Name, ShouldBeBlank)
		})

		Convey("An all-absent name resolves to empty, not a joined absent pair", func() {
			r := flatRow(map[string]string{"details.shooter.id": "999"})
			r.Kind = event.Shot
			tbl := &event.Table{Rows: []*event.Row{r}}
			So(p.resolveRoles(tbl), ShouldBeNil)
			So(r.Primary.Name, ShouldBeBlank)
			So(r.Primary.Sweater, ShouldEqual, 0)
		})

		Convey("A faceoff won by the home side puts the home player first", func() {
			fields := map[string]string{
				"details.homeWin":                  "1",
				"details.homePlayer.firstName":     "Hilary",
				"details.homePlayer.lastName":      "Knight",
				"details.homePlayer.id":            "102",
				"details.visitingPlayer.firstName": "Sarah",
				"details.visitingPlayer.lastName":  "Nurse",
				"details.visitingPlayer.id":        "202",
			}
			r := flatRow(fields)
			r.Kind = event.Faceoff
			tbl := &event.Table{Rows: []*event.Row{r}}
			So(p.resolveRoles(tbl), ShouldBeNil)
			So(r.Primary.Name, ShouldEqual, "Hilary Knight")
			So(r.Secondary.Name, ShouldEqual, "Sarah Nurse")

			Convey("And the away side first when the flag is off", func() {
				fields["details.homeWin"] = "0"
				r2 := flatRow(fields)
				r2.Kind = event.Faceoff
				tbl2 := &event.Table{Rows: []*event.Row{r2}}
				So(p.resolveRoles(tbl2), ShouldBeNil)
				So(r2.Primary.Name, ShouldEqual, "Sarah Nurse")
				So(r2.Secondary.Name, ShouldEqual, "Hilary Knight")
			})
		})

		Convey("A goalie entrance resolves only the incoming goalie", func() {
			r := flatRow(map[string]string{
				"details.goalieComingIn.firstName": "Aerin",
				"details.goalieComingIn.lastName":  "Frankel",
				"details.goalieComingIn.id":        "101",
			})
			r.Kind = event.GoalieEntrance
			tbl := &event.Table{Rows: []*event.Row{r}}
			So(p.resolveRoles(tbl), ShouldBeNil)
			So(r.Primary.Name, ShouldEqual, "Aerin Frankel")
			So(r.Secondary.Name, ShouldBeBlank)
		})

		Convey("A penalty served by the taker leaves secondary empty", func() {
			r := flatRow(map[string]string{
				"details.takenBy.firstName":  "Jocelyne",
				"details.takenBy.lastName":   "Larocque",
				"details.takenBy.id":         "205",
				"details.servedBy.firstName": "Jocelyne",
				"details.servedBy.lastName":  "Larocque",
				"details.servedBy.id":        "205",
			})
			r.Kind = event.Penalty
			tbl := &event.Table{Rows: []*event.Row{r}}
			So(p.resolveRoles(tbl), ShouldBeNil)
			So(r.Primary.Name, ShouldEqual, "Jocelyne Larocque")
			So(r.Secondary.Name, ShouldBeBlank)

			Convey("But a different server is kept", func() {
				r.SetField("details.servedBy.firstName", "Emma")
				r.SetField("details.servedBy.lastName", "Maltais")
				r.SetField("details.servedBy.id", "206")
				So(p.resolveRoles(tbl), ShouldBeNil)
				So(r.Secondary.Name, ShouldEqual, "Emma Maltais")
			})
		})
	})
}

func TestGoalAssistFlattening(t *testing.T) {
	Convey("Given goal records with varying assist lists", t, func() {
		p := testPipeline(t)

		goalRec := func(assists []any) *event.Row {
			raw := rec("goal", map[string]any{
				"scoredBy": person("Hilary", "Knight", "102", "F", 21),
				"assists":  assists,
			})
			tbl := p.flatten([]map[string]any{raw})
			tbl.Rows[0].Kind = event.Goal
			return tbl.Rows[0]
		}

		Convey("Two assists fill secondary and tertiary", func() {
			r := goalRec([]any{
				person("Alina", "Muller", "103", "F", 25),
				person("Sophie", "Jaques", "104", "D", 17),
			})
			tbl := &event.Table{Rows: []*event.Row{r}}
			So(p.resolveRoles(tbl), ShouldBeNil)
			So(r.Primary.Name, ShouldEqual, "Hilary Knight")
			So(r.Secondary.Name, ShouldEqual, "Alina Muller")
			So(r.Tertiary.Name, ShouldEqual, "Sophie Jaques")
		})

		Convey("One assist leaves tertiary empty", func() {
			r := goalRec([]any{person("Alina", "Muller", "103", "F", 25)})
			tbl := &event.Table{Rows: []*event.Row{r}}
			So(p.resolveRoles(tbl), ShouldBeNil)
			So(r.Secondary.Name, ShouldEqual, "Alina Muller")
			So(r.Tertiary.Name, ShouldBeBlank)
		})

		Convey("No assists leave both empty", func() {
			r := goalRec(nil)
			tbl := &event.Table{Rows: []*event.Row{r}}
			So(p.resolveRoles(tbl), ShouldBeNil)
			So(r.Secondary.Name, ShouldBeBlank)
			So(r.Tertiary.Name, ShouldBeBlank)
		})
	})
}
