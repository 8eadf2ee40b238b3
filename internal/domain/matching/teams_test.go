package matching_test

import (
	"fmt"
	"testing"

	matching "github.com/ohack/teamforge/internal/domain/matching"
	model "github.com/ohack/teamforge/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFormTeams(t *testing.T) {
	Convey("Given an empty roster", t, func() {
		Convey("Then formation returns no teams", func() {
			So(matching.FormTeams(nil), ShouldBeEmpty)
			So(matching.FormTeams([]model.Profile{}), ShouldBeEmpty)
		})
	})

	Convey("Given a roster of nine profiles", t, func() {
		profiles := make([]model.Profile, 9)
		for i := range profiles {
			profiles[i] = profileWith(
				fmt.Sprintf("user-%d", i),
				[]string{"edu", fmt.Sprintf("cat-%d", i%3)},
				[]string{fmt.Sprintf("skill-%d", i%4)},
			)
		}

		teams := matching.FormTeams(profiles)

		Convey("Then teams of default size partition the roster as 4/4/1", func() {
			So(len(teams), ShouldEqual, 3)
			So(teams[0].Size(), ShouldEqual, 4)
			So(teams[1].Size(), ShouldEqual, 4)
			So(teams[2].Size(), ShouldEqual, 1)
		})

		Convey("Then every profile appears exactly once", func() {
			seen := map[string]int{}
			for _, team := range teams {
				for _, m := range team.Members {
					seen[m.UserID]++
				}
			}
			So(len(seen), ShouldEqual, 9)
			for _, count := range seen {
				So(count, ShouldEqual, 1)
			}
		})

		Convey("Then formation is deterministic for the same input order", func() {
			again := matching.FormTeams(profiles)
			So(again, ShouldResemble, teams)
		})
	})

	Convey("Given a custom team size", t, func() {
		profiles := []model.Profile{
			profileWith("a", []string{"x"}, nil),
			profileWith("b", []string{"x"}, nil),
			profileWith("c", []string{"x"}, nil),
		}

		Convey("When the size is 2", func() {
			teams := matching.FormTeams(profiles, matching.WithTeamSize(2))
			So(len(teams), ShouldEqual, 2)
			So(teams[0].Size(), ShouldEqual, 2)
			So(teams[1].Size(), ShouldEqual, 1)
		})

		Convey("When the size is 1", func() {
			teams := matching.FormTeams(profiles, matching.WithTeamSize(1))
			So(len(teams), ShouldEqual, 3)
		})

		Convey("When the size is invalid the default stands", func() {
			teams := matching.FormTeams(profiles, matching.WithTeamSize(0))
			So(len(teams), ShouldEqual, 1)
			So(teams[0].Size(), ShouldEqual, 3)

			teams = matching.FormTeams(profiles, matching.WithTeamSize(-7))
			So(len(teams), ShouldEqual, 1)
		})
	})

	Convey("Given profiles without applications mixed in", t, func() {
		profiles := []model.Profile{
			profileWith("a", []string{"x"}, []string{"go"}),
			{UserID: "bare-1"},
			profileWith("b", []string{"x"}, []string{"js"}),
			{UserID: "bare-2"},
		}

		teams := matching.FormTeams(profiles, matching.WithTeamSize(4))

		Convey("Then they are still consumed, scoring zero against everyone", func() {
			total := 0
			for _, team := range teams {
				total += team.Size()
			}
			So(total, ShouldEqual, 4)
		})
	})
}
