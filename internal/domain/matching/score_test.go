package matching_test

import (
	"testing"

	matching "github.com/ohack/teamforge/internal/domain/matching"
	model "github.com/ohack/teamforge/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func profileWith(id string, interests, skills []string) model.Profile {
	return model.Profile{
		UserID: id,
		Application: &model.Application{
			Interests: interests,
			Skills:    skills,
			Intent:    model.IntentWantToBeMatched,
		},
	}
}

func TestScore(t *testing.T) {
	Convey("Given two profiles with applications", t, func() {
		Convey("When scoring a profile against an identical clone", func() {
			self := profileWith("u1", []string{"a", "b"}, []string{"x"})
			clone := profileWith("u2", []string{"a", "b"}, []string{"x"})

			Convey("Then the full interest term and no skill term yields 60", func() {
				So(matching.Score(self, clone), ShouldEqual, 60)
			})
		})

		Convey("When interest overlap is partial", func() {
			// 1 of 4 interests overlap from A's side, 1 of 1 from B's side.
			a := profileWith("a", []string{"w", "x", "y", "z"}, nil)
			b := profileWith("b", []string{"w"}, nil)

			Convey("Then the score is directional and must stay that way", func() {
				So(matching.Score(a, b), ShouldEqual, 15) // 1/4 * 60
				So(matching.Score(b, a), ShouldEqual, 60) // 1/1 * 60
				So(matching.Score(a, b), ShouldNotEqual, matching.Score(b, a))
			})
		})

		Convey("When skill sets fully diverge", func() {
			a := profileWith("a", []string{"c"}, []string{"go", "rust"})
			b := profileWith("b", []string{"c"}, []string{"react", "figma"})

			Convey("Then the skill term is maximal", func() {
				// 60 interest + (2+2)/4 * 40 skill.
				So(matching.Score(a, b), ShouldEqual, 100)
			})
		})

		Convey("When both profiles have empty categories", func() {
			a := profileWith("a", nil, nil)
			b := profileWith("b", nil, nil)

			Convey("Then the score is zero, not a division error", func() {
				So(matching.Score(a, b), ShouldEqual, 0)
			})
		})
	})

	Convey("Given a profile without an application", t, func() {
		bare := model.Profile{UserID: "bare"}
		full := profileWith("full", []string{"a"}, []string{"x"})

		Convey("Then scoring in either direction returns zero", func() {
			So(matching.Score(bare, full), ShouldEqual, 0)
			So(matching.Score(full, bare), ShouldEqual, 0)
			So(matching.Score(bare, bare), ShouldEqual, 0)
		})
	})

	Convey("Given arbitrary profile pairs", t, func() {
		pairs := [][2]model.Profile{
			{profileWith("1", []string{"a"}, []string{"x", "y", "z"}), profileWith("2", nil, nil)},
			{profileWith("3", []string{"a", "b", "c"}, []string{"x"}), profileWith("4", []string{"a", "b", "c"}, []string{"y"})},
			{{UserID: "5"}, profileWith("6", []string{"a"}, nil)},
		}

		Convey("Then every score is bounded to [0,100]", func() {
			for _, p := range pairs {
				s := matching.Score(p[0], p[1])
				So(s, ShouldBeGreaterThanOrEqualTo, 0)
				So(s, ShouldBeLessThanOrEqualTo, 100)
			}
		})
	})
}

func TestNewMatrix(t *testing.T) {
	Convey("Given a small roster", t, func() {
		profiles := []model.Profile{
			profileWith("a", []string{"edu"}, []string{"go"}),
			profileWith("b", []string{"edu"}, []string{"js"}),
			{UserID: "c"},
		}
		m := matching.NewMatrix(profiles)

		Convey("Then the diagonal is zero", func() {
			for i := range m {
				So(m[i][i], ShouldEqual, 0)
			}
		})

		Convey("Then off-diagonal cells match pairwise scores", func() {
			So(m[0][1], ShouldEqual, matching.Score(profiles[0], profiles[1]))
			So(m[1][0], ShouldEqual, matching.Score(profiles[1], profiles[0]))
			So(m[0][2], ShouldEqual, 0)
		})
	})
}
