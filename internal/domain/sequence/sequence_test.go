package sequence_test

import (
	"context"
	"sync"
	"testing"

	sequence "github.com/ohack/teamforge/internal/domain/sequence"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTracker(t *testing.T) {
	ctx := context.Background()

	Convey("Given a fresh tracker", t, func() {
		tracker := sequence.NewTracker()

		Convey("Then unknown keys are never current", func() {
			So(tracker.IsCurrent(ctx, "slack", 0), ShouldBeFalse)
			So(tracker.IsCurrent(ctx, "slack", 1), ShouldBeFalse)
		})

		Convey("When issuing numbers for a key", func() {
			first := tracker.Issue(ctx, "slack")
			second := tracker.Issue(ctx, "slack")

			Convey("Then numbers increase and only the latest is current", func() {
				So(second, ShouldBeGreaterThan, first)
				So(tracker.IsCurrent(ctx, "slack", second), ShouldBeTrue)
				So(tracker.IsCurrent(ctx, "slack", first), ShouldBeFalse)
			})
		})

		Convey("When issuing for independent keys", func() {
			slackSeq := tracker.Issue(ctx, "slack")
			githubSeq := tracker.Issue(ctx, "github")

			Convey("Then keys do not interfere", func() {
				So(tracker.IsCurrent(ctx, "slack", slackSeq), ShouldBeTrue)
				So(tracker.IsCurrent(ctx, "github", githubSeq), ShouldBeTrue)
				So(tracker.Size(), ShouldEqual, 2)
			})
		})

		Convey("When issuing concurrently", func() {
			const goroutines = 32
			var wg sync.WaitGroup
			for i := 0; i < goroutines; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					tracker.Issue(ctx, "slack")
				}()
			}
			wg.Wait()

			Convey("Then the latest number equals the issue count", func() {
				So(tracker.IsCurrent(ctx, "slack", goroutines), ShouldBeTrue)
			})
		})
	})
}
