package wizard_test

import (
	"context"
	"sync"
	"testing"

	wizard "github.com/ohack/teamforge/internal/domain/wizard"
	"github.com/ohack/teamforge/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

// manualScheduler captures scheduled callbacks so tests control exactly
// when the trailing edge fires.
type manualScheduler struct {
	mu        sync.Mutex
	pending   map[string]func(context.Context)
	scheduled map[string]int
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{
		pending:   map[string]func(context.Context){},
		scheduled: map[string]int{},
	}
}

func (m *manualScheduler) Schedule(key string, fn func(context.Context)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[key] = fn
	m.scheduled[key]++
}

func (m *manualScheduler) Cancel(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.pending[key]
	delete(m.pending, key)
	return ok
}

// Take removes and returns the pending callback without running it.
func (m *manualScheduler) Take(key string) func(context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn := m.pending[key]
	delete(m.pending, key)
	return fn
}

// Fire runs the pending callback for key, if any.
func (m *manualScheduler) Fire(key string) {
	if fn := m.Take(key); fn != nil {
		fn(context.Background())
	}
}

// countingChecker is a Checker returning canned results per value.
type countingChecker struct {
	mu      sync.Mutex
	results map[string]wizard.CheckResult
	calls   []string
}

func newCountingChecker(results map[string]wizard.CheckResult) *countingChecker {
	return &countingChecker{results: results}
}

func (c *countingChecker) Check(_ context.Context, value string) wizard.CheckResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, value)
	if res, ok := c.results[value]; ok {
		return res
	}
	return wizard.CheckResult{Valid: true}
}

func (c *countingChecker) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func newTestSession() (*wizard.Session, *manualScheduler, *countingChecker, *countingChecker) {
	sched := newManualScheduler()
	slack := newCountingChecker(map[string]wizard.CheckResult{
		"taken-channel": {Valid: false, Message: "channel exists"},
	})
	github := newCountingChecker(map[string]wizard.CheckResult{
		"ghost-user": {Valid: false, Message: "no such user"},
	})
	s := wizard.NewSession("session-1",
		wizard.WithScheduler(sched),
		wizard.WithSlackChecker(slack),
		wizard.WithGithubChecker(github),
	)
	return s, sched, slack, github
}

func TestSlackChannelValidation(t *testing.T) {
	ctx := context.Background()

	Convey("Given a fresh session", t, func() {
		s, sched, slack, _ := newTestSession()

		Convey("When the channel has uppercase or spaces", func() {
			s.SetSlackChannel(ctx, "Team One")

			Convey("Then it is rejected locally with no remote call", func() {
				view := s.View()
				So(view.Slack.Status, ShouldEqual, wizard.StatusInvalid)
				So(view.Slack.Message, ShouldNotBeEmpty)
				So(slack.callCount(), ShouldEqual, 0)
				So(sched.scheduled["slack_channel"], ShouldEqual, 0)
			})
		})

		Convey("When the channel is well-formed", func() {
			s.SetSlackChannel(ctx, "team-one")

			Convey("Then the check is pending until the debounce fires", func() {
				So(s.View().Slack.Status, ShouldEqual, wizard.StatusPending)
				So(slack.callCount(), ShouldEqual, 0)

				sched.Fire("slack_channel")
				So(slack.callCount(), ShouldEqual, 1)
				So(s.View().Slack.Status, ShouldEqual, wizard.StatusValid)
			})
		})

		Convey("When several keystrokes land within the debounce window", func() {
			s.SetSlackChannel(ctx, "t")
			s.SetSlackChannel(ctx, "te")
			s.SetSlackChannel(ctx, "team-one")

			Convey("Then exactly one remote call runs, for the final value", func() {
				sched.Fire("slack_channel")
				So(slack.callCount(), ShouldEqual, 1)
				So(slack.calls[0], ShouldEqual, "team-one")
				So(s.View().Slack.Status, ShouldEqual, wizard.StatusValid)
			})
		})

		Convey("When the channel is taken", func() {
			s.SetSlackChannel(ctx, "taken-channel")
			sched.Fire("slack_channel")

			Convey("Then the field is invalid with the remote message", func() {
				view := s.View()
				So(view.Slack.Status, ShouldEqual, wizard.StatusInvalid)
				So(view.Slack.Message, ShouldEqual, "channel exists")
			})
		})

		Convey("When the field is cleared", func() {
			s.SetSlackChannel(ctx, "team-one")
			s.SetSlackChannel(ctx, "")

			Convey("Then the status resets to idle and nothing fires", func() {
				So(s.View().Slack.Status, ShouldEqual, wizard.StatusIdle)
				So(sched.pending["slack_channel"], ShouldBeNil)
			})
		})
	})
}

func TestStaleResponseDiscarded(t *testing.T) {
	ctx := context.Background()

	Convey("Given a check already in flight when the field changes", t, func() {
		s, sched, _, _ := newTestSession()

		s.SetSlackChannel(ctx, "taken-channel")
		inFlight := sched.Take("slack_channel")
		So(inFlight, ShouldNotBeNil)

		s.SetSlackChannel(ctx, "team-two")

		Convey("When the older response arrives after the newer edit", func() {
			inFlight(context.Background())

			Convey("Then the stale result never updates the field", func() {
				So(s.View().Slack.Status, ShouldEqual, wizard.StatusPending)
			})
		})

		Convey("When the newer check completes", func() {
			inFlight(context.Background())
			sched.Fire("slack_channel")

			Convey("Then only the latest result stands", func() {
				So(s.View().Slack.Status, ShouldEqual, wizard.StatusValid)
			})
		})
	})
}

func TestStepGates(t *testing.T) {
	ctx := context.Background()

	Convey("Given a fresh session on the team details step", t, func() {
		s, sched, _, _ := newTestSession()

		Convey("Then Next is blocked until the step is complete", func() {
			So(s.NextDisabled(), ShouldBeTrue)
			So(s.Next(ctx), ShouldEqual, wizard.ErrStepBlocked)

			s.SetTeamName(ctx, "Code for Good")
			So(s.NextDisabled(), ShouldBeTrue)

			s.SetSlackChannel(ctx, "code-for-good")
			So(s.NextDisabled(), ShouldBeTrue) // still pending

			sched.Fire("slack_channel")
			So(s.NextDisabled(), ShouldBeFalse)
			So(s.Next(ctx), ShouldBeNil)
			So(s.Step(), ShouldEqual, wizard.StepGithubInfo)
		})

		Convey("Then Back is refused on the first step", func() {
			So(s.Back(ctx), ShouldEqual, wizard.ErrAtFirstStep)
		})
	})

	Convey("Given a session on the github step", t, func() {
		s, sched, _, _ := newTestSession()
		s.SetTeamName(ctx, "Code for Good")
		s.SetSlackChannel(ctx, "code-for-good")
		sched.Fire("slack_channel")
		So(s.Next(ctx), ShouldBeNil)

		Convey("Then the gate follows the github field state", func() {
			So(s.NextDisabled(), ShouldBeTrue)

			s.SetGithubUsername(ctx, "octocat")
			So(s.NextDisabled(), ShouldBeTrue) // pending

			sched.Fire("github_username")
			So(s.NextDisabled(), ShouldBeFalse)
			So(s.Next(ctx), ShouldBeNil)
			So(s.Step(), ShouldEqual, wizard.StepNonprofitRanking)
		})

		Convey("Then Back returns to team details", func() {
			So(s.Back(ctx), ShouldBeNil)
			So(s.Step(), ShouldEqual, wizard.StepTeamDetails)
		})
	})

	Convey("Given a session on the nonprofit step", t, func() {
		s, sched, _, _ := newTestSession()
		s.SetTeamName(ctx, "Code for Good")
		s.SetSlackChannel(ctx, "code-for-good")
		sched.Fire("slack_channel")
		So(s.Next(ctx), ShouldBeNil)
		s.SetGithubUsername(ctx, "octocat")
		sched.Fire("github_username")
		So(s.Next(ctx), ShouldBeNil)

		Convey("Then at least one nonprofit is required", func() {
			So(s.NextDisabled(), ShouldBeTrue)

			s.SetNonprofits(ctx, []string{"npo-7"})
			So(s.NextDisabled(), ShouldBeFalse)
			So(s.Next(ctx), ShouldBeNil)
			So(s.Step(), ShouldEqual, wizard.StepConfirm)

			Convey("And Next past the last step is refused", func() {
				So(s.Next(ctx), ShouldEqual, wizard.ErrAtLastStep)
			})
		})
	})
}

func TestSubmitValidationOrder(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty session", t, func() {
		s, _, _, _ := newTestSession()

		Convey("Then the team name error wins even with other fields invalid", func() {
			s.SetSlackChannel(ctx, "Not Valid!!")
			err := s.Submit(ctx)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "Team name is required.")
		})
	})

	Convey("Given progressively completed fields", t, func() {
		s, sched, _, _ := newTestSession()

		s.SetTeamName(ctx, "Code for Good")
		So(s.Submit(ctx).Error(), ShouldEqual, "Slack channel is required.")

		s.SetSlackChannel(ctx, "Bad Channel")
		So(s.Submit(ctx).Error(), ShouldContainSubstring, "lowercase")

		s.SetSlackChannel(ctx, "code-for-good")
		sched.Fire("slack_channel")
		So(s.Submit(ctx).Error(), ShouldEqual, "GitHub username is required.")

		s.SetGithubUsername(ctx, "octocat")
		Convey("Then an unfinished check blocks submission", func() {
			So(s.Submit(ctx).Error(), ShouldContainSubstring, "validating")
		})

		Convey("Then resolved fields move validation along", func() {
			sched.Fire("github_username")
			So(s.Submit(ctx).Error(), ShouldEqual, "Select at least one nonprofit.")

			s.SetNonprofits(ctx, []string{"npo-1", "npo-2"})
			So(s.Submit(ctx), ShouldBeNil)
		})
	})

	Convey("Given a github username that failed verification", t, func() {
		s, sched, _, _ := newTestSession()
		s.SetTeamName(ctx, "Code for Good")
		s.SetSlackChannel(ctx, "code-for-good")
		sched.Fire("slack_channel")
		s.SetGithubUsername(ctx, "ghost-user")
		sched.Fire("github_username")
		s.SetNonprofits(ctx, []string{"npo-1"})

		Convey("Then submission reports the github failure", func() {
			err := s.Submit(ctx)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "GitHub")
		})
	})
}
