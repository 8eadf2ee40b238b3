// Package wizard implements the team-creation wizard: a four-step form
// whose advancement is gated by synchronous field rules and debounced
// remote existence checks for the Slack channel and GitHub username.
package wizard

import (
	"context"
	"regexp"
	"sync"
	"time"

	"github.com/ohack/teamforge/internal/domain/sequence"
	"github.com/ohack/teamforge/pkg/logger"
)

// Step identifies a wizard page. Transitions move one step at a time.
type Step int

// Wizard steps in order.
const (
	StepTeamDetails Step = iota
	StepGithubInfo
	StepNonprofitRanking
	StepConfirm

	stepCount
)

// Status describes the async validation state of a remotely checked field.
type Status string

// Field statuses.
const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusValid   Status = "valid"
	StatusInvalid Status = "invalid"
)

// FieldState pairs a status with the last human-readable message.
type FieldState struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Debounce keys, one per remotely checked field.
const (
	fieldSlack  = "slack_channel"
	fieldGithub = "github_username"
)

// slackChannelPattern is enforced synchronously before any remote call.
var slackChannelPattern = regexp.MustCompile(`^[a-z0-9-_]+$`)

// CheckResult is the outcome a Checker reports for a field value.
type CheckResult struct {
	Valid   bool
	Message string
}

// Checker performs a remote existence check. Implementations must fail
// closed: a transport problem yields an invalid result, not an error.
type Checker interface {
	Check(ctx context.Context, value string) CheckResult
}

// Scheduler runs a callback after a trailing-edge delay, superseding any
// pending callback for the same key.
type Scheduler interface {
	Schedule(key string, fn func(ctx context.Context))
	Cancel(key string) bool
}

// Session is one wizard instance. It is created when the wizard opens and
// discarded after a successful submit or an explicit abandon. All methods
// are safe for concurrent use; debounced check callbacks re-enter through
// the session mutex.
type Session struct {
	mu sync.Mutex

	id   string
	step Step

	teamName       string
	slackChannel   string
	githubUsername string
	nonprofits     []string

	slack  FieldState
	github FieldState

	seq           sequence.Tracker
	sched         Scheduler
	slackChecker  Checker
	githubChecker Checker

	touchedAt time.Time

	logger logger.Logger
}

// NewSession creates a wizard session. A scheduler and both checkers must
// be supplied via options for the async checks to run; without them the
// remotely checked fields stay pending forever, which fails closed.
func NewSession(id string, opts ...SessionOption) *Session {
	s := &Session{
		id:        id,
		step:      StepTeamDetails,
		slack:     FieldState{Status: StatusIdle},
		github:    FieldState{Status: StatusIdle},
		seq:       sequence.NewTracker(),
		touchedAt: time.Now(),
		logger:    logger.Get().Named("wizard"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Step returns the current wizard step.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// LastActive returns the time of the most recent mutation, for idle
// session reaping.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}

// SetTeamName records the team name. No remote check applies.
func (s *Session) SetTeamName(_ context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teamName = name
	s.touch()
}

// SetSlackChannel records the channel name and schedules its availability
// check. The format rule runs synchronously first: malformed input is
// rejected locally and no remote call is ever issued for it.
func (s *Session) SetSlackChannel(ctx context.Context, channel string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slackChannel = channel
	s.touch()

	// Any in-flight response for an older value is now stale.
	seq := s.seq.Issue(ctx, fieldSlack)

	if channel == "" {
		s.cancel(fieldSlack)
		s.slack = FieldState{Status: StatusIdle}
		return
	}
	if !slackChannelPattern.MatchString(channel) {
		s.cancel(fieldSlack)
		s.slack = FieldState{
			Status:  StatusInvalid,
			Message: msgSlackFormat,
		}
		return
	}

	s.slack = FieldState{Status: StatusPending}
	s.scheduleCheck(fieldSlack, channel, seq, s.slackChecker, &s.slack)
}

// SetGithubUsername records the username and schedules its existence check.
func (s *Session) SetGithubUsername(ctx context.Context, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.githubUsername = username
	s.touch()

	seq := s.seq.Issue(ctx, fieldGithub)

	if username == "" {
		s.cancel(fieldGithub)
		s.github = FieldState{Status: StatusIdle}
		return
	}

	s.github = FieldState{Status: StatusPending}
	s.scheduleCheck(fieldGithub, username, seq, s.githubChecker, &s.github)
}

// SetNonprofits records the ranked nonprofit selections.
func (s *Session) SetNonprofits(_ context.Context, ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nonprofits = append([]string(nil), ids...)
	s.touch()
}

// Patch carries a partial field update. Nil pointers leave the field as is.
type Patch struct {
	TeamName       *string  `json:"team_name,omitempty"`
	SlackChannel   *string  `json:"slack_channel,omitempty"`
	GithubUsername *string  `json:"github_username,omitempty"`
	Nonprofits     []string `json:"nonprofits,omitempty"`
}

// Apply runs the setter for every field present in the patch.
func (s *Session) Apply(ctx context.Context, p Patch) {
	if p.TeamName != nil {
		s.SetTeamName(ctx, *p.TeamName)
	}
	if p.SlackChannel != nil {
		s.SetSlackChannel(ctx, *p.SlackChannel)
	}
	if p.GithubUsername != nil {
		s.SetGithubUsername(ctx, *p.GithubUsername)
	}
	if p.Nonprofits != nil {
		s.SetNonprofits(ctx, p.Nonprofits)
	}
}

// scheduleCheck debounces a remote check and applies its result only while
// seq is still the latest issued for the field. Caller holds the mutex.
func (s *Session) scheduleCheck(field, value string, seq uint64, checker Checker, state *FieldState) {
	if s.sched == nil || checker == nil {
		return
	}
	s.sched.Schedule(field, func(ctx context.Context) {
		res := checker.Check(ctx, value)

		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.seq.IsCurrent(ctx, field, seq) {
			s.logger.Debug(ctx, "discarding stale check result",
				logger.String("field", field),
				logger.String("value", value),
			)
			return
		}
		status := StatusValid
		if !res.Valid {
			status = StatusInvalid
		}
		*state = FieldState{Status: status, Message: res.Message}
	})
}

// cancel drops a pending debounced check. Caller holds the mutex.
func (s *Session) cancel(field string) {
	if s.sched != nil {
		s.sched.Cancel(field)
	}
}

// touch updates the idle timestamp. Caller holds the mutex.
func (s *Session) touch() {
	s.touchedAt = time.Now()
}
