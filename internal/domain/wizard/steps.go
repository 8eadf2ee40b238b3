package wizard

import "context"

// NextDisabled reports whether the current step's gate blocks advancement.
func (s *Session) NextDisabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepBlocked(s.step)
}

// Next advances one step when the current gate allows it.
func (s *Session) Next(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step >= StepConfirm {
		return ErrAtLastStep
	}
	if s.stepBlocked(s.step) {
		return ErrStepBlocked
	}
	s.step++
	s.touch()
	return nil
}

// Back moves one step backward. No gate applies in this direction.
func (s *Session) Back(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step <= StepTeamDetails {
		return ErrAtFirstStep
	}
	s.step--
	s.touch()
	return nil
}

// Submit re-runs the full validator. The first failing rule wins and its
// message is returned as a *ValidationError; nil means the submission is
// accepted and the session can be discarded.
func (s *Session) Submit(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateSubmit()
}

// stepBlocked evaluates a single step's gate. Caller holds the mutex.
func (s *Session) stepBlocked(step Step) bool {
	switch step {
	case StepTeamDetails:
		return s.teamName == "" ||
			s.slackChannel == "" ||
			!slackChannelPattern.MatchString(s.slackChannel) ||
			s.slack.Status == StatusPending ||
			s.slack.Status == StatusInvalid
	case StepGithubInfo:
		return s.githubUsername == "" ||
			s.github.Status == StatusPending ||
			s.github.Status == StatusInvalid
	case StepNonprofitRanking:
		return len(s.nonprofits) == 0
	case StepConfirm:
		return s.validateSubmit() != nil
	default:
		return true
	}
}

// validateSubmit applies every submission rule in fixed order. Caller
// holds the mutex.
func (s *Session) validateSubmit() error {
	switch {
	case s.teamName == "":
		return &ValidationError{Message: msgTeamNameRequired}
	case s.slackChannel == "":
		return &ValidationError{Message: msgSlackRequired}
	case !slackChannelPattern.MatchString(s.slackChannel):
		return &ValidationError{Message: msgSlackFormat}
	case s.githubUsername == "":
		return &ValidationError{Message: msgGithubRequired}
	case s.slack.Status == StatusPending || s.github.Status == StatusPending:
		return &ValidationError{Message: msgValidationPending}
	case s.github.Status != StatusValid:
		return &ValidationError{Message: msgGithubInvalid}
	case s.slack.Status != StatusValid:
		return &ValidationError{Message: msgSlackInvalid}
	case len(s.nonprofits) == 0:
		return &ValidationError{Message: msgNonprofitRequired}
	}
	return nil
}

// View is an immutable snapshot of the session for the UI layer.
type View struct {
	ID             string     `json:"id"`
	Step           Step       `json:"step"`
	TeamName       string     `json:"team_name"`
	SlackChannel   string     `json:"slack_channel"`
	GithubUsername string     `json:"github_username"`
	Nonprofits     []string   `json:"nonprofits"`
	Slack          FieldState `json:"slack"`
	Github         FieldState `json:"github"`
	NextDisabled   bool       `json:"next_disabled"`
}

// View snapshots the current session state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		ID:             s.id,
		Step:           s.step,
		TeamName:       s.teamName,
		SlackChannel:   s.slackChannel,
		GithubUsername: s.githubUsername,
		Nonprofits:     append([]string(nil), s.nonprofits...),
		Slack:          s.slack,
		Github:         s.github,
		NextDisabled:   s.stepBlocked(s.step),
	}
}
