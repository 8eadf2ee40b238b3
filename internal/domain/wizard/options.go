package wizard

import (
	"github.com/ohack/teamforge/pkg/logger"
)

// SessionOption applies a configuration option to a Session.
type SessionOption func(*Session)

// WithScheduler sets the debounced scheduler driving the async checks.
func WithScheduler(sched Scheduler) SessionOption {
	return func(s *Session) {
		if sched != nil {
			s.sched = sched
		}
	}
}

// WithSlackChecker sets the Slack channel availability checker.
func WithSlackChecker(c Checker) SessionOption {
	return func(s *Session) {
		if c != nil {
			s.slackChecker = c
		}
	}
}

// WithGithubChecker sets the GitHub username checker.
func WithGithubChecker(c Checker) SessionOption {
	return func(s *Session) {
		if c != nil {
			s.githubChecker = c
		}
	}
}

// WithLogger sets a custom logger for the session.
func WithLogger(l logger.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}
