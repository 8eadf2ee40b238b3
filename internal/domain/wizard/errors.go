package wizard

import "errors"

// Sentinel kinds for step transitions.
var (
	ErrAtFirstStep     = errors.New("already at first step")
	ErrAtLastStep      = errors.New("already at last step")
	ErrStepBlocked     = errors.New("current step validation incomplete")
	ErrSessionNotFound = errors.New("wizard session not found")
)

// User-facing validation messages, surfaced in first-failing-rule order.
const (
	msgTeamNameRequired  = "Team name is required."
	msgSlackRequired     = "Slack channel is required."
	msgSlackFormat       = "Slack channel may only contain lowercase letters, numbers, hyphens, and underscores."
	msgGithubRequired    = "GitHub username is required."
	msgValidationPending = "Still validating your details, try again in a moment."
	msgGithubInvalid     = "GitHub username could not be verified."
	msgSlackInvalid      = "Slack channel could not be verified."
	msgNonprofitRequired = "Select at least one nonprofit."
)

// ValidationError carries the human-readable message shown in the UI.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
