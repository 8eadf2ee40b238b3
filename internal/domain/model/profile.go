// Package model contains domain models passed between layers.
package model

// Intent captures a participant's stated team-formation preference.
type Intent string

// Known intent values. Anything else is treated as IntentNone.
const (
	IntentLookingForMembers Intent = "looking_for_members"
	IntentWantToBeMatched   Intent = "want_to_be_matched"
	IntentNone              Intent = ""
)

// Matchable reports whether the intent opts the participant into matching.
func (i Intent) Matchable() bool {
	return i == IntentLookingForMembers || i == IntentWantToBeMatched
}

// Application holds the hackathon application attached to a profile.
// Fields mirror the portal's application form.
type Application struct {
	Interests  []string `json:"interests"`
	Skills     []string `json:"skills"`
	Background string   `json:"background"`
	Intent     Intent   `json:"team_formation_intent"`
}

// Profile represents a participant on the roster. A profile without an
// Application contributes nothing to matching and is never an error.
type Profile struct {
	UserID       string       `json:"user_id"`
	Name         string       `json:"name,omitempty"`
	GithubHandle string       `json:"github_handle,omitempty"`
	Application  *Application `json:"application,omitempty"`
}

// HasApplication reports whether the profile carries application data.
func (p Profile) HasApplication() bool {
	return p.Application != nil
}

// Team is an ordered grouping of profiles produced by team formation.
// Membership is fixed once returned; callers re-run formation for new
// groupings.
type Team struct {
	Members []Profile `json:"members"`
}

// Size returns the number of members on the team.
func (t Team) Size() int {
	return len(t.Members)
}
