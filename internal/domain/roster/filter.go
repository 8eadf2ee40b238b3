// Package roster provides search/filter and category extraction over
// participant profiles. Like the matching package it is pure and holds no
// state, so callers may re-run it on every keystroke.
package roster

import (
	"strings"

	"github.com/ohack/teamforge/internal/domain/model"
)

// Criteria narrows a teammate search. Zero-value fields disable their
// stage, except the intent stage which always applies.
type Criteria struct {
	// Search is matched case-insensitively as a substring against the
	// profile name, github handle, background, and every interest and
	// skill entry.
	Search string

	// Interests keeps only profiles listing every requested interest.
	Interests []string

	// Skills keeps only profiles listing at least one requested skill.
	Skills []string

	// ExcludeUserID drops the caller's own profile from results.
	ExcludeUserID string
}

// Filter applies the teammate search stages in fixed order: text search,
// interests superset, skills intersection, intent, self-exclusion. A later
// stage only narrows; nothing removed earlier comes back.
func Filter(profiles []model.Profile, c Criteria) []model.Profile {
	out := make([]model.Profile, 0, len(profiles))
	search := strings.ToLower(strings.TrimSpace(c.Search))

	for _, p := range profiles {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if len(c.Interests) > 0 && !hasAllInterests(p, c.Interests) {
			continue
		}
		if len(c.Skills) > 0 && !hasAnySkill(p, c.Skills) {
			continue
		}
		if p.Application == nil || !p.Application.Intent.Matchable() {
			continue
		}
		if c.ExcludeUserID != "" && p.UserID == c.ExcludeUserID {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p model.Profile, search string) bool {
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(p.GithubHandle), search) {
		return true
	}
	if p.Application == nil {
		return false
	}
	if strings.Contains(strings.ToLower(p.Application.Background), search) {
		return true
	}
	for _, interest := range p.Application.Interests {
		if strings.Contains(strings.ToLower(interest), search) {
			return true
		}
	}
	for _, skill := range p.Application.Skills {
		if strings.Contains(strings.ToLower(skill), search) {
			return true
		}
	}
	return false
}

func hasAllInterests(p model.Profile, wanted []string) bool {
	if p.Application == nil {
		return false
	}
	for _, w := range wanted {
		found := false
		for _, have := range p.Application.Interests {
			if have == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func hasAnySkill(p model.Profile, wanted []string) bool {
	if p.Application == nil {
		return false
	}
	for _, w := range wanted {
		for _, have := range p.Application.Skills {
			if have == w {
				return true
			}
		}
	}
	return false
}
