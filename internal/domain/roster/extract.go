package roster

import (
	"github.com/ohack/teamforge/internal/domain/model"
)

// Catalog lists every interest and skill appearing across the roster,
// de-duplicated and in first-seen order.
type Catalog struct {
	Interests []string `json:"interests"`
	Skills    []string `json:"skills"`
}

// Extract builds the interest/skill catalog. Profiles without an
// application contribute nothing.
func Extract(profiles []model.Profile) Catalog {
	cat := Catalog{
		Interests: []string{},
		Skills:    []string{},
	}
	seenInterests := map[string]struct{}{}
	seenSkills := map[string]struct{}{}

	for _, p := range profiles {
		if p.Application == nil {
			continue
		}
		for _, interest := range p.Application.Interests {
			if _, ok := seenInterests[interest]; ok {
				continue
			}
			seenInterests[interest] = struct{}{}
			cat.Interests = append(cat.Interests, interest)
		}
		for _, skill := range p.Application.Skills {
			if _, ok := seenSkills[skill]; ok {
				continue
			}
			seenSkills[skill] = struct{}{}
			cat.Skills = append(cat.Skills, skill)
		}
	}
	return cat
}
