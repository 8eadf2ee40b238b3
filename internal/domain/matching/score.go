// Package matching computes pairwise compatibility scores and forms teams
// from a roster of participant profiles. All functions are pure and
// deterministic; they are safe to call repeatedly without synchronization.
package matching

import (
	"math"

	"github.com/ohack/teamforge/internal/domain/model"
)

// Score weights and bounds.
const (
	interestWeight = 60
	skillWeight    = 40
	maxScore       = 100
)

// Score computes the directional compatibility of self toward other as an
// integer in [0,100]. Profiles without an application score 0.
//
// Shared interests pull the score up (weighted 60); divergent skill sets
// pull it up too (weighted 40), on the idea that a team wants overlapping
// interests but complementary skills. Normalization divides by each side's
// own set sizes, so Score(a, b) and Score(b, a) may legitimately differ.
// Callers must not assume symmetry.
func Score(self, other model.Profile) int {
	if !self.HasApplication() || !other.HasApplication() {
		return 0
	}

	common := 0
	for _, interest := range self.Application.Interests {
		if contains(other.Application.Interests, interest) {
			common++
		}
	}
	interestTerm := float64(common) / float64(maxInt(len(self.Application.Interests), 1)) * interestWeight

	selfUnique := 0
	for _, skill := range self.Application.Skills {
		if !contains(other.Application.Skills, skill) {
			selfUnique++
		}
	}
	otherUnique := 0
	for _, skill := range other.Application.Skills {
		if !contains(self.Application.Skills, skill) {
			otherUnique++
		}
	}
	totalSkills := len(self.Application.Skills) + len(other.Application.Skills)
	skillTerm := float64(selfUnique+otherUnique) / float64(maxInt(totalSkills, 1)) * skillWeight

	score := int(math.Round(interestTerm + skillTerm))
	if score > maxScore {
		score = maxScore
	}
	return score
}

// Matrix holds precomputed pairwise scores for a fixed roster ordering.
// The diagonal is always zero.
type Matrix [][]int

// NewMatrix computes the full pairwise score matrix once. Team formation
// reads from it instead of rescoring pairs.
func NewMatrix(profiles []model.Profile) Matrix {
	n := len(profiles)
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]int, n)
		for j := range m[i] {
			if i == j {
				continue
			}
			m[i][j] = Score(profiles[i], profiles[j])
		}
	}
	return m
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
