package matching

import (
	"github.com/ohack/teamforge/internal/domain/model"
)

// FormTeams greedily partitions profiles into teams of at most the
// configured size (default 4). Every profile is consumed exactly once and
// the last team may be short.
//
// Each team is seeded with the unassigned profile whose average score
// against the remaining unassigned profiles is highest, then filled with
// whichever unassigned profile maximizes the summed score against the
// current members. Ties go to the first index in input order, which keeps
// the output deterministic for a given roster ordering.
func FormTeams(profiles []model.Profile, opts ...Option) []model.Team {
	cfg := newFormationConfig(opts...)

	n := len(profiles)
	if n == 0 {
		return nil
	}

	matrix := NewMatrix(profiles)
	assigned := make([]bool, n)
	remaining := n

	var teams []model.Team
	for remaining > 0 {
		seed := bestAverage(matrix, assigned)
		assigned[seed] = true
		remaining--
		members := []int{seed}

		for len(members) < cfg.teamSize && remaining > 0 {
			next := bestSum(matrix, assigned, members)
			assigned[next] = true
			remaining--
			members = append(members, next)
		}

		team := model.Team{Members: make([]model.Profile, len(members))}
		for i, idx := range members {
			team.Members[i] = profiles[idx]
		}
		teams = append(teams, team)
	}
	return teams
}

// bestAverage picks the unassigned index with the highest average score
// against all other unassigned indices. First index wins ties.
func bestAverage(matrix Matrix, assigned []bool) int {
	best := -1
	bestAvg := -1.0
	for i := range matrix {
		if assigned[i] {
			continue
		}
		sum := 0
		count := 0
		for j := range matrix {
			if j == i || assigned[j] {
				continue
			}
			sum += matrix[i][j]
			count++
		}
		avg := 0.0
		if count > 0 {
			avg = float64(sum) / float64(count)
		}
		if avg > bestAvg {
			bestAvg = avg
			best = i
		}
	}
	return best
}

// bestSum picks the unassigned index maximizing the summed score against
// the current team members. First index wins ties.
func bestSum(matrix Matrix, assigned []bool, members []int) int {
	best := -1
	bestTotal := -1
	for i := range matrix {
		if assigned[i] {
			continue
		}
		total := 0
		for _, m := range members {
			total += matrix[i][m]
		}
		if total > bestTotal {
			bestTotal = total
			best = i
		}
	}
	return best
}
