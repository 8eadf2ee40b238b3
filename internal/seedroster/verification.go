package seedroster

import (
	"fmt"
	"log"
)

// verifyTeams checks that the formation pass produced a proper partition of
// the matchable roster.
func verifyTeams(config *Config, profiles []Profile, teams []TeamView, stats *Stats) error {
	log.Println("🔍 Verifying formed teams...")

	if len(teams) == 0 {
		if stats.MatchableProfiles == 0 {
			log.Println("✅ No matchable participants, no teams expected")
			return nil
		}
		return fmt.Errorf("no teams formed for %d matchable participants", stats.MatchableProfiles)
	}

	// Every member appears on exactly one team.
	seen := make(map[string]int, stats.MatchableProfiles)
	for _, team := range teams {
		if team.Size != len(team.Members) {
			return fmt.Errorf("team %d reports size %d but has %d members", team.Number, team.Size, len(team.Members))
		}
		if team.Size > config.TeamSize {
			return fmt.Errorf("team %d exceeds target size %d", team.Number, config.TeamSize)
		}
		for _, m := range team.Members {
			seen[m]++
			if seen[m] > 1 {
				return fmt.Errorf("participant %s appears on more than one team", m)
			}
		}
	}

	// Every placed member must belong to the submitted matchable roster.
	matchable := make(map[string]bool, stats.MatchableProfiles)
	for _, p := range profiles {
		if a := p.Application; a != nil &&
			(a.Intent == "looking_for_members" || a.Intent == "want_to_be_matched") {
			matchable[p.UserID] = true
		}
	}
	for id := range seen {
		if !matchable[id] {
			return fmt.Errorf("participant %s was placed but never opted into matching", id)
		}
	}
	if len(seen) != len(matchable) {
		return fmt.Errorf("placed %d participants, expected %d", len(seen), len(matchable))
	}

	// Only the last team may run short.
	for i, team := range teams[:len(teams)-1] {
		if team.Size != config.TeamSize {
			return fmt.Errorf("team %d is short (%d members) but is not the final team", i+1, team.Size)
		}
	}

	log.Printf("✅ Verified %d teams covering %d participants", len(teams), len(seen))
	return nil
}

// displayTeams prints the formed teams.
func displayTeams(teams []TeamView, verbose bool) {
	if !verbose {
		return
	}
	for _, team := range teams {
		log.Printf("🏆 Team %d (%d members):", team.Number, team.Size)
		for _, m := range team.Members {
			log.Printf("   - %s", m)
		}
	}
}
