package seedroster

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/ohack/teamforge/pkg/logger"
)

// Pools the generator draws hackathon applications from.
var (
	interestPool = []string{
		"climate", "education", "health", "housing", "food security",
		"animal welfare", "disaster relief", "accessibility", "civic tech",
		"youth mentoring",
	}
	skillPool = []string{
		"go", "python", "react", "typescript", "postgres", "terraform",
		"figma", "data science", "android", "ios", "product management",
	}
	firstNames = []string{
		"Alex", "Sam", "Jordan", "Taylor", "Morgan", "Casey", "Riley",
		"Quinn", "Avery", "Rowan",
	}
	lastNames = []string{
		"Rivera", "Chen", "Okafor", "Novak", "Silva", "Haddad", "Kim",
		"Fischer", "Pat", "Osei",
	}
)

// Intent distribution cases. Most seeded participants opt into matching.
const (
	caseLookingForMembers = 0 // weight 4
	caseWantToBeMatched   = 4 // weight 3
	caseNoIntent          = 7 // weight 2
	caseNoApplication     = 9 // weight 1
	intentDivisor         = 10
)

// randIntn returns a random int in [0, n) using crypto/rand.
func randIntn(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// randSubset picks between min and max distinct entries from pool.
func randSubset(pool []string, minCount, maxCount int) []string {
	count := minCount + randIntn(maxCount-minCount+1)
	picked := make([]string, 0, count)
	used := make(map[int]bool, count)
	for len(picked) < count {
		i := randIntn(len(pool))
		if used[i] {
			continue
		}
		used[i] = true
		picked = append(picked, pool[i])
	}
	return picked
}

// generateProfiles creates the specified number of profiles with unique user IDs.
func generateProfiles(ctx context.Context, config *Config, stats *Stats) ([]Profile, error) {
	logger.Get().Info(ctx, "generating profiles with unique user IDs", logger.Int("numProfiles", config.NumProfiles))

	profiles := make([]Profile, config.NumProfiles)

	// Pre-allocate user IDs to ensure uniqueness
	userIDs := make([]string, config.NumProfiles)
	for i := 0; i < config.NumProfiles; i++ {
		userIDs[i] = uuid.New().String()
	}

	// Generate profiles concurrently
	type profileResult struct {
		index   int
		profile Profile
		err     error
	}

	resultChan := make(chan profileResult, config.NumProfiles)

	// Use worker pool for profile generation
	workerCount := minInt(config.Workers, config.NumProfiles)
	profilesPerWorker := config.NumProfiles / workerCount

	for worker := 0; worker < workerCount; worker++ {
		start := worker * profilesPerWorker
		end := start + profilesPerWorker
		if worker == workerCount-1 {
			end = config.NumProfiles // Last worker gets remaining profiles
		}

		go func(start, end int) {
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					resultChan <- profileResult{index: i, err: ctx.Err()}
					return
				default:
					resultChan <- profileResult{index: i, profile: generateSingleProfile(userIDs[i])}
				}
			}
		}(start, end)
	}

	// Collect results
	matchable := 0
	for i := 0; i < config.NumProfiles; i++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during profile generation: %w", ctx.Err())
		case result := <-resultChan:
			if result.err != nil {
				return nil, fmt.Errorf("failed to generate profile %d: %w", result.index, result.err)
			}
			profiles[result.index] = result.profile
			if a := result.profile.Application; a != nil &&
				(a.Intent == "looking_for_members" || a.Intent == "want_to_be_matched") {
				matchable++
			}
		}
	}

	stats.ProfilesGenerated = len(profiles)
	stats.MatchableProfiles = matchable
	logger.Get().Info(ctx, "generated profiles successfully",
		logger.Int("count", len(profiles)),
		logger.Int("matchable", matchable),
	)

	return profiles, nil
}

// generateSingleProfile creates a single profile with the given user ID.
func generateSingleProfile(userID string) Profile {
	name := firstNames[randIntn(len(firstNames))] + " " + lastNames[randIntn(len(lastNames))]

	p := Profile{
		UserID:       userID,
		Name:         name,
		GithubHandle: strings.ToLower(strings.ReplaceAll(name, " ", "-")),
	}

	switch d := randIntn(intentDivisor); {
	case d >= caseNoApplication:
		// A slice of participants never finished the application.
		return p
	case d >= caseNoIntent:
		p.Application = newApplication("none")
	case d >= caseWantToBeMatched:
		p.Application = newApplication("want_to_be_matched")
	default:
		p.Application = newApplication("looking_for_members")
	}
	return p
}

func newApplication(intent string) *Application {
	return &Application{
		Interests:  randSubset(interestPool, 1, 4),
		Skills:     randSubset(skillPool, 1, 5),
		Background: "Volunteer with " + interestPool[randIntn(len(interestPool))] + " nonprofits",
		Intent:     intent,
	}
}

// minInt returns the minimum of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
