package seedroster

import "time"

// Config holds configuration for the roster seeding run
type Config struct {
	BaseURL     string        // Base URL of the service
	NumProfiles int           // Number of profiles to generate
	TeamSize    int           // Target team size for the formation pass
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	OutputFile  string        // Output file for profiles
	LogFile     string        // Log file for run output
	Verbose     bool          // Enable verbose logging
}

// Profile mirrors the service's profile wire shape
type Profile struct {
	UserID       string       `json:"user_id"`
	Name         string       `json:"name"`
	GithubHandle string       `json:"github_handle,omitempty"`
	Application  *Application `json:"application,omitempty"`
}

// Application mirrors the hackathon application wire shape
type Application struct {
	Interests  []string `json:"interests"`
	Skills     []string `json:"skills"`
	Background string   `json:"background,omitempty"`
	Intent     string   `json:"team_formation_intent"`
}

// TeamView mirrors a formed team returned by POST /teams/form
type TeamView struct {
	Number  int      `json:"number"`
	Members []string `json:"members"`
	Size    int      `json:"size"`
}

// Catalog mirrors GET /catalog
type Catalog struct {
	Interests []string `json:"interests"`
	Skills    []string `json:"skills"`
}

// Stats holds run statistics
type Stats struct {
	ProfilesGenerated  int
	ProfilesSubmitted  int
	ProfilesSuccessful int
	ProfilesFailed     int
	MatchableProfiles  int
	TeamsFormed        int
	ParticipantsPlaced int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
