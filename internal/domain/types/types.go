// Package types contains common types used across the application
package types

// MatchResult carries a computed compatibility score between two profiles.
type MatchResult struct {
	SelfID  string `json:"self_id"`
	OtherID string `json:"other_id"`
	Score   int    `json:"score"`
}

// TeamView is the wire representation of a formed team.
type TeamView struct {
	Number  int      `json:"number"`
	Members []string `json:"members"`
	Size    int      `json:"size"`
}
