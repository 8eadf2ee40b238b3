// Package repository defines the roster store interface and errors.
package repository

import (
	"context"

	"github.com/ohack/teamforge/internal/domain/model"
)

// Store provides read/write access to the participant roster.
type Store interface {
	// Upsert inserts or replaces a profile keyed by UserID.
	// Returns true if the profile was newly inserted.
	Upsert(ctx context.Context, p model.Profile) (bool, error)

	// Get returns the profile for userID.
	// Returns ErrNotFound if the profile is unknown.
	Get(ctx context.Context, userID string) (model.Profile, error)

	// List returns every profile in insertion order. The slice is a copy;
	// callers may mutate it freely. Insertion order is stable across
	// calls, which keeps team formation deterministic.
	List(ctx context.Context) ([]model.Profile, error)

	// Delete removes a profile. Returns ErrNotFound if it was absent.
	Delete(ctx context.Context, userID string) error

	// Count returns the number of profiles on the roster.
	Count(ctx context.Context) int
}
