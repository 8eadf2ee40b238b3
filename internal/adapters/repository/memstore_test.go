package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/ohack/teamforge/internal/domain/model"
)

func TestMemStore_BasicOperations(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore(ctx)

	// Empty store
	if count := store.Count(ctx); count != 0 {
		t.Errorf("expected count 0, got %d", count)
	}
	if _, err := store.Get(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// First insert
	inserted, err := store.Upsert(ctx, model.Profile{UserID: "alice", Name: "Alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inserted {
		t.Error("expected first upsert to report an insert")
	}
	if count := store.Count(ctx); count != 1 {
		t.Errorf("expected count 1, got %d", count)
	}

	// Replace keeps the count
	inserted, err = store.Upsert(ctx, model.Profile{UserID: "alice", Name: "Alice B."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted {
		t.Error("expected replacement upsert to report an update")
	}
	if count := store.Count(ctx); count != 1 {
		t.Errorf("expected count 1 after replace, got %d", count)
	}

	got, err := store.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Alice B." {
		t.Errorf("expected replaced name, got %q", got.Name)
	}

	// Delete
	if err := store.Delete(ctx, "alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete(ctx, "alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
	if count := store.Count(ctx); count != 0 {
		t.Errorf("expected count 0 after delete, got %d", count)
	}
}

func TestMemStore_RejectsEmptyUserID(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore(ctx)

	if _, err := store.Upsert(ctx, model.Profile{}); !errors.Is(err, ErrMissingUserID) {
		t.Errorf("expected ErrMissingUserID, got %v", err)
	}
}

func TestMemStore_ListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore(ctx, WithShardCount(4))

	const n = 50
	for i := 0; i < n; i++ {
		if _, err := store.Upsert(ctx, model.Profile{UserID: fmt.Sprintf("user-%03d", i)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Replacing an early profile must not move it.
	if _, err := store.Upsert(ctx, model.Profile{UserID: "user-003", Name: "still third"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profiles, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != n {
		t.Fatalf("expected %d profiles, got %d", n, len(profiles))
	}
	for i, p := range profiles {
		want := fmt.Sprintf("user-%03d", i)
		if p.UserID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, p.UserID)
		}
	}
}

func TestMemStore_ConcurrentUpserts(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore(ctx, WithShardCount(8))

	const writers = 16
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				id := fmt.Sprintf("w%d-p%d", w, i)
				if _, err := store.Upsert(ctx, model.Profile{UserID: id}); err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		}(w)
	}
	wg.Wait()

	if count := store.Count(ctx); count != writers*perWriter {
		t.Errorf("expected %d profiles, got %d", writers*perWriter, count)
	}

	profiles, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != writers*perWriter {
		t.Errorf("expected %d listed profiles, got %d", writers*perWriter, len(profiles))
	}
}
