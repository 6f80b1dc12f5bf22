package session

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	identity := Identity{UserID: 7, Username: "ayse", Email: "ayse@example.com"}
	token, err := store.Create(ctx, identity)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	got, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if *got != identity {
		t.Fatalf("unexpected identity %+v", got)
	}

	identity.ProfilePicURL = "/media/profile_pics/user_7_1.png"
	if err := store.Refresh(ctx, token, identity); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	got, err = store.Get(ctx, token)
	if err != nil {
		t.Fatalf("get after refresh failed: %v", err)
	}
	if got.ProfilePicURL != identity.ProfilePicURL {
		t.Fatalf("expected refreshed picture url, got %q", got.ProfilePicURL)
	}

	if err := store.Delete(ctx, token); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, token); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.Refresh(ctx, "missing", Identity{}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on refresh, got %v", err)
	}
	if err := store.Delete(ctx, "missing"); err != nil {
		t.Fatalf("delete of unknown token should be a no-op, got %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	current := time.Unix(1_700_000_000, 0)
	store.now = func() time.Time { return current }

	token, err := store.Create(context.Background(), Identity{UserID: 1})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	current = current.Add(30 * time.Second)
	if _, err := store.Get(context.Background(), token); err != nil {
		t.Fatalf("expected live session, got %v", err)
	}

	current = current.Add(2 * time.Minute)
	if _, err := store.Get(context.Background(), token); err != ErrNotFound {
		t.Fatalf("expected expired session, got %v", err)
	}
	if err := store.Refresh(context.Background(), token, Identity{}); err != ErrNotFound {
		t.Fatalf("expected refresh of expired session to fail, got %v", err)
	}
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	seen := make(map[string]bool)
	for i := 0; i < 64; i++ {
		token, err := store.Create(context.Background(), Identity{UserID: int64(i)})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if seen[token] {
			t.Fatalf("token %q issued twice", token)
		}
		seen[token] = true
	}
}
