package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	identity Identity
	expires  time.Time
}

// MemoryStore keeps sessions in a process-held map. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore constructs an in-memory session store with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Create issues a fresh opaque token bound to the identity.
func (s *MemoryStore) Create(ctx context.Context, identity Identity) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{identity: identity, expires: s.now().Add(s.ttl)}
	return token, nil
}

// Get resolves the token, evicting it when expired.
func (s *MemoryStore) Get(ctx context.Context, token string) (*Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[token]
	if !ok {
		return nil, ErrNotFound
	}
	if s.now().After(entry.expires) {
		delete(s.entries, token)
		return nil, ErrNotFound
	}
	identity := entry.identity
	return &identity, nil
}

// Refresh replaces the identity bag and extends the lifetime.
func (s *MemoryStore) Refresh(ctx context.Context, token string, identity Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[token]
	if !ok || s.now().After(entry.expires) {
		delete(s.entries, token)
		return ErrNotFound
	}
	s.entries[token] = memoryEntry{identity: identity, expires: s.now().Add(s.ttl)}
	return nil
}

// Delete removes the session. Deleting an unknown token is a no-op.
func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}
