package test

import (
	"context"
	"strconv"

	"github.com/kiralago/storefront/internal/session"
)

// SessionStoreStub binds tokens to identities in a plain map.
type SessionStoreStub struct {
	Sessions  map[string]session.Identity
	Next      int
	CreateErr error
	GetErr    error
}

// NewSessionStoreStub constructs the stub with an initialized map.
func NewSessionStoreStub() *SessionStoreStub {
	return &SessionStoreStub{Sessions: make(map[string]session.Identity), Next: 1}
}

// Create issues a deterministic token for the identity.
func (s *SessionStoreStub) Create(ctx context.Context, identity session.Identity) (string, error) {
	if s.CreateErr != nil {
		return "", s.CreateErr
	}
	token := "token-" + strconv.Itoa(s.Next)
	s.Next++
	s.Sessions[token] = identity
	return token, nil
}

// Get resolves a token or reports it unknown.
func (s *SessionStoreStub) Get(ctx context.Context, token string) (*session.Identity, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	identity, ok := s.Sessions[token]
	if !ok {
		return nil, session.ErrNotFound
	}
	return &identity, nil
}

// Refresh overwrites the identity bound to token.
func (s *SessionStoreStub) Refresh(ctx context.Context, token string, identity session.Identity) error {
	if _, ok := s.Sessions[token]; !ok {
		return session.ErrNotFound
	}
	s.Sessions[token] = identity
	return nil
}

// Delete forgets the token. Unknown tokens are not an error.
func (s *SessionStoreStub) Delete(ctx context.Context, token string) error {
	delete(s.Sessions, token)
	return nil
}
