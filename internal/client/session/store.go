package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/shelfhub/shelfhub/internal/client/api"
	"github.com/shelfhub/shelfhub/internal/client/repositories/localdata"
	"github.com/shelfhub/shelfhub/internal/common"
	"github.com/shelfhub/shelfhub/internal/logging"
)

// User is the identity derived from the current token. It is never mutated
// independently: it is always a pure projection of the token, recomputed on
// construction and on every CheckAuth.
type User struct {
	Username string
	Role     string
}

// Store owns the session token and the identity derived from it.
//
// It is constructed once at startup and lives for the process lifetime; all
// components needing auth state receive this object explicitly instead of
// reaching into globals. Its entire mutating surface is Login, Logout, and
// CheckAuth.
//
// Invariants: IsAuthenticated is true exactly when a token is present, and
// user is nil whenever the token is absent or undecodable.
type Store struct {
	mu      sync.Mutex
	auth    *api.AuthAPI
	storage localdata.Repository
	log     logging.Logger

	token string
	user  *User
}

// NewStore builds the session store and synchronously restores state from
// durable storage, so no consumer ever observes an authenticated session
// with a nil user for a valid stored token.
func NewStore(ctx context.Context, auth *api.AuthAPI, storage localdata.Repository, log logging.Logger) *Store {
	s := &Store{auth: auth, storage: storage, log: log}

	stored, err := storage.Get(ctx, common.AccessTokenKey)
	if err != nil {
		log.Warn(ctx, "failed to restore session token", "error", err)
		return s
	}
	if len(stored) == 0 {
		return s
	}

	s.token = string(stored)
	if claims := DecodeToken(s.token); claims != nil {
		s.user = &User{Username: claims.Subject, Role: claims.Role}
	} else {
		log.Warn(ctx, "restored session token is undecodable", "error", common.ErrInvalidToken)
	}
	return s
}

// Login exchanges credentials for a token and persists it durably before
// updating in-memory state, so the transport (which reads the stored token)
// and the store never disagree. Any transport, HTTP, or storage failure
// propagates and leaves prior state untouched.
//
// A token whose claims fail to decode does not block login; the user falls
// back to the supplied username with the regular role.
func (s *Store) Login(ctx context.Context, username, password string) error {
	resp, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := s.storage.Set(ctx, common.AccessTokenKey, []byte(resp.AccessToken)); err != nil {
		return fmt.Errorf("failed to persist session token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = resp.AccessToken
	if claims := DecodeToken(s.token); claims != nil {
		s.user = &User{Username: claims.Subject, Role: claims.Role}
	} else {
		s.user = &User{Username: username, Role: RoleUser}
	}
	return nil
}

// Logout clears the in-memory session and removes the persisted token.
// Idempotent and infallible from the caller's perspective: a storage
// failure is logged, not returned, since the in-memory session is gone
// either way.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, common.AccessTokenKey); err != nil {
		s.log.Warn(ctx, "failed to remove persisted token", "error", err)
	}
}

// CheckAuth re-derives the user from the current token. A token that no
// longer decodes is treated as equivalent to no token: the session is fully
// logged out as a self-healing measure. No-op without a token.
func (s *Store) CheckAuth(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return
	}

	claims := DecodeToken(token)
	if claims == nil {
		s.log.Warn(ctx, "stored token no longer decodes, logging out", "error", common.ErrInvalidToken)
		s.Logout(ctx)
		return
	}

	s.mu.Lock()
	s.user = &User{Username: claims.Subject, Role: claims.Role}
	s.mu.Unlock()
}

// IsAuthenticated reports whether a session token is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// User returns a copy of the derived identity, or nil when the token is
// absent or did not decode.
func (s *Store) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the current bearer token, empty when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}
