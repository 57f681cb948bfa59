// Package auth is the credential capability the route layer consumes:
// an opaque bearer token is exchanged for an identity carrying a role.
// Registration and login live in a separate service; this backend only
// verifies tokens it was handed.
package auth

import (
	"errors"
	"slices"
	"sync"
)

var (
	// ErrUnauthorized: the token is missing or unknown.
	ErrUnauthorized = errors.New("missing or unknown credential")
	// ErrForbidden: the token is valid but its role is not permitted.
	ErrForbidden = errors.New("role not permitted")
)

const (
	RoleAdmin = "admin"
	RoleUser  = "usuario"
)

type Identity struct {
	IDUsuario uint
	Nombre    string
	Rol       string
}

// Verifier checks an opaque token against a set of required roles. An empty
// role set only requires the token to be valid.
type Verifier interface {
	VerifyRole(token string, roles ...string) (*Identity, error)
}

// StaticTokens is a token table populated at process start. Verification is
// the role check performed before any mutation happens.
type StaticTokens struct {
	mu     sync.RWMutex
	tokens map[string]Identity
}

func NewStaticTokens() *StaticTokens {
	return &StaticTokens{tokens: make(map[string]Identity)}
}

func (s *StaticTokens) Register(token string, identity Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = identity
}

func (s *StaticTokens) VerifyRole(token string, roles ...string) (*Identity, error) {
	s.mu.RLock()
	identity, ok := s.tokens[token]
	s.mu.RUnlock()

	if token == "" || !ok {
		return nil, ErrUnauthorized
	}
	if len(roles) > 0 && !slices.Contains(roles, identity.Rol) {
		return nil, ErrForbidden
	}
	return &identity, nil
}
