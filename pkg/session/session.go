package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/carevault/hdms-in-go/pkg/identity"
	"github.com/carevault/hdms-in-go/pkg/model"
)

var (
	// ErrNoSession means no session is active; the user must log in.
	ErrNoSession = errors.New("no active session")

	// ErrInvalidSession means the stored token is expired or tampered
	// with; the user must log in again.
	ErrInvalidSession = errors.New("session is no longer valid")
)

// Session is the explicit session state for one logged-in staff member,
// passed to whichever command drives the workflow instead of living in
// ambient globals.
type Session struct {
	ID        string
	Identity  *identity.Identity
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// claims are the token claims for a session.
type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies session tokens. A login writes an HS256
// token to the session file and a fresh random signing key beside it; both
// are removed on logout.
type Manager struct {
	path string
	ttl  time.Duration
}

// NewManager creates a session manager around the session file path.
func NewManager(path string, ttl time.Duration) *Manager {
	return &Manager{path: path, ttl: ttl}
}

func (m *Manager) keyPath() string {
	return m.path + ".key"
}

// Begin starts a session for the identity and persists its token.
func (m *Manager) Begin(id *identity.Identity) (*Session, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate session key: %w", err)
	}

	now := time.Now()
	sess := &Session{
		ID:        uuid.NewString(),
		Identity:  id,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: id.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Username,
			ID:        sess.ID,
			IssuedAt:  jwt.NewNumericDate(sess.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	})
	signed, err := token.SignedString(key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	encodedKey := base64.StdEncoding.EncodeToString(key)
	if err := os.WriteFile(m.keyPath(), []byte(encodedKey), 0o600); err != nil {
		return nil, fmt.Errorf("failed to save session key: %w", err)
	}
	if err := os.WriteFile(m.path, []byte(signed), 0o600); err != nil {
		os.Remove(m.keyPath())
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return sess, nil
}

// Current loads and verifies the active session.
func (m *Manager) Current() (*Session, error) {
	raw, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	encodedKey, err := os.ReadFile(m.keyPath())
	if err != nil {
		return nil, ErrInvalidSession
	}
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(encodedKey)))
	if err != nil {
		return nil, ErrInvalidSession
	}

	var cl claims
	token, err := jwt.ParseWithClaims(
		strings.TrimSpace(string(raw)),
		&cl,
		func(t *jwt.Token) (interface{}, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}
	if cl.IssuedAt == nil || cl.ExpiresAt == nil {
		return nil, ErrInvalidSession
	}

	return &Session{
		ID: cl.ID,
		Identity: &identity.Identity{
			Username: cl.Subject,
			Role:     model.Role(cl.Role),
		},
		IssuedAt:  cl.IssuedAt.Time,
		ExpiresAt: cl.ExpiresAt.Time,
	}, nil
}

// End removes the session and its key. Ending when no session is active is
// a no-op.
func (m *Manager) End() error {
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	if err := os.Remove(m.keyPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session key: %w", err)
	}
	return nil
}
