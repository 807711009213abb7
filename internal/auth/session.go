package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"decor-backend/internal/config"
	"decor-backend/internal/models"
	"decor-backend/internal/store"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionManager owns the single admin session persisted under the
// adminToken key. There is exactly one admin account and at most one live
// session; logging in again replaces the old session wholesale.
type SessionManager struct {
	store        *store.Store
	jwt          *JWTManager
	username     string
	passwordHash string
	ttl          time.Duration
}

func NewSessionManager(cfg *config.Config, st *store.Store) *SessionManager {
	hash := cfg.Admin.PasswordHash
	if hash == "" && cfg.Admin.Password != "" {
		h, err := HashPassword(cfg.Admin.Password)
		if err != nil {
			log.Fatalf("[Auth] Failed to hash configured admin password: %v", err)
		}
		hash = h
		log.Printf("[Auth] Admin password configured in plaintext, hashed at startup")
	}
	if hash == "" {
		log.Printf("[Auth] No admin password configured, login is disabled")
	}

	ttl := time.Duration(cfg.Session.ExpirationHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &SessionManager{
		store:        st,
		jwt:          NewJWTManager(cfg),
		username:     cfg.Admin.Username,
		passwordHash: hash,
		ttl:          ttl,
	}
}

// Login verifies the credentials and establishes a fresh session.
func (m *SessionManager) Login(ctx context.Context, username, password string) (*models.Session, error) {
	if m.passwordHash == "" || username != m.username || !VerifyPassword(m.passwordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := m.jwt.GenerateToken(username)
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	session := &models.Session{
		Token:     token,
		ExpiresAt: now + m.ttl.Milliseconds(),
		LoginTime: now,
	}
	m.store.Write(ctx, models.KeySession, session)
	return session, nil
}

// Validate reports whether token identifies the live session. A session
// found expired is removed from the store as a side effect, so a later
// check does not see it at all.
func (m *SessionManager) Validate(ctx context.Context, token string) (*models.Session, bool) {
	var session models.Session
	if !m.store.Read(ctx, models.KeySession, &session) {
		return nil, false
	}
	if session.Token == "" || session.Token != token {
		return nil, false
	}
	if _, err := m.jwt.ValidateToken(token); err != nil {
		return nil, false
	}
	if time.Now().UnixMilli() > session.ExpiresAt {
		m.store.Clear(ctx, models.KeySession)
		return nil, false
	}
	return &session, true
}

// Touch slides the session expiry forward from now. Activity on any
// authenticated route keeps the session alive.
func (m *SessionManager) Touch(ctx context.Context, token string) {
	m.store.Update(ctx, models.KeySession, func(raw json.RawMessage) any {
		var session models.Session
		if raw == nil || json.Unmarshal(raw, &session) != nil {
			return nil
		}
		if session.Token != token {
			return nil
		}
		session.ExpiresAt = time.Now().UnixMilli() + m.ttl.Milliseconds()
		return &session
	})
}

// Logout removes the session record. Missing session is a no-op.
func (m *SessionManager) Logout(ctx context.Context) {
	m.store.Clear(ctx, models.KeySession)
}

// Status reports validity without sliding the expiry.
func (m *SessionManager) Status(ctx context.Context, token string) models.SessionStatus {
	session, ok := m.Validate(ctx, token)
	if !ok {
		return models.SessionStatus{Authenticated: false}
	}
	return models.SessionStatus{Authenticated: true, ExpiresAt: session.ExpiresAt}
}
