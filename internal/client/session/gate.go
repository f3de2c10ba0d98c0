// Package session holds the single source of truth for "who is logged in":
// durable session storage plus the gate that admits or rejects access to
// protected views and computes ownership affordances.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blogit-app/blogit-cli/internal/client/api"
	"github.com/blogit-app/blogit-cli/internal/client/models"
	"github.com/blogit-app/blogit-cli/internal/logging"
)

// ErrLoginRequired is returned by RequireAuthenticated while Anonymous.
// The caller is expected to forward the user to the login view; the
// originally intended view is abandoned, not revisited after login.
var ErrLoginRequired = errors.New("login required")

// Gate owns every transition of the session state machine:
// Anonymous→Authenticated only via a successful Login,
// Authenticated→Anonymous only via an explicit Logout. There is no
// automatic expiry; a token the backend has invalidated is discovered
// reactively when a protected call fails with an auth error.
type Gate struct {
	client  api.Client
	storage Storage
	log     logging.Logger
}

func NewGate(client api.Client, storage Storage, log logging.Logger) *Gate {
	return &Gate{client: client, storage: storage, log: log}
}

// Login delegates to the API client and, on success, atomically persists
// {token, isAuthenticated, user}. On failure the prior session state is
// left untouched and the error is surfaced for display.
func (g *Gate) Login(ctx context.Context, usernameOrEmail, password string) (*models.Session, error) {
	resp, err := g.client.Login(ctx, usernameOrEmail, password)
	if err != nil {
		return nil, err
	}

	user := resp.UserSummary()
	userJSON, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encoding session user: %w", err)
	}

	err = g.storage.SetAll(ctx, map[string]string{
		KeyToken:           resp.Token,
		KeyIsAuthenticated: AuthenticatedSentinel,
		KeyUser:            string(userJSON),
	})
	if err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	g.log.Info(ctx, "session established", "user", user.Username)
	return &models.Session{IsAuthenticated: true, Token: resp.Token, User: user}, nil
}

// Register creates an account via the API client. It never touches
// session state: the confirmation flow forwards to login instead of
// seeding a session.
func (g *Gate) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	return g.client.Register(ctx, req)
}

// Logout clears all session keys. Idempotent.
func (g *Gate) Logout(ctx context.Context) error {
	if err := g.storage.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	g.log.Info(ctx, "session cleared")
	return nil
}

// Current is a pure read of durable storage; it never blocks on the
// network. Partial key presence and any storage failure both collapse to
// the Anonymous session.
func (g *Gate) Current(ctx context.Context) *models.Session {
	anonymous := &models.Session{}

	flag, err := g.storage.Get(ctx, KeyIsAuthenticated)
	if err != nil || flag != AuthenticatedSentinel {
		return anonymous
	}
	token, err := g.storage.Get(ctx, KeyToken)
	if err != nil || token == "" {
		return anonymous
	}
	userJSON, err := g.storage.Get(ctx, KeyUser)
	if err != nil || userJSON == "" {
		return anonymous
	}

	var user models.UserSummary
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		g.log.Warn(ctx, "stored session user is corrupt, treating as anonymous", "error", err)
		return anonymous
	}

	return &models.Session{IsAuthenticated: true, Token: token, User: &user}
}

// RequireAuthenticated guards entry to a protected view. While Anonymous
// it returns ErrLoginRequired; the intended view is logged and abandoned.
func (g *Gate) RequireAuthenticated(ctx context.Context, intendedView string) error {
	if g.Current(ctx).Anonymous() {
		g.log.Info(ctx, "anonymous access to protected view", "view", intendedView)
		return ErrLoginRequired
	}
	return nil
}

// IsOwner reports whether the current session user owns a resource with
// the given author id. Always false while Anonymous. The answer is
// recomputed from storage on every call, never cached across session
// changes.
func (g *Gate) IsOwner(ctx context.Context, authorID int64) bool {
	s := g.Current(ctx)
	if s.Anonymous() || s.User == nil {
		return false
	}
	return s.User.ID == authorID
}

// RefreshUser replaces the stored user projection, keeping the token.
// Used after a profile edit of the current user. No-op while Anonymous.
func (g *Gate) RefreshUser(ctx context.Context, user *models.UserSummary) error {
	if g.Current(ctx).Anonymous() {
		return nil
	}
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding session user: %w", err)
	}
	return g.storage.SetAll(ctx, map[string]string{KeyUser: string(userJSON)})
}
