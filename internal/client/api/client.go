package api

import (
	"context"

	"github.com/blogit-app/blogit-cli/internal/client/models"
)

// Client is the sole path to the backend. Every operation performs one
// network round-trip and returns a typed result or a *Error; nothing is
// retried and nothing is cached here. Operations never touch session
// state — persisting the login result is the session gate's job.
type Client interface {
	// Login exchanges credentials for a token plus user projection.
	// Invalid credentials surface as a KindAuth error.
	Login(ctx context.Context, usernameOrEmail, password string) (*models.LoginResponse, error)

	// Register creates an account. Duplicate username/email surface as a
	// KindValidation error carrying the backend's message.
	Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error)

	// GetProfile fetches the authenticated user's full profile.
	GetProfile(ctx context.Context) (*models.UserProfile, error)

	// ListBlogs fetches blog summaries, optionally filtered by category.
	// An unknown category yields an empty slice, not an error.
	ListBlogs(ctx context.Context, category string) ([]models.BlogSummary, error)

	// GetBlog fetches a single blog or a KindNotFound error.
	GetBlog(ctx context.Context, id int64) (*models.BlogDetail, error)

	// CreateBlog publishes a new blog owned by the current user.
	CreateBlog(ctx context.Context, payload models.BlogPayload) (*models.BlogDetail, error)

	// UpdateBlog replaces an existing blog's editable fields. A caller who
	// is not the owning author gets a KindAuthorization error.
	UpdateBlog(ctx context.Context, id int64, payload models.BlogPayload) (*models.BlogDetail, error)

	// DeleteBlog removes a blog, with the same ownership rule as UpdateBlog.
	DeleteBlog(ctx context.Context, id int64) error

	// ToggleLike flips the current user's like on a blog and returns the
	// resulting state. Each call flips; two rapid calls cancel out.
	ToggleLike(ctx context.Context, id int64) (*models.LikeState, error)

	// AddComment attaches a comment to a blog as the current user.
	AddComment(ctx context.Context, id int64, content string) (*models.Comment, error)

	// GetUserProfile fetches any user's public profile.
	GetUserProfile(ctx context.Context, id int64) (*models.UserProfile, error)

	// UpdateUserProfile edits a profile. The backend rejects ids other than
	// the current user's with a KindAuthorization error.
	UpdateUserProfile(ctx context.Context, id int64, payload models.ProfilePayload) (*models.UserProfile, error)
}

// TokenSource supplies the current bearer token, or "" when anonymous.
// The session storage implements it; the HTTP client reads it before every
// outgoing request so a login or logout takes effect immediately.
type TokenSource interface {
	Token(ctx context.Context) string
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func(ctx context.Context) string

// Token implements TokenSource.
func (f TokenSourceFunc) Token(ctx context.Context) string { return f(ctx) }
