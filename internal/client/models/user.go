package models

import "time"

// UserSummary is the projection of the authenticated user that the backend
// returns on login and that the session keeps. It is not the full profile
// record (bio, avatar, counts), which is fetched separately.
type UserSummary struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Session is the client-held record of the current authenticated identity.
// Exactly one session exists per local state database.
type Session struct {
	IsAuthenticated bool
	Token           string
	User            *UserSummary
}

// Anonymous reports whether the session carries no authenticated identity.
func (s *Session) Anonymous() bool {
	return s == nil || !s.IsAuthenticated
}

// UserProfile is the full user record served by GET /users/{id}.
type UserProfile struct {
	ID          int64         `json:"id"`
	Username    string        `json:"username"`
	Email       string        `json:"email"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	Bio         string        `json:"bio"`
	Avatar      string        `json:"avatar"`
	CreatedAt   time.Time     `json:"createdAt"`
	BlogsCount  int           `json:"blogsCount"`
	RecentBlogs []BlogSummary `json:"recentBlogs"`
}

// ProfilePayload carries the editable profile fields for UpdateUserProfile.
type ProfilePayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
	Avatar    string `json:"avatar"`
}

// LoginRequest is the body of POST {auth}/login. The backend accepts either
// a username or an email in the same field.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// LoginResponse is the flat payload the backend returns on successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UserSummary converts the login payload into the session's user projection.
func (r *LoginResponse) UserSummary() *UserSummary {
	return &UserSummary{
		ID:        r.ID,
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// RegisterRequest is the body of POST {auth}/register.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// RegisterResponse is the confirmation payload returned on successful
// registration. The account is not logged in by this call.
type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Message  string `json:"message"`
}
