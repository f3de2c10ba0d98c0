package services

import (
	"regexp"

	"github.com/blogit-app/blogit-cli/internal/client/models"
)

// MaxExcerptLen mirrors the backend's excerpt length limit so forms can
// reject overlong excerpts without a round-trip. The backend remains
// authoritative and still enforces it server-side.
const MaxExcerptLen = 200

// MinPasswordLen is the registration form's minimum password length.
const MinPasswordLen = 6

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// FieldErrors maps a form field name to its inline validation message.
// An empty map means the form passed.
type FieldErrors map[string]string

// Valid reports whether no field failed.
func (f FieldErrors) Valid() bool { return len(f) == 0 }

// ValidateLogin checks the login form's required fields.
func ValidateLogin(usernameOrEmail, password string) FieldErrors {
	errs := FieldErrors{}
	if usernameOrEmail == "" {
		errs["usernameOrEmail"] = "Username or email is required"
	}
	if password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

// ValidateRegistration checks the sign-up form before submission.
func ValidateRegistration(req models.RegisterRequest, confirmPassword string) FieldErrors {
	errs := FieldErrors{}
	if req.FirstName == "" {
		errs["firstName"] = "First name is required"
	}
	if req.LastName == "" {
		errs["lastName"] = "Last name is required"
	}
	switch {
	case req.Email == "":
		errs["email"] = "Email is required"
	case !emailRe.MatchString(req.Email):
		errs["email"] = "Email is invalid"
	}
	if req.Username == "" {
		errs["username"] = "Username is required"
	}
	switch {
	case req.Password == "":
		errs["password"] = "Password is required"
	case len(req.Password) < MinPasswordLen:
		errs["password"] = "Password must be at least 6 characters"
	}
	if req.Password != confirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}
	return errs
}

// ValidateBlogPayload checks the blog form before create or update.
func ValidateBlogPayload(p models.BlogPayload) FieldErrors {
	errs := FieldErrors{}
	if p.Title == "" {
		errs["title"] = "Title is required"
	}
	switch {
	case p.Excerpt == "":
		errs["excerpt"] = "Excerpt is required"
	case len(p.Excerpt) > MaxExcerptLen:
		errs["excerpt"] = "Excerpt should be less than 200 characters"
	}
	if p.Content == "" {
		errs["content"] = "Content is required"
	}
	return errs
}
