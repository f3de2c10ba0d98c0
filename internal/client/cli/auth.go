package cli

import (
	"context"
	"fmt"

	"github.com/blogit-app/blogit-cli/internal/client/models"
	"github.com/blogit-app/blogit-cli/internal/client/services"
	"github.com/blogit-app/blogit-cli/internal/client/session"
	"github.com/blogit-app/blogit-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the sign-up form and attempts to create an account.
// Form validation runs locally first; backend rejections (duplicate
// username or email) are shown with the backend's message. On success the
// user is forwarded to the login view, mirroring the registration
// confirmation flow.
func (a *App) Register(ctx context.Context) error {
	req := models.RegisterRequest{}
	var err error

	if req.FirstName, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if req.LastName, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if req.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	req.Password = string(password)

	if errs := services.ValidateRegistration(req, string(confirm)); !errs.Valid() {
		a.printFieldErrors(errs)
		return nil
	}

	resp, err := a.gate.Register(ctx, req)
	if err != nil {
		a.renderError(ctx, err)
		return nil
	}

	msg := resp.Message
	if msg == "" {
		msg = "Account created successfully!"
	}
	fmt.Fprintln(a.out, msg)
	fmt.Fprintln(a.out, "You can now log in.")
	return a.Login(ctx)
}

// Login prompts for credentials and tries to authenticate. A 401 is shown
// as "Invalid credentials" and the prior session state is left untouched.
func (a *App) Login(ctx context.Context) error {
	usernameOrEmail, err := getSimpleText(a.reader, "Username or email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if errs := services.ValidateLogin(usernameOrEmail, string(password)); !errs.Valid() {
		a.printFieldErrors(errs)
		return nil
	}

	s, err := a.gate.Login(ctx, usernameOrEmail, string(password))
	if err != nil {
		a.renderError(ctx, err)
		return nil
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", s.User.Username)
	return nil
}

// Logout clears the session. Safe to run when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.gate.Logout(ctx); err != nil {
		a.renderError(ctx, err)
		return nil
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami shows the current session identity, plus token metadata when the
// token is a decodable JWT. Display only: the expiry shown here is a hint,
// not a gate decision.
func (a *App) Whoami(ctx context.Context) {
	s := a.gate.Current(ctx)
	if s.Anonymous() || s.User == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}

	fmt.Fprintf(a.out, "%s %s (@%s) <%s> id=%d\n",
		s.User.FirstName, s.User.LastName, s.User.Username, s.User.Email, s.User.ID)

	if info, ok := session.DecodeToken(s.Token); ok && !info.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "Token expires %s\n", info.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
	}
}

// guard admits entry to a protected view. While anonymous it forwards the
// user to the login view; after a successful login the user lands on the
// blogs list (the fixed default view), not the view they originally asked
// for. Returns true when the caller may proceed.
func (a *App) guard(ctx context.Context, intendedView string) bool {
	if err := a.gate.RequireAuthenticated(ctx, intendedView); err != nil {
		fmt.Fprintln(a.out, "Please log in to continue.")
		_ = a.Login(ctx)
		if a.isLoggedIn(ctx) {
			_ = a.ListBlogs(ctx, "")
		}
		return false
	}
	return true
}
