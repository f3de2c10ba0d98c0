package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogit-app/blogit-cli/internal/client/api"
	"github.com/blogit-app/blogit-cli/internal/client/services"
)

// renderError maps an operation failure to user-visible output. Nothing is
// dropped: every error kind produces a message. An auth error on a
// protected call means the token is no longer valid, so it triggers the
// same forward-to-login behavior as the guard; whether the retried login
// succeeds is up to the user.
func (a *App) renderError(ctx context.Context, err error) {
	switch {
	case api.IsAuth(err):
		if a.isLoggedIn(ctx) {
			fmt.Fprintln(a.out, "Your session is no longer valid. Please log in again.")
			_ = a.Login(ctx)
		} else {
			fmt.Fprintln(a.out, "Invalid credentials. Please try again.")
		}
	case api.IsAuthorization(err):
		fmt.Fprintln(a.out, "You don't have permission to do that.")
	case api.IsValidation(err):
		fmt.Fprintln(a.out, "Invalid input:", apiMessage(err))
	case api.IsNotFound(err):
		fmt.Fprintln(a.out, "Not found.")
	case api.IsTransport(err):
		fmt.Fprintln(a.out, "Cannot reach the server. Please check your connection and try again.")
	default:
		fmt.Fprintln(a.out, "Something went wrong. Please try again later.")
		a.log.Error(ctx, "operation failed", "error", err)
	}
}

func apiMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

// printFieldErrors shows inline, field-level validation messages from the
// local form checks.
func (a *App) printFieldErrors(errs services.FieldErrors) {
	for field, msg := range errs {
		fmt.Fprintf(a.out, "  %s: %s\n", field, msg)
	}
}
