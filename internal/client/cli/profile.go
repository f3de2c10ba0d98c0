package cli

import (
	"context"
	"fmt"

	"github.com/blogit-app/blogit-cli/internal/client/models"
)

// MyProfile renders the current user's own profile view.
func (a *App) MyProfile(ctx context.Context) error {
	if !a.guard(ctx, "profile") {
		return nil
	}

	profile, err := a.profiles.Me(ctx)
	if err != nil {
		a.renderError(ctx, err)
		return nil
	}

	a.renderProfile(ctx, profile)
	return nil
}

// ShowProfile renders any user's public profile view.
func (a *App) ShowProfile(ctx context.Context, id int64) error {
	if !a.guard(ctx, "profile") {
		return nil
	}

	profile, err := a.profiles.Get(ctx, id)
	if err != nil {
		a.renderError(ctx, err)
		return nil
	}

	a.renderProfile(ctx, profile)
	return nil
}

func (a *App) renderProfile(ctx context.Context, p *models.UserProfile) {
	fmt.Fprintf(a.out, "\n%s %s (@%s)\n", p.FirstName, p.LastName, p.Username)
	if p.Bio != "" {
		fmt.Fprintln(a.out, p.Bio)
	} else {
		fmt.Fprintln(a.out, "This user hasn't added a bio yet.")
	}
	fmt.Fprintf(a.out, "Member since %s • %d blogs\n", p.CreatedAt.Format("January 2006"), p.BlogsCount)

	if len(p.RecentBlogs) > 0 {
		fmt.Fprintln(a.out, "\nRecent blogs:")
		for _, b := range p.RecentBlogs {
			fmt.Fprintf(a.out, "  %4d  %s\n", b.ID, b.Title)
		}
	}

	if a.gate.IsOwner(ctx, p.ID) {
		fmt.Fprintln(a.out, "\nThis is you: 'editprofile' to edit.")
	}
}

// EditProfile runs the profile-edit form for the current user. The form is
// an owner-only affordance; other profiles are read-only.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.guard(ctx, "profile-edit") {
		return nil
	}

	profile, err := a.profiles.Me(ctx)
	if err != nil {
		a.renderError(ctx, err)
		return nil
	}

	payload := models.ProfilePayload{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Bio:       profile.Bio,
		Avatar:    profile.Avatar,
	}

	read := func(field, current string) (string, error) {
		prompt := field
		if current != "" {
			prompt = fmt.Sprintf("%s [%s]", field, truncate(current, 30))
		}
		entered, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return "", err
		}
		if entered == "" {
			return current, nil
		}
		return entered, nil
	}

	if payload.FirstName, err = read("First name", payload.FirstName); err != nil {
		return err
	}
	if payload.LastName, err = read("Last name", payload.LastName); err != nil {
		return err
	}
	if payload.Bio, err = read("Bio", payload.Bio); err != nil {
		return err
	}
	if payload.Avatar, err = read("Avatar URL", payload.Avatar); err != nil {
		return err
	}

	updated, err := a.profiles.Update(ctx, profile.ID, payload)
	if err != nil {
		a.renderError(ctx, err)
		return nil
	}

	fmt.Fprintln(a.out, "Profile updated.")
	a.renderProfile(ctx, updated)
	return nil
}
