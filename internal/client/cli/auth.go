package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/finsync/internal/client/services"
	"github.com/dmitrijs2005/finsync/internal/client/uploader"
	"github.com/dmitrijs2005/finsync/internal/common"
	"github.com/dmitrijs2005/finsync/internal/errorz"
)

// getSimpleText, getPassword and loadImage are indirections used to
// facilitate testing. They can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	loadImage     = uploader.LoadImage
)

const previewLen = 48

// Login prompts for credentials and hands them to the auth service. The
// service reports the outcome through the notifier and moves the app to
// /dashboard on success.
func (a *App) Login(ctx context.Context) error {
	a.Navigate(services.RouteLogin)
	if !a.canSubmit(a.authService.LoginFlow()) {
		return services.ErrInFlight
	}

	email, err := getSimpleText(ctx, a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(ctx, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.authService.Login(ctx, services.LoginInput{Email: email, Password: string(password)})
	a.report(ctx, "login", services.FormLogin, err)
	return err
}

// Signup prompts for the account fields and an optional profile image,
// then creates the account. On success the app moves to /login.
func (a *App) Signup(ctx context.Context) error {
	a.Navigate(services.RouteSignup)
	if !a.canSubmit(a.authService.SignupFlow()) {
		return services.ErrInFlight
	}

	name, err := getSimpleText(ctx, a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(ctx, a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(ctx, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	imagePath, err := getSimpleText(ctx, a.reader, "Profile image path (empty to skip)", a.out)
	if err != nil {
		return err
	}

	var img *uploader.Image
	if imagePath != "" {
		img, err = loadImage(imagePath)
		if err != nil {
			fmt.Fprintf(a.out, "Cannot use %s: %v\n", imagePath, err)
			return err
		}
		fmt.Fprintf(a.out, "Selected %s (%s, %d bytes) %s\n",
			img.Filename, img.ContentType, len(img.Data), truncate(img.PreviewURL(), previewLen))
	}

	err = a.authService.Signup(ctx, services.SignupInput{
		FullName: name,
		Email:    email,
		Password: string(password),
		Image:    img,
	})
	a.report(ctx, "signup", services.FormSignup, err)
	return err
}

// Logout removes the session from the store and the container.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "You are not logged in.")
		return ErrNotLoggedIn
	}
	if err := a.authService.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout error", "error", err)
		fmt.Fprintln(a.out, "Logout failed:", err)
		return err
	}
	return nil
}

// WhoAmI prints the session container.
func (a *App) WhoAmI(ctx context.Context) error {
	st := a.session.Snapshot()
	if !st.IsLoggedIn() {
		fmt.Fprintln(a.out, "You are not logged in.")
		return ErrNotLoggedIn
	}

	fmt.Fprintf(a.out, "ID:         %s\n", st.User.ID)
	fmt.Fprintf(a.out, "Name:       %s\n", st.Name)
	fmt.Fprintf(a.out, "Email:      %s\n", st.Email)
	fmt.Fprintf(a.out, "Categories: %s\n", strings.Join(st.Categories, ", "))
	if st.User.IsAdmin {
		fmt.Fprintln(a.out, "Role:       admin")
	}
	return nil
}

// ToggleTheme flips dark mode.
func (a *App) ToggleTheme(ctx context.Context) error {
	dark, err := a.navbar.ToggleTheme(ctx)
	if err != nil {
		a.logger.Error(ctx, "theme save error", "error", err)
		return err
	}
	if dark {
		fmt.Fprintln(a.out, "Dark mode on")
	} else {
		fmt.Fprintln(a.out, "Dark mode off")
	}
	return nil
}

// ToggleSideBar flips the sidebar flag.
func (a *App) ToggleSideBar(ctx context.Context) error {
	if a.navbar.ToggleSideBar() {
		fmt.Fprintln(a.out, "Sidebar open")
	} else {
		fmt.Fprintln(a.out, "Sidebar closed")
	}
	return nil
}

// report prints what the notifier has not already shown.
var formFields = []string{services.FieldFullName, services.FieldEmail, services.FieldPassword}

func (a *App) report(ctx context.Context, command string, form services.Form, err error) {
	var invalid errorz.InvalidInput

	switch {
	case err == nil:
	case errors.As(err, &invalid):
		for _, key := range formFields {
			if e := invalid.Field(key); e != nil {
				fmt.Fprintf(a.out, "  %s: %s\n", key, form.Message(e))
			}
		}
	case errors.Is(err, services.ErrInFlight):
		fmt.Fprintln(a.out, "A request is already in progress.")
	case errors.Is(err, services.ErrStaleResponse):
		a.logger.Debug(ctx, "stale response dropped", "command", command)
	default:
		a.logger.Debug(ctx, "command failed", "command", command, "error", err)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
