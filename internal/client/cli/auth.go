package cli

import (
	"context"
	"fmt"

	"github.com/shelfhub/shelfhub/internal/client/api"
	"github.com/shelfhub/shelfhub/internal/client/guard"
)

// surface converts an error into what the operator should see. Errors the
// transport marked silent (reverse-proxy noise) are logged and dropped.
func (a *App) surface(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if api.IsSilent(err) {
		a.log.Warn(ctx, "suppressed response error", "error", err)
		return nil
	}
	return err
}

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, username, password); err != nil {
		return a.surface(ctx, err)
	}

	a.navigate(guard.HomePath)
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.navigate(guard.LoginPath)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Register(ctx context.Context) error {
	status, err := a.api.Auth().RegistrationStatus(ctx)
	if err != nil {
		return a.surface(ctx, err)
	}
	if !status.RegistrationOpen {
		fmt.Fprintln(a.out, "Registration is closed on this instance.")
		return nil
	}

	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	if err := a.api.Auth().Register(ctx, username, password); err != nil {
		return a.surface(ctx, err)
	}

	fmt.Fprintln(a.out, "Account created, you can log in now.")
	return nil
}

func (a *App) Setup(ctx context.Context) error {
	status, err := a.api.Auth().CheckSetup(ctx)
	if err != nil {
		return a.surface(ctx, err)
	}
	if !status.NeedsSetup {
		fmt.Fprintln(a.out, "Setup is already completed.")
		return nil
	}

	username, err := GetSimpleText(a.reader, "Enter admin username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out, "Enter admin password")
	if err != nil {
		return err
	}

	if err := a.api.Auth().Setup(ctx, username, password); err != nil {
		return a.surface(ctx, err)
	}

	fmt.Fprintln(a.out, "Admin account created, you can log in now.")
	return nil
}

func (a *App) ChangePassword(ctx context.Context) error {
	if !a.enter("ChangePassword") {
		return nil
	}

	current, err := GetPassword(a.out, "Current password")
	if err != nil {
		return err
	}

	next, err := GetPassword(a.out, "New password")
	if err != nil {
		return err
	}

	if err := a.api.Auth().ChangePassword(ctx, current, next); err != nil {
		return a.surface(ctx, err)
	}

	fmt.Fprintln(a.out, "Password changed")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	a.session.CheckAuth(ctx)

	u := a.session.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s)\n", u.Username, u.Role)
	return nil
}
