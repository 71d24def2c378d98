package cli

import (
	"context"
	"fmt"

	"github.com/shelfhub/shelfhub/internal/client/prefs"
)

// Theme without arguments shows the current theme; "theme toggle" flips
// it, "theme dark"/"theme light" set it explicitly.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		theme, err := a.prefs.Theme(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, theme)
		return nil
	}

	switch args[0] {
	case "toggle":
		theme, err := a.prefs.ToggleTheme(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, theme)
		return nil
	case prefs.ThemeDark:
		return a.prefs.SetDark(ctx, true)
	case prefs.ThemeLight:
		return a.prefs.SetDark(ctx, false)
	default:
		return fmt.Errorf("usage: theme [toggle|dark|light]")
	}
}

// Locale without arguments shows the current display language; with an
// argument it switches to one of the supported locales.
func (a *App) Locale(ctx context.Context, args []string) error {
	if len(args) == 0 {
		locale, err := a.prefs.Locale(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, locale)
		return nil
	}
	return a.prefs.SetLocale(ctx, args[0])
}
