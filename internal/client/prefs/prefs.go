// Package prefs persists the UI preferences: the light/dark theme and the
// interface locale. Both are independent plain-string keys in durable
// storage with no schema versioning.
package prefs

import (
	"context"
	"fmt"

	"github.com/shelfhub/shelfhub/internal/client/repositories/localdata"
	"github.com/shelfhub/shelfhub/internal/common"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultLocale matches the application's original audience.
const DefaultLocale = "ko"

// SupportedLocales are the interface languages the catalog UI ships with.
var SupportedLocales = []string{"ko", "en"}

// Store reads and writes the preference keys.
type Store struct {
	storage localdata.Repository
}

func NewStore(storage localdata.Repository) *Store {
	return &Store{storage: storage}
}

// Theme returns the saved theme, defaulting to light when unset.
func (s *Store) Theme(ctx context.Context) (string, error) {
	v, err := s.storage.Get(ctx, common.ThemeKey)
	if err != nil {
		return "", err
	}
	if len(v) == 0 {
		return ThemeLight, nil
	}
	return string(v), nil
}

// SetDark persists the theme choice.
func (s *Store) SetDark(ctx context.Context, dark bool) error {
	theme := ThemeLight
	if dark {
		theme = ThemeDark
	}
	return s.storage.Set(ctx, common.ThemeKey, []byte(theme))
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *Store) ToggleTheme(ctx context.Context) (string, error) {
	current, err := s.Theme(ctx)
	if err != nil {
		return "", err
	}
	if err := s.SetDark(ctx, current != ThemeDark); err != nil {
		return "", err
	}
	return s.Theme(ctx)
}

// Locale returns the saved locale code, defaulting to DefaultLocale.
func (s *Store) Locale(ctx context.Context) (string, error) {
	v, err := s.storage.Get(ctx, common.LocaleKey)
	if err != nil {
		return "", err
	}
	if len(v) == 0 {
		return DefaultLocale, nil
	}
	return string(v), nil
}

// SetLocale persists the locale after checking it is supported.
func (s *Store) SetLocale(ctx context.Context, locale string) error {
	supported := false
	for _, l := range SupportedLocales {
		if l == locale {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("%w: %s", common.ErrorUnsupportedLocale, locale)
	}
	return s.storage.Set(ctx, common.LocaleKey, []byte(locale))
}
