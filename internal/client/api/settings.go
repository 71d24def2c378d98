package api

import (
	"context"
	"fmt"
)

// SettingsAPI reads and updates the backend's runtime configuration
// sections (scan paths, AI provider, schedules).
type SettingsAPI struct {
	c *Client
}

// Get returns the whole backend configuration.
func (s *SettingsAPI) Get(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := s.c.getJSON(ctx, "config", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the whole backend configuration.
func (s *SettingsAPI) Update(ctx context.Context, settings map[string]any) error {
	return s.c.putJSON(ctx, "config", settings, nil)
}

// GetSection returns one configuration section.
func (s *SettingsAPI) GetSection(ctx context.Context, section string) (map[string]any, error) {
	var out map[string]any
	if err := s.c.getJSON(ctx, fmt.Sprintf("config/%s", section), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateSection replaces one configuration section.
func (s *SettingsAPI) UpdateSection(ctx context.Context, section string, value any) error {
	return s.c.putJSON(ctx, fmt.Sprintf("config/%s", section), value, nil)
}
