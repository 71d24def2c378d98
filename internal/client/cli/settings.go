package cli

import (
	"context"
	"encoding/json"
	"fmt"
)

// Settings without arguments dumps the backend configuration; with a
// section name it shows just that section.
func (a *App) Settings(ctx context.Context, args []string) error {
	if !a.enter("Admin") {
		return nil
	}

	var (
		cfg map[string]any
		err error
	)
	if len(args) == 0 {
		cfg, err = a.api.Settings().Get(ctx)
	} else {
		cfg, err = a.api.Settings().GetSection(ctx, args[0])
	}
	if err != nil {
		return a.surface(ctx, err)
	}

	pretty, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, string(pretty))
	return nil
}
