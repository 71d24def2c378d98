package cli

import (
	"context"
	"encoding/json"
	"fmt"
)

// Scan starts a library scan. "scan ai" enables metadata generation,
// "scan info" shows the scan configuration, "scan preview [path]" dry-runs
// without touching the catalog, "scan test-ai" checks the AI provider, and
// "scan regen <product-id>" rebuilds one product's metadata.
func (a *App) Scan(ctx context.Context, args []string) error {
	if !a.enter("Admin") {
		return nil
	}

	if len(args) > 0 {
		switch args[0] {
		case "info":
			info, err := a.api.Scan().Info(ctx)
			if err != nil {
				return a.surface(ctx, err)
			}
			pretty, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, string(pretty))
			return nil

		case "preview":
			var path string
			if len(args) > 1 {
				path = args[1]
			}
			preview, err := a.api.Scan().Preview(ctx, path, 20)
			if err != nil {
				return a.surface(ctx, err)
			}
			pretty, err := json.MarshalIndent(preview, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, string(pretty))
			return nil

		case "test-ai":
			result, err := a.api.Scan().TestAI(ctx)
			if err != nil {
				return a.surface(ctx, err)
			}
			pretty, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, string(pretty))
			return nil

		case "regen":
			id, err := parseID(args[1:], "scan regen <product-id>")
			if err != nil {
				return err
			}
			resp, err := a.api.Scan().RegenerateMetadata(ctx, id)
			if err != nil {
				return a.surface(ctx, err)
			}
			fmt.Fprintln(a.out, resp.Message)
			return nil
		}
	}

	var path string
	useAI := false
	for _, arg := range args {
		if arg == "ai" {
			useAI = true
			continue
		}
		path = arg
	}

	fmt.Fprintln(a.out, "Scanning library, this can take a while...")

	result, err := a.api.Scan().Start(ctx, path, useAI)
	if err != nil {
		return a.surface(ctx, err)
	}

	fmt.Fprintf(a.out, "Scan finished: %d new products, %d new versions, %d updated\n",
		result.NewProducts, result.NewVersions, result.UpdatedProducts)
	if result.AIGenerated > 0 {
		fmt.Fprintf(a.out, "  metadata generated for %d products\n", result.AIGenerated)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(a.out, "  error: %s\n", e)
	}
	return nil
}

// Exclusions without arguments lists the current scan exclusion patterns.
// "exclusions add <pattern> [type]" registers a new one; any other
// arguments replace the whole list.
func (a *App) Exclusions(ctx context.Context, args []string) error {
	if !a.enter("Admin") {
		return nil
	}

	switch {
	case len(args) == 0:
		patterns, err := a.api.Scan().Exclusions(ctx)
		if err != nil {
			return a.surface(ctx, err)
		}
		if len(patterns) == 0 {
			fmt.Fprintln(a.out, "No exclusions configured.")
			return nil
		}
		for _, p := range patterns {
			fmt.Fprintln(a.out, p)
		}
		return nil

	case args[0] == "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: exclusions add <pattern> [type]")
		}
		patternType := "glob"
		if len(args) > 2 {
			patternType = args[2]
		}
		if err := a.api.Scan().AddExclusion(ctx, args[1], patternType); err != nil {
			return a.surface(ctx, err)
		}
		fmt.Fprintln(a.out, "Exclusion added")
		return nil

	default:
		if err := a.api.Scan().SaveExclusions(ctx, args); err != nil {
			return a.surface(ctx, err)
		}
		fmt.Fprintln(a.out, "Exclusions saved")
		return nil
	}
}
