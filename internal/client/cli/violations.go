package cli

import (
	"context"
	"fmt"
	"strconv"
)

// parseID reads a single numeric argument for commands operating on one
// violation record.
func parseID(args []string, usage string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	return id, nil
}

func (a *App) Violations(ctx context.Context, args []string) error {
	if !a.enter("FilenameViolations") {
		return nil
	}

	resolved := len(args) > 0 && args[0] == "resolved"

	items, err := a.api.Violations().List(ctx, resolved)
	if err != nil {
		return a.surface(ctx, err)
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No violations.")
		return nil
	}

	for _, v := range items {
		state := "open"
		if v.IsResolved {
			state = "resolved"
		}
		fmt.Fprintf(a.out, "#%d [%s] %s/%s (%s)\n", v.ID, state, v.FolderPath, v.FileName, v.ViolationType)
		if v.Suggestion != "" {
			fmt.Fprintf(a.out, "    suggestion: %s\n", v.Suggestion)
		}
	}
	return nil
}

func (a *App) ViolationStats(ctx context.Context) error {
	if !a.enter("FilenameViolations") {
		return nil
	}

	stats, err := a.api.Violations().Stats(ctx)
	if err != nil {
		return a.surface(ctx, err)
	}

	fmt.Fprintf(a.out, "total: %d, scanned: %d, mismatched: %d\n", stats.Total, stats.Scanned, stats.Mismatched)
	for t, n := range stats.ByType {
		fmt.Fprintf(a.out, "  %s: %d\n", t, n)
	}
	return nil
}

func (a *App) Resolve(ctx context.Context, args []string) error {
	if !a.enter("FilenameViolations") {
		return nil
	}

	id, err := parseID(args, "resolve <id>")
	if err != nil {
		return err
	}

	resp, err := a.api.Violations().Resolve(ctx, id)
	if err != nil {
		return a.surface(ctx, err)
	}

	fmt.Fprintln(a.out, resp.Message)
	return nil
}

func (a *App) RenameViolation(ctx context.Context, args []string) error {
	if !a.enter("FilenameViolations") {
		return nil
	}

	id, err := parseID(args, "rename <id>")
	if err != nil {
		return err
	}

	newName, err := GetSimpleText(a.reader, "Enter new filename", a.out)
	if err != nil {
		return err
	}

	result, err := a.api.Violations().Rename(ctx, id, newName)
	if err != nil {
		return a.surface(ctx, err)
	}

	fmt.Fprintf(a.out, "Renamed %s -> %s\n", result.OldFilename, result.NewFilename)
	return nil
}

func (a *App) BatchRename(ctx context.Context, args []string) error {
	if !a.enter("FilenameViolations") {
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("usage: batchrename <id> [id...]")
	}

	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("usage: batchrename <id> [id...]")
		}
		ids = append(ids, id)
	}

	result, err := a.api.Violations().BatchRename(ctx, ids)
	if err != nil {
		return a.surface(ctx, err)
	}

	fmt.Fprintf(a.out, "%s (%d renamed, %d failed)\n",
		result.Message, len(result.Results.Success), len(result.Results.Failed))
	for _, item := range result.Results.Success {
		fmt.Fprintf(a.out, "  #%d %s -> %s\n", item.ID, item.OldFilename, item.NewFilename)
	}
	for _, item := range result.Results.Failed {
		fmt.Fprintf(a.out, "  #%d failed: %s\n", item.ID, item.Error)
	}
	return nil
}

func (a *App) DeleteViolation(ctx context.Context, args []string) error {
	if !a.enter("FilenameViolations") {
		return nil
	}

	id, err := parseID(args, "rmviolation <id>")
	if err != nil {
		return err
	}

	resp, err := a.api.Violations().Delete(ctx, id)
	if err != nil {
		return a.surface(ctx, err)
	}

	fmt.Fprintln(a.out, resp.Message)
	return nil
}

// ClearViolations removes resolved records; "clearviolations all" wipes
// open ones too.
func (a *App) ClearViolations(ctx context.Context, args []string) error {
	if !a.enter("FilenameViolations") {
		return nil
	}

	resolvedOnly := !(len(args) > 0 && args[0] == "all")

	result, err := a.api.Violations().Clear(ctx, resolvedOnly)
	if err != nil {
		return a.surface(ctx, err)
	}

	fmt.Fprintf(a.out, "%s (%d removed)\n", result.Message, result.DeletedCount)
	return nil
}

func (a *App) CreateProduct(ctx context.Context, args []string) error {
	if !a.enter("FilenameViolations") {
		return nil
	}

	id, err := parseID(args, "createproduct <id>")
	if err != nil {
		return err
	}

	resp, err := a.api.Violations().CreateProduct(ctx, id)
	if err != nil {
		return a.surface(ctx, err)
	}

	fmt.Fprintln(a.out, resp.Message)
	return nil
}
