package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shelfhub/shelfhub/internal/client/api"
)

// Products lists the catalog. "products recent" shows the latest arrivals,
// a numeric argument shows one product in detail, and any other argument
// is treated as a search term.
func (a *App) Products(ctx context.Context, args []string) error {
	if !a.enter("Discover") {
		return nil
	}

	if len(args) > 0 && args[0] == "recent" {
		recent, err := a.api.Products().Recent(ctx, 10)
		if err != nil {
			return a.surface(ctx, err)
		}
		for _, p := range recent {
			fmt.Fprintf(a.out, "#%d %s\n", p.ID, p.Title)
		}
		return nil
	}

	if len(args) == 1 {
		if id, err := strconv.Atoi(args[0]); err == nil {
			p, err := a.api.Products().Get(ctx, id)
			if err != nil {
				return a.surface(ctx, err)
			}
			fmt.Fprintf(a.out, "#%d %s\n", p.ID, p.Title)
			if p.Subtitle != "" {
				fmt.Fprintf(a.out, "  %s\n", p.Subtitle)
			}
			if p.Description != "" {
				fmt.Fprintf(a.out, "  %s\n", p.Description)
			}
			fmt.Fprintf(a.out, "  folder: %s\n", p.FolderPath)
			return nil
		}
	}

	opts := api.ListOptions{Limit: 50}
	if len(args) > 0 {
		opts.Search = args[0]
	}

	page, err := a.api.Products().List(ctx, opts)
	if err != nil {
		return a.surface(ctx, err)
	}

	if len(page.Products) == 0 {
		fmt.Fprintln(a.out, "No products found.")
		return nil
	}

	for _, p := range page.Products {
		fmt.Fprintf(a.out, "#%d %s", p.ID, p.Title)
		if p.Vendor != "" {
			fmt.Fprintf(a.out, " by %s", p.Vendor)
		}
		if p.Category != "" {
			fmt.Fprintf(a.out, " [%s]", p.Category)
		}
		fmt.Fprintln(a.out)
	}
	fmt.Fprintf(a.out, "%d of %d products\n", len(page.Products), page.Total)
	return nil
}
