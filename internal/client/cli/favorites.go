package cli

import (
	"context"
	"fmt"
	"strings"
)

// Favorites lists the user's pinned products; "favorites add <product-id>"
// pins one and "favorites rm <product-id>" unpins it.
func (a *App) Favorites(ctx context.Context, args []string) error {
	if !a.enter("Favorites") {
		return nil
	}

	if len(args) > 0 {
		switch args[0] {
		case "add":
			id, err := parseID(args[1:], "favorites add <product-id>")
			if err != nil {
				return err
			}
			resp, err := a.api.Favorites().Add(ctx, id)
			if err != nil {
				return a.surface(ctx, err)
			}
			fmt.Fprintln(a.out, resp.Message)
			return nil

		case "rm":
			id, err := parseID(args[1:], "favorites rm <product-id>")
			if err != nil {
				return err
			}
			resp, err := a.api.Favorites().Remove(ctx, id)
			if err != nil {
				return a.surface(ctx, err)
			}
			fmt.Fprintln(a.out, resp.Message)
			return nil

		default:
			return fmt.Errorf("usage: favorites [add <product-id>|rm <product-id>]")
		}
	}

	favs, err := a.api.Favorites().List(ctx)
	if err != nil {
		return a.surface(ctx, err)
	}

	if len(favs) == 0 {
		fmt.Fprintln(a.out, "No favorites yet.")
		return nil
	}

	for _, f := range favs {
		if f.Product != nil {
			fmt.Fprintf(a.out, "#%d %s\n", f.ProductID, f.Product.Title)
		} else {
			fmt.Fprintf(a.out, "#%d (removed product)\n", f.ProductID)
		}
	}
	return nil
}

// Scraps lists the user's bookmarked posts; "scraps add <post-id> [title]"
// bookmarks one and "scraps rm <post-id>" drops it.
func (a *App) Scraps(ctx context.Context, args []string) error {
	if !a.enter("Scraps") {
		return nil
	}

	if len(args) > 0 {
		switch args[0] {
		case "add":
			if len(args) < 2 {
				return fmt.Errorf("usage: scraps add <post-id> [title]")
			}
			title := strings.Join(args[2:], " ")
			resp, err := a.api.Scraps().Add(ctx, args[1], title)
			if err != nil {
				return a.surface(ctx, err)
			}
			fmt.Fprintln(a.out, resp.Message)
			return nil

		case "rm":
			if len(args) != 2 {
				return fmt.Errorf("usage: scraps rm <post-id>")
			}
			resp, err := a.api.Scraps().Remove(ctx, args[1])
			if err != nil {
				return a.surface(ctx, err)
			}
			fmt.Fprintln(a.out, resp.Message)
			return nil

		default:
			return fmt.Errorf("usage: scraps [add <post-id> [title]|rm <post-id>]")
		}
	}

	scraps, err := a.api.Scraps().List(ctx)
	if err != nil {
		return a.surface(ctx, err)
	}

	if len(scraps) == 0 {
		fmt.Fprintln(a.out, "No scraps yet.")
		return nil
	}

	for _, s := range scraps {
		fmt.Fprintf(a.out, "#%s %s\n", s.PostID, s.PostTitle)
	}
	return nil
}
