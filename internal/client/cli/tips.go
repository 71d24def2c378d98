package cli

import (
	"context"
	"fmt"

	"github.com/shelfhub/shelfhub/internal/client/api"
)

// Tips browses the knowledge base. No arguments lists articles, a numeric
// argument reads one with its comments, "tips write" publishes a new
// article, "tips comment <id>" replies, and "tips rm <id>" deletes.
func (a *App) Tips(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.listTips(ctx)
	}

	switch args[0] {
	case "write":
		return a.writeTip(ctx)
	case "comment":
		id, err := parseID(args[1:], "tips comment <id>")
		if err != nil {
			return err
		}
		return a.commentTip(ctx, id)
	case "rm":
		id, err := parseID(args[1:], "tips rm <id>")
		if err != nil {
			return err
		}
		return a.deleteTip(ctx, id)
	default:
		id, err := parseID(args[:1], "tips [<id>|write|comment <id>|rm <id>]")
		if err != nil {
			return err
		}
		return a.readTip(ctx, id)
	}
}

func (a *App) listTips(ctx context.Context) error {
	if !a.enter("Tips") {
		return nil
	}

	posts, err := a.api.Posts().List(ctx, api.PostListOptions{Limit: 20})
	if err != nil {
		return a.surface(ctx, err)
	}

	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No articles yet.")
		return nil
	}

	for _, p := range posts {
		marker := " "
		if p.IsNotice {
			marker = "!"
		}
		fmt.Fprintf(a.out, "%s #%d [%s] %s (%s, %d views, %d comments)\n",
			marker, p.ID, p.Category, p.Title, p.AuthorUsername, p.Views, p.CommentsCount)
	}
	return nil
}

func (a *App) readTip(ctx context.Context, id int) error {
	if !a.enter("TipsDetail") {
		return nil
	}

	post, err := a.api.Posts().Get(ctx, id)
	if err != nil {
		return a.surface(ctx, err)
	}

	fmt.Fprintf(a.out, "#%d [%s] %s (%s)\n\n%s\n", post.ID, post.Category, post.Title, post.AuthorUsername, post.Content)

	comments, err := a.api.Posts().Comments(ctx, id)
	if err != nil {
		return a.surface(ctx, err)
	}
	for _, c := range comments {
		fmt.Fprintf(a.out, "  %s: %s\n", c.AuthorUsername, c.Content)
	}
	return nil
}

func (a *App) writeTip(ctx context.Context) error {
	if !a.enter("TipsWrite") {
		return nil
	}

	category, err := GetSimpleText(a.reader, "Category", a.out)
	if err != nil {
		return err
	}
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	content, err := GetSimpleText(a.reader, "Content", a.out)
	if err != nil {
		return err
	}
	tags, err := GetSimpleText(a.reader, "Tags (comma separated)", a.out)
	if err != nil {
		return err
	}

	post, err := a.api.Posts().Create(ctx, category, title, content, tags)
	if err != nil {
		return a.surface(ctx, err)
	}

	fmt.Fprintf(a.out, "Published #%d\n", post.ID)
	return nil
}

func (a *App) commentTip(ctx context.Context, id int) error {
	if !a.enter("TipsDetail") {
		return nil
	}

	content, err := GetSimpleText(a.reader, "Comment", a.out)
	if err != nil {
		return err
	}

	if _, err := a.api.Posts().AddComment(ctx, id, content); err != nil {
		return a.surface(ctx, err)
	}
	fmt.Fprintln(a.out, "Comment added")
	return nil
}

func (a *App) deleteTip(ctx context.Context, id int) error {
	if !a.enter("TipsWrite") {
		return nil
	}

	resp, err := a.api.Posts().Delete(ctx, id)
	if err != nil {
		return a.surface(ctx, err)
	}
	fmt.Fprintln(a.out, resp.Message)
	return nil
}
