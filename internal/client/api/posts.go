package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// PostsAPI manages the knowledge-base articles and their comments.
type PostsAPI struct {
	c *Client
}

// PostListOptions filters and pages the article list. Zero values mean
// "no filter"; the backend caps Limit at 100.
type PostListOptions struct {
	Skip     int
	Limit    int
	Category string
	Search   string
	Notice   *bool
}

// List returns articles matching opts, notices first, newest next.
func (p *PostsAPI) List(ctx context.Context, opts PostListOptions) ([]Post, error) {
	q := url.Values{}
	if opts.Skip > 0 {
		q.Set("skip", strconv.Itoa(opts.Skip))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	if opts.Notice != nil {
		q.Set("is_notice", strconv.FormatBool(*opts.Notice))
	}

	var out []Post
	if err := p.c.getJSON(ctx, "posts/", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one article. Reading counts as a view server-side.
func (p *PostsAPI) Get(ctx context.Context, id int) (*Post, error) {
	var out Post
	if err := p.c.getJSON(ctx, fmt.Sprintf("posts/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create publishes a new article.
func (p *PostsAPI) Create(ctx context.Context, category, title, content, tags string) (*Post, error) {
	body := map[string]string{
		"category": category,
		"title":    title,
		"content":  content,
		"tags":     tags,
	}
	var out Post
	if err := p.c.postJSON(ctx, "posts/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edits an existing article. Author or admin only, enforced
// server-side.
func (p *PostsAPI) Update(ctx context.Context, id int, category, title, content, tags string) (*Post, error) {
	body := map[string]string{
		"category": category,
		"title":    title,
		"content":  content,
		"tags":     tags,
	}
	var out Post
	if err := p.c.putJSON(ctx, fmt.Sprintf("posts/%d", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an article and its comments.
func (p *PostsAPI) Delete(ctx context.Context, id int) (*MessageResponse, error) {
	var out MessageResponse
	if err := p.c.delete(ctx, fmt.Sprintf("posts/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Comments returns an article's replies in posting order.
func (p *PostsAPI) Comments(ctx context.Context, postID int) ([]Comment, error) {
	var out []Comment
	if err := p.c.getJSON(ctx, fmt.Sprintf("posts/%d/comments", postID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddComment posts a reply under an article.
func (p *PostsAPI) AddComment(ctx context.Context, postID int, content string) (*Comment, error) {
	body := map[string]string{"content": content}
	var out Comment
	if err := p.c.postJSON(ctx, fmt.Sprintf("posts/%d/comments", postID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment removes one reply. Author or admin only, enforced
// server-side.
func (p *PostsAPI) DeleteComment(ctx context.Context, commentID int) (*MessageResponse, error) {
	var out MessageResponse
	if err := p.c.delete(ctx, fmt.Sprintf("posts/comments/%d", commentID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
