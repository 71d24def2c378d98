package api

import (
	"context"
	"net/url"
)

// ScrapsAPI manages the current user's bookmarked posts.
type ScrapsAPI struct {
	c *Client
}

// List returns the user's scraps, newest first.
func (s *ScrapsAPI) List(ctx context.Context) ([]Scrap, error) {
	var out []Scrap
	if err := s.c.getJSON(ctx, "scraps/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Add bookmarks a post. postTitle is cached server-side for listing and may
// be empty.
func (s *ScrapsAPI) Add(ctx context.Context, postID, postTitle string) (*MessageResponse, error) {
	path := "scraps/" + url.PathEscape(postID)
	if postTitle != "" {
		path += "?" + url.Values{"post_title": []string{postTitle}}.Encode()
	}
	var out MessageResponse
	if err := s.c.postJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Remove drops a bookmark.
func (s *ScrapsAPI) Remove(ctx context.Context, postID string) (*MessageResponse, error) {
	var out MessageResponse
	if err := s.c.delete(ctx, "scraps/"+url.PathEscape(postID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Check reports whether a post is currently bookmarked.
func (s *ScrapsAPI) Check(ctx context.Context, postID string) (bool, error) {
	var out struct {
		IsScraped bool `json:"is_scraped"`
	}
	if err := s.c.getJSON(ctx, "scraps/check/"+url.PathEscape(postID), nil, &out); err != nil {
		return false, err
	}
	return out.IsScraped, nil
}
