package api

import (
	"context"
	"fmt"
)

// FavoritesAPI manages the current user's pinned products.
type FavoritesAPI struct {
	c *Client
}

// List returns the user's favorites with the joined product data.
func (f *FavoritesAPI) List(ctx context.Context) ([]Favorite, error) {
	var out []Favorite
	if err := f.c.getJSON(ctx, "favorites/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Add pins a product.
func (f *FavoritesAPI) Add(ctx context.Context, productID int) (*MessageResponse, error) {
	var out MessageResponse
	if err := f.c.postJSON(ctx, fmt.Sprintf("favorites/%d", productID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Remove unpins a product.
func (f *FavoritesAPI) Remove(ctx context.Context, productID int) (*MessageResponse, error) {
	var out MessageResponse
	if err := f.c.delete(ctx, fmt.Sprintf("favorites/%d", productID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Check reports whether a product is currently pinned.
func (f *FavoritesAPI) Check(ctx context.Context, productID int) (bool, error) {
	var out struct {
		IsFavorite bool `json:"is_favorite"`
	}
	if err := f.c.getJSON(ctx, fmt.Sprintf("favorites/check/%d", productID), nil, &out); err != nil {
		return false, err
	}
	return out.IsFavorite, nil
}
