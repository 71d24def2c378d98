package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ProductsAPI is the read-only catalog surface the CLI browses.
type ProductsAPI struct {
	c *Client
}

// ListOptions filters and pages the catalog. Zero values mean
// "server default".
type ListOptions struct {
	Skip     int
	Limit    int
	Category string
	Vendor   string
	Search   string
}

// List returns one catalog page plus the unpaged total.
func (p *ProductsAPI) List(ctx context.Context, opts ListOptions) (*ProductList, error) {
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
	if opts.Vendor != "" {
		q.Set("vendor", opts.Vendor)
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}

	var out ProductList
	if err := p.c.getJSON(ctx, "products/", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one catalog entry by id.
func (p *ProductsAPI) Get(ctx context.Context, id int) (*Product, error) {
	var out Product
	if err := p.c.getJSON(ctx, fmt.Sprintf("products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recent returns the most recently added products.
func (p *ProductsAPI) Recent(ctx context.Context, limit int) ([]Product, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []Product
	if err := p.c.getJSON(ctx, "products/recent", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
