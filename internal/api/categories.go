package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"monedero/internal/core"
)

// CategoryFilters narrows category listings.
type CategoryFilters struct {
	Pagination
	Kind *core.CategoryKind
}

func (f CategoryFilters) query() url.Values {
	q := url.Values{}
	f.apply(q)
	if f.Kind != nil {
		q.Set("tipo", string(*f.Kind))
	}
	return q
}

// Categories lists every category visible to the caller (global plus personal).
func (c *Client) Categories(ctx context.Context, filters CategoryFilters) ([]core.Category, error) {
	var out []core.Category
	if err := c.getJSON(ctx, "api/categories/", filters.query(), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PersonalCategories lists only the caller's own categories.
func (c *Client) PersonalCategories(ctx context.Context, filters CategoryFilters) ([]core.Category, error) {
	var out []core.Category
	if err := c.getJSON(ctx, "api/categories/personal", filters.query(), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GlobalCategories lists the shared defaults. This endpoint is public.
func (c *Client) GlobalCategories(ctx context.Context, filters CategoryFilters) ([]core.Category, error) {
	var out []core.Category
	if err := c.getJSON(ctx, "api/categories/global", filters.query(), false, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Category fetches a single category by ID.
func (c *Client) Category(ctx context.Context, id int64) (core.Category, error) {
	var out core.Category
	if err := c.getJSON(ctx, fmt.Sprintf("api/categories/%d", id), nil, true, &out); err != nil {
		return core.Category{}, err
	}
	return out, nil
}

// CreateCategory creates a personal category.
func (c *Client) CreateCategory(ctx context.Context, in core.NewCategory) (core.Category, error) {
	var out core.Category
	if err := c.sendJSON(ctx, http.MethodPost, "api/categories/", in, &out, true); err != nil {
		return core.Category{}, err
	}
	return out, nil
}

// UpdateCategory applies a partial update to a category.
func (c *Client) UpdateCategory(ctx context.Context, id int64, patch core.CategoryPatch) (core.Category, error) {
	var out core.Category
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("api/categories/%d", id), patch, &out, true); err != nil {
		return core.Category{}, err
	}
	return out, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("api/categories/%d", id))
}

// CategoryStats returns aggregate usage figures for one category.
func (c *Client) CategoryStats(ctx context.Context, id int64) (core.CategoryStats, error) {
	var out core.CategoryStats
	if err := c.getJSON(ctx, fmt.Sprintf("api/categories/%d/stats", id), nil, true, &out); err != nil {
		return core.CategoryStats{}, err
	}
	return out, nil
}
