package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"monedero/internal/core"
)

// GoalContributions lists the contributions made towards one goal.
func (c *Client) GoalContributions(ctx context.Context, goalID int64, p Pagination) ([]core.GoalContribution, error) {
	q := url.Values{}
	p.apply(q)

	var out []core.GoalContribution
	if err := c.getJSON(ctx, fmt.Sprintf("api/goal-contributions/goal/%d", goalID), q, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyContributions lists the caller's contributions across all goals.
func (c *Client) MyContributions(ctx context.Context, p Pagination) ([]core.GoalContribution, error) {
	q := url.Values{}
	p.apply(q)

	var out []core.GoalContribution
	if err := c.getJSON(ctx, "api/goal-contributions/user", q, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserGoalContributions lists one user's contributions towards one goal.
func (c *Client) UserGoalContributions(ctx context.Context, goalID, userID int64) ([]core.GoalContribution, error) {
	path := fmt.Sprintf("api/goal-contributions/goal/%d/user/%d", goalID, userID)

	var out []core.GoalContribution
	if err := c.getJSON(ctx, path, nil, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Contribution fetches a single contribution by ID.
func (c *Client) Contribution(ctx context.Context, id int64) (core.GoalContribution, error) {
	var out core.GoalContribution
	if err := c.getJSON(ctx, fmt.Sprintf("api/goal-contributions/%d", id), nil, true, &out); err != nil {
		return core.GoalContribution{}, err
	}
	return out, nil
}

// ContributionTotal aggregates all contributions for one goal.
func (c *Client) ContributionTotal(ctx context.Context, goalID int64) (core.ContributionTotal, error) {
	var out core.ContributionTotal
	if err := c.getJSON(ctx, fmt.Sprintf("api/goal-contributions/goal/%d/total", goalID), nil, true, &out); err != nil {
		return core.ContributionTotal{}, err
	}
	return out, nil
}

// CreateContribution records a contribution towards a goal.
func (c *Client) CreateContribution(ctx context.Context, in core.NewContribution) (core.GoalContribution, error) {
	var out core.GoalContribution
	if err := c.sendJSON(ctx, http.MethodPost, "api/goal-contributions/", in, &out, true); err != nil {
		return core.GoalContribution{}, err
	}
	return out, nil
}

// UpdateContribution applies a partial update to a contribution.
func (c *Client) UpdateContribution(ctx context.Context, id int64, patch core.ContributionPatch) (core.GoalContribution, error) {
	var out core.GoalContribution
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("api/goal-contributions/%d", id), patch, &out, true); err != nil {
		return core.GoalContribution{}, err
	}
	return out, nil
}

// DeleteContribution removes a contribution.
func (c *Client) DeleteContribution(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("api/goal-contributions/%d", id))
}
