package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"monedero/internal/core"
)

// GoalFilters narrows goal listings.
type GoalFilters struct {
	Pagination
	PersonalOnly *bool
}

func (f GoalFilters) query() url.Values {
	q := url.Values{}
	f.apply(q)
	if f.PersonalOnly != nil {
		q.Set("personal_only", strconv.FormatBool(*f.PersonalOnly))
	}
	return q
}

// Goals lists the caller's savings goals.
func (c *Client) Goals(ctx context.Context, filters GoalFilters) ([]core.Goal, error) {
	var out []core.Goal
	if err := c.getJSON(ctx, "api/goals/", filters.query(), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Goal fetches a single goal by ID.
func (c *Client) Goal(ctx context.Context, id int64) (core.Goal, error) {
	var out core.Goal
	if err := c.getJSON(ctx, fmt.Sprintf("api/goals/%d", id), nil, true, &out); err != nil {
		return core.Goal{}, err
	}
	return out, nil
}

// GroupGoals lists a group's shared goals.
func (c *Client) GroupGoals(ctx context.Context, groupID int64, p Pagination) ([]core.Goal, error) {
	q := url.Values{}
	p.apply(q)

	var out []core.Goal
	if err := c.getJSON(ctx, fmt.Sprintf("api/goals/group/%d", groupID), q, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GoalsByState lists goals in a given lifecycle state.
func (c *Client) GoalsByState(ctx context.Context, state core.GoalState, p Pagination) ([]core.Goal, error) {
	q := url.Values{}
	p.apply(q)

	var out []core.Goal
	if err := c.getJSON(ctx, "api/goals/status/"+string(state), q, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GoalProgress returns the server-computed progress view for one goal.
func (c *Client) GoalProgress(ctx context.Context, id int64) (core.GoalProgress, error) {
	var out core.GoalProgress
	if err := c.getJSON(ctx, fmt.Sprintf("api/goals/%d/progress", id), nil, true, &out); err != nil {
		return core.GoalProgress{}, err
	}
	return out, nil
}

// CreateGoal creates a savings goal.
func (c *Client) CreateGoal(ctx context.Context, in core.NewGoal) (core.Goal, error) {
	var out core.Goal
	if err := c.sendJSON(ctx, http.MethodPost, "api/goals/", in, &out, true); err != nil {
		return core.Goal{}, err
	}
	return out, nil
}

// UpdateGoal applies a partial update to a goal.
func (c *Client) UpdateGoal(ctx context.Context, id int64, patch core.GoalPatch) (core.Goal, error) {
	var out core.Goal
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("api/goals/%d", id), patch, &out, true); err != nil {
		return core.Goal{}, err
	}
	return out, nil
}

// DeleteGoal removes a goal.
func (c *Client) DeleteGoal(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("api/goals/%d", id))
}
