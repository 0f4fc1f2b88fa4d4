package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"monedero/internal/core"
)

// IncomeFilters narrows income listings.
type IncomeFilters struct {
	Pagination
	StartDate *string
	EndDate   *string
}

func (f IncomeFilters) query() url.Values {
	q := url.Values{}
	f.apply(q)
	if f.StartDate != nil {
		q.Set("start_date", *f.StartDate)
	}
	if f.EndDate != nil {
		q.Set("end_date", *f.EndDate)
	}
	return q
}

// Incomes lists the caller's incomes.
func (c *Client) Incomes(ctx context.Context, filters IncomeFilters) ([]core.Income, error) {
	var out []core.Income
	if err := c.getJSON(ctx, "api/incomes/", filters.query(), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Income fetches a single income by ID.
func (c *Client) Income(ctx context.Context, id int64) (core.Income, error) {
	var out core.Income
	if err := c.getJSON(ctx, fmt.Sprintf("api/incomes/%d", id), nil, true, &out); err != nil {
		return core.Income{}, err
	}
	return out, nil
}

// GroupIncomes lists the incomes recorded against a group.
func (c *Client) GroupIncomes(ctx context.Context, groupID int64, filters IncomeFilters) ([]core.Income, error) {
	var out []core.Income
	if err := c.getJSON(ctx, fmt.Sprintf("api/incomes/group/%d", groupID), filters.query(), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIncome records a new income.
func (c *Client) CreateIncome(ctx context.Context, in core.NewIncome) (core.Income, error) {
	var out core.Income
	if err := c.sendJSON(ctx, http.MethodPost, "api/incomes/", in, &out, true); err != nil {
		return core.Income{}, err
	}
	return out, nil
}

// UpdateIncome applies a partial update to an income.
func (c *Client) UpdateIncome(ctx context.Context, id int64, patch core.IncomePatch) (core.Income, error) {
	var out core.Income
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("api/incomes/%d", id), patch, &out, true); err != nil {
		return core.Income{}, err
	}
	return out, nil
}

// DeleteIncome removes an income.
func (c *Client) DeleteIncome(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("api/incomes/%d", id))
}

// IncomeTotal returns the caller's total income.
func (c *Client) IncomeTotal(ctx context.Context) (core.Total, error) {
	var out core.Total
	if err := c.getJSON(ctx, "api/incomes/total/amount", nil, true, &out); err != nil {
		return core.Total{}, err
	}
	return out, nil
}

// GroupIncomeTotal returns a group's total income.
func (c *Client) GroupIncomeTotal(ctx context.Context, groupID int64) (core.Total, error) {
	var out core.Total
	if err := c.getJSON(ctx, fmt.Sprintf("api/incomes/group/%d/total/amount", groupID), nil, true, &out); err != nil {
		return core.Total{}, err
	}
	return out, nil
}

// IncomesByDateRange lists incomes between two dates inclusive.
func (c *Client) IncomesByDateRange(ctx context.Context, startDate, endDate string, p Pagination) ([]core.Income, error) {
	q := url.Values{}
	p.apply(q)
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)

	var out []core.Income
	if err := c.getJSON(ctx, "api/incomes/date-range/", q, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}
