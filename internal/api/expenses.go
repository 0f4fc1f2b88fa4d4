package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"monedero/internal/core"
)

// ExpenseFilters narrows expense listings.
type ExpenseFilters struct {
	Pagination
	StartDate    *string
	EndDate      *string
	PersonalOnly *bool
}

func (f ExpenseFilters) query() url.Values {
	q := url.Values{}
	f.apply(q)
	if f.StartDate != nil {
		q.Set("start_date", *f.StartDate)
	}
	if f.EndDate != nil {
		q.Set("end_date", *f.EndDate)
	}
	if f.PersonalOnly != nil {
		q.Set("personal_only", strconv.FormatBool(*f.PersonalOnly))
	}
	return q
}

// Expenses lists the caller's expenses.
func (c *Client) Expenses(ctx context.Context, filters ExpenseFilters) ([]core.Expense, error) {
	var out []core.Expense
	if err := c.getJSON(ctx, "api/expenses/", filters.query(), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Expense fetches a single expense by ID.
func (c *Client) Expense(ctx context.Context, id int64) (core.Expense, error) {
	var out core.Expense
	if err := c.getJSON(ctx, fmt.Sprintf("api/expenses/%d", id), nil, true, &out); err != nil {
		return core.Expense{}, err
	}
	return out, nil
}

// GroupExpenses lists the expenses recorded against a group.
func (c *Client) GroupExpenses(ctx context.Context, groupID int64, filters ExpenseFilters) ([]core.Expense, error) {
	var out []core.Expense
	if err := c.getJSON(ctx, fmt.Sprintf("api/expenses/group/%d", groupID), filters.query(), true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateExpense records a new expense.
func (c *Client) CreateExpense(ctx context.Context, in core.NewExpense) (core.Expense, error) {
	var out core.Expense
	if err := c.sendJSON(ctx, http.MethodPost, "api/expenses/", in, &out, true); err != nil {
		return core.Expense{}, err
	}
	return out, nil
}

// UpdateExpense applies a partial update to an expense.
func (c *Client) UpdateExpense(ctx context.Context, id int64, patch core.ExpensePatch) (core.Expense, error) {
	var out core.Expense
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("api/expenses/%d", id), patch, &out, true); err != nil {
		return core.Expense{}, err
	}
	return out, nil
}

// DeleteExpense removes an expense.
func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("api/expenses/%d", id))
}

// ExpenseTotal returns the caller's total spend in the filter window.
func (c *Client) ExpenseTotal(ctx context.Context, filters ExpenseFilters) (core.Total, error) {
	var out core.Total
	if err := c.getJSON(ctx, "api/expenses/total/amount", filters.query(), true, &out); err != nil {
		return core.Total{}, err
	}
	return out, nil
}

// GroupExpenseTotal returns a group's total spend.
func (c *Client) GroupExpenseTotal(ctx context.Context, groupID int64) (core.Total, error) {
	var out core.Total
	if err := c.getJSON(ctx, fmt.Sprintf("api/expenses/group/%d/total/amount", groupID), nil, true, &out); err != nil {
		return core.Total{}, err
	}
	return out, nil
}

// ExpensesByDateRange lists expenses between two dates inclusive.
func (c *Client) ExpensesByDateRange(ctx context.Context, startDate, endDate string, p Pagination) ([]core.Expense, error) {
	q := url.Values{}
	p.apply(q)
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)

	var out []core.Expense
	if err := c.getJSON(ctx, "api/expenses/date-range/", q, true, &out); err != nil {
		return nil, err
	}
	return out, nil
}
