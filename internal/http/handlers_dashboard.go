package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"monedero/internal/api"
	"monedero/internal/core"
	"monedero/internal/log"
)

// dashboardData aggregates the remote resources the dashboard renders.
type dashboardData struct {
	User           core.User
	IncomeTotal    decimal.Decimal
	ExpenseTotal   decimal.Decimal
	Balance        decimal.Decimal
	RecentExpenses []core.Expense
	RecentIncomes  []core.Income
	Goals          []core.Goal
	Error          string
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user, ok := s.sessions.Identity()
	if !ok {
		// The guard admitted the request, so the session just ended.
		http.Redirect(w, r, LoginPath, http.StatusSeeOther)
		return
	}

	cacheKey := fmt.Sprintf("dashboard:%d", user.ID)
	if data, hit := s.dashCache.Get(cacheKey); hit {
		data.User = user
		s.render(w, r, "dashboard_page", data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	data := s.fetchDashboard(ctx, user)
	if data.Error == "" {
		s.dashCache.Set(cacheKey, data)
	}
	s.render(w, r, "dashboard_page", data)
}

// fetchDashboard pulls totals, recent movements and goal progress from the
// API. A failed fetch degrades to a partial page with an inline message
// rather than an error page.
func (s *Server) fetchDashboard(ctx context.Context, user core.User) dashboardData {
	data := dashboardData{User: user}
	limit := 5

	incomeTotal, err := s.apiClient.IncomeTotal(ctx)
	if err != nil {
		return s.dashboardError(ctx, data, "load income total", err)
	}
	data.IncomeTotal = incomeTotal.Total

	expenseTotal, err := s.apiClient.ExpenseTotal(ctx, api.ExpenseFilters{})
	if err != nil {
		return s.dashboardError(ctx, data, "load expense total", err)
	}
	data.ExpenseTotal = expenseTotal.Total
	data.Balance = data.IncomeTotal.Sub(data.ExpenseTotal)

	if expenses, err := s.apiClient.Expenses(ctx, api.ExpenseFilters{Pagination: api.Pagination{Limit: &limit}}); err == nil {
		data.RecentExpenses = expenses
	} else {
		s.logger.WarnContext(ctx, "Failed to load recent expenses", log.FieldError, err)
	}

	if incomes, err := s.apiClient.Incomes(ctx, api.IncomeFilters{Pagination: api.Pagination{Limit: &limit}}); err == nil {
		data.RecentIncomes = incomes
	} else {
		s.logger.WarnContext(ctx, "Failed to load recent incomes", log.FieldError, err)
	}

	if goals, err := s.apiClient.Goals(ctx, api.GoalFilters{}); err == nil {
		data.Goals = goals
	} else {
		s.logger.WarnContext(ctx, "Failed to load goals", log.FieldError, err)
	}

	return data
}

func (s *Server) dashboardError(ctx context.Context, data dashboardData, op string, err error) dashboardData {
	s.logger.ErrorContext(ctx, "Dashboard fetch failed", "operation", op, log.FieldError, err)
	data.Error = errorMessage(err)
	return data
}
