package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Pranav-1100/finagent/internal/interfaces"
)

// createExpenseRequest is the body for POST /api/expenses.
type createExpenseRequest struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Note     string  `json:"note"`
	Date     string  `json:"date"` // YYYY-MM-DD, optional
}

// handleExpenses handles GET and POST /api/expenses.
func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}

	if r.Method == http.MethodGet {
		expenses, err := s.app.SpendingService.ListExpenses(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{"expenses": expenses, "count": len(expenses)})
		return
	}

	var req createExpenseRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	expense, err := s.app.SpendingService.AddExpense(r.Context(), req.Amount, req.Category, req.Note, date)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteJSON(w, http.StatusCreated, expense)
}

// handleExpenseSummary handles GET /api/expenses/summary?from=&to=.
func (s *Server) handleExpenseSummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	var from, to time.Time
	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
			return
		}
		// Inclusive end of day
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	summary, err := s.app.SpendingService.ExpenseSummary(r.Context(), from, to)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, summary)
}

// createSubscriptionRequest is the body for POST /api/subscriptions.
type createSubscriptionRequest struct {
	Name        string  `json:"name"`
	MonthlyCost float64 `json:"monthly_cost"`
}

// handleSubscriptions handles GET and POST /api/subscriptions.
func (s *Server) handleSubscriptions(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}

	if r.Method == http.MethodGet {
		summary, err := s.app.SpendingService.SubscriptionSummary(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, summary)
		return
	}

	var req createSubscriptionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	sub, err := s.app.SpendingService.AddSubscription(r.Context(), req.Name, req.MonthlyCost)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteJSON(w, http.StatusCreated, sub)
}

// handleSubscriptionDelete handles DELETE /api/subscriptions/{id}.
func (s *Server) handleSubscriptionDelete(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/subscriptions/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "subscription id is required in path")
		return
	}

	if err := s.app.SpendingService.RemoveSubscription(r.Context(), id); err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			WriteError(w, http.StatusNotFound, "subscription not found")
			return
		}
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}
