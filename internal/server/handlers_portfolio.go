package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Pranav-1100/finagent/internal/services/portfolio"
)

// handlePortfolioGet handles GET /api/portfolios/{name} - the stored
// portfolio without market data.
func (s *Server) handlePortfolioGet(w http.ResponseWriter, r *http.Request, name string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	p, err := s.app.PortfolioService.GetPortfolio(r.Context(), name)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, p)
}

// handlePortfolioValuation handles GET /api/portfolios/{name}/valuation -
// the portfolio enriched with current quotes.
func (s *Server) handlePortfolioValuation(w http.ResponseWriter, r *http.Request, name string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	valuation, err := s.app.PortfolioService.ValuePortfolio(r.Context(), name)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, valuation)
}

// addHoldingRequest is the body for POST /api/portfolios/{name}/holdings.
type addHoldingRequest struct {
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// handleHoldingAdd handles POST /api/portfolios/{name}/holdings.
func (s *Server) handleHoldingAdd(w http.ResponseWriter, r *http.Request, name string) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req addHoldingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	holding, err := s.app.PortfolioService.AddStock(r.Context(), name, req.Symbol, req.Quantity, req.Price)
	if err != nil {
		WriteError(w, ledgerStatus(err), err.Error())
		return
	}

	WriteJSON(w, http.StatusCreated, holding)
}

// handleHoldingRemove handles DELETE /api/portfolios/{name}/holdings/{symbol}.
// An optional ?quantity= query reduces the position partially; omitting it
// removes the whole position.
func (s *Server) handleHoldingRemove(w http.ResponseWriter, r *http.Request, name, symbol string) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	quantity := 0.0
	if q := r.URL.Query().Get("quantity"); q != "" {
		v, err := strconv.ParseFloat(q, 64)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "quantity must be a number")
			return
		}
		quantity = v
	}

	p, err := s.app.PortfolioService.RemoveStock(r.Context(), name, symbol, quantity)
	if err != nil {
		WriteError(w, ledgerStatus(err), err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, p)
}

// handlePortfolioAnalysis handles GET /api/portfolios/{name}/analysis.
func (s *Server) handlePortfolioAnalysis(w http.ResponseWriter, r *http.Request, name string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	report, err := s.app.AnalysisService.AnalyzeRisk(r.Context(), name)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, report)
}

// rebalanceRequest is the optional body for POST /api/portfolios/{name}/rebalance.
type rebalanceRequest struct {
	Targets map[string]float64 `json:"targets,omitempty"`
}

// handlePortfolioRebalance handles GET and POST /api/portfolios/{name}/rebalance.
// GET plans against equal weights; POST accepts explicit target percentages.
func (s *Server) handlePortfolioRebalance(w http.ResponseWriter, r *http.Request, name string) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}

	var targets map[string]float64
	if r.Method == http.MethodPost {
		var req rebalanceRequest
		if !DecodeJSON(w, r, &req) {
			return
		}
		targets = req.Targets
	}

	plan, err := s.app.AnalysisService.PlanRebalance(r.Context(), name, targets)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, plan)
}

// handlePortfolioBenchmark handles GET /api/portfolios/{name}/benchmark?period=1Y.
func (s *Server) handlePortfolioBenchmark(w http.ResponseWriter, r *http.Request, name string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	period := r.URL.Query().Get("period")
	comparison, err := s.app.AnalysisService.CompareBenchmark(r.Context(), name, period)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, comparison)
}

// handlePortfolioChart handles GET /api/portfolios/{name}/chart - the
// allocation donut as a PNG.
func (s *Server) handlePortfolioChart(w http.ResponseWriter, r *http.Request, name string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	png, err := s.app.AnalysisService.RenderAllocationChart(r.Context(), name)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// ledgerStatus maps ledger validation errors to 400 and everything else
// to 500.
func ledgerStatus(err error) int {
	switch {
	case errors.Is(err, portfolio.ErrInvalidQuantity),
		errors.Is(err, portfolio.ErrInvalidPrice),
		errors.Is(err, portfolio.ErrInsufficientQuantity):
		return http.StatusBadRequest
	case errors.Is(err, portfolio.ErrNoPosition):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
