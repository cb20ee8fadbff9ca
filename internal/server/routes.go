package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/Pranav-1100/finagent/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)

	// Portfolios
	mux.HandleFunc("/api/portfolios/", s.routePortfolios)

	// Alerts
	mux.HandleFunc("/api/alerts/check", s.handleAlertCheck)
	mux.HandleFunc("/api/alerts/", s.handleAlertDelete)
	mux.HandleFunc("/api/alerts", s.handleAlerts)

	// Spending
	mux.HandleFunc("/api/expenses/summary", s.handleExpenseSummary)
	mux.HandleFunc("/api/expenses", s.handleExpenses)
	mux.HandleFunc("/api/subscriptions/", s.handleSubscriptionDelete)
	mux.HandleFunc("/api/subscriptions", s.handleSubscriptions)
}

// routePortfolios dispatches /api/portfolios/{name}/* to the appropriate handler.
func (s *Server) routePortfolios(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/portfolios/")
	if path == "" {
		WriteError(w, http.StatusBadRequest, "portfolio name is required in path")
		return
	}

	parts := strings.SplitN(path, "/", 3)
	name := parts[0]
	subpath := ""
	if len(parts) > 1 {
		subpath = strings.Join(parts[1:], "/")
	}

	switch {
	case subpath == "":
		s.handlePortfolioGet(w, r, name)
	case subpath == "valuation":
		s.handlePortfolioValuation(w, r, name)
	case subpath == "holdings":
		s.handleHoldingAdd(w, r, name)
	case strings.HasPrefix(subpath, "holdings/"):
		symbol := strings.TrimPrefix(subpath, "holdings/")
		s.handleHoldingRemove(w, r, name, symbol)
	case subpath == "analysis":
		s.handlePortfolioAnalysis(w, r, name)
	case subpath == "rebalance":
		s.handlePortfolioRebalance(w, r, name)
	case subpath == "benchmark":
		s.handlePortfolioBenchmark(w, r, name)
	case subpath == "chart":
		s.handlePortfolioChart(w, r, name)
	default:
		WriteError(w, http.StatusNotFound, "Not found")
	}
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.app.StartupTime).Round(time.Second).String(),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}
