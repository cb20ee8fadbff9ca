package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Pranav-1100/finagent/internal/interfaces"
	"github.com/Pranav-1100/finagent/internal/models"
)

// createAlertRequest is the body for POST /api/alerts.
type createAlertRequest struct {
	Symbol      string  `json:"symbol"`
	Condition   string  `json:"condition"`
	TargetPrice float64 `json:"target_price"`
}

// handleAlerts handles GET and POST /api/alerts.
func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}

	if r.Method == http.MethodGet {
		alerts, err := s.app.AlertService.ListAlerts(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{"alerts": alerts, "count": len(alerts)})
		return
	}

	var req createAlertRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	alert, err := s.app.AlertService.SetAlert(r.Context(), req.Symbol, models.AlertCondition(req.Condition), req.TargetPrice)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteJSON(w, http.StatusCreated, alert)
}

// handleAlertDelete handles DELETE /api/alerts/{id}.
func (s *Server) handleAlertDelete(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/alerts/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "alert id is required in path")
		return
	}

	if err := s.app.AlertService.RemoveAlert(r.Context(), id); err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			WriteError(w, http.StatusNotFound, "alert not found")
			return
		}
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}

// handleAlertCheck handles POST /api/alerts/check - evaluates all alerts
// against current quotes.
func (s *Server) handleAlertCheck(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	result, err := s.app.AlertService.CheckAlerts(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, result)
}
