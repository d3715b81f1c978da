package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"diet-planner/internal/app"
	"diet-planner/internal/planner"
	"diet-planner/internal/profile"
	"diet-planner/internal/tracking"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type generateRequest struct {
	StartDate string `json:"start_date"`
}

type healthResponse struct {
	Status string      `json:"status"`
	System interface{} `json:"system"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", System: s.svc.Health()})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	snap, err := s.svc.Profile(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if snap == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "profile not found"})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]

	var snap profile.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}
	if err := s.svc.SaveProfile(r.Context(), userID, snap); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	start, err := planner.ParseStartDate(req.StartDate, s.now())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: "start_date"})
		return
	}

	cycle, err := s.svc.GeneratePlanForUser(r.Context(), userID, start)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, cycle)
}

func (s *Server) handleActivePlan(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	cycle, err := s.svc.ActivePlan(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cycle)
}

func (s *Server) handlePlanWeek(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["week"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: planner.ErrInvalidWeek.Error()})
		return
	}

	week, err := s.svc.PlanWeek(r.Context(), vars["userID"], index)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, week)
}

func (s *Server) handleDayProgress(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	progress, err := s.svc.DayProgress(r.Context(), vars["userID"], vars["date"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (s *Server) handleDayCheck(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var check tracking.DayCheck
	if err := json.NewDecoder(r.Body).Decode(&check); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}
	saved, err := s.svc.SaveDayCheck(r.Context(), vars["userID"], vars["date"], check)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleLogFood(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var entry tracking.FoodLogEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}
	day, err := s.svc.LogFood(r.Context(), vars["userID"], vars["date"], entry)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, day)
}

// writeError maps domain errors onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Error: err.Error()}

	var status int
	switch {
	case errors.Is(err, planner.ErrIncompleteProfile):
		status = http.StatusUnprocessableEntity
		var ve *profile.ValidationError
		if errors.As(err, &ve) {
			resp.Field = ve.Field
		}
	case errors.Is(err, planner.ErrEmptyCatalog):
		status = http.StatusConflict
	case errors.Is(err, app.ErrNoActivePlan):
		status = http.StatusNotFound
	case errors.Is(err, planner.ErrInvalidWeek), errors.Is(err, tracking.ErrInvalid):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
		resp.Error = "internal server error"
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
