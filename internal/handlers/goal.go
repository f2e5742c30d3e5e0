package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lovesync-backend/internal/middleware"
	"lovesync-backend/internal/services"
)

// GoalHandler handles shared-goal HTTP requests
type GoalHandler struct {
	goalService *services.GoalService
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService *services.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// GetGoals handles GET /api/v1/goals
func (h *GoalHandler) GetGoals(w http.ResponseWriter, r *http.Request) {
	sc := middleware.GetSessionContext(r.Context())

	goals, err := h.goalService.Goals(r.Context(), sc.Session.Code)
	if err != nil {
		log.Error().
			Err(err).
			Str("session_code", sc.Session.Code).
			Msg("Failed to load goals")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, goals)
}

// CreateGoalRequest represents the request body for creating a goal
type CreateGoalRequest struct {
	Title      string `json:"title"`
	TargetDate string `json:"target_date,omitempty"`
}

// CreateGoal handles POST /api/v1/goals
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	sc := middleware.GetSessionContext(r.Context())

	var req CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	goal, err := h.goalService.AddGoal(r.Context(), sc.Session.Code, req.Title, req.TargetDate)
	if err != nil {
		log.Error().
			Err(err).
			Str("session_code", sc.Session.Code).
			Msg("Failed to create goal")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, goal)
}

// UpdateProgressRequest represents the request body for a progress update
type UpdateProgressRequest struct {
	Progress int `json:"progress"`
}

// UpdateProgress handles PATCH /api/v1/goals/{goal_id}/progress
func (h *GoalHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	sc := middleware.GetSessionContext(r.Context())
	goalID := chi.URLParam(r, "goal_id")

	var req UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	goal, err := h.goalService.UpdateProgress(r.Context(), sc.Session.Code, goalID, req.Progress)
	if err != nil {
		log.Error().
			Err(err).
			Str("session_code", sc.Session.Code).
			Str("goal_id", goalID).
			Msg("Failed to update goal progress")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

// DeleteGoal handles DELETE /api/v1/goals/{goal_id}
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	sc := middleware.GetSessionContext(r.Context())
	goalID := chi.URLParam(r, "goal_id")

	if err := h.goalService.DeleteGoal(r.Context(), sc.Session.Code, goalID); err != nil {
		log.Error().
			Err(err).
			Str("session_code", sc.Session.Code).
			Str("goal_id", goalID).
			Msg("Failed to delete goal")
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
