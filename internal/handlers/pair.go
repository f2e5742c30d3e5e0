package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"lovesync-backend/internal/middleware"
	"lovesync-backend/internal/services"
)

// PairHandler handles onboarding, login state and profile HTTP requests
type PairHandler struct {
	pairService *services.PairService
}

// NewPairHandler creates a new pair handler
func NewPairHandler(pairService *services.PairService) *PairHandler {
	return &PairHandler{pairService: pairService}
}

// CreateSession handles POST /api/v1/sessions
func (h *PairHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req services.OnboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sc, err := h.pairService.CreateSession(r.Context(), req)
	if err != nil {
		log.Error().
			Err(err).
			Str("code", req.Code).
			Msg("Failed to create session")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, sc)
}

// JoinSession handles POST /api/v1/sessions/join
func (h *PairHandler) JoinSession(w http.ResponseWriter, r *http.Request) {
	var req services.OnboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sc, err := h.pairService.JoinSession(r.Context(), req)
	if err != nil {
		log.Error().
			Err(err).
			Str("code", req.Code).
			Msg("Failed to join session")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, sc)
}

// GetSession handles GET /api/v1/session — the bootstrap call. Returns the
// resolved SessionContext or 401 when nobody is logged in here.
func (h *PairHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sc := middleware.GetSessionContext(r.Context())
	respondJSON(w, http.StatusOK, sc)
}

// Logout handles POST /api/v1/logout. Clears the login pointers only;
// session data stays for the next login.
func (h *PairHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.pairService.Logout(r.Context()); err != nil {
		log.Error().Err(err).Msg("Failed to log out")
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateProfile handles PUT /api/v1/profile
func (h *PairHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sc := middleware.GetSessionContext(r.Context())

	var upd services.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.pairService.UpdateProfile(r.Context(), sc, upd)
	if err != nil {
		log.Error().
			Err(err).
			Str("session_code", sc.Session.Code).
			Str("user_id", sc.User.ID).
			Msg("Failed to update profile")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
