package handlers

import (
	"net/http"

	"lovesync-backend/internal/middleware"
	"lovesync-backend/internal/services"
)

// HomeHandler serves the home-screen summary: days together, the daily
// quote and the active seasonal theme.
type HomeHandler struct {
	clock services.Clock
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(clock services.Clock) *HomeHandler {
	return &HomeHandler{clock: clock}
}

// HomeResponse is the home-screen summary payload
type HomeResponse struct {
	DaysTogether int                  `json:"days_together"`
	DailyQuote   string               `json:"daily_quote"`
	Theme        services.ThemeConfig `json:"theme"`
}

// GetHome handles GET /api/v1/home
func (h *HomeHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	sc := middleware.GetSessionContext(r.Context())
	today := h.clock.Today()

	theme, ok := services.Themes[services.ThemeForDate(today)]
	if !ok {
		theme = services.Themes[services.ThemeDefault]
	}

	respondJSON(w, http.StatusOK, HomeResponse{
		DaysTogether: services.DaysTogether(h.clock.Now(), sc.Session.StartDate),
		DailyQuote:   services.DailyQuote(today, sc.Session.StartDate),
		Theme:        theme,
	})
}
