package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lovesync-backend/internal/models"
	"lovesync-backend/internal/repository"
)

const (
	defaultGender    = "other"
	avatarServiceURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="
)

// ErrValidation wraps user-input problems surfaced as validation messages
type ErrValidation struct {
	Msg string
}

func (e ErrValidation) Error() string { return e.Msg }

// PairService handles onboarding, bootstrap and profile business logic
type PairService struct {
	sessions *repository.SessionRepository
	pointers *repository.PointerRepository
	clock    Clock
}

// NewPairService creates a new pair service
func NewPairService(sessions *repository.SessionRepository, pointers *repository.PointerRepository, clock Clock) *PairService {
	return &PairService{sessions: sessions, pointers: pointers, clock: clock}
}

// OnboardRequest carries the fields the onboarding form collects
type OnboardRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	Code string `json:"code"`
}

func (r *OnboardRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrValidation{Msg: "name is required"}
	}
	if r.Age <= 0 {
		return ErrValidation{Msg: "age is required"}
	}
	if strings.TrimSpace(r.Code) == "" {
		return ErrValidation{Msg: "code is required"}
	}
	return nil
}

// newUser builds the User record for a fresh onboarding. The avatar
// defaults to a generated one seeded by the name, like the original form.
func (s *PairService) newUser(req OnboardRequest) models.User {
	return models.User{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Age:       req.Age,
		AvatarURL: avatarServiceURL + url.QueryEscape(strings.TrimSpace(req.Name)),
		Gender:    defaultGender,
	}
}

// normalizeCode upper-cases the human-entered pairing code; the repository
// matches codes exactly
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CreateSession starts a new pairing session with the caller as its first
// user, using now as the relationship start date, and logs the caller in.
func (s *PairService) CreateSession(ctx context.Context, req OnboardRequest) (*models.SessionContext, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	code := normalizeCode(req.Code)
	user := s.newUser(req)

	session, err := s.sessions.Create(ctx, code, user, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.pointers.Set(ctx, user.ID, code); err != nil {
		return nil, err
	}

	log.Info().
		Str("session_code", code).
		Str("user_id", user.ID).
		Msg("Session created")

	return &models.SessionContext{User: user, Session: *session}, nil
}

// JoinSession adds the caller as the second user of an existing session
// and logs the caller in.
func (s *PairService) JoinSession(ctx context.Context, req OnboardRequest) (*models.SessionContext, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	code := normalizeCode(req.Code)
	user := s.newUser(req)

	session, err := s.sessions.Join(ctx, code, user)
	if err != nil {
		return nil, err
	}
	if err := s.pointers.Set(ctx, user.ID, code); err != nil {
		return nil, err
	}

	log.Info().
		Str("session_code", code).
		Str("user_id", user.ID).
		Msg("Session joined")

	return &models.SessionContext{User: user, Session: *session}, nil
}

// Resolve reconstructs the logged-in identity from the stored pointers.
// A nil context with nil error means nobody is logged in. Pointers that no
// longer resolve to a session member are cleared so the next start goes
// straight to onboarding instead of looping on stale state.
func (s *PairService) Resolve(ctx context.Context) (*models.SessionContext, error) {
	userID, code, ok, err := s.pointers.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	session, err := s.sessions.Get(ctx, code)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, s.clearStale(ctx, userID, code, "session missing")
		}
		return nil, err
	}

	user, found := session.UserByID(userID)
	if !found {
		return nil, s.clearStale(ctx, userID, code, "user not in session")
	}

	return &models.SessionContext{User: user, Session: *session}, nil
}

func (s *PairService) clearStale(ctx context.Context, userID, code, reason string) error {
	log.Warn().
		Str("session_code", code).
		Str("user_id", userID).
		Str("reason", reason).
		Msg("Clearing stale login pointers")
	if err := s.pointers.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear stale pointers: %w", err)
	}
	return nil
}

// Logout clears the login pointers. Session data is kept so the same code
// works on the next login.
func (s *PairService) Logout(ctx context.Context) error {
	return s.pointers.Clear(ctx)
}

// ProfileUpdate carries the editable settings fields. Nil start date means
// keep the current one.
type ProfileUpdate struct {
	Name      string `json:"name"`
	Age       int    `json:"age"`
	AvatarURL string `json:"avatar_url"`
	Gender    string `json:"gender"`
	StartDate string `json:"start_date"`
}

// UpdateProfile applies settings edits to the current user inside the
// session's user list and optionally moves the relationship start date,
// then overwrites the stored session.
func (s *PairService) UpdateProfile(ctx context.Context, sc *models.SessionContext, upd ProfileUpdate) (*models.SessionContext, error) {
	if strings.TrimSpace(upd.Name) == "" {
		return nil, ErrValidation{Msg: "name is required"}
	}
	if upd.Age <= 0 {
		return nil, ErrValidation{Msg: "age is required"}
	}

	session := sc.Session
	user := sc.User
	user.Name = strings.TrimSpace(upd.Name)
	user.Age = upd.Age
	if upd.AvatarURL != "" {
		user.AvatarURL = upd.AvatarURL
	}
	if upd.Gender != "" {
		user.Gender = upd.Gender
	}

	for i := range session.Users {
		if session.Users[i].ID == user.ID {
			session.Users[i] = user
		}
	}

	if upd.StartDate != "" {
		start, err := parseDate(upd.StartDate)
		if err != nil {
			return nil, ErrValidation{Msg: "start_date must be YYYY-MM-DD"}
		}
		session.StartDate = start
	}

	if err := s.sessions.Save(ctx, &session); err != nil {
		return nil, err
	}

	log.Info().
		Str("session_code", session.Code).
		Str("user_id", user.ID).
		Msg("Profile updated")

	return &models.SessionContext{User: user, Session: session}, nil
}
