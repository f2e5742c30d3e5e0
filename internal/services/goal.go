package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lovesync-backend/internal/models"
	"lovesync-backend/internal/repository"
)

// GoalService handles shared progress goals. Goals are appended in
// creation order; IsCompleted is re-derived from Progress on every
// mutation path.
type GoalService struct {
	goals *repository.Collection[models.Goal]
}

// NewGoalService creates a new goal service
func NewGoalService(goals *repository.Collection[models.Goal]) *GoalService {
	return &GoalService{goals: goals}
}

// Goals returns a session's goals in creation order
func (s *GoalService) Goals(ctx context.Context, code string) ([]models.Goal, error) {
	return s.goals.Load(ctx, code)
}

// AddGoal appends a new goal at zero progress
func (s *GoalService) AddGoal(ctx context.Context, code, title, targetDate string) (*models.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrValidation{Msg: "title is required"}
	}

	var target *time.Time
	if targetDate != "" {
		parsed, err := parseDate(targetDate)
		if err != nil {
			return nil, ErrValidation{Msg: "target_date must be YYYY-MM-DD"}
		}
		target = &parsed
	}

	goal := models.Goal{
		ID:          uuid.New().String(),
		Title:       title,
		Progress:    0,
		TargetDate:  target,
		IsCompleted: false,
	}

	current, err := s.goals.Load(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := s.goals.Save(ctx, code, append(current, goal)); err != nil {
		return nil, err
	}

	log.Info().
		Str("session_code", code).
		Str("goal_id", goal.ID).
		Msg("Goal created")

	return &goal, nil
}

// UpdateProgress sets a goal's progress, clamped to 0-100, and re-derives
// IsCompleted from the new value
func (s *GoalService) UpdateProgress(ctx context.Context, code, goalID string, progress int) (*models.Goal, error) {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	current, err := s.goals.Load(ctx, code)
	if err != nil {
		return nil, err
	}
	for i := range current {
		if current[i].ID == goalID {
			current[i].Progress = progress
			current[i].IsCompleted = progress == 100
			if err := s.goals.Save(ctx, code, current); err != nil {
				return nil, err
			}
			return &current[i], nil
		}
	}
	return nil, ErrRecordNotFound
}

// DeleteGoal removes one goal by id
func (s *GoalService) DeleteGoal(ctx context.Context, code, goalID string) error {
	current, err := s.goals.Load(ctx, code)
	if err != nil {
		return err
	}

	updated := make([]models.Goal, 0, len(current))
	found := false
	for _, g := range current {
		if g.ID == goalID {
			found = true
			continue
		}
		updated = append(updated, g)
	}
	if !found {
		return ErrRecordNotFound
	}
	if err := s.goals.Save(ctx, code, updated); err != nil {
		return err
	}

	log.Info().
		Str("session_code", code).
		Str("goal_id", goalID).
		Msg("Goal deleted")

	return nil
}
