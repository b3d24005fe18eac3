package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/model"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/repository"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/validation"
)

// GoalMailer sends the confirmation email after a goal is created.
// Satisfied by EmailService; faked in tests.
type GoalMailer interface {
	SendGoalConfirmation(ctx context.Context, goal *model.Goal) error
}

type GoalService struct {
	repo   repository.GoalRepository
	mailer GoalMailer
}

func NewGoalService(repo repository.GoalRepository, mailer GoalMailer) *GoalService {
	return &GoalService{
		repo:   repo,
		mailer: mailer,
	}
}

// Create validates and stores a new pending goal for the owner, then sends a
// confirmation email. The email is best-effort: a send failure is logged and
// never fails the create.
func (s *GoalService) Create(ctx context.Context, userEmail, description, targetDate string) (*model.Goal, error) {
	err := validation.ValidateDescription(description)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateTargetDate(targetDate, time.Now())
	if err != nil {
		return nil, err
	}

	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserEmail:   userEmail,
		Description: description,
		TargetDate:  targetDate,
		Status:      model.GoalStatusPending,
		CreatedAt:   time.Now(),
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	if s.mailer != nil {
		err = s.mailer.SendGoalConfirmation(ctx, goal)
		if err != nil {
			slog.Warn("goal confirmation email failed", "error", err, "goal_id", goal.ID, "to", userEmail)
		}
	}

	return goal, nil
}

func (s *GoalService) Goals(userEmail string) ([]*model.Goal, error) {
	return s.repo.Goals(userEmail)
}

// ByID looks a goal up by id alone. Only the one-click action path uses it;
// everything session-driven goes through the owner-scoped operations.
func (s *GoalService) ByID(goalID string) (*model.Goal, error) {
	return s.repo.ByID(goalID)
}

// UpdateStatus sets an owner's goal to one of the three statuses. Setting the
// same status again is a no-op by construction.
func (s *GoalService) UpdateStatus(userEmail, goalID, status string) error {
	err := validation.ValidateStatus(status)
	if err != nil {
		return err
	}

	return s.repo.UpdateStatus(userEmail, goalID, status)
}

// UpdateStatusByID is the one-click variant: ownership was already established
// by the action token, so the lookup key is the goal id alone.
func (s *GoalService) UpdateStatusByID(goalID, status string) error {
	err := validation.ValidateStatus(status)
	if err != nil {
		return err
	}

	return s.repo.UpdateStatusByID(goalID, status)
}

// Delete removes the owner's goal. A non-matching owner is a silent no-op.
func (s *GoalService) Delete(userEmail, goalID string) error {
	return s.repo.Delete(userEmail, goalID)
}
