package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/model"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/repository"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/token"
	"golang.org/x/sync/errgroup"
)

// ReminderMailer sends a due-goal reminder carrying a signed action token.
// Satisfied by EmailService; faked in tests.
type ReminderMailer interface {
	SendGoalReminder(ctx context.Context, goal *model.Goal, actionToken string) error
}

// ReminderService runs the due-goal sweep: find goals due today that are not
// completed, and send each owner a reminder with one-click action links. The
// sweep only reads goals; status changes happen when a link is visited.
type ReminderService struct {
	repo        repository.GoalRepository
	mailer      ReminderMailer
	signer      *token.Signer
	concurrency int
}

func NewReminderService(repo repository.GoalRepository, mailer ReminderMailer, signer *token.Signer, concurrency int) *ReminderService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &ReminderService{
		repo:        repo,
		mailer:      mailer,
		signer:      signer,
		concurrency: concurrency,
	}
}

// CheckDueGoals processes today's due goals and reports how many were found
// and how many reminders were delivered. Sends run concurrently under a
// bounded group; one goal's failure is counted and logged, never propagated,
// so the remaining goals are unaffected. There is no already-notified-today
// tracking: an external scheduler that triggers the sweep twice re-notifies.
func (s *ReminderService) CheckDueGoals(ctx context.Context) (found, sent int, err error) {
	today := time.Now().Format(model.TargetDateLayout)

	goals, err := s.repo.DueOn(today)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query due goals: %w", err)
	}

	slog.Info("due goal sweep", "date", today, "found", len(goals))

	var sentCount atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, goal := range goals {
		g.Go(func() error {
			actionToken, err := s.signer.Sign(goal.ID)
			if err != nil {
				slog.Error("failed to sign action token", "error", err, "goal_id", goal.ID)
				return nil
			}

			err = s.mailer.SendGoalReminder(ctx, goal, actionToken)
			if err != nil {
				slog.Warn("reminder send failed", "error", err, "goal_id", goal.ID, "to", goal.UserEmail)
				return nil
			}

			sentCount.Add(1)
			return nil
		})
	}

	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	return len(goals), int(sentCount.Load()), nil
}
