package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/resend/resend-go/v2"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/model"
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	appURL    string
	appName   string
	isDev     bool
}

func NewEmailService(apiKey, fromEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		appURL:    appURL,
		appName:   appName,
		isDev:     isDev,
	}
}

// Send delivers a single email with a plain-text part and an optional HTML
// part. This is the one place that holds the provider credential; the relay
// endpoint and the richer templates below all funnel through it.
func (s *EmailService) Send(ctx context.Context, to, subject, text, html string) error {
	if s.isDev {
		slog.Info("email sent (dev mode)", "to", to, "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		Text:    text,
		Html:    html,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "to", to, "subject", subject)
	}
	return err
}

// SendGoalReminder sends the due-today reminder with the two one-click action
// links for the given signed token.
func (s *EmailService) SendGoalReminder(ctx context.Context, goal *model.Goal, actionToken string) error {
	completeURL := s.actionURL(goal.ID, model.GoalStatusCompleted, actionToken)
	incompleteURL := s.actionURL(goal.ID, model.GoalStatusIncomplete, actionToken)
	subject, text, html := goalReminderEmailTemplate(goal.Description, completeURL, incompleteURL)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "goal_reminder", "to", goal.UserEmail, "subject", subject, "url", completeURL)
		return nil
	}

	err := s.Send(ctx, goal.UserEmail, subject, text, html)
	if err == nil {
		slog.Info("email sent", "type", "goal_reminder", "to", goal.UserEmail, "goal_id", goal.ID)
	}
	return err
}

// SendGoalConfirmation acknowledges a freshly created goal.
func (s *EmailService) SendGoalConfirmation(ctx context.Context, goal *model.Goal) error {
	dashboardURL := s.appURL + "/dashboard"
	subject, text := goalConfirmationEmailTemplate(goal.Description, goal.TargetDate, dashboardURL, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "goal_confirmation", "to", goal.UserEmail, "subject", subject)
		return nil
	}

	err := s.Send(ctx, goal.UserEmail, subject, text, "")
	if err == nil {
		slog.Info("email sent", "type", "goal_confirmation", "to", goal.UserEmail, "goal_id", goal.ID)
	}
	return err
}

func (s *EmailService) actionURL(goalID, status, actionToken string) string {
	return fmt.Sprintf("%s/api/update-goal-status?goalId=%s&status=%s&token=%s",
		s.appURL, url.QueryEscape(goalID), url.QueryEscape(status), url.QueryEscape(actionToken))
}
