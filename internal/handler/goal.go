package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/config"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/ctxkeys"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/model"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/repository"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/service"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/ui"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/validation"
)

type GoalHandler struct {
	goalService *service.GoalService
	appName     string
}

func NewGoalHandler(goalService *service.GoalService, cfg *config.Config) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		appName:     cfg.AppName,
	}
}

// Create adds a goal for the signed-in user. Validation failures re-render
// the dashboard with an inline message and the submitted values preserved.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	description := strings.TrimSpace(r.FormValue("description"))
	targetDate := r.FormValue("target_date")

	_, err := h.goalService.Create(r.Context(), user.Email, description, targetDate)
	if err != nil {
		var message string
		switch {
		case errors.Is(err, validation.ErrDescriptionRequired):
			message = "Description is required."
		case errors.Is(err, validation.ErrInvalidTargetDate):
			message = "Target date must be a valid date."
		case errors.Is(err, validation.ErrTargetDateInPast):
			message = "Target date must not be in the past."
		default:
			slog.Error("failed to create goal", "error", err, "user_email", user.Email)
			message = "Failed to create goal. Please try again."
		}
		h.renderDashboard(w, r, user.Email, message, description, targetDate)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// UpdateStatus handles the dashboard complete/incomplete buttons.
func (h *GoalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goalID := r.PathValue("id")
	status := r.FormValue("status")

	err := h.goalService.UpdateStatus(user.Email, goalID, status)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrInvalidStatus):
			http.Error(w, "Invalid status value", http.StatusBadRequest)
		case errors.Is(err, repository.ErrGoalNotFound):
			http.Error(w, "Goal not found", http.StatusNotFound)
		default:
			slog.Error("failed to update goal status", "error", err, "user_email", user.Email, "goal_id", goalID)
			http.Error(w, "Failed to update goal status", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Delete removes the user's goal. A goal owned by someone else is a silent
// no-op, so the redirect is unconditional on a clean datastore call.
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goalID := r.PathValue("id")

	err := h.goalService.Delete(user.Email, goalID)
	if err != nil {
		slog.Error("failed to delete goal", "error", err, "user_email", user.Email, "goal_id", goalID)
		http.Error(w, "Failed to delete goal", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *GoalHandler) renderDashboard(w http.ResponseWriter, r *http.Request, userEmail, message, description, targetDate string) {
	goals, err := h.goalService.Goals(userEmail)
	if err != nil {
		slog.Error("failed to reload goals", "error", err, "user_email", userEmail)
		goals = []*model.Goal{} // Fallback to empty list
	}

	ui.Render(w, "dashboard.html", dashboardPageData{
		AppName:     h.appName,
		Email:       userEmail,
		Message:     message,
		Description: description,
		TargetDate:  targetDate,
		Today:       time.Now().Format(model.TargetDateLayout),
		Goals:       goals,
		CSRFToken:   ctxkeys.CSRFToken(r.Context()),
	})
}
