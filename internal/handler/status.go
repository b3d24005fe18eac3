package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/config"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/model"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/repository"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/service"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/token"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/ui"
)

type confirmPageData struct {
	Status       string
	DashboardURL string
}

// StatusHandler serves the one-click action links embedded in reminder emails.
type StatusHandler struct {
	goalService *service.GoalService
	signer      *token.Signer
	appURL      string
}

func NewStatusHandler(goalService *service.GoalService, signer *token.Signer, cfg *config.Config) *StatusHandler {
	return &StatusHandler{
		goalService: goalService,
		signer:      signer,
		appURL:      cfg.AppURL,
	}
}

// UpdateGoalStatus validates the link parameters and the signed action token,
// updates the goal, and renders a confirmation page that redirects to the
// dashboard. No mutation happens unless the token verifies for this goal id.
func (h *StatusHandler) UpdateGoalStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	goalID := q.Get("goalId")
	status := q.Get("status")
	actionToken := q.Get("token")

	if goalID == "" || status == "" || actionToken == "" {
		http.Error(w, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	if !model.ValidStatus(status) {
		http.Error(w, "Invalid status value", http.StatusBadRequest)
		return
	}

	err := h.signer.Verify(actionToken, goalID)
	if err != nil {
		slog.Warn("action token rejected", "goal_id", goalID, "error", err)
		http.Error(w, "Invalid or expired token", http.StatusBadRequest)
		return
	}

	_, err = h.goalService.ByID(goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			http.Error(w, "Goal not found", http.StatusNotFound)
			return
		}
		slog.Error("failed to fetch goal", "error", err, "goal_id", goalID)
		http.Error(w, "An error occurred", http.StatusInternalServerError)
		return
	}

	err = h.goalService.UpdateStatusByID(goalID, status)
	if err != nil {
		slog.Error("failed to update goal status", "error", err, "goal_id", goalID)
		http.Error(w, "Failed to update goal status", http.StatusInternalServerError)
		return
	}

	ui.Render(w, "confirm.html", confirmPageData{
		Status:       status,
		DashboardURL: h.appURL + "/dashboard",
	})
}
