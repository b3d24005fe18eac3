package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/config"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/ctxkeys"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/model"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/service"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/ui"
)

type dashboardPageData struct {
	AppName     string
	Email       string
	Message     string
	Description string
	TargetDate  string
	Today       string
	Goals       []*model.Goal
	CSRFToken   string
}

type DashboardHandler struct {
	goalService *service.GoalService
	appName     string
}

func NewDashboardHandler(goalService *service.GoalService, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{
		goalService: goalService,
		appName:     cfg.AppName,
	}
}

func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.goalService.Goals(user.Email)
	if err != nil {
		slog.Error("failed to get goals", "error", err, "user_email", user.Email)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	ui.Render(w, "dashboard.html", dashboardPageData{
		AppName:   h.appName,
		Email:     user.Email,
		Today:     time.Now().Format(model.TargetDateLayout),
		Goals:     goals,
		CSRFToken: ctxkeys.CSRFToken(r.Context()),
	})
}
