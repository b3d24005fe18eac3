package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/service"
)

// SweepHandler exposes the due-goal sweep to an external scheduler. The
// scheduler is untrusted in timing: it may call zero or more times per day,
// possibly concurrently, and each call is processed independently.
type SweepHandler struct {
	reminderService *service.ReminderService
}

func NewSweepHandler(reminderService *service.ReminderService) *SweepHandler {
	return &SweepHandler{
		reminderService: reminderService,
	}
}

func (h *SweepHandler) CheckDueGoals(w http.ResponseWriter, r *http.Request) {
	found, sent, err := h.reminderService.CheckDueGoals(r.Context())
	if err != nil {
		slog.Error("due goal sweep failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "Failed to check due goals",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Processed %d goals, sent %d emails.", found, sent),
	})
}
