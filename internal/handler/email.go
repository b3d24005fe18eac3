package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/service"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/validation"
)

type sendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// EmailHandler relays outbound email through the provider so callers never
// hold the provider credential directly.
type EmailHandler struct {
	emailService *service.EmailService
}

func NewEmailHandler(emailService *service.EmailService) *EmailHandler {
	return &EmailHandler{
		emailService: emailService,
	}
}

func (h *EmailHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request body"})
		return
	}

	err = validation.ValidateEmail(req.To)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid recipient address"})
		return
	}

	if req.Subject == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Subject is required"})
		return
	}

	err = h.emailService.Send(r.Context(), req.To, req.Subject, req.Text, req.HTML)
	if err != nil {
		slog.Error("failed to send email", "error", err, "to", req.To)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to send email"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
