package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/config"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/ctxkeys"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/service"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/ui"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/validation"
)

type loginPageData struct {
	AppName   string
	Message   string
	Success   bool
	Email     string
	CSRFToken string
}

type authHandler struct {
	authService *service.AuthService
	appName     string
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *authHandler {
	return &authHandler{
		authService: authService,
		appName:     cfg.AppName,
	}
}

func (h *authHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, "login.html", loginPageData{
		AppName:   h.appName,
		CSRFToken: ctxkeys.CSRFToken(r.Context()),
	})
}

// Login verifies the submitted email and establishes the session cookie.
// Failures render in-page messages; there is no navigation on failure.
func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))

	renderError := func(message string) {
		ui.Render(w, "login.html", loginPageData{
			AppName:   h.appName,
			Message:   message,
			Email:     email,
			CSRFToken: ctxkeys.CSRFToken(r.Context()),
		})
	}

	err := validation.ValidateEmail(email)
	if err != nil {
		renderError("Please provide a valid email address.")
		return
	}

	user, err := h.authService.Login(email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			renderError("User not found. Please contact support to get access.")
		case errors.Is(err, service.ErrEmailNotVerified):
			renderError("Your email is not verified. Please contact support.")
		default:
			slog.Error("login failed", "error", err, "email", email)
			renderError("An error occurred. Please try again.")
		}
		return
	}

	sessionToken, err := h.authService.GenerateSession(user)
	if err != nil {
		slog.Error("failed to generate session", "error", err, "email", email)
		renderError("An error occurred. Please try again.")
		return
	}

	h.authService.SetSessionCookie(w, sessionToken)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
