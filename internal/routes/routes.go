package routes

import (
	"net/http"

	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/app"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/handler"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	auth := handler.NewAuthHandler(app.AuthService, app.Cfg)
	dashboard := handler.NewDashboardHandler(app.GoalService, app.Cfg)
	goal := handler.NewGoalHandler(app.GoalService, app.Cfg)
	status := handler.NewStatusHandler(app.GoalService, app.Signer, app.Cfg)
	sweep := handler.NewSweepHandler(app.ReminderService)
	email := handler.NewEmailHandler(app.EmailService)

	mux := http.NewServeMux()

	// Home
	mux.HandleFunc("GET /{$}", home.HomePage)

	// Auth (login actions rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("GET /login", middleware.RequireGuest(auth.LoginPage))
	mux.HandleFunc("POST /login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("POST /logout", auth.Logout)

	// Dashboard and goals (session required)
	mux.HandleFunc("GET /dashboard", middleware.RequireAuth(dashboard.DashboardPage))
	mux.HandleFunc("POST /goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("POST /goals/{id}/status", middleware.RequireAuth(goal.UpdateStatus))
	mux.HandleFunc("POST /goals/{id}/delete", middleware.RequireAuth(goal.Delete))

	// API surface: external scheduler, email relay, one-click action links
	mux.HandleFunc("GET /api/check-due-goals", sweep.CheckDueGoals)
	mux.HandleFunc("POST /api/send-email", email.Send)
	mux.HandleFunc("GET /api/update-goal-status", status.UpdateGoalStatus)

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // Config must be first (CSRF cookie flags need the environment)
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection, // CSRF protection for browser form posts
		middleware.AuthMiddleware(app.AuthService),
		middleware.WithURLPath,
	)

	return handler
}
