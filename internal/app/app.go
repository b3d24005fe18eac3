package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/config"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/db"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/repository"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/service"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/token"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	Signer          *token.Signer
	AuthService     *service.AuthService
	GoalService     *service.GoalService
	EmailService    *service.EmailService
	ReminderService *service.ReminderService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)

	// Signed one-click action tokens share the session secret
	signer := token.NewSigner(cfg.SessionSecret, cfg.ActionTokenExpiry)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		userRepository,
		cfg.SessionSecret,
		cfg.SessionExpiry,
		cfg.IsProduction(),
	)
	goalService := service.NewGoalService(goalRepository, emailService)
	reminderService := service.NewReminderService(goalRepository, emailService, signer, cfg.SweepConcurrency)

	return &App{
		Cfg:             cfg,
		DB:              database,
		Signer:          signer,
		AuthService:     authService,
		GoalService:     goalService,
		EmailService:    emailService,
		ReminderService: reminderService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
