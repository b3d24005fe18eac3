// Command useradd provisions a login identity. There is no self-service
// signup: access is granted by running this against the app database.
//
//	useradd -email a@x.com
//	useradd -email a@x.com -verified=false
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/config"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/db"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/model"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/repository"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/validation"
)

func main() {
	email := flag.String("email", "", "email address to provision")
	verified := flag.Bool("verified", true, "mark the email as verified")
	flag.Parse()

	addr := strings.TrimSpace(strings.ToLower(*email))
	err := validation.ValidateEmail(addr)
	if err != nil {
		slog.Error("invalid email", "error", err)
		os.Exit(1)
	}

	cfg := config.Load()

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	users := repository.NewUserRepository(database)

	err = users.Create(&model.User{
		Email:     addr,
		Verified:  *verified,
		CreatedAt: time.Now(),
	})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		// Already provisioned: just update the verified flag
		err = users.SetVerified(addr, *verified)
	}
	if err != nil {
		slog.Error("failed to provision user", "error", err, "email", addr)
		os.Exit(1)
	}

	slog.Info("user provisioned", "email", addr, "verified", *verified)
}
