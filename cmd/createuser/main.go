package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/sap-portal/backend/internal/domain/identity"
	"github.com/sap-portal/backend/internal/infrastructure/auth"
	"github.com/sap-portal/backend/internal/infrastructure/config"
	"github.com/sap-portal/backend/internal/infrastructure/logger"
	"github.com/sap-portal/backend/internal/infrastructure/persistence"
)

// Bootstraps a back-office account from the command line. Account creation
// over the API is restricted to directors, so the first director has to be
// created here.
func main() {
	var (
		username string
		email    string
		password string
		fullName string
		role     string
	)

	flag.StringVar(&username, "username", "", "Username for the new account (required)")
	flag.StringVar(&email, "email", "", "Email address (required)")
	flag.StringVar(&password, "password", "", "Password, minimum 8 characters (required)")
	flag.StringVar(&fullName, "full-name", "", "Full name")
	flag.StringVar(&role, "role", "staff", "Account role: staff or director")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync(log) }()

	if username == "" || email == "" || password == "" {
		flag.Usage()
		os.Exit(1)
	}
	if len(password) < 8 {
		log.Fatal("Password must be at least 8 characters")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userRepo := persistence.NewGormUserRepository(db.DB)

	taken, err := userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		log.Fatal("Failed to check username", zap.Error(err))
	}
	if taken {
		log.Fatal("Username is already taken", zap.String("username", username))
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password", zap.Error(err))
	}

	user, err := identity.NewUser(username, email, hash, fullName, identity.Role(role))
	if err != nil {
		log.Fatal("Invalid account details", zap.Error(err))
	}

	if err := userRepo.Save(ctx, user); err != nil {
		log.Fatal("Failed to save account", zap.Error(err))
	}

	log.Info("Account created",
		zap.String("id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)
}
