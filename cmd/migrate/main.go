package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/HakimZ78/devhakim-api/internal/models"
	"github.com/HakimZ78/devhakim-api/internal/repository"
	"github.com/HakimZ78/devhakim-api/internal/seed"
	"github.com/HakimZ78/devhakim-api/pkg/config"
	"github.com/HakimZ78/devhakim-api/pkg/database"
	"github.com/HakimZ78/devhakim-api/pkg/logger"
)

func main() {
	seedFlag := flag.Bool("seed", false, "load YAML seed data into empty tables after migrating")
	flag.Parse()

	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := runMigrations(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	if err := bootstrapOwner(ctx, db, cfg); err != nil {
		log.Fatal("owner bootstrap failed", zap.Error(err))
	}

	if *seedFlag {
		if err := seed.Apply(db, cfg.SeedDir); err != nil {
			log.Fatal("seeding failed", zap.Error(err))
		}
	}

	fmt.Fprintln(os.Stdout, "migrations completed")
}

// bootstrapOwner creates the single owner account from ADMIN_EMAIL and
// ADMIN_PASSWORD when no user exists yet. There is no registration endpoint;
// this is single-operator software.
func bootstrapOwner(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	users := repository.NewUserRepository(db)

	n, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.L().Warn("no users exist and ADMIN_EMAIL/ADMIN_PASSWORD not set; mutations will be unreachable until one is created")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	owner := models.User{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Name:         "owner",
	}
	if err := users.Create(ctx, &owner); err != nil {
		return err
	}
	logger.L().Info("owner account created", zap.String("email", cfg.AdminEmail))
	return nil
}
