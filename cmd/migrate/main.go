package main

import (
	"context"
	"errors"

	"printshop/internal/app/config"
	"printshop/internal/app/dsn"
	"printshop/internal/app/handler"
	"printshop/internal/app/repository"
	"printshop/internal/app/role"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	// repository.New migrates every model
	repo, err := repository.New(dsnStr)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	defer repo.Close()

	log.Info("Database migration completed successfully")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := seedAdmin(context.Background(), repo, cfg.Admin); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
}

// seedAdmin creates the configured admin account unless it already exists.
func seedAdmin(ctx context.Context, repo *repository.Repository, admin config.AdminConfig) error {
	if admin.Login == "" {
		log.Info("ADMIN_LOGIN not set, skipping admin seed")
		return nil
	}
	if len(admin.Password) < 8 {
		return errors.New("ADMIN_PASSWORD must be at least 8 characters")
	}

	_, err := repo.GetStaffByLogin(ctx, admin.Login)
	if err == nil {
		log.Infof("admin %s already exists", admin.Login)
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := handler.HashPassword(admin.Password)
	if err != nil {
		return err
	}
	if _, err := repo.CreateStaff(ctx, admin.Login, hash, "Administrator", role.Admin); err != nil {
		return err
	}
	log.Infof("admin %s created", admin.Login)
	return nil
}
