package main

import (
	"context"
	"errors"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/selmane/retailpos/config"
	"github.com/selmane/retailpos/internal/apperrors"
	"github.com/selmane/retailpos/internal/database"
	"github.com/selmane/retailpos/internal/logger"
	"github.com/selmane/retailpos/internal/staff/dto"
	staffRepoPkg "github.com/selmane/retailpos/internal/staff/repository"
	staffUCPkg "github.com/selmane/retailpos/internal/staff/usecase"
)

func main() {
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer appLogger.Sync()

	db, err := database.Open(&cfg.SQLite)
	if err != nil {
		appLogger.Fatal("could not open store", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("connected to SQLite store", zap.String("path", cfg.SQLite.Path))

	if err := database.Migrate(db); err != nil {
		appLogger.Fatal("migration failed", zap.Error(err))
	}
	appLogger.Info("schema migrated")

	// Bootstrap admin so a fresh store is usable. Re-running is a no-op.
	ctx := context.Background()
	staffUC := staffUCPkg.NewStaffUseCase(staffRepoPkg.NewSQLiteRepository(db), appLogger)
	_, err = staffUC.Add(ctx, &dto.AddStaffInput{Name: "Admin", Pin: "1234", Role: "admin"})
	if err != nil && !errors.Is(err, apperrors.ErrDuplicatePin) {
		appLogger.Fatal("could not seed admin staff", zap.Error(err))
	}
	appLogger.Info("bootstrap admin present")
}
