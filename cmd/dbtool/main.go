package main

import (
	"context"
	"database/sql"
	"geo-distance-service/internal/adapters/repositories"
	"geo-distance-service/internal/config"
	"geo-distance-service/internal/platform/db"
	"geo-distance-service/internal/platform/obs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger := obs.NewLogger(cfg.LogLevel, cfg.LogPretty)
	if envErr != nil {
		logger.Info().Msg("No .env file found (using environment variables)")
	}

	if cfg.DatabaseURL == "" {
		logger.Fatal().Msg("DATABASE_URL is required")
	}

	ctx := logger.WithContext(context.Background())

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	if err := initAndSeed(ctx, logger, conn, cfg.SeedPath); err != nil {
		logger.Fatal().Err(err).Msg("dbtool failed")
	}
}

func initAndSeed(ctx context.Context, logger zerolog.Logger, conn *sql.DB, seedPath string) error {
	logger.Info().Msg("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	logger.Info().Msg("Schema ready.")

	logger.Info().Str("path", seedPath).Msg("Seeding database...")
	if err := repositories.SeedFromCSV(ctx, conn, seedPath); err != nil {
		return err
	}
	logger.Info().Msg("Seeding complete.")

	return nil
}
