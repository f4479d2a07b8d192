package main

import (
	"context"
	"database/sql"
	"geo-distance-service/internal/adapters/cache"
	"geo-distance-service/internal/adapters/distance"
	"geo-distance-service/internal/adapters/repositories"
	"geo-distance-service/internal/api"
	"geo-distance-service/internal/config"
	"geo-distance-service/internal/platform/db"
	"geo-distance-service/internal/platform/obs"
	"geo-distance-service/internal/ports"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger := obs.NewLogger(cfg.LogLevel, cfg.LogPretty)
	if envErr != nil {
		logger.Info().Msg("No .env file found (using environment variables)")
	}

	ctx := context.Background()

	// Redis is optional; without it every request computes distances directly.
	var distanceCache ports.DistanceCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable")
		}
		distanceCache = cache.NewRedisDistanceCache(client, cfg.CacheTTL, cfg.ClampHaversine)
		logger.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.CacheTTL).Msg("distance cache enabled")
	}

	provider := distance.NewHaversineProvider(cfg.ClampHaversine, distanceCache)

	var repo ports.PointRepository
	if cfg.DatabaseURL != "" {
		conn, err := openPoints(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("database setup failed")
		}
		defer conn.Close()
		repo = repositories.NewSQLPointRepository(conn)
	} else {
		logger.Warn().Msg("DATABASE_URL not set; /nearby and /visit-order are disabled")
	}

	router := api.NewRouter(api.RouterConfig{
		Provider:        provider,
		Repo:            repo,
		MaxBatch:        cfg.MaxBatch,
		DefaultRadiusKm: cfg.DefaultRadiusKm,
		Logger:          logger,
	})

	logger.Info().
		Str("port", cfg.Port).
		Bool("clamp", cfg.ClampHaversine).
		Int("max_batch", cfg.MaxBatch).
		Msg("Server listening")

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// openPoints connects to Postgres and makes sure the points table exists.
func openPoints(ctx context.Context, databaseURL string) (*sql.DB, error) {
	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := repositories.InitSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}
