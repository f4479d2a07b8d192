package api

import (
	"geo-distance-service/internal/api/handlers"
	"geo-distance-service/internal/ports"
	"net/http"

	"github.com/rs/zerolog"
)

type RouterConfig struct {
	Provider ports.DistanceProvider
	// Repo may be nil; point endpoints then answer 503.
	Repo            ports.PointRepository
	MaxBatch        int
	DefaultRadiusKm float64
	Logger          zerolog.Logger
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	distHandler := &handlers.DistanceHandler{
		Provider: cfg.Provider,
		MaxBatch: cfg.MaxBatch,
	}
	pointHandler := &handlers.PointHandler{
		Repo:            cfg.Repo,
		Provider:        cfg.Provider,
		DefaultRadiusKm: cfg.DefaultRadiusKm,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/distances", distHandler.Compute)
	mux.HandleFunc("/nearby", pointHandler.Nearby)
	mux.HandleFunc("/visit-order", pointHandler.VisitOrder)

	return requestContextMiddleware(cfg.Logger, loggingMiddleware(mux))
}
