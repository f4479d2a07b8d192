package ports

import (
	"context"
	"geo-distance-service/internal/domain"
)

// Optional store of previously computed reference->candidate distances.
type DistanceCache interface {
	// Return the cached distances that exist; misses are simply absent.
	GetMany(ctx context.Context, ref domain.Coordinates, candidates []domain.Coordinates) (map[domain.Coordinates]float64, error)
	// Store distances computed for a single reference point.
	PutMany(ctx context.Context, ref domain.Coordinates, results map[domain.Coordinates]float64) error
}
