package ports

import (
	"context"
	"geo-distance-service/internal/domain"
)

// Contract for computing great-circle distances from one reference point to many
// candidates.
type DistanceProvider interface {
	// Return distances in kilometers, index-aligned with candidates.
	// The reference point is range checked; candidates are not.
	Distances(ctx context.Context, ref domain.Coordinates, candidates []domain.Coordinates) ([]float64, error)
}
