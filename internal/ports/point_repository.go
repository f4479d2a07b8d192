package ports

import (
	"context"
	"geo-distance-service/internal/domain"
)

// Port: a boundary for retrieving stored Points from a data source.
type PointRepository interface {
	// Retrieve all points available for searching, ordered by ID.
	ListPoints(ctx context.Context) ([]domain.Point, error)
}
