package services

import (
	"cmp"
	"context"
	"fmt"
	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/ports"
	"math"
	"slices"
)

type NearbyRequest struct {
	Ref domain.Coordinates
	// RadiusKm <= 0 disables the radius filter.
	RadiusKm float64
	// Limit <= 0 returns every match.
	Limit int
}

// Nearby ranks stored points by distance to req.Ref.
//
// Points farther than RadiusKm are dropped, as are points whose distance is NaN.
// Results are sorted ascending by distance with point ID as the tie-breaker so
// the ordering is deterministic.
func Nearby(
	ctx context.Context,
	req NearbyRequest,
	repo ports.PointRepository,
	provider ports.DistanceProvider,
) ([]domain.Match, error) {
	if err := req.Ref.Validate(); err != nil {
		return nil, fmt.Errorf("nearby: %w", err)
	}

	points, err := repo.ListPoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("nearby: list points: %w", err)
	}

	if len(points) == 0 {
		return []domain.Match{}, nil
	}

	distances, err := provider.Distances(ctx, req.Ref, domain.PointCoordinates(points))
	if err != nil {
		return nil, fmt.Errorf("nearby: get distances: %w", err)
	}
	if len(distances) != len(points) {
		return nil, fmt.Errorf("nearby: provider returned %d results for %d points", len(distances), len(points))
	}

	matches := make([]domain.Match, 0, len(points))
	for i, p := range points {
		d := distances[i]
		if math.IsNaN(d) {
			continue
		}
		if req.RadiusKm > 0 && d > req.RadiusKm {
			continue
		}
		matches = append(matches, domain.Match{Point: p, DistanceKm: d})
	}

	SortMatches(matches)

	if req.Limit > 0 && len(matches) > req.Limit {
		matches = matches[:req.Limit]
	}

	return matches, nil
}

// SortMatches orders matches by distance, then by point ID.
func SortMatches(matches []domain.Match) {
	slices.SortFunc(matches, func(a, b domain.Match) int {
		if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}
		return cmp.Compare(a.Point.ID, b.Point.ID)
	})
}
