package services

import (
	"context"
	"errors"
	"fmt"
	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/ports"
	"math"
)

// Order points into a visiting sequence using a greedy nearest-neighbor walk.
//
// Each step asks the provider for distances from the current location to every
// remaining point and moves to the closest one. It does not attempt global
// tour optimization. Ties go to the lower point ID. Points whose distance is
// NaN are never selected and cause an error once nothing else remains.
func VisitOrder(
	ctx context.Context,
	start domain.Coordinates,
	points []domain.Point,
	provider ports.DistanceProvider,
) ([]domain.VisitStop, error) {
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("visit order: start: %w", err)
	}

	if len(points) == 0 {
		return []domain.VisitStop{}, nil
	}

	remaining := make([]domain.Point, len(points))
	copy(remaining, points)

	current := start
	stops := make([]domain.VisitStop, 0, len(points))
	total := 0.0

	for len(remaining) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("visit order: %w", err)
		}

		distances, err := provider.Distances(ctx, current, domain.PointCoordinates(remaining))
		if err != nil {
			return nil, fmt.Errorf("visit order: get distances from %v: %w", current, err)
		}
		if len(distances) != len(remaining) {
			return nil, fmt.Errorf("visit order: provider returned %d results for %d points", len(distances), len(remaining))
		}

		best := -1
		minKm := math.Inf(1)
		// Greedy step: closest remaining point.
		for i, d := range distances {
			if math.IsNaN(d) {
				continue
			}
			// Tie-breaker ensures deterministic ordering when distances are equal.
			if best == -1 || d < minKm || (d == minKm && remaining[i].ID < remaining[best].ID) {
				minKm = d
				best = i
			}
		}

		if best == -1 {
			return nil, errors.New("visit order: no reachable point among remaining")
		}

		next := remaining[best]
		total += minKm
		stops = append(stops, domain.VisitStop{
			Point:        next,
			LegKm:        minKm,
			CumulativeKm: total,
		})

		remaining = append(remaining[:best], remaining[best+1:]...)
		current = next.Coordinates
	}

	return stops, nil
}
