package services

import (
	"context"
	"fmt"
	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/geo"
	"geo-distance-service/internal/ports"
)

// ComputeDistances returns the distance in km from (lon, lat) to every
// (lons[i], lats[i]), index-aligned.
//
// Inputs are validated up front in geo.Distance order so a length mismatch is
// reported even when the reference point is also invalid.
func ComputeDistances(
	ctx context.Context,
	provider ports.DistanceProvider,
	lon, lat float64,
	lons, lats []float64,
) ([]float64, error) {
	if err := geo.Validate(lon, lat, len(lons), len(lats)); err != nil {
		return nil, err
	}

	candidates := make([]domain.Coordinates, len(lons))
	for i := range lons {
		candidates[i] = domain.Coordinates{Lon: lons[i], Lat: lats[i]}
	}

	out, err := provider.Distances(ctx, domain.Coordinates{Lon: lon, Lat: lat}, candidates)
	if err != nil {
		return nil, fmt.Errorf("compute distances: %w", err)
	}
	if len(out) != len(candidates) {
		return nil, fmt.Errorf("compute distances: provider returned %d results for %d candidates", len(out), len(candidates))
	}

	return out, nil
}
