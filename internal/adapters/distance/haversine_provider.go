package distance

import (
	"context"
	"fmt"
	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/geo"
	"geo-distance-service/internal/platform/obs"
	"geo-distance-service/internal/ports"
	"math"

	"github.com/rs/zerolog"
)

// HaversineProvider implements DistanceProvider with the great-circle formula.
//
// It coordinates:
//   - Reference point validation
//   - Optional distance caching (read-through, best-effort writes)
//   - One batched computation for all cache misses
//
// The provider is safe for concurrent use.
type HaversineProvider struct {
	calc  geo.Calculator
	cache ports.DistanceCache
}

// NewHaversineProvider returns a provider. cache may be nil.
func NewHaversineProvider(clamp bool, cache ports.DistanceCache) *HaversineProvider {
	return &HaversineProvider{
		calc:  geo.Calculator{Clamp: clamp},
		cache: cache,
	}
}

// Compute distances from a single reference point to many candidates.
func (p *HaversineProvider) Distances(
	ctx context.Context,
	ref domain.Coordinates,
	candidates []domain.Coordinates,
) (_ []float64, err error) {
	defer obs.Time(ctx, "haversine.Distances")(&err)

	if err := ref.Validate(); err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return []float64{}, nil
	}

	// NaN never equals itself, so such candidates cannot be map keys. They
	// skip the cache and dedupe and are computed in place.
	keyed := make([]domain.Coordinates, 0, len(candidates))
	for _, c := range candidates {
		if !hasNaN(c) {
			keyed = append(keyed, c)
		}
	}

	hits := map[domain.Coordinates]float64{}
	// Check the cache before computing anything.
	if p.cache != nil && len(keyed) > 0 {
		cached, err := p.cache.GetMany(ctx, ref, keyed)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("distance cache read failed")
		} else {
			hits = cached
		}
	}

	out := make([]float64, len(candidates))
	// missAt[i] is the position of candidates[i] in misses, or -1 for a cache hit.
	missAt := make([]int, len(candidates))
	slot := make(map[domain.Coordinates]int, len(candidates))
	misses := make([]domain.Coordinates, 0, len(candidates))
	for i, c := range candidates {
		if hasNaN(c) {
			missAt[i] = len(misses)
			misses = append(misses, c)
			continue
		}
		if km, ok := hits[c]; ok {
			out[i] = km
			missAt[i] = -1
			continue
		}
		if j, ok := slot[c]; ok {
			missAt[i] = j
			continue
		}
		slot[c] = len(misses)
		missAt[i] = len(misses)
		misses = append(misses, c)
	}

	if len(misses) == 0 {
		return out, nil
	}

	lons, lats := domain.SplitCoordinates(misses)
	computed, err := p.calc.Distance(ref.Lon, ref.Lat, lons, lats)
	if err != nil {
		return nil, fmt.Errorf("compute haversine distances: %w", err)
	}

	for i, j := range missAt {
		if j >= 0 {
			out[i] = computed[j]
		}
	}

	if p.cache != nil && len(slot) > 0 {
		fresh := make(map[domain.Coordinates]float64, len(slot))
		for c, j := range slot {
			fresh[c] = computed[j]
		}
		if err := p.cache.PutMany(ctx, ref, fresh); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("distance cache write failed")
		}
	}

	return out, nil
}

func hasNaN(c domain.Coordinates) bool {
	return math.IsNaN(c.Lon) || math.IsNaN(c.Lat)
}
