package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"geo-distance-service/internal/adapters/distance"
	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	points []domain.Point
	err    error
}

func (m *memoryRepo) ListPoints(ctx context.Context) ([]domain.Point, error) {
	return m.points, m.err
}

var seeded = []domain.Point{
	{ID: 1, Name: "Times Square", Coordinates: domain.Coordinates{Lon: -73.9855, Lat: 40.7580}},
	{ID: 2, Name: "Central Park", Coordinates: domain.Coordinates{Lon: -73.9654, Lat: 40.7829}},
	{ID: 3, Name: "JFK Airport", Coordinates: domain.Coordinates{Lon: -73.7781, Lat: 40.6413}},
	{ID: 4, Name: "Tower Bridge", Coordinates: domain.Coordinates{Lon: -0.0754, Lat: 51.5055}},
	{ID: 5, Name: "Times Square Copy", Coordinates: domain.Coordinates{Lon: -73.9855, Lat: 40.7580}},
}

func TestNearbyFiltersAndRanks(t *testing.T) {
	ctx := context.Background()
	provider := distance.NewHaversineProvider(true, nil)
	ref := domain.Coordinates{Lon: -73.9855, Lat: 40.7580}

	matches, err := Nearby(ctx, NearbyRequest{Ref: ref, RadiusKm: 50}, &memoryRepo{points: seeded}, provider)
	require.NoError(t, err)

	ids := make([]int64, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.Point.ID)
	}
	assert.Equal(t, []int64{1, 5, 2, 3}, ids, "zero-distance tie broken by ID, London excluded")
	assert.InDelta(t, 0, matches[0].DistanceKm, 1e-9)
	for i := 1; i < len(matches); i++ {
		assert.LessOrEqual(t, matches[i-1].DistanceKm, matches[i].DistanceKm)
	}
}

func TestNearbyLimitAndUnboundedRadius(t *testing.T) {
	ctx := context.Background()
	provider := distance.NewHaversineProvider(true, nil)
	ref := domain.Coordinates{Lon: -0.1278, Lat: 51.5074}

	matches, err := Nearby(ctx, NearbyRequest{Ref: ref, Limit: 2}, &memoryRepo{points: seeded}, provider)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, int64(4), matches[0].Point.ID)

	all, err := Nearby(ctx, NearbyRequest{Ref: ref}, &memoryRepo{points: seeded}, provider)
	require.NoError(t, err)
	assert.Len(t, all, len(seeded))
}

func TestNearbyDropsNaN(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{points: []domain.Point{
		{ID: 1, Coordinates: domain.Coordinates{Lon: math.NaN(), Lat: 0}},
		{ID: 2, Coordinates: domain.Coordinates{Lon: 1, Lat: 0}},
	}}

	matches, err := Nearby(ctx, NearbyRequest{Ref: domain.Coordinates{}}, repo, distance.NewHaversineProvider(false, nil))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, int64(2), matches[0].Point.ID)
}

func TestNearbyErrors(t *testing.T) {
	ctx := context.Background()
	provider := distance.NewHaversineProvider(true, nil)

	_, err := Nearby(ctx, NearbyRequest{Ref: domain.Coordinates{Lon: -190}}, &memoryRepo{}, provider)
	assert.ErrorIs(t, err, geo.ErrLongitudeRange)

	repoErr := errors.New("db down")
	_, err = Nearby(ctx, NearbyRequest{}, &memoryRepo{err: repoErr}, provider)
	assert.ErrorIs(t, err, repoErr)

	matches, err := Nearby(ctx, NearbyRequest{}, &memoryRepo{}, provider)
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestComputeDistances(t *testing.T) {
	ctx := context.Background()
	provider := distance.NewHaversineProvider(false, nil)

	got, err := ComputeDistances(ctx, provider, 0, 0, []float64{0, 90}, []float64{0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0, got[0], 1e-9)
	assert.InDelta(t, 10007.54, got[1], 0.01)

	_, err = ComputeDistances(ctx, provider, 200, 0, []float64{0, 0}, []float64{0})
	assert.ErrorIs(t, err, geo.ErrLengthMismatch)

	_, err = ComputeDistances(ctx, provider, 200, 0, []float64{0}, []float64{0})
	assert.ErrorIs(t, err, geo.ErrLongitudeRange)

	empty, err := ComputeDistances(ctx, provider, 0, 0, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
