package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceScenarios(t *testing.T) {
	tests := []struct {
		name       string
		lon, lat   float64
		lons, lats []float64
		want       []float64
		tolerance  float64
	}{
		{
			name: "same point",
			lons: []float64{0}, lats: []float64{0},
			want:      []float64{0},
			tolerance: 1e-9,
		},
		{
			name: "quarter of the equator",
			lons: []float64{90}, lats: []float64{0},
			want:      []float64{math.Pi / 2 * EarthRadiusKm},
			tolerance: 1e-6,
		},
		{
			name: "new york to london",
			lon:  -74.0060, lat: 40.7128,
			lons: []float64{-0.1278}, lats: []float64{51.5074},
			want:      []float64{5570},
			tolerance: 5,
		},
		{
			name: "one degree along equator and meridian",
			lons: []float64{1, 0}, lats: []float64{0, 1},
			want:      []float64{111.1949, 111.1949},
			tolerance: 1e-3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distance(tt.lon, tt.lat, tt.lons, tt.lats)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], tt.tolerance, "index %d", i)
			}
		})
	}
}

func TestDistanceEmptyBatch(t *testing.T) {
	got, err := Distance(12.5, -33.9, []float64{}, []float64{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = Distance(12.5, -33.9, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDistanceIndexAligned(t *testing.T) {
	lons := []float64{-0.1278, 2.3522, 13.4050, -74.0060}
	lats := []float64{51.5074, 48.8566, 52.5200, 40.7128}

	batch, err := Distance(-74.0060, 40.7128, lons, lats)
	require.NoError(t, err)
	require.Len(t, batch, len(lons))

	for i := range lons {
		single, err := Distance(-74.0060, 40.7128, lons[i:i+1], lats[i:i+1])
		require.NoError(t, err)
		assert.Equal(t, single[0], batch[i], "index %d", i)
	}
	assert.InDelta(t, 0, batch[3], 1e-9)
}

func TestDistanceSymmetricAndNonNegative(t *testing.T) {
	points := [][2]float64{
		{0, 0}, {179.9, 89.9}, {-179.9, -89.9}, {-74.0060, 40.7128},
		{151.2093, -33.8688}, {139.6917, 35.6895}, {-0.1278, 51.5074},
	}

	for _, a := range points {
		for _, b := range points {
			ab, err := Distance(a[0], a[1], []float64{b[0]}, []float64{b[1]})
			require.NoError(t, err)
			ba, err := Distance(b[0], b[1], []float64{a[0]}, []float64{a[1]})
			require.NoError(t, err)

			assert.InDelta(t, ab[0], ba[0], 1e-6, "%v <-> %v", a, b)
			assert.GreaterOrEqual(t, ab[0], 0.0)
		}
	}
}

func TestDistanceValidationOrder(t *testing.T) {
	tests := []struct {
		name       string
		lon, lat   float64
		lons, lats []float64
		cause      error
	}{
		{"length mismatch", 0, 0, []float64{0, 0}, []float64{0}, ErrLengthMismatch},
		{"length mismatch wins over bad reference", 500, 500, []float64{0}, nil, ErrLengthMismatch},
		{"longitude 200", 200, 0, []float64{0}, []float64{0}, ErrLongitudeRange},
		{"longitude 181", 181, 0, nil, nil, ErrLongitudeRange},
		{"longitude -181", -181, 0, nil, nil, ErrLongitudeRange},
		{"longitude wins over latitude", 181, 91, nil, nil, ErrLongitudeRange},
		{"longitude NaN", math.NaN(), 0, nil, nil, ErrLongitudeRange},
		{"latitude 91", 0, 91, nil, nil, ErrLatitudeRange},
		{"latitude -91", 0, -91, nil, nil, ErrLatitudeRange},
		{"latitude NaN", 0, math.NaN(), nil, nil, ErrLatitudeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distance(tt.lon, tt.lat, tt.lons, tt.lats)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.cause)
			assert.ErrorIs(t, err, ErrValidation)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.cause, ve.Cause)
			assert.Contains(t, err.Error(), tt.cause.Error())
		})
	}
}

func TestDistanceBoundaryReferenceAccepted(t *testing.T) {
	for _, ref := range [][2]float64{{180, 90}, {-180, -90}, {180, -90}, {-180, 90}} {
		_, err := Distance(ref[0], ref[1], []float64{0}, []float64{0})
		assert.NoError(t, err, "reference %v", ref)
	}
}

func TestDistanceCandidatesNotValidated(t *testing.T) {
	got, err := Distance(0, 0, []float64{math.NaN(), 360, 0}, []float64{0, 0, 200})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.True(t, math.IsNaN(got[0]))
	// 360 degrees of longitude wraps back onto the reference meridian.
	assert.InDelta(t, 0, got[1], 1e-6)
	assert.False(t, math.IsNaN(got[2]))
}

func TestCalculatorClamp(t *testing.T) {
	plain := Calculator{}
	clamped := Calculator{Clamp: true}

	lons := make([]float64, 0, 64)
	lats := make([]float64, 0, 64)
	for i := 0; i < 64; i++ {
		// Near-antipodal candidates of (30.5, 45.25).
		lons = append(lons, -149.5+float64(i)*1e-9)
		lats = append(lats, -45.25-float64(i)*1e-9)
	}

	want := math.Pi * EarthRadiusKm
	got, err := clamped.Distance(30.5, 45.25, lons, lats)
	require.NoError(t, err)
	for i, d := range got {
		require.False(t, math.IsNaN(d), "index %d", i)
		assert.InDelta(t, want, d, 1e-2)
	}

	// Away from the antipode both modes agree exactly.
	a, err := plain.Distance(-74.0060, 40.7128, []float64{-0.1278}, []float64{51.5074})
	require.NoError(t, err)
	b, err := clamped.Distance(-74.0060, 40.7128, []float64{-0.1278}, []float64{51.5074})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// Clamping never hides NaN candidates.
	got, err = clamped.Distance(0, 0, []float64{math.NaN()}, []float64{0})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got[0]))
}

func TestDistanceDeterministic(t *testing.T) {
	lons := []float64{10, 20, 30}
	lats := []float64{-5, 5, 15}

	first, err := Distance(1, 2, lons, lats)
	require.NoError(t, err)
	second, err := Distance(1, 2, lons, lats)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []float64{10, 20, 30}, lons, "inputs must not be modified")
}
