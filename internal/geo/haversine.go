// Package geo computes great-circle distances on a spherical Earth.
//
// All angles are WGS84 degrees and all distances are kilometers. The functions
// hold no state and are safe for concurrent use.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

const degToRad = math.Pi / 180

// Calculator computes haversine distances from one reference point to a batch
// of candidates.
//
// The zero value reproduces the plain formula: rounding can push the haversine
// term fractionally above 1 near antipodal points, and the result is then NaN.
// With Clamp set the term is clamped to [0, 1] before the square root.
type Calculator struct {
	Clamp bool
}

// Distance computes distances with the zero Calculator (no clamping).
func Distance(lon, lat float64, lons, lats []float64) ([]float64, error) {
	return Calculator{}.Distance(lon, lat, lons, lats)
}

// Distance returns, for every i, the distance in km between (lon, lat) and
// (lons[i], lats[i]). The result is index-aligned with the inputs.
//
// Checks run in a fixed order: slice lengths, then reference longitude, then
// reference latitude. Candidate values are not range checked; NaN candidates
// produce NaN distances.
func (c Calculator) Distance(lon, lat float64, lons, lats []float64) ([]float64, error) {
	if err := Validate(lon, lat, len(lons), len(lats)); err != nil {
		return nil, err
	}

	refLon := lon * degToRad
	refLat := lat * degToRad
	cosRefLat := math.Cos(refLat)

	out := make([]float64, len(lons))
	for i := range lons {
		lonRad := lons[i] * degToRad
		latRad := lats[i] * degToRad

		sinDLat := math.Sin((latRad - refLat) / 2)
		sinDLon := math.Sin((lonRad - refLon) / 2)
		h := sinDLat*sinDLat + math.Cos(latRad)*cosRefLat*sinDLon*sinDLon

		if c.Clamp {
			// NaN fails both comparisons and is left as is.
			if h > 1 {
				h = 1
			} else if h < 0 {
				h = 0
			}
		}

		out[i] = 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
	}

	return out, nil
}

// Validate runs the batch checks in order: candidate slice lengths, then the
// reference point.
func Validate(lon, lat float64, nLons, nLats int) error {
	if nLons != nLats {
		return lengthMismatch(nLons, nLats)
	}
	return ValidateReference(lon, lat)
}

// ValidateReference reports whether (lon, lat) is a usable reference point.
// NaN fails both range checks.
func ValidateReference(lon, lat float64) error {
	if !(lon >= -180 && lon <= 180) {
		return longitudeRange(lon)
	}
	if !(lat >= -90 && lat <= 90) {
		return latitudeRange(lat)
	}
	return nil
}
