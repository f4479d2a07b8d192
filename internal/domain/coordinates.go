package domain

import "geo-distance-service/internal/geo"

// Immutable geographic coordinates (longitude, latitude) in WGS84 degrees.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for GeoJSON compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Validate applies the reference point range checks (longitude first).
func (c Coordinates) Validate() error {
	return geo.ValidateReference(c.Lon, c.Lat)
}

// Split coordinates into index-aligned longitude and latitude slices.
func SplitCoordinates(cs []Coordinates) (lons, lats []float64) {
	lons = make([]float64, len(cs))
	lats = make([]float64, len(cs))
	for i, c := range cs {
		lons[i] = c.Lon
		lats[i] = c.Lat
	}
	return lons, lats
}
