package dto

import (
	"encoding/json"
	"math"
)

type DistancesRequest struct {
	Lon  *float64  `json:"lon"`
	Lat  *float64  `json:"lat"`
	Lons []float64 `json:"lons"`
	Lats []float64 `json:"lats"`
}

type DistancesResponse struct {
	DistancesKm []Km `json:"distances_km"`
}

// Km encodes non-finite values as JSON null, which encoding/json cannot
// represent natively.
type Km float64

func (k Km) MarshalJSON() ([]byte, error) {
	f := float64(k)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func ToKm(in []float64) []Km {
	out := make([]Km, len(in))
	for i, v := range in {
		out[i] = Km(v)
	}
	return out
}
