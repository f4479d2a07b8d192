package handlers

import (
	"fmt"
	"geo-distance-service/internal/api/dto"
	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/ports"
	"geo-distance-service/internal/services"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// PointHandler serves searches over stored points. Repo may be nil when no
// database is configured; its endpoints then answer 503.
type PointHandler struct {
	Repo            ports.PointRepository
	Provider        ports.DistanceProvider
	DefaultRadiusKm float64
}

func (h *PointHandler) available(w http.ResponseWriter, r *http.Request) bool {
	if h.Repo == nil {
		writeError(w, r, http.StatusServiceUnavailable, "point storage is not configured")
		return false
	}
	return true
}

// Nearby answers GET /nearby?lon=&lat=&radius_km=&limit=&format=json|geojson.
func (h *PointHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	if !h.available(w, r) {
		return
	}

	q := r.URL.Query()

	lon, err := parseFloatParam(q, "lon", nil)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	lat, err := parseFloatParam(q, "lat", nil)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	radius, err := parseFloatParam(q, "radius_km", &h.DefaultRadiusKm)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	limit := 0
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 0 {
			writeError(w, r, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
	}

	format := strings.ToLower(strings.TrimSpace(q.Get("format")))
	if format != "" && format != "json" && format != "geojson" {
		writeError(w, r, http.StatusBadRequest, "format must be json or geojson")
		return
	}

	req := services.NearbyRequest{
		Ref:      domain.Coordinates{Lon: lon, Lat: lat},
		RadiusKm: radius,
		Limit:    limit,
	}

	matches, err := services.Nearby(r.Context(), req, h.Repo, h.Provider)
	if err != nil {
		writeServiceError(w, r, "nearby", err)
		return
	}

	if format == "geojson" {
		w.Header().Set("Content-Type", "application/geo+json")
		writeJSON(w, r, http.StatusOK, matchesToFeatureCollection(matches))
		return
	}

	res := dto.NearbyResponse{Matches: make([]dto.MatchResponse, 0, len(matches))}
	for _, m := range matches {
		res.Matches = append(res.Matches, dto.MatchResponse{
			PointResponse: toPointResponse(m.Point),
			DistanceKm:    m.DistanceKm,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toPointResponse(p domain.Point) dto.PointResponse {
	return dto.PointResponse{
		PointID: p.ID,
		Name:    p.Name,
		Lon:     p.Coordinates.Lon,
		Lat:     p.Coordinates.Lat,
	}
}

func matchesToFeatureCollection(matches []domain.Match) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(matches))}
	for _, m := range matches {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       strconv.FormatInt(m.Point.ID, 10),
			Geometry: geom.NewPointFlat(geom.XY, m.Point.Coordinates.CoordsToList()),
			Properties: map[string]interface{}{
				"name":        m.Point.Name,
				"distance_km": m.DistanceKm,
			},
		})
	}
	return fc
}

// parseFloatParam reads a float query parameter. A nil fallback makes it required.
func parseFloatParam(q url.Values, key string, fallback *float64) (float64, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		if fallback == nil {
			return 0, fmt.Errorf("%s is required", key)
		}
		return *fallback, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return f, nil
}
