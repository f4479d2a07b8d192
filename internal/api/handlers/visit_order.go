package handlers

import (
	"fmt"
	"geo-distance-service/internal/api/dto"
	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/services"
	"net/http"
)

// VisitOrder orders stored points into a greedy nearest-neighbor sequence from
// the given start. An empty point_ids list orders every stored point.
func (h *PointHandler) VisitOrder(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	if !h.available(w, r) {
		return
	}

	var req dto.VisitOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Lon == nil || req.Lat == nil {
		writeError(w, r, http.StatusBadRequest, "lon and lat are required")
		return
	}

	all, err := h.Repo.ListPoints(r.Context())
	if err != nil {
		writeServiceError(w, r, "visit order: list points", err)
		return
	}

	points, err := selectPoints(all, req.PointIDs)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	start := domain.Coordinates{Lon: *req.Lon, Lat: *req.Lat}
	stops, err := services.VisitOrder(r.Context(), start, points, h.Provider)
	if err != nil {
		writeServiceError(w, r, "visit order", err)
		return
	}

	res := dto.VisitOrderResponse{Stops: make([]dto.VisitStopResponse, 0, len(stops))}
	for _, s := range stops {
		res.Stops = append(res.Stops, dto.VisitStopResponse{
			PointResponse: toPointResponse(s.Point),
			LegKm:         s.LegKm,
			CumulativeKm:  s.CumulativeKm,
		})
		res.TotalKm = s.CumulativeKm
	}

	writeJSON(w, r, http.StatusOK, res)
}

// selectPoints returns the points named by ids in request order, or all points
// when ids is empty. Duplicate ids are collapsed.
func selectPoints(all []domain.Point, ids []int64) ([]domain.Point, error) {
	if len(ids) == 0 {
		return all, nil
	}

	byID := make(map[int64]domain.Point, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	seen := make(map[int64]struct{}, len(ids))
	out := make([]domain.Point, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown point_id %d", id)
		}
		seen[id] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}
