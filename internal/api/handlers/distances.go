package handlers

import (
	"fmt"
	"geo-distance-service/internal/api/dto"
	"geo-distance-service/internal/ports"
	"geo-distance-service/internal/services"
	"net/http"
)

// DistanceHandler exposes the batch distance computation.
type DistanceHandler struct {
	Provider ports.DistanceProvider
	// MaxBatch caps the candidate count per request; <= 0 disables the cap.
	MaxBatch int
}

func (h *DistanceHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.DistancesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Lon == nil || req.Lat == nil {
		writeError(w, r, http.StatusBadRequest, "lon and lat are required")
		return
	}

	if h.MaxBatch > 0 && (len(req.Lons) > h.MaxBatch || len(req.Lats) > h.MaxBatch) {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("batch exceeds %d candidates", h.MaxBatch))
		return
	}

	out, err := services.ComputeDistances(r.Context(), h.Provider, *req.Lon, *req.Lat, req.Lons, req.Lats)
	if err != nil {
		writeServiceError(w, r, "compute distances", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistancesResponse{DistancesKm: dto.ToKm(out)})
}
