package dto

type PointResponse struct {
	PointID int64   `json:"point_id"`
	Name    string  `json:"name"`
	Lon     float64 `json:"lon"`
	Lat     float64 `json:"lat"`
}

type MatchResponse struct {
	PointResponse
	DistanceKm float64 `json:"distance_km"`
}

type NearbyResponse struct {
	Matches []MatchResponse `json:"matches"`
}

type VisitOrderRequest struct {
	Lon      *float64 `json:"lon"`
	Lat      *float64 `json:"lat"`
	PointIDs []int64  `json:"point_ids"`
}

type VisitStopResponse struct {
	PointResponse
	LegKm        float64 `json:"leg_km"`
	CumulativeKm float64 `json:"cumulative_km"`
}

type VisitOrderResponse struct {
	Stops   []VisitStopResponse `json:"stops"`
	TotalKm float64             `json:"total_km"`
}
