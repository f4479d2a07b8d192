package domain

// A named location stored by the system and searched against a reference point.
type Point struct {
	ID          int64
	Name        string
	Coordinates Coordinates
}

// A Point ranked by its great-circle distance to a reference point.
type Match struct {
	Point      Point
	DistanceKm float64
}

// One step of a proximity ordering: the point reached, the leg length from the
// previous stop and the running total.
type VisitStop struct {
	Point        Point
	LegKm        float64
	CumulativeKm float64
}

// Collect the coordinates of each point, preserving order.
func PointCoordinates(points []Point) []Coordinates {
	out := make([]Coordinates, len(points))
	for i, p := range points {
		out[i] = p.Coordinates
	}
	return out
}
