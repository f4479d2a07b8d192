package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/platform/obs"
)

// Postgres-backed implementation of the PointRepository port.
type SQLPointRepository struct{ DB *sql.DB }

func NewSQLPointRepository(db *sql.DB) *SQLPointRepository {
	return &SQLPointRepository{DB: db}
}

// Return all points stored in the database.
func (s *SQLPointRepository) ListPoints(ctx context.Context) (_ []domain.Point, err error) {
	defer obs.Time(ctx, "points.ListPoints")(&err)

	if s.DB == nil {
		return nil, errors.New("sql point repository: DB is nil")
	}

	query := `
	SELECT
		point_id,
		name,
		lon,
		lat
	FROM points
	ORDER BY point_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list points: query points table: %w", err)
	}
	defer rows.Close()

	points := make([]domain.Point, 0, 64)
	for rows.Next() {
		var p domain.Point
		if err := rows.Scan(&p.ID, &p.Name, &p.Coordinates.Lon, &p.Coordinates.Lat); err != nil {
			return nil, fmt.Errorf("list points: scan row: %w", err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list points: row iteration: %w", err)
	}

	return points, nil
}
