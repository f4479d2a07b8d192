package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"geo-distance-service/internal/domain"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

// Initialize the Postgres database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPointsQuery := `
	CREATE TABLE IF NOT EXISTS points (
		point_id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		lon DOUBLE PRECISION NOT NULL CHECK (lon BETWEEN -180 AND 180),
		lat DOUBLE PRECISION NOT NULL CHECK (lat BETWEEN -90 AND 90)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_points_lat_lon
	ON points(lat, lon);
	`

	statements := []string{
		createPointsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// One CSV row of the point seed file.
type PointSeed struct {
	PointID int64   `csv:"point_id"`
	Name    string  `csv:"name"`
	Lon     float64 `csv:"lon"`
	Lat     float64 `csv:"lat"`
}

// Parse and validate point seeds from CSV with a point_id,name,lon,lat header.
func ParseSeeds(r io.Reader) ([]domain.Point, error) {
	var data []*PointSeed
	if err := gocsv.Unmarshal(r, &data); err != nil {
		return nil, fmt.Errorf("parse seeds: decode csv: %w", err)
	}

	points := make([]domain.Point, 0, len(data))
	seen := make(map[int64]struct{}, len(data))
	for i, item := range data {
		if item.PointID <= 0 {
			return nil, fmt.Errorf("parse seeds: invalid point_id at row %d: %d", i+1, item.PointID)
		}
		if _, ok := seen[item.PointID]; ok {
			return nil, fmt.Errorf("parse seeds: duplicate point_id at row %d: %d", i+1, item.PointID)
		}
		seen[item.PointID] = struct{}{}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("parse seeds: row %d: name cannot be empty", i+1)
		}

		coords := domain.Coordinates{Lon: item.Lon, Lat: item.Lat}
		if err := coords.Validate(); err != nil {
			return nil, fmt.Errorf("parse seeds: row %d (point_id=%d): %w", i+1, item.PointID, err)
		}

		points = append(points, domain.Point{ID: item.PointID, Name: name, Coordinates: coords})
	}

	return points, nil
}

// Populate the database with point data from a CSV file.
func SeedFromCSV(ctx context.Context, db *sql.DB, csvPath string) error {
	if db == nil {
		return errors.New("seed points: DB is nil")
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("seed points: open %q: %w", csvPath, err)
	}
	defer f.Close()

	points, err := ParseSeeds(f)
	if err != nil {
		return fmt.Errorf("seed points: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed points: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO points (point_id, name, lon, lat)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (point_id) DO UPDATE
	SET name = EXCLUDED.name,
		lon = EXCLUDED.lon,
		lat = EXCLUDED.lat;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed points: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, p.ID, p.Name, p.Coordinates.Lon, p.Coordinates.Lat); err != nil {
			return fmt.Errorf("seed points: insert point_id=%d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed points: commit tx: %w", err)
	}

	return nil
}
