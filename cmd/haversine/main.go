package main

import (
	"errors"
	"fmt"
	"geo-distance-service/internal/geo"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pschou/go-params"
)

var version = ""

// candidate is one input CSV row.
type candidate struct {
	Lon float64 `csv:"lon"`
	Lat float64 `csv:"lat"`
}

// result is one output CSV row, in input order.
type result struct {
	Lon        float64 `csv:"lon"`
	Lat        float64 `csv:"lat"`
	DistanceKm float64 `csv:"distance_km"`
}

func main() {
	params.Usage = func() {
		fmt.Fprintf(os.Stderr, "haversine - great-circle distances from one reference point to a CSV of points\n"+
			"Version: %s\n\n"+
			"Usage: %s --lon LON --lat LAT [options...]\n\n", version, os.Args[0])
		params.PrintDefaults()
	}
	lonFlag := params.String("x lon", "", "Reference longitude in degrees, [-180, 180]", "DEG")
	latFlag := params.String("y lat", "", "Reference latitude in degrees, [-90, 90]", "DEG")
	clamp := params.Pres("clamp", "Clamp the haversine term to [0, 1] so antipodal points do not yield NaN")
	params.GroupingSet("CSV")
	inFile := params.String("i in", "", "Input CSV with lon,lat header (default stdin)", "FILENAME")
	outFile := params.String("o out", "", "Output CSV (default stdout)", "FILENAME")
	params.CommandLine.Indent = 2
	params.Parse()

	lon, lat, err := parseReference(*lonFlag, *latFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "haversine: %v\n", err)
		params.Usage()
		os.Exit(2)
	}

	var in io.Reader = os.Stdin
	if *inFile != "" {
		f, err := os.Open(*inFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "haversine: open input %q: %v\n", *inFile, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "haversine: create output %q: %v\n", *outFile, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := run(in, out, lon, lat, *clamp); err != nil {
		fmt.Fprintf(os.Stderr, "haversine: %v\n", err)
		os.Exit(1)
	}
}

func parseReference(lonStr, latStr string) (float64, float64, error) {
	if strings.TrimSpace(lonStr) == "" || strings.TrimSpace(latStr) == "" {
		return 0, 0, fmt.Errorf("--lon and --lat are required")
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --lon %q: %w", lonStr, err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --lat %q: %w", latStr, err)
	}
	return lon, lat, nil
}

// run reads candidates from r, computes their distances to (lon, lat) and
// writes them to w.
func run(r io.Reader, w io.Writer, lon, lat float64, clamp bool) error {
	var rows []*candidate
	// Empty input is an empty batch.
	if err := gocsv.Unmarshal(r, &rows); err != nil && !errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return fmt.Errorf("read candidates: %w", err)
	}

	lons := make([]float64, len(rows))
	lats := make([]float64, len(rows))
	for i, row := range rows {
		lons[i] = row.Lon
		lats[i] = row.Lat
	}

	distances, err := geo.Calculator{Clamp: clamp}.Distance(lon, lat, lons, lats)
	if err != nil {
		return err
	}

	results := make([]*result, len(rows))
	for i, row := range rows {
		results[i] = &result{Lon: row.Lon, Lat: row.Lat, DistanceKm: distances[i]}
	}

	if err := gocsv.Marshal(results, w); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
