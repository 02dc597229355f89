package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"routeopt/internal/model"
)

// CSV interchange for city lists and route leg tables. The column
// layout matches the files the tool has always produced: city lists as
// name,lat,lon and routes as a City A / City B / Distance table.

// ReadCityListCSV loads places from a name,lat,lon CSV file with a
// header row.
func ReadCityListCSV(path string) ([]model.Place, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("store: %s: empty city list", path)
	}
	places := make([]model.Place, 0, len(rows)-1)
	for i, row := range rows[1:] { // skip header
		if len(row) < 3 {
			return nil, fmt.Errorf("store: %s row %d: want 3 columns, got %d", path, i+2, len(row))
		}
		lat, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("store: %s row %d: bad lat %q", path, i+2, row[1])
		}
		lng, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("store: %s row %d: bad lon %q", path, i+2, row[2])
		}
		places = append(places, model.Place{Name: row[0], Lat: lat, Lng: lng})
	}
	return places, nil
}

// WriteCityListCSV saves places as a name,lat,lon CSV file.
func WriteCityListCSV(path string, places []model.Place) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"name", "lat", "lon"}); err != nil {
		return err
	}
	for _, p := range places {
		rec := []string{
			p.Name,
			strconv.FormatFloat(p.Lat, 'f', -1, 64),
			strconv.FormatFloat(p.Lng, 'f', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteRouteCSV exports a solved route's leg table.
func WriteRouteCSV(path string, route model.RouteResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"City A", "City B", fmt.Sprintf("Distance (%s)", route.Unit)}); err != nil {
		return err
	}
	for _, leg := range route.Legs {
		if err := w.Write([]string{leg.From, leg.To, strconv.FormatFloat(leg.Distance, 'f', 1, 64)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
