//go:build postgres_integration

package store

import (
	"os"
	"testing"

	"routeopt/internal/model"
)

func TestPostgresRoundTrip(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}
	p, err := NewPostgres(dsn)
	if err != nil {
		t.Fatalf("NewPostgres: %v", err)
	}
	if err := p.Migrate(t.Context()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	l, err := p.CreateList(t.Context(), "integration", []model.Place{
		{Name: "New York, NY", Lat: 40.7128, Lng: -74.0060},
	})
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}
	defer func() { _ = p.DeleteList(t.Context(), l.ID) }()

	got, err := p.GetList(t.Context(), l.ID)
	if err != nil {
		t.Fatalf("GetList: %v", err)
	}
	if got.Name != "integration" || len(got.Places) != 1 {
		t.Fatalf("unexpected list: %+v", got)
	}

	saved, err := p.SaveRoute(t.Context(), model.RouteResult{
		ListID:    l.ID,
		Algorithm: "nearest-neighbor",
		Order:     []string{"New York, NY"},
		Unit:      "km",
	})
	if err != nil {
		t.Fatalf("SaveRoute: %v", err)
	}
	routes, err := p.ListRoutes(t.Context(), l.ID)
	if err != nil {
		t.Fatalf("ListRoutes: %v", err)
	}
	if len(routes) != 1 || routes[0].ID != saved.ID {
		t.Fatalf("unexpected routes: %+v", routes)
	}
}
