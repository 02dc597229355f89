package store

import (
	"context"
	"errors"
	"testing"

	"routeopt/internal/model"
)

func TestMemoryListCRUD(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	places := []model.Place{
		{Name: "New York, NY", Lat: 40.7128, Lng: -74.0060},
		{Name: "Chicago, IL", Lat: 41.8781, Lng: -87.6298},
	}
	l, err := m.CreateList(ctx, "east", places)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if l.ID == "" || l.Name != "east" || len(l.Places) != 2 {
		t.Fatalf("unexpected list: %+v", l)
	}

	got, err := m.GetList(ctx, l.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "east" || len(got.Places) != 2 {
		t.Fatalf("unexpected get: %+v", got)
	}

	// Mutating the returned slice must not affect the store.
	got.Places[0].Name = "mutated"
	again, _ := m.GetList(ctx, l.ID)
	if again.Places[0].Name != "New York, NY" {
		t.Fatalf("store leaked internal slice")
	}

	upd, err := m.UpdateList(ctx, l.ID, places[:1])
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(upd.Places) != 1 {
		t.Fatalf("update kept %d places", len(upd.Places))
	}

	if err := m.DeleteList(ctx, l.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := m.GetList(ctx, l.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryListListsSorted(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := m.CreateList(ctx, name, nil); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	lists, err := m.ListLists(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(lists) != len(want) {
		t.Fatalf("got %d lists", len(lists))
	}
	for i, l := range lists {
		if l.Name != want[i] {
			t.Fatalf("position %d: got %s want %s", i, l.Name, want[i])
		}
	}
}

func TestMemoryNotFound(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, err := m.GetList(ctx, "cl_missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get: want ErrNotFound, got %v", err)
	}
	if _, err := m.UpdateList(ctx, "cl_missing", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update: want ErrNotFound, got %v", err)
	}
	if err := m.DeleteList(ctx, "cl_missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete: want ErrNotFound, got %v", err)
	}
}

func TestMemoryRoutes(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	l, err := m.CreateList(ctx, "tour", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	route := model.RouteResult{
		ListID:    l.ID,
		Algorithm: "brute-force",
		Exact:     true,
		Order:     []string{"a", "b", "a"},
		Total:     12.5,
		Unit:      "km",
	}
	saved, err := m.SaveRoute(ctx, route)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("save did not assign an ID")
	}

	routes, err := m.ListRoutes(ctx, l.ID)
	if err != nil {
		t.Fatalf("list routes: %v", err)
	}
	if len(routes) != 1 || routes[0].ID != saved.ID {
		t.Fatalf("unexpected routes: %+v", routes)
	}

	// Saving against an unknown list fails.
	route.ListID = "cl_missing"
	if _, err := m.SaveRoute(ctx, route); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
