package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"routeopt/internal/model"
)

// Memory is a simple in-memory store used when no DATABASE_URL is set.
type Memory struct {
	mu     sync.Mutex
	lists  map[string]model.CityList     // id -> list
	routes map[string][]model.RouteResult // listID -> routes
}

func NewMemory() *Memory {
	return &Memory{
		lists:  map[string]model.CityList{},
		routes: map[string][]model.RouteResult{},
	}
}

func (m *Memory) CreateList(_ context.Context, name string, places []model.Place) (model.CityList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l := model.CityList{ID: "cl_" + uuid.NewString(), Name: name, Places: clonePlaces(places)}
	m.lists[l.ID] = l
	return l, nil
}

func (m *Memory) GetList(_ context.Context, id string) (model.CityList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lists[id]
	if !ok {
		return model.CityList{}, ErrNotFound
	}
	l.Places = clonePlaces(l.Places)
	return l, nil
}

func (m *Memory) ListLists(_ context.Context) ([]model.CityList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.CityList, 0, len(m.lists))
	for _, l := range m.lists {
		l.Places = clonePlaces(l.Places)
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) UpdateList(_ context.Context, id string, places []model.Place) (model.CityList, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lists[id]
	if !ok {
		return model.CityList{}, ErrNotFound
	}
	l.Places = clonePlaces(places)
	m.lists[id] = l
	return l, nil
}

func (m *Memory) DeleteList(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lists[id]; !ok {
		return ErrNotFound
	}
	delete(m.lists, id)
	delete(m.routes, id)
	return nil
}

func (m *Memory) SaveRoute(_ context.Context, route model.RouteResult) (model.RouteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if route.ListID != "" {
		if _, ok := m.lists[route.ListID]; !ok {
			return model.RouteResult{}, ErrNotFound
		}
	}
	route.ID = "rt_" + uuid.NewString()
	m.routes[route.ListID] = append(m.routes[route.ListID], route)
	return route, nil
}

func (m *Memory) ListRoutes(_ context.Context, listID string) ([]model.RouteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.RouteResult, len(m.routes[listID]))
	copy(out, m.routes[listID])
	return out, nil
}

func clonePlaces(in []model.Place) []model.Place {
	out := make([]model.Place, len(in))
	copy(out, in)
	return out
}
