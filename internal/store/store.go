package store

import (
	"context"
	"errors"

	"routeopt/internal/model"
)

// Store is the persistence interface for named city lists and the
// routes solved over them.
type Store interface {
	// City lists
	CreateList(ctx context.Context, name string, places []model.Place) (model.CityList, error)
	GetList(ctx context.Context, id string) (model.CityList, error)
	ListLists(ctx context.Context) ([]model.CityList, error)
	UpdateList(ctx context.Context, id string, places []model.Place) (model.CityList, error)
	DeleteList(ctx context.Context, id string) error

	// Solved routes
	SaveRoute(ctx context.Context, route model.RouteResult) (model.RouteResult, error)
	ListRoutes(ctx context.Context, listID string) ([]model.RouteResult, error)
}

var ErrNotFound = errors.New("store: not found")
