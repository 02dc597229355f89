package api

import (
	"context"
	"os"
	"strings"

	"routeopt/internal/cities"
	"routeopt/internal/geocode"
	"routeopt/internal/metrics"
	"routeopt/internal/model"
	"routeopt/internal/store"
)

type Server struct {
	Store    store.Store
	Geocoder geocode.Geocoder
	Cities   []model.Place
}

// NewServer creates a Server. If DATABASE_URL is unset, uses the
// in-memory store; the geocode cache is Redis when REDIS_URL is set and
// a JSON file otherwise.
func NewServer() (*Server, error) {
	dsn := os.Getenv("DATABASE_URL")
	var s store.Store
	if strings.TrimSpace(dsn) == "" {
		s = store.NewMemory()
	} else {
		sp, err := store.NewPostgres(dsn)
		if err != nil {
			return nil, err
		}
		// Run migrations (dev helper)
		if os.Getenv("DB_MIGRATE") != "false" {
			if err := sp.Migrate(context.Background()); err != nil {
				return nil, err
			}
		}
		s = sp
	}

	cache, err := geocode.NewCacheFromEnv()
	if err != nil {
		return nil, err
	}
	gc := &geocode.Cached{
		Upstream: geocode.NewNominatim(""),
		Cache:    cache,
		OnHit:    func() { metrics.GeocodeCache.WithLabelValues("hit").Inc() },
		OnMiss:   func() { metrics.GeocodeCache.WithLabelValues("miss").Inc() },
	}

	table, err := cities.Default()
	if err != nil {
		return nil, err
	}

	metrics.RegisterDefault()
	return &Server{Store: s, Geocoder: gc, Cities: table}, nil
}
