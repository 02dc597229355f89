// Package geocode resolves place names to coordinates. The solver never
// geocodes; everything here runs before an instance is assembled.
package geocode

import (
	"context"
	"errors"
)

// ErrNotFound indicates the geocoder returned no match for a name.
var ErrNotFound = errors.New("geocode: no match")

// Geocoder resolves a free-form place name to a coordinate pair.
type Geocoder interface {
	Geocode(ctx context.Context, name string) (lat, lng float64, err error)
}

// Cache stores resolved coordinates by name.
type Cache interface {
	Get(ctx context.Context, name string) (lat, lng float64, ok bool, err error)
	Put(ctx context.Context, name string, lat, lng float64) error
}

// Cached wraps a Geocoder with a Cache: hits skip the upstream call,
// misses are resolved and written through.
type Cached struct {
	Upstream Geocoder
	Cache    Cache

	// OnHit/OnMiss are optional observation hooks (metrics).
	OnHit  func()
	OnMiss func()
}

func (c *Cached) Geocode(ctx context.Context, name string) (float64, float64, error) {
	if lat, lng, ok, err := c.Cache.Get(ctx, name); err == nil && ok {
		if c.OnHit != nil {
			c.OnHit()
		}
		return lat, lng, nil
	}
	if c.OnMiss != nil {
		c.OnMiss()
	}
	lat, lng, err := c.Upstream.Geocode(ctx, name)
	if err != nil {
		return 0, 0, err
	}
	if err := c.Cache.Put(ctx, name, lat, lng); err != nil {
		// A failed cache write must not fail the lookup.
		return lat, lng, nil
	}
	return lat, lng, nil
}
