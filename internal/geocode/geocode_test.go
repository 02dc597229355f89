package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

type fakeGeocoder struct {
	calls int
	lat   float64
	lng   float64
	err   error
}

func (f *fakeGeocoder) Geocode(_ context.Context, _ string) (float64, float64, error) {
	f.calls++
	if f.err != nil {
		return 0, 0, f.err
	}
	return f.lat, f.lng, nil
}

func TestCachedHitSkipsUpstream(t *testing.T) {
	ctx := context.Background()
	up := &fakeGeocoder{lat: 40.7128, lng: -74.0060}

	var hits, misses int
	c := &Cached{
		Upstream: up,
		Cache:    NewMemoryCache(),
		OnHit:    func() { hits++ },
		OnMiss:   func() { misses++ },
	}

	lat, lng, err := c.Geocode(ctx, "New York, NY")
	if err != nil {
		t.Fatalf("first lookup: %v", err)
	}
	if lat != 40.7128 || lng != -74.0060 {
		t.Fatalf("got (%v, %v)", lat, lng)
	}

	if _, _, err := c.Geocode(ctx, "New York, NY"); err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if up.calls != 1 {
		t.Fatalf("upstream called %d times, want 1", up.calls)
	}
	if hits != 1 || misses != 1 {
		t.Fatalf("hits=%d misses=%d", hits, misses)
	}
}

func TestCachedUpstreamError(t *testing.T) {
	up := &fakeGeocoder{err: ErrNotFound}
	c := &Cached{Upstream: up, Cache: NewMemoryCache()}
	_, _, err := c.Geocode(context.Background(), "Atlantis")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) (float64, float64, bool, error) {
	return 0, 0, false, nil
}
func (failingCache) Put(context.Context, string, float64, float64) error {
	return errors.New("disk full")
}

func TestCachedWriteFailureDoesNotFailLookup(t *testing.T) {
	up := &fakeGeocoder{lat: 1, lng: 2}
	c := &Cached{Upstream: up, Cache: failingCache{}}
	lat, lng, err := c.Geocode(context.Background(), "somewhere")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if lat != 1 || lng != 2 {
		t.Fatalf("got (%v, %v)", lat, lng)
	}
}

func TestFileCachePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "geocode_cache.json")

	c1, err := NewFileCache(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := c1.Put(ctx, "Chicago, IL", 41.8781, -87.6298); err != nil {
		t.Fatalf("put: %v", err)
	}

	// A fresh instance reads the same file.
	c2, err := NewFileCache(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	lat, lng, ok, err := c2.Get(ctx, "Chicago, IL")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if lat != 41.8781 || lng != -87.6298 {
		t.Fatalf("got (%v, %v)", lat, lng)
	}

	if _, _, ok, _ := c2.Get(ctx, "missing"); ok {
		t.Fatalf("unexpected hit")
	}
}

func TestNominatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("User-Agent") == "" {
			t.Errorf("request without User-Agent")
		}
		switch r.URL.Query().Get("q") {
		case "Denver, CO":
			_, _ = w.Write([]byte(`[{"lat":"39.7392","lon":"-104.9903"}]`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	n := NewNominatim(srv.URL)

	lat, lng, err := n.Geocode(context.Background(), "Denver, CO")
	if err != nil {
		t.Fatalf("geocode: %v", err)
	}
	if lat != 39.7392 || lng != -104.9903 {
		t.Fatalf("got (%v, %v)", lat, lng)
	}

	_, _, err = n.Geocode(context.Background(), "Atlantis")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestNominatimServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewNominatim(srv.URL)
	if _, _, err := n.Geocode(context.Background(), "anything"); err == nil {
		t.Fatalf("want error on 500")
	}
}
