package geocode

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// MemoryCache is a process-local cache, used in tests and as a fallback.
type MemoryCache struct {
	mu sync.Mutex
	m  map[string][2]float64
}

func NewMemoryCache() *MemoryCache { return &MemoryCache{m: map[string][2]float64{}} }

func (c *MemoryCache) Get(_ context.Context, name string) (float64, float64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[name]
	return v[0], v[1], ok, nil
}

func (c *MemoryCache) Put(_ context.Context, name string, lat, lng float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[name] = [2]float64{lat, lng}
	return nil
}

// FileCache persists resolved names to a small JSON file, written back
// on every Put so an interrupted session keeps its lookups.
type FileCache struct {
	mu   sync.Mutex
	path string
	m    map[string][2]float64
}

// NewFileCache opens (or creates) the JSON cache at path.
func NewFileCache(path string) (*FileCache, error) {
	c := &FileCache{path: path, m: map[string][2]float64{}}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &c.m); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *FileCache) Get(_ context.Context, name string) (float64, float64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[name]
	return v[0], v[1], ok, nil
}

func (c *FileCache) Put(_ context.Context, name string, lat, lng float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[name] = [2]float64{lat, lng}
	data, err := json.Marshal(c.m)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}

// RedisCache stores resolved names as JSON values keyed by name, with
// no expiry (coordinates do not go stale).
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisCache connects using a redis URL (e.g. redis://host:6379/0).
func NewRedisCache(url string) (*RedisCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisCache{rdb: redis.NewClient(opt)}, nil
}

func (c *RedisCache) key(name string) string { return "geocode:" + name }

func (c *RedisCache) Get(ctx context.Context, name string) (float64, float64, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	data, err := c.rdb.Get(ctx, c.key(name)).Bytes()
	if err == redis.Nil {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, err
	}
	var v [2]float64
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, 0, false, err
	}
	return v[0], v[1], true, nil
}

func (c *RedisCache) Put(ctx context.Context, name string, lat, lng float64) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	data, err := json.Marshal([2]float64{lat, lng})
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(name), data, 0).Err()
}

// NewCacheFromEnv picks the cache backend: Redis when REDIS_URL is set,
// otherwise the JSON file cache (GEOCODE_CACHE_FILE, default
// geocode_cache.json in the working directory).
func NewCacheFromEnv() (Cache, error) {
	if url := os.Getenv("REDIS_URL"); url != "" {
		return NewRedisCache(url)
	}
	path := os.Getenv("GEOCODE_CACHE_FILE")
	if path == "" {
		path = "geocode_cache.json"
	}
	return NewFileCache(path)
}
