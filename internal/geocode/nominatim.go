package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org"

// Nominatim is a Geocoder backed by the Nominatim search API. Lookups
// are rate-limited to one request per second per the service's usage
// policy.
type Nominatim struct {
	BaseURL   string
	UserAgent string
	HTTP      *http.Client
	limiter   *rate.Limiter
}

// NewNominatim creates a Nominatim client. baseURL may be empty, in
// which case NOMINATIM_URL or the public endpoint is used.
func NewNominatim(baseURL string) *Nominatim {
	if baseURL == "" {
		baseURL = os.Getenv("NOMINATIM_URL")
	}
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}
	return &Nominatim{
		BaseURL:   baseURL,
		UserAgent: "routeopt offline route optimizer",
		HTTP:      &http.Client{Timeout: 10 * time.Second},
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

func (n *Nominatim) Geocode(ctx context.Context, name string) (float64, float64, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return 0, 0, err
	}

	q := url.Values{}
	q.Set("q", name)
	q.Set("format", "json")
	q.Set("limit", "1")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.BaseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("User-Agent", n.UserAgent)

	resp, err := n.HTTP.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocode: nominatim status %d", resp.StatusCode)
	}

	// Nominatim returns coordinates as strings.
	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode: bad latitude %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode: bad longitude %q: %w", results[0].Lon, err)
	}
	return lat, lng, nil
}
