package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"routeopt/internal/buildinfo"
	"routeopt/internal/geo"
	"routeopt/internal/geocode"
	"routeopt/internal/metrics"
	"routeopt/internal/model"
	"routeopt/internal/opt"
	"routeopt/internal/store"
)

// HealthHandler reports liveness plus build info.
func (s *Server) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "build": buildinfo.Info()})
}

// ReadyHandler reports readiness (the store is constructed eagerly, so
// a running server is a ready server).
func (s *Server) ReadyHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ready"})
}

// MetricsHandler serves the dedicated Prometheus registry.
func (s *Server) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})
}

// CitiesHandler serves the built-in city table.
func (s *Server) CitiesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeProblem(w, http.StatusMethodNotAllowed, "method not allowed", "", r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": s.Cities})
}

// GeocodeHandler resolves a place name via the cached geocoder.
func (s *Server) GeocodeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeProblem(w, http.StatusMethodNotAllowed, "method not allowed", "", r.URL.Path)
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		writeProblem(w, http.StatusBadRequest, "invalid request", "body must be {\"name\": \"City, State\"}", r.URL.Path)
		return
	}
	lat, lng, err := s.Geocoder.Geocode(r.Context(), req.Name)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, geocode.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeProblem(w, status, "geocode failed", err.Error(), r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, model.Place{Name: req.Name, Lat: lat, Lng: lng})
}

// SolveHandler computes a tour over places supplied inline.
func (s *Server) SolveHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeProblem(w, http.StatusMethodNotAllowed, "method not allowed", "", r.URL.Path)
		return
	}
	var req model.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid request", err.Error(), r.URL.Path)
		return
	}
	if err := validateSolveRequest(&req, req.Places); err != nil {
		writeProblem(w, http.StatusBadRequest, "invalid request", err.Error(), r.URL.Path)
		return
	}
	res, err := s.solve(req.Places, req, nil)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "solve failed", err.Error(), r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ListsHandler handles /v1/lists (GET index, POST create).
func (s *Server) ListsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := s.Store.ListLists(r.Context())
		if err != nil {
			writeProblem(w, http.StatusInternalServerError, "store error", err.Error(), r.URL.Path)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var req struct {
			Name   string        `json:"name"`
			Places []model.Place `json:"places"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeProblem(w, http.StatusBadRequest, "invalid request", err.Error(), r.URL.Path)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeProblem(w, http.StatusBadRequest, "invalid request", "list name is required", r.URL.Path)
			return
		}
		l, err := s.Store.CreateList(r.Context(), req.Name, req.Places)
		if err != nil {
			writeProblem(w, http.StatusInternalServerError, "store error", err.Error(), r.URL.Path)
			return
		}
		writeJSON(w, http.StatusCreated, l)

	default:
		writeProblem(w, http.StatusMethodNotAllowed, "method not allowed", "", r.URL.Path)
	}
}

// ListByIDHandler handles /v1/lists/{id} and its /solve and /routes
// sub-resources.
func (s *Server) ListByIDHandler(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/v1/lists/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		writeProblem(w, http.StatusNotFound, "not found", "", r.URL.Path)
		return
	}

	switch {
	case sub == "" && r.Method == http.MethodGet:
		l, err := s.Store.GetList(r.Context(), id)
		if err != nil {
			s.storeProblem(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, l)

	case sub == "" && r.Method == http.MethodPut:
		var req struct {
			Places []model.Place `json:"places"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeProblem(w, http.StatusBadRequest, "invalid request", err.Error(), r.URL.Path)
			return
		}
		l, err := s.Store.UpdateList(r.Context(), id, req.Places)
		if err != nil {
			s.storeProblem(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, l)

	case sub == "" && r.Method == http.MethodDelete:
		if err := s.Store.DeleteList(r.Context(), id); err != nil {
			s.storeProblem(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	case sub == "solve" && r.Method == http.MethodPost:
		var req model.SolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeProblem(w, http.StatusBadRequest, "invalid request", err.Error(), r.URL.Path)
			return
		}
		l, err := s.Store.GetList(r.Context(), id)
		if err != nil {
			s.storeProblem(w, r, err)
			return
		}
		if err := validateSolveRequest(&req, l.Places); err != nil {
			writeProblem(w, http.StatusBadRequest, "invalid request", err.Error(), r.URL.Path)
			return
		}
		res, err := s.solve(l.Places, req, nil)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "solve failed", err.Error(), r.URL.Path)
			return
		}
		res.ListID = id
		saved, err := s.Store.SaveRoute(r.Context(), res)
		if err != nil {
			s.storeProblem(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, saved)

	case sub == "routes" && r.Method == http.MethodGet:
		items, err := s.Store.ListRoutes(r.Context(), id)
		if err != nil {
			s.storeProblem(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	default:
		writeProblem(w, http.StatusMethodNotAllowed, "method not allowed", "", r.URL.Path)
	}
}

func (s *Server) storeProblem(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "not found", "", r.URL.Path)
		return
	}
	writeProblem(w, http.StatusInternalServerError, "store error", err.Error(), r.URL.Path)
}

// solve runs the route selector with metrics, mapping the solver result
// to the wire shape. onIncumbent is forwarded to brute-force runs.
func (s *Server) solve(places []model.Place, req model.SolveRequest, onIncumbent func(opt.Incumbent)) (model.RouteResult, error) {
	points := make([]geo.Point, len(places))
	for i, p := range places {
		points[i] = p.Point()
	}

	twoOptIters := 0
	if req.TwoOpt {
		twoOptIters = 5
	}
	o := opt.Options{
		Algorithm:   req.Algorithm,
		Start:       req.StartIndex,
		Open:        req.Open,
		Unit:        geo.Unit(req.Unit),
		MaxExact:    req.MaxExact,
		TwoOptIters: twoOptIters,
		OnIncumbent: onIncumbent,
	}

	start := time.Now()
	res, err := opt.Solve(points, o)
	algo := res.Algorithm
	if algo == "" {
		algo = req.Algorithm
		if algo == "" {
			algo = opt.AlgoAuto
		}
	}
	if err != nil {
		metrics.Solves.WithLabelValues(algo, "error").Inc()
		return model.RouteResult{}, err
	}
	metrics.Solves.WithLabelValues(algo, "ok").Inc()
	metrics.SolveDuration.WithLabelValues(algo).Observe(time.Since(start).Seconds())
	metrics.SolveSize.Observe(float64(len(points)))

	legs := opt.Legs(points, res.Order, !res.Open, res.Unit)
	out := model.RouteResult{
		Algorithm: res.Algorithm,
		Exact:     res.Exact,
		Order:     res.Names(points),
		Legs:      make([]model.Leg, len(legs)),
		Total:     res.Total,
		Unit:      string(res.Unit),
	}
	for i, l := range legs {
		out.Legs[i] = model.Leg{From: l.From, To: l.To, Distance: l.Distance}
	}
	return out, nil
}
