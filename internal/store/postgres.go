package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"routeopt/internal/model"
)

// Postgres persists city lists and routes. Places and legs are stored
// as jsonb; lists are small (tens of entries), so a document column
// beats a join here.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(dsn string) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &Postgres{db: db}, nil
}

// Migrate creates the schema if missing (dev helper, mirrors the
// on-boot migration used by the API server).
func (p *Postgres) Migrate(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS city_lists (
    id      text PRIMARY KEY,
    name    text NOT NULL,
    places  jsonb NOT NULL DEFAULT '[]',
    created timestamptz NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS routes (
    id        text PRIMARY KEY,
    list_id   text REFERENCES city_lists(id) ON DELETE CASCADE,
    algorithm text NOT NULL,
    exact     boolean NOT NULL,
    unit      text NOT NULL,
    total     double precision NOT NULL,
    legs      jsonb NOT NULL DEFAULT '[]',
    tour      jsonb NOT NULL DEFAULT '[]',
    created   timestamptz NOT NULL DEFAULT now()
);`)
	return err
}

func (p *Postgres) CreateList(ctx context.Context, name string, places []model.Place) (model.CityList, error) {
	l := model.CityList{ID: "cl_" + uuid.NewString(), Name: name, Places: places}
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO city_lists (id, name, places) VALUES ($1,$2,$3)`,
		l.ID, l.Name, toJSON(l.Places))
	if err != nil {
		return model.CityList{}, err
	}
	return l, nil
}

func (p *Postgres) GetList(ctx context.Context, id string) (model.CityList, error) {
	var (
		l      model.CityList
		places []byte
	)
	err := p.db.QueryRowContext(ctx,
		`SELECT id, name, places FROM city_lists WHERE id=$1`, id).
		Scan(&l.ID, &l.Name, &places)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CityList{}, ErrNotFound
	}
	if err != nil {
		return model.CityList{}, err
	}
	if err := json.Unmarshal(places, &l.Places); err != nil {
		return model.CityList{}, fmt.Errorf("store: decode places for %s: %w", id, err)
	}
	return l, nil
}

func (p *Postgres) ListLists(ctx context.Context) ([]model.CityList, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id, name, places FROM city_lists ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.CityList
	for rows.Next() {
		var (
			l      model.CityList
			places []byte
		)
		if err := rows.Scan(&l.ID, &l.Name, &places); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(places, &l.Places); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (p *Postgres) UpdateList(ctx context.Context, id string, places []model.Place) (model.CityList, error) {
	res, err := p.db.ExecContext(ctx,
		`UPDATE city_lists SET places=$2 WHERE id=$1`, id, toJSON(places))
	if err != nil {
		return model.CityList{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.CityList{}, ErrNotFound
	}
	return p.GetList(ctx, id)
}

func (p *Postgres) DeleteList(ctx context.Context, id string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM city_lists WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) SaveRoute(ctx context.Context, route model.RouteResult) (model.RouteResult, error) {
	route.ID = "rt_" + uuid.NewString()
	var listID any
	if route.ListID != "" {
		listID = route.ListID
	}
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO routes (id, list_id, algorithm, exact, unit, total, legs, tour)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		route.ID, listID, route.Algorithm, route.Exact, route.Unit, route.Total,
		toJSON(route.Legs), toJSON(route.Order))
	if err != nil {
		return model.RouteResult{}, err
	}
	return route, nil
}

func (p *Postgres) ListRoutes(ctx context.Context, listID string) ([]model.RouteResult, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT id, COALESCE(list_id,''), algorithm, exact, unit, total, legs, tour
		   FROM routes WHERE list_id=$1 ORDER BY created`, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.RouteResult
	for rows.Next() {
		var (
			r    model.RouteResult
			legs []byte
			tour []byte
		)
		if err := rows.Scan(&r.ID, &r.ListID, &r.Algorithm, &r.Exact, &r.Unit, &r.Total, &legs, &tour); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(legs, &r.Legs); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(tour, &r.Order); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func toJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return []byte("null")
	}
	return b
}
