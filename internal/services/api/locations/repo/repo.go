// Package repo provides postgres and file backed access for locations
package repo

import (
	"context"

	"eventdir/internal/modkit/repokit"
	perr "eventdir/internal/platform/errors"
	"eventdir/internal/platform/store"
)

// Repo defines the repository contract for locations
type Repo interface {
	All(ctx context.Context) ([]RowLocation, error)
	ByID(ctx context.Context, id int) (RowLocation, error)
}

// RowLocation is one stored location, shared by both sources
type RowLocation struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Image   string `json:"image"`
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: repokit.RequireQueryer(q)} }

const selectLocations = `
select id, name, address, city, state, zip, image
from locations
`

func scanLocation(r store.Row) (RowLocation, error) {
	var l RowLocation
	err := r.Scan(&l.ID, &l.Name, &l.Address, &l.City, &l.State, &l.Zip, &l.Image)
	return l, err
}

func (r *queries) All(ctx context.Context) ([]RowLocation, error) {
	out, err := store.Many(ctx, r.q, scanLocation, selectLocations+"order by id")
	if err != nil {
		return nil, perr.FromPostgres(err, "list locations")
	}
	return out, nil
}

func (r *queries) ByID(ctx context.Context, id int) (RowLocation, error) {
	l, err := store.One(ctx, r.q, scanLocation, selectLocations+"where id = $1", id)
	switch {
	case err == nil:
		return l, nil
	case perr.IsCode(err, perr.ErrorCodeNotFound):
		return RowLocation{}, perr.WithField(perr.NotFoundf("location %d not found", id), "id")
	default:
		return RowLocation{}, perr.FromPostgres(err, "get location")
	}
}
