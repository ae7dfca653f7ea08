// Package repo provides postgres and file backed access for events
package repo

import (
	"context"

	"eventdir/internal/modkit/repokit"
	perr "eventdir/internal/platform/errors"
	"eventdir/internal/platform/store"
	"eventdir/internal/services/api/events/domain"
)

// Repo defines the repository contract for events
// rows carry the joined location name and image
type Repo interface {
	All(ctx context.Context) ([]RowEvent, error)
	ByLocation(ctx context.Context, locationID int) ([]RowEvent, error)
}

// RowEvent is one stored event with its location columns
type RowEvent struct {
	ID            int
	LocationID    int
	Title         string
	Date          string
	Time          string
	Image         string
	LocationName  string
	LocationImage *string
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

// date is cast to text so it reaches the classifier as YYYY-MM-DD
const selectEvents = `
select e.id, e.location_id, e.title, e.date::text, e.time, e.image,
coalesce(l.name, $1), l.image
from events e
left join locations l on l.id = e.location_id
`

func scanEvent(r store.Row) (RowEvent, error) {
	var e RowEvent
	err := r.Scan(&e.ID, &e.LocationID, &e.Title, &e.Date, &e.Time, &e.Image, &e.LocationName, &e.LocationImage)
	return e, err
}

func (r *queries) All(ctx context.Context) ([]RowEvent, error) {
	out, err := store.Many(ctx, r.q, scanEvent, selectEvents+"order by e.id", domain.UnknownLocation)
	if err != nil {
		return nil, perr.FromPostgres(err, "list events")
	}
	return out, nil
}

func (r *queries) ByLocation(ctx context.Context, locationID int) ([]RowEvent, error) {
	out, err := store.Many(ctx, r.q, scanEvent, selectEvents+"where e.location_id = $2 order by e.id", domain.UnknownLocation, locationID)
	if err != nil {
		return nil, perr.FromPostgres(err, "list events by location")
	}
	return out, nil
}
