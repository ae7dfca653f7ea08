// Package repo provides the postgres statements behind reset
package repo

import (
	"context"

	"eventdir/internal/core/seed"
	"eventdir/internal/modkit/repokit"
	perr "eventdir/internal/platform/errors"
	"eventdir/internal/platform/store"
	"eventdir/internal/services/reset/domain"
)

type (
	// PG is a Postgres binder for domain.StorageRepo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a Postgres binder for domain.StorageRepo
func NewPG() repokit.Binder[domain.StorageRepo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.StorageRepo { return &queries{q: repokit.RequireQueryer(q)} }

// CreateLocationsSQL is the locations DDL
const CreateLocationsSQL = `
	CREATE TABLE IF NOT EXISTS locations (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		address VARCHAR(255) NOT NULL,
		city VARCHAR(100) NOT NULL,
		state VARCHAR(20) NOT NULL,
		zip VARCHAR(20) NOT NULL,
		image TEXT NOT NULL
	)
`

// CreateEventsSQL is the events DDL
const CreateEventsSQL = `
	CREATE TABLE IF NOT EXISTS events (
		id SERIAL PRIMARY KEY,
		location_id INTEGER NOT NULL REFERENCES locations(id) ON DELETE CASCADE,
		title VARCHAR(255) NOT NULL,
		date DATE NOT NULL,
		time VARCHAR(32) NOT NULL,
		image TEXT NOT NULL
	)
`

// DropTables drops events first, it references locations
func (r *queries) DropTables(ctx context.Context) error {
	for _, stmt := range []string{"DROP TABLE IF EXISTS events", "DROP TABLE IF EXISTS locations"} {
		if _, err := store.Exec(ctx, r.q, stmt); err != nil {
			return perr.FromPostgres(err, "drop tables")
		}
	}
	return nil
}

func (r *queries) CreateTables(ctx context.Context) error {
	if _, err := store.Exec(ctx, r.q, CreateLocationsSQL); err != nil {
		return perr.FromPostgres(err, "create locations")
	}
	if _, err := store.Exec(ctx, r.q, CreateEventsSQL); err != nil {
		return perr.FromPostgres(err, "create events")
	}
	return nil
}

func (r *queries) InsertLocation(ctx context.Context, l seed.Location) (int, error) {
	id, err := store.Scalar[int](ctx, r.q, `
		INSERT INTO locations (name, address, city, state, zip, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, l.Name, l.Address, l.City, l.State, l.Zip, l.Image)
	if err != nil {
		return 0, perr.FromPostgresWithField(err, "insert location")
	}
	return id, nil
}

func (r *queries) InsertEvent(ctx context.Context, locationID int, e seed.Event) error {
	_, err := store.Exec(ctx, r.q, `
		INSERT INTO events (location_id, title, date, time, image)
		VALUES ($1, $2, $3, $4, $5)
	`, locationID, e.Title, e.Date, e.Time, e.Image)
	if err != nil {
		return perr.FromPostgresWithField(err, "insert event")
	}
	return nil
}

func (r *queries) CurrentDatabase(ctx context.Context) (string, error) {
	name, err := store.Scalar[string](ctx, r.q, "select current_database()")
	if err != nil {
		return "", perr.FromPostgres(err, "current database")
	}
	return name, nil
}
