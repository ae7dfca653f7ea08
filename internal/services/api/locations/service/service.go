// Package service contains locations workflows
package service

import (
	"context"

	"eventdir/internal/core/venueinfo"
	"eventdir/internal/services/api/locations/domain"
	"eventdir/internal/services/api/locations/repo"
)

// Service defines the service contract for locations
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	venues *venueinfo.Table
}

// New creates a new locations service, a nil table means the embedded one
func New(r repo.Repo, venues *venueinfo.Table) *Svc {
	if r == nil {
		panic("locations.Service requires a non nil Repo")
	}
	if venues == nil {
		venues = venueinfo.Default()
	}
	return &Svc{Repo: r, venues: venues}
}

// List returns every location ordered by id
func (s *Svc) List(ctx context.Context) ([]domain.Location, error) {
	rows, err := s.Repo.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Location, 0, len(rows))
	for _, r := range rows {
		out = append(out, s.present(r))
	}
	return out, nil
}

// Get returns one location or a not found error
func (s *Svc) Get(ctx context.Context, id int) (domain.Location, error) {
	r, err := s.Repo.ByID(ctx, id)
	if err != nil {
		return domain.Location{}, err
	}
	return s.present(r), nil
}

func (s *Svc) present(r repo.RowLocation) domain.Location {
	info := s.venues.Lookup(r.Name, r.Image)
	return domain.Location{
		ID:           r.ID,
		Name:         r.Name,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		Zip:          r.Zip,
		Image:        r.Image,
		DisplayImage: info.Image,
		Description:  info.Description,
		Hours:        info.Hours,
	}
}
