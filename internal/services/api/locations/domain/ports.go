package domain

import "context"

// ServicePort defines the service contract for locations
type ServicePort interface {
	List(ctx context.Context) ([]Location, error)
	Get(ctx context.Context, id int) (Location, error)
}
