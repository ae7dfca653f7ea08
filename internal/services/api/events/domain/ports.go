package domain

import "context"

// ServicePort defines the service contract for events
type ServicePort interface {
	List(ctx context.Context, in ListInput) ([]Event, error)
	ByLocation(ctx context.Context, locationID int) ([]Event, error)
	LocationNames(ctx context.Context) ([]string, error)
	Calendar(ctx context.Context) ([]byte, error)
}
