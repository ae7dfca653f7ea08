// Package domain holds the reset contracts
package domain

import (
	"context"

	"eventdir/internal/core/seed"
)

// Result summarizes one reset run
type Result struct {
	RunID     string `json:"run_id"`
	Database  string `json:"database"`
	Locations int    `json:"locations"`
	Events    int    `json:"events"`
}

// RunnerPort rebuilds and reseeds the schema
type RunnerPort interface {
	Run(ctx context.Context) (Result, error)
}

// StorageRepo is the tx bound write surface reset needs
type StorageRepo interface {
	DropTables(ctx context.Context) error
	CreateTables(ctx context.Context) error
	InsertLocation(ctx context.Context, l seed.Location) (int, error)
	InsertEvent(ctx context.Context, locationID int, e seed.Event) error
	CurrentDatabase(ctx context.Context) (string, error)
}
