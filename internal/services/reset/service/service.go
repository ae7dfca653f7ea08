// Package service rebuilds the events schema and reseeds it from the embedded seed
package service

import (
	"context"
	"fmt"
	"time"

	"eventdir/internal/core/seed"
	"eventdir/internal/modkit/repokit"
	"eventdir/internal/platform/logger"
	"eventdir/internal/services/reset/domain"

	"github.com/google/uuid"
)

// Config tunes a reset run
type Config struct {
	// StatementTimeout caps each statement inside the reset tx, zero leaves the server default
	StatementTimeout time.Duration
	// Analyze refreshes planner statistics once the seed is in
	Analyze bool
}

// Service implements domain.RunnerPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[domain.StorageRepo]
	Cfg    Config

	// seed sources, swapped in tests
	locations func() ([]seed.Location, error)
	events    func() (map[int][]seed.Event, error)
}

// New constructs the reset service
func New(db repokit.TxRunner, b repokit.Binder[domain.StorageRepo], cfg Config) *Service {
	if db == nil || b == nil {
		panic("reset.Service requires a TxRunner and a Binder")
	}
	return &Service{
		DB:        db,
		Binder:    b,
		Cfg:       cfg,
		locations: seed.Locations,
		events:    seed.EventsByLocation,
	}
}

// StatementTimeoutHook sets a transaction local statement_timeout
func StatementTimeoutHook(d time.Duration) repokit.BeginHook {
	return func(ctx context.Context, q repokit.Queryer) error {
		_, err := q.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = %d", d.Milliseconds()))
		return err
	}
}

// AnalyzeHook refreshes planner statistics for both tables
func AnalyzeHook(ctx context.Context, q repokit.Queryer) error {
	_, err := q.Exec(ctx, "ANALYZE locations, events")
	return err
}

// Run drops and recreates both tables then seeds them, all in one transaction
// events are attached to the ids the database hands back for their location
func (s *Service) Run(ctx context.Context) (domain.Result, error) {
	res := domain.Result{RunID: uuid.NewString()}
	log := logger.C(ctx).With().Str("run_id", res.RunID).Logger()

	locs, err := s.locations()
	if err != nil {
		return res, fmt.Errorf("reset: load seed locations: %w", err)
	}
	byLoc, err := s.events()
	if err != nil {
		return res, fmt.Errorf("reset: load seed events: %w", err)
	}

	db := s.DB
	if s.Cfg.StatementTimeout > 0 {
		db = repokit.WithBeginHooks(db, StatementTimeoutHook(s.Cfg.StatementTimeout))
	}

	log.Info().Int("locations", len(locs)).Msg("reset starting")
	start := time.Now()

	err = db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.Binder.Bind(q)

		if err := r.DropTables(ctx); err != nil {
			return err
		}
		if err := r.CreateTables(ctx); err != nil {
			return err
		}
		log.Debug().Msg("tables recreated")

		for _, l := range locs {
			id, err := r.InsertLocation(ctx, l)
			if err != nil {
				return fmt.Errorf("location %q: %w", l.Name, err)
			}
			res.Locations++
			for _, e := range byLoc[l.ID] {
				if err := r.InsertEvent(ctx, id, e); err != nil {
					return fmt.Errorf("event %q: %w", e.Title, err)
				}
				res.Events++
			}
		}

		var after []repokit.MidHook
		if s.Cfg.Analyze {
			after = append(after, AnalyzeHook)
		}
		if err := repokit.RunMidHooks(ctx, q, after...); err != nil {
			return fmt.Errorf("analyze: %w", err)
		}

		name, err := r.CurrentDatabase(ctx)
		if err != nil {
			return err
		}
		res.Database = name
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("reset rolled back")
		return domain.Result{RunID: res.RunID}, err
	}

	log.Info().
		Str("database", res.Database).
		Int("locations", res.Locations).
		Int("events", res.Events).
		Dur("elapsed", time.Since(start)).
		Msg("reset completed")
	return res, nil
}
