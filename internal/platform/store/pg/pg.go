// Package pg owns the pgx pool and the statement tracer
package pg

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config is what the pool needs from the environment
type Config struct {
	URL      string
	MaxConns int32
	// Slow marks statements at or above it; zero marks none
	Slow time.Duration
}

// PG is an open pool plus how its statements are reported
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	Slow   time.Duration
}

// swapped in tests so Open can run without a server
var newPool = pgxpool.NewWithConfig

// Open builds the pool for cfg; mut, when set, edits the parsed pool config last
// pgxpool connects lazily, so a bad host only shows up on first use
func Open(ctx context.Context, cfg Config, tracer QueryTracer, mut func(*pgxpool.Config)) (*PG, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if mut != nil {
		mut(pc)
	}
	pool, err := newPool(ctx, pc)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: tracer, Slow: cfg.Slow}, nil
}

// Close is safe on nil and on a PG without a pool
func (p *PG) Close() {
	if p == nil || p.Pool == nil {
		return
	}
	p.Pool.Close()
}
