// Package store opens the two read model backends, postgres and json documents,
// behind driver free seams the repos code against
package store

import (
	"context"
	"errors"
	"fmt"

	"eventdir/internal/platform/logger"
)

// Row is one result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a result set; callers must Close it
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports what a write did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the sql surface repos bind to, a pool or a transaction
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner is a RowQuerier that can also run fn in one transaction,
// committing on nil and rolling back otherwise
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// DocReader decodes the json document called name into v
type DocReader interface {
	Decode(ctx context.Context, name string, v any) error
}

// Pinger is a seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Store holds whichever backends Open enabled; the rest stay nil
type Store struct {
	Log  logger.Logger
	PG   TxRunner
	Docs DocReader
}

// Option adjusts a Store before any backend opens
type Option func(*Store) error

// WithLogger routes backend logs, the sql trace included, to log
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// Open brings up every backend cfg enables; a failure closes what already opened
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Str("component", "store").Logger()

	if cfg.PG.Enabled {
		q, err := openPG(ctx, cfg, s.Log)
		if err != nil {
			return nil, err
		}
		s.PG = q
	}
	if cfg.Files.Enabled {
		d, err := openFiles(ctx, cfg.Files, s.Log)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.Docs = d
	}
	return s, nil
}

// Guard pings each backend that can be pinged and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	for _, b := range []struct {
		name string
		seam any
	}{{"pg", s.PG}, {"files", s.Docs}} {
		if p, ok := b.seam.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", b.name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Close releases the backends that hold resources
func (s *Store) Close(context.Context) error {
	var errs []error
	for _, seam := range []any{s.Docs, s.PG} {
		if c, ok := seam.(interface{ Close() error }); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
