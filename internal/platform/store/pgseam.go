package store

import (
	"context"
	"time"

	"eventdir/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgxQuerier is what a pool and a pgx.Tx have in common
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// tracedQuerier adapts pgx to RowQuerier and reports every statement
type tracedQuerier struct {
	q      pgxQuerier
	tracer pg.QueryTracer
	slow   time.Duration
}

func (t tracedQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := t.q.Exec(ctx, sql, args...)
	t.report(ctx, sql, args, start, err)
	return ct, err
}

// Query reports once the result set is open; row scanning is not timed
func (t tracedQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := t.q.Query(ctx, sql, args...)
	t.report(ctx, sql, args, start, err)
	if err != nil {
		return nil, err
	}
	return pgxRows{rs}, nil
}

// QueryRow reports after Scan, pgx defers the error until then
func (t tracedQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	return scanHook{row: t.q.QueryRow(ctx, sql, args...), done: func(err error) {
		t.report(ctx, sql, args, start, err)
	}}
}

func (t tracedQuerier) report(ctx context.Context, sql string, args []any, start time.Time, err error) {
	if t.tracer == nil {
		return
	}
	elapsed := time.Since(start)
	t.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:     sql,
		Args:    args,
		Elapsed: elapsed,
		Err:     err,
		Slow:    t.slow > 0 && elapsed >= t.slow,
	})
}

// pgSeam is the TxRunner and Pinger Open hands out for postgres
type pgSeam struct {
	tracedQuerier
	p *pg.PG
}

func newPGSeam(p *pg.PG) *pgSeam {
	return &pgSeam{tracedQuerier: tracedQuerier{q: p.Pool, tracer: p.Tracer, slow: p.Slow}, p: p}
}

// Tx runs fn against a traced transaction
func (s *pgSeam) Tx(ctx context.Context, fn func(RowQuerier) error) error {
	tx, err := s.p.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tracedQuerier{q: tx, tracer: s.tracer, slow: s.slow}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// Ping goes through the trace on purpose, readiness probes show up in it
func (s *pgSeam) Ping(ctx context.Context) error {
	var one int
	return s.QueryRow(ctx, "SELECT 1").Scan(&one)
}

func (s *pgSeam) Close() error {
	s.p.Close()
	return nil
}

type scanHook struct {
	row  pgx.Row
	done func(error)
}

func (h scanHook) Scan(dst ...any) error {
	err := h.row.Scan(dst...)
	h.done(err)
	return err
}

type pgxRows struct{ pgx.Rows }

// Columns lists result column names in order
func (r pgxRows) Columns() []string {
	fds := r.FieldDescriptions()
	out := make([]string, len(fds))
	for i, fd := range fds {
		out[i] = fd.Name
	}
	return out
}
