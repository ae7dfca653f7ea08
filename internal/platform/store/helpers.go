package store

import (
	"context"
	"errors"

	perr "eventdir/internal/platform/errors"
)

// ErrTooManyRows is returned by One when the query yields more than one row
var ErrTooManyRows = errors.New("store: expected 1 row, got more")

// Exec runs a statement that returns no rows
func Exec(ctx context.Context, q RowQuerier, sql string, args ...any) (CommandTag, error) {
	return q.Exec(ctx, sql, args...)
}

// Scalar reads the first column of the first row
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (v T, err error) {
	if err = q.QueryRow(ctx, sql, args...).Scan(&v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// collect scans at most limit rows, limit < 0 means all of them
// more bool reports rows left unread past limit
func collect[T any](rows Rows, scan func(Row) (T, error), limit int) (out []T, more bool, err error) {
	defer rows.Close()
	for rows.Next() {
		if limit >= 0 && len(out) == limit {
			return out, true, nil
		}
		item, err := scan(rows)
		if err != nil {
			return nil, false, err
		}
		out = append(out, item)
	}
	return out, false, rows.Err()
}

// One scans exactly one row; none is perr.ErrNotFound, two is ErrTooManyRows
func One[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	var zero T
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return zero, err
	}
	got, more, err := collect(rows, scan, 1)
	switch {
	case err != nil:
		return zero, err
	case more:
		return zero, ErrTooManyRows
	case len(got) == 0:
		return zero, perr.ErrNotFound
	}
	return got[0], nil
}

// Many scans every row; no rows is a nil slice and no error
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	out, _, err := collect(rows, scan, -1)
	return out, err
}
