package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	perr "eventdir/internal/platform/errors"
)

type cmdTag string

func (c cmdTag) String() string      { return string(c) }
func (c cmdTag) RowsAffected() int64 { return 0 }

// fakeQuerier serves canned rows, one QueryRow value, and records the last Exec
type fakeQuerier struct {
	lastSQL  string
	lastArgs []any
	execTag  CommandTag
	execErr  error

	rows     Rows
	queryErr error

	scalar  any
	scanErr error
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	return f.execTag, f.execErr
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (Rows, error) {
	f.lastSQL, f.lastArgs = sql, args
	return f.rows, f.queryErr
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) Row {
	f.lastSQL, f.lastArgs = sql, args
	return scalarRow{v: f.scalar, err: f.scanErr}
}

type scalarRow struct {
	v   any
	err error
}

func (r scalarRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return setAll(dest, []any{r.v})
}

type fakeRows struct {
	cols   []string
	data   [][]any
	idx    int
	err    error
	closed bool
}

func newRows(cols []string, data [][]any) *fakeRows {
	return &fakeRows{cols: cols, data: data, idx: -1}
}

func (r *fakeRows) Columns() []string { return r.cols }
func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            { r.closed = true }
func (r *fakeRows) Next() bool {
	if r.err != nil {
		return false
	}
	r.idx++
	return r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.idx < 0 || r.idx >= len(r.data) {
		return errors.New("scan out of bounds")
	}
	return setAll(dest, r.data[r.idx])
}

func setAll(dest, vals []any) error {
	if len(dest) != len(vals) {
		return errors.New("dest len mismatch")
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i])
		if dv.Kind() != reflect.Pointer || !dv.Elem().CanSet() {
			return errors.New("dest not settable")
		}
		val := reflect.ValueOf(vals[i])
		if !val.IsValid() || !val.Type().ConvertibleTo(dv.Elem().Type()) {
			return errors.New("type mismatch")
		}
		dv.Elem().Set(val.Convert(dv.Elem().Type()))
	}
	return nil
}

type venue struct {
	ID   int
	Name string
}

func scanVenue(r Row) (venue, error) {
	var v venue
	err := r.Scan(&v.ID, &v.Name)
	return v, err
}

func TestExec_Passthrough(t *testing.T) {
	t.Parallel()

	f := &fakeQuerier{execTag: cmdTag("DROP TABLE")}
	tag, err := Exec(context.Background(), f, "drop table if exists events", 1)
	if err != nil {
		t.Fatalf("Exec err: %v", err)
	}
	if tag.String() != "DROP TABLE" {
		t.Fatalf("tag mismatch: %q", tag.String())
	}
	if f.lastSQL != "drop table if exists events" || len(f.lastArgs) != 1 {
		t.Fatalf("exec call not recorded: %q %v", f.lastSQL, f.lastArgs)
	}

	f.execErr = errors.New("boom")
	if _, err := Exec(context.Background(), f, "x"); err == nil || err.Error() != "boom" {
		t.Fatalf("expected exec error to bubble, got %v", err)
	}
}

func TestScalar(t *testing.T) {
	t.Parallel()

	f := &fakeQuerier{scalar: int64(3)}
	got, err := Scalar[int](context.Background(), f, "insert into locations ... returning id")
	if err != nil || got != 3 {
		t.Fatalf("Scalar got=%d err=%v", got, err)
	}

	f = &fakeQuerier{scanErr: errors.New("scan bad")}
	got, err = Scalar[int](context.Background(), f, "select 1")
	if err == nil || got != 0 {
		t.Fatalf("expected scan error and zero value, got=%d err=%v", got, err)
	}
}

func TestOne(t *testing.T) {
	t.Parallel()

	rows := newRows([]string{"id", "name"}, [][]any{{1, "Seoul Nights Rooftop"}})
	got, err := One(context.Background(), &fakeQuerier{rows: rows}, scanVenue, "q")
	if err != nil {
		t.Fatalf("One err: %v", err)
	}
	if got != (venue{1, "Seoul Nights Rooftop"}) {
		t.Fatalf("One got %+v", got)
	}
	if !rows.closed {
		t.Fatalf("rows not closed")
	}
}

func TestOne_NotFoundTooManyAndErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := One(ctx, &fakeQuerier{rows: newRows(nil, nil)}, scanVenue, "q")
	if !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	two := newRows(nil, [][]any{{1, "a"}, {2, "b"}})
	if _, err := One(ctx, &fakeQuerier{rows: two}, scanVenue, "q"); !errors.Is(err, ErrTooManyRows) {
		t.Fatalf("expected ErrTooManyRows, got %v", err)
	}

	if _, err := One(ctx, &fakeQuerier{queryErr: errors.New("query bad")}, scanVenue, "q"); err == nil || err.Error() != "query bad" {
		t.Fatalf("expected query error, got %v", err)
	}

	broken := newRows(nil, nil)
	broken.err = errors.New("rows-err")
	if _, err := One(ctx, &fakeQuerier{rows: broken}, scanVenue, "q"); err == nil || err.Error() != "rows-err" {
		t.Fatalf("expected rows.Err, got %v", err)
	}
}

func TestMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	rows := newRows(nil, [][]any{{1, "a"}, {2, "b"}, {3, "c"}})
	got, err := Many(ctx, &fakeQuerier{rows: rows}, scanVenue, "q")
	if err != nil {
		t.Fatalf("Many err: %v", err)
	}
	want := []venue{{1, "a"}, {2, "b"}, {3, "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Many %v want %v", got, want)
	}

	empty, err := Many(ctx, &fakeQuerier{rows: newRows(nil, nil)}, scanVenue, "q")
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty result got=%v err=%v", empty, err)
	}
}

func TestMany_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if _, err := Many(ctx, &fakeQuerier{queryErr: errors.New("boom")}, scanVenue, "q"); err == nil {
		t.Fatalf("expected query error")
	}

	mixed := newRows(nil, [][]any{{1, "a"}, {"x", struct{}{}}})
	items, err := Many(ctx, &fakeQuerier{rows: mixed}, scanVenue, "q")
	if err == nil || items != nil {
		t.Fatalf("expected scan error and nil slice, got=%v err=%v", items, err)
	}

	broken := newRows(nil, nil)
	broken.err = errors.New("iter blew up")
	if _, err := Many(ctx, &fakeQuerier{rows: broken}, scanVenue, "q"); err == nil || err.Error() != "iter blew up" {
		t.Fatalf("expected rows.Err to bubble, got %v", err)
	}
}
