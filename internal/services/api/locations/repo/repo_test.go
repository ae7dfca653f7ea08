package repo

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"eventdir/internal/core/seed"
	perr "eventdir/internal/platform/errors"
	"eventdir/internal/platform/store"
	"eventdir/internal/platform/store/files"
)

func TestFiles_AllFromSeed(t *testing.T) {
	f := NewFiles(files.New(seed.FS()))
	got, err := f.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	for i, l := range got {
		if l.ID != i+1 {
			t.Fatalf("not ordered by id: %v", got)
		}
	}
}

func TestFiles_SortsByID(t *testing.T) {
	fsys := fstest.MapFS{
		seed.LocationsDoc: {Data: []byte(`[{"id":3,"name":"c"},{"id":1,"name":"a"},{"id":2,"name":"b"}]`)},
	}
	got, err := NewFiles(files.New(fsys)).All(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Name != "a" || got[1].Name != "b" || got[2].Name != "c" {
		t.Fatalf("order = %+v", got)
	}
}

func TestFiles_ByID(t *testing.T) {
	f := NewFiles(files.New(seed.FS()))
	l, err := f.ByID(context.Background(), 2)
	if err != nil || l.ID != 2 || l.Name == "" {
		t.Fatalf("ByID(2) = %+v, %v", l, err)
	}

	_, err = f.ByID(context.Background(), 99)
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestFiles_MissingDocumentIsUnavailable(t *testing.T) {
	_, err := NewFiles(files.New(fstest.MapFS{})).All(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("err = %v, want unavailable", err)
	}
}

// fakeQ serves canned rows for the postgres repo
type fakeQ struct {
	rows    *fakeRows
	err     error
	lastSQL string
	args    []any
}

func (f *fakeQ) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (f *fakeQ) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (f *fakeQ) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	f.lastSQL, f.args = sql, args
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

type fakeRows struct {
	data [][]any
	i    int
}

func (r *fakeRows) Next() bool        { r.i++; return r.i <= len(r.data) }
func (r *fakeRows) Err() error        { return nil }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return nil }
func (r *fakeRows) Scan(dst ...any) error {
	row := r.data[r.i-1]
	for i := range dst {
		switch p := dst[i].(type) {
		case *int:
			*p = row[i].(int)
		case *string:
			*p = row[i].(string)
		}
	}
	return nil
}

func TestPG_AllAndByID(t *testing.T) {
	row := []any{1, "Seoul Nights Rooftop", "123 Starview Ave", "Seoul", "KR", "04524", "img"}
	q := &fakeQ{rows: &fakeRows{data: [][]any{row}}}
	r := NewPG().Bind(q)

	all, err := r.All(context.Background())
	if err != nil || len(all) != 1 || all[0].Zip != "04524" {
		t.Fatalf("All = %+v, %v", all, err)
	}

	q.rows = &fakeRows{data: [][]any{row}}
	l, err := r.ByID(context.Background(), 1)
	if err != nil || l.Name != "Seoul Nights Rooftop" {
		t.Fatalf("ByID = %+v, %v", l, err)
	}
	if len(q.args) != 1 || q.args[0] != 1 {
		t.Fatalf("args = %v", q.args)
	}

	q.rows = &fakeRows{}
	if _, err := r.ByID(context.Background(), 7); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}

	q.err = errors.New("conn reset")
	if _, err := r.All(context.Background()); !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("err = %v, want db error", err)
	}
}
