package repo

import (
	"context"
	"slices"

	"eventdir/internal/core/seed"
	perr "eventdir/internal/platform/errors"
	"eventdir/internal/platform/store"
)

// Files reads locations from the json document source
type Files struct{ docs store.DocReader }

// NewFiles binds the repo to a document reader
func NewFiles(docs store.DocReader) *Files {
	if docs == nil {
		panic("locations.Files requires a non nil DocReader")
	}
	return &Files{docs: docs}
}

// All decodes the document on every call, ordered by id
func (f *Files) All(ctx context.Context) ([]RowLocation, error) {
	var out []RowLocation
	if err := f.docs.Decode(ctx, seed.LocationsDoc, &out); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "read locations")
	}
	slices.SortStableFunc(out, func(a, b RowLocation) int { return a.ID - b.ID })
	return out, nil
}

func (f *Files) ByID(ctx context.Context, id int) (RowLocation, error) {
	all, err := f.All(ctx)
	if err != nil {
		return RowLocation{}, err
	}
	for _, l := range all {
		if l.ID == id {
			return l, nil
		}
	}
	return RowLocation{}, perr.WithField(perr.NotFoundf("location %d not found", id), "id")
}
