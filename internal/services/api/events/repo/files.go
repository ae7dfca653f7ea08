package repo

import (
	"context"
	"slices"

	"eventdir/internal/core/seed"
	perr "eventdir/internal/platform/errors"
	"eventdir/internal/platform/store"
	"eventdir/internal/services/api/events/domain"
)

// Files joins events.json with locations.json from the document source
type Files struct{ docs store.DocReader }

// NewFiles binds the repo to a document reader
func NewFiles(docs store.DocReader) *Files {
	if docs == nil {
		panic("events.Files requires a non nil DocReader")
	}
	return &Files{docs: docs}
}

type fileLocation struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// All returns every event in id order
func (f *Files) All(ctx context.Context) ([]RowEvent, error) {
	return f.load(ctx, func(seed.Event) bool { return true })
}

// ByLocation returns the events whose location_id matches
func (f *Files) ByLocation(ctx context.Context, locationID int) ([]RowEvent, error) {
	return f.load(ctx, func(e seed.Event) bool { return e.LocationID == locationID })
}

func (f *Files) load(ctx context.Context, keep func(seed.Event) bool) ([]RowEvent, error) {
	var events []seed.Event
	if err := f.docs.Decode(ctx, seed.EventsDoc, &events); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "read events")
	}
	var locs []fileLocation
	if err := f.docs.Decode(ctx, seed.LocationsDoc, &locs); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "read locations")
	}
	byID := make(map[int]fileLocation, len(locs))
	for _, l := range locs {
		byID[l.ID] = l
	}

	out := make([]RowEvent, 0, len(events))
	for _, e := range events {
		if !keep(e) {
			continue
		}
		row := RowEvent{
			ID:           e.ID,
			LocationID:   e.LocationID,
			Title:        e.Title,
			Date:         e.Date,
			Time:         e.Time,
			Image:        e.Image,
			LocationName: domain.UnknownLocation,
		}
		if l, ok := byID[e.LocationID]; ok {
			img := l.Image
			row.LocationName, row.LocationImage = l.Name, &img
		}
		out = append(out, row)
	}
	slices.SortStableFunc(out, func(a, b RowEvent) int { return a.ID - b.ID })
	return out, nil
}
