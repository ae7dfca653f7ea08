// Package service contains events workflows
//
// Every call captures now once so the classification of a whole list agrees
// with itself.
package service

import (
	"context"
	"strings"
	"time"

	"eventdir/internal/core/daterange"
	"eventdir/internal/core/eventtime"
	perr "eventdir/internal/platform/errors"
	"eventdir/internal/platform/logger"
	"eventdir/internal/platform/metrics"
	ptime "eventdir/internal/platform/time"
	"eventdir/internal/services/api/events/domain"
	"eventdir/internal/services/api/events/repo"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Service defines the service contract for events
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo repo.Repo

	clock   ptime.Clock
	metrics *metrics.Registry
	days    *daterange.Parser
}

// New creates a new events service
// a nil clock reads the wall clock and a nil registry records nothing
func New(r repo.Repo, clock ptime.Clock, m *metrics.Registry) *Svc {
	if r == nil {
		panic("events.Service requires a non nil Repo")
	}
	return &Svc{Repo: r, clock: clock, metrics: m, days: daterange.New()}
}

// List returns the classified events that pass every filter in `in`
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Event, error) {
	now := s.clock.Now()

	win, err := s.window(in, now)
	if err != nil {
		return nil, err
	}

	rows, err := s.Repo.All(ctx)
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(in.Q))
	loc := strings.TrimSpace(in.Location)

	out := make([]domain.Event, 0, len(rows))
	for _, r := range rows {
		if q != "" && !strings.Contains(fold.String(r.Title), q) {
			continue
		}
		if loc != "" && r.LocationName != loc {
			continue
		}
		if !win.Open() {
			at, err := eventtime.Normalize(r.Date, r.Time, now)
			if err != nil || !win.Contains(at) {
				continue
			}
		}
		ev := s.classify(ctx, r, now)
		switch in.When {
		case "upcoming":
			if ev.IsPast {
				continue
			}
		case "past":
			if !ev.IsPast {
				continue
			}
		}
		out = append(out, ev)
	}
	return out, nil
}

// ByLocation returns the classified events hosted at one location, empty when there are none
func (s *Svc) ByLocation(ctx context.Context, locationID int) ([]domain.Event, error) {
	now := s.clock.Now()
	rows, err := s.Repo.ByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Event, 0, len(rows))
	for _, r := range rows {
		out = append(out, s.classify(ctx, r, now))
	}
	return out, nil
}

// LocationNames returns the distinct location names of all events in english collation order
func (s *Svc) LocationNames(ctx context.Context) ([]string, error) {
	rows, err := s.Repo.All(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(rows))
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.LocationName]; ok {
			continue
		}
		seen[r.LocationName] = struct{}{}
		out = append(out, r.LocationName)
	}
	collate.New(language.English, collate.IgnoreCase).SortStrings(out)
	return out, nil
}

func (s *Svc) window(in domain.ListInput, now time.Time) (daterange.Window, error) {
	win, err := s.days.Parse(in.From, in.To, now)
	if err == nil {
		return win, nil
	}
	field := "from"
	if _, ferr := s.days.Parse(in.From, "", now); ferr == nil {
		field = "to"
	}
	return daterange.Window{}, perr.WithField(perr.InvalidArgf("%v", err), field)
}

func (s *Svc) classify(ctx context.Context, r repo.RowEvent, now time.Time) domain.Event {
	st := eventtime.Classify(r.Date, r.Time, now)
	s.metrics.ObserveStatus(st.Past, st.Malformed)
	if st.Malformed {
		logger.C(ctx).Debug().
			Int("event_id", r.ID).
			Str("date", r.Date).
			Str("time", r.Time).
			Msg("event date unreadable")
	}
	return domain.Event{
		ID:            r.ID,
		LocationID:    r.LocationID,
		Title:         r.Title,
		Date:          r.Date,
		Time:          r.Time,
		Image:         r.Image,
		LocationName:  r.LocationName,
		LocationImage: r.LocationImage,
		IsPast:        st.Past,
		Status:        st.Label,
		DisplayDate:   eventtime.FormatDate(r.Date),
	}
}
