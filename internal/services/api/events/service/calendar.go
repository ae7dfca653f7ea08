package service

import (
	"context"
	"strconv"

	"eventdir/internal/core/eventtime"
	"eventdir/internal/platform/logger"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const (
	calendarProdID = "-//eventdir//events//EN"
	calendarName   = "eventdir events"
)

// uidSpace keeps event UIDs stable across feeds and restarts
var uidSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("eventdir/events"))

// EventUID is the iCalendar UID for an event id
func EventUID(id int) string {
	return uuid.NewSHA1(uidSpace, []byte(strconv.Itoa(id))).String() + "@eventdir"
}

// Calendar renders every event as an iCalendar feed
// All Day events become date valued VEVENTs, unreadable events are left out
func (s *Svc) Calendar(ctx context.Context) ([]byte, error) {
	now := s.clock.Now()
	rows, err := s.Repo.All(ctx)
	if err != nil {
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProdID)
	cal.SetXWRCalName(calendarName)
	cal.SetXWRTimezone(now.Location().String())

	skipped := 0
	for _, r := range rows {
		at, err := eventtime.Normalize(r.Date, r.Time, now)
		if err != nil {
			skipped++
			logger.C(ctx).Debug().Err(err).Int("event_id", r.ID).Msg("event left out of calendar")
			continue
		}
		ev := cal.AddEvent(EventUID(r.ID))
		ev.SetDtStampTime(now)
		ev.SetSummary(r.Title)
		ev.SetLocation(r.LocationName)
		if eventtime.IsAllDay(r.Time) {
			ev.SetAllDayStartAt(at)
			ev.SetAllDayEndAt(at.AddDate(0, 0, 1))
		} else {
			ev.SetStartAt(at)
		}
		if r.Image != "" {
			ev.SetURL(r.Image)
		}
	}
	if skipped > 0 {
		logger.C(ctx).Info().Int("skipped", skipped).Int("total", len(rows)).Msg("calendar built with unreadable events")
	}
	return []byte(cal.Serialize()), nil
}
