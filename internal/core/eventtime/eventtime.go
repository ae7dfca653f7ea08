// Package eventtime classifies events as past or upcoming and renders a relative
// day label from the loose date and clock strings stored with each event
//
// Every function takes the reference instant explicitly. Callers capture now once
// per request so a batch of classifications agrees with itself
package eventtime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// AllDay is the clock token for events without a start time
	AllDay = "All Day"

	// LabelToday is returned when the event falls on now's calendar day
	LabelToday = "Today"
	// LabelTomorrow is returned for the following calendar day
	LabelTomorrow = "Tomorrow"
	// LabelDateError is returned for any date or clock that does not parse
	LabelDateError = "Date error"

	dateLayout    = "2006-01-02"
	displayLayout = "1/2/2006"
)

// ErrMalformed reports a date or clock string outside the accepted grammar
var ErrMalformed = errors.New("eventtime: malformed date or time")

// Status is the combined classification of one event
type Status struct {
	Past      bool   `json:"is_past"`
	Label     string `json:"status"`
	Malformed bool   `json:"-"`
}

// Normalize combines date and clock into a civil instant in now's location
// All Day events resolve to the start of the day
func Normalize(date, clock string, now time.Time) (time.Time, error) {
	loc := now.Location()
	day, err := parseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	if IsAllDay(clock) {
		return day, nil
	}
	h, m, err := To24(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, h, m, 0, 0, loc), nil
}

// To24 converts "H:MM AM" or "H:MM PM" to a 24 hour pair
// PM adds 12 unless the hour is 12, 12 AM becomes 00, everything else keeps its hour
func To24(clock string) (hour, minute int, err error) {
	s := strings.TrimSpace(clock)
	pm := strings.HasSuffix(s, "PM")
	am := strings.HasSuffix(s, "AM")
	if !pm && !am {
		return 0, 0, fmt.Errorf("%w: clock %q has no AM/PM marker", ErrMalformed, clock)
	}
	body := strings.TrimSpace(s[:len(s)-2])

	hh, mm, ok := strings.Cut(body, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 || !digits(hh) || !digits(mm) {
		return 0, 0, fmt.Errorf("%w: clock %q", ErrMalformed, clock)
	}
	hour, herr := strconv.Atoi(hh)
	minute, merr := strconv.Atoi(mm)
	if herr != nil || merr != nil || hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: clock %q", ErrMalformed, clock)
	}

	switch {
	case pm && hour != 12:
		hour += 12
	case am && hour == 12:
		hour = 0
	}
	return hour, minute, nil
}

// IsPast reports whether the event lies before now
// All Day events compare calendar days only, so they stay current through their whole day
// Malformed input is never past
func IsPast(date, clock string, now time.Time) bool {
	return Classify(date, clock, now).Past
}

// RemainingLabel renders the day distance between the event and now
func RemainingLabel(date, clock string, now time.Time) string {
	return Classify(date, clock, now).Label
}

// Classify normalizes once and derives both the past flag and the label
func Classify(date, clock string, now time.Time) Status {
	at, err := Normalize(date, clock, now)
	if err != nil {
		return Status{Label: LabelDateError, Malformed: true}
	}
	days := DiffDays(at, now)
	past := at.Before(now)
	if IsAllDay(clock) {
		past = days < 0
	}
	return Status{Past: past, Label: Label(days)}
}

// DiffDays counts calendar days from now's date to at's date, negative when at is earlier
// both are read in now's location
func DiffDays(at, now time.Time) int {
	return int(dayNumber(at.In(now.Location())) - dayNumber(now))
}

// Label renders a day distance
func Label(days int) string {
	switch {
	case days < 0:
		n := -days
		unit := "days"
		if n == 1 {
			unit = "day"
		}
		return fmt.Sprintf("Ended %d %s ago", n, unit)
	case days == 0:
		return LabelToday
	case days == 1:
		return LabelTomorrow
	default:
		return fmt.Sprintf("In %d days", days)
	}
}

// FormatDate renders a stored date as M/D/YYYY, returning the input unchanged when it does not parse
func FormatDate(date string) string {
	d, err := parseDate(date, time.UTC)
	if err != nil {
		return date
	}
	return d.Format(displayLayout)
}

// parseDate accepts YYYY-MM-DD, optionally followed by a time part that is ignored
func parseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(dateLayout) {
		switch s[len(dateLayout)] {
		case 'T', ' ':
			s = s[:len(dateLayout)]
		}
	}
	d, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrMalformed, s)
	}
	return d, nil
}

// IsAllDay reports whether clock is the All Day token, surrounding space ignored
func IsAllDay(clock string) bool { return strings.TrimSpace(clock) == AllDay }

// digits reports whether s is only ASCII digits; Atoi alone lets a sign through
func digits(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// dayNumber is the count of civil days since the epoch for t's wall date
func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}
