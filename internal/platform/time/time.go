// Package time holds the injectable clock
package time

import "time"

// Clock yields the reference instant for a unit of work
type Clock func() time.Time

// SystemClock reads the wall clock in loc, nil loc means time.Local
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}

// Fixed always returns t, for tests and replays
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

// Now calls c, falling back to time.Now when c is nil
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}
