// Package daterange turns user supplied day bounds into a half open window of instants
//
// A bound is either a calendar date (YYYY-MM-DD) or an english phrase such as
// "tomorrow", "next friday" or "in 2 weeks", resolved against the caller's now.
// Bounds are day granular: from starts at midnight, to covers its whole day.
package daterange

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ErrUnreadable reports a bound that is neither a date nor a known phrase
var ErrUnreadable = errors.New("daterange: unreadable day")

// ErrInverted reports a window whose end precedes its start
var ErrInverted = errors.New("daterange: from is after to")

// Window is the half open interval [From, Until), zero bounds are open
type Window struct {
	From  time.Time
	Until time.Time
}

// Open reports whether neither bound is set
func (w Window) Open() bool { return w.From.IsZero() && w.Until.IsZero() }

// Contains reports whether t lies inside the window
func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.Until.IsZero() && !t.Before(w.Until) {
		return false
	}
	return true
}

// dateShape is a bound meant as a calendar date; it never falls back to phrases
var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Parser resolves bounds, safe for concurrent use once built
type Parser struct {
	w *when.Parser
}

// New builds a parser with the english and common rule sets
func New() *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Parser{w: w}
}

// Day resolves s to the midnight that starts its calendar day in now's location
func (p *Parser) Day(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	loc := now.Location()
	if dateShape.MatchString(s) {
		d, err := time.ParseInLocation(time.DateOnly, s, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnreadable, s, err)
		}
		return d, nil
	}
	r, err := p.w.Parse(s, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnreadable, s, err)
	}
	// the phrase has to be the whole bound, "tomorrow-ish" is not tomorrow
	if r == nil || r.Index != 0 || len(r.Text) != len(s) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnreadable, s)
	}
	y, m, d := r.Time.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
}

// Parse builds the window for optional from and to bounds, empty strings leave a side open
func (p *Parser) Parse(from, to string, now time.Time) (Window, error) {
	var w Window
	if strings.TrimSpace(from) != "" {
		d, err := p.Day(from, now)
		if err != nil {
			return Window{}, err
		}
		w.From = d
	}
	if strings.TrimSpace(to) != "" {
		d, err := p.Day(to, now)
		if err != nil {
			return Window{}, err
		}
		w.Until = d.AddDate(0, 0, 1)
	}
	if !w.From.IsZero() && !w.Until.IsZero() && !w.From.Before(w.Until) {
		return Window{}, ErrInverted
	}
	return w, nil
}
