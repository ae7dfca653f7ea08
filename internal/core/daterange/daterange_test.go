package daterange

import (
	"errors"
	"testing"
	"time"
)

// Wednesday
var now = time.Date(2025, 10, 1, 15, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestDay(t *testing.T) {
	p := New()
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-12-24", day(2025, 12, 24)},
		{" 2025-01-02 ", day(2025, 1, 2)},
		{"today", day(2025, 10, 1)},
		{"tomorrow", day(2025, 10, 2)},
		{"in 2 days", day(2025, 10, 3)},
	}
	for _, c := range cases {
		got, err := p.Day(c.in, now)
		if err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if !got.Equal(c.want) {
			t.Fatalf("%q = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDay_Unreadable(t *testing.T) {
	for _, in := range []string{"", "qwerty", "2025-13-40", "2025-02-30", "2025-00-10", "tomorrow or so", "maybe tomorrow"} {
		if _, err := New().Day(in, now); !errors.Is(err, ErrUnreadable) {
			t.Fatalf("%q: err = %v, want ErrUnreadable", in, err)
		}
	}
}

func TestDay_KeepsLocation(t *testing.T) {
	seoul := time.FixedZone("KST", 9*3600)
	got, err := New().Day("2025-10-05", now.In(seoul))
	if err != nil {
		t.Fatal(err)
	}
	if got.Location() != seoul || got.Hour() != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestParse_Window(t *testing.T) {
	p := New()

	w, err := p.Parse("", "", now)
	if err != nil || !w.Open() {
		t.Fatalf("empty bounds = %+v, %v", w, err)
	}
	if !w.Contains(time.Time{}) {
		t.Fatal("open window should contain everything")
	}

	w, err = p.Parse("2025-10-01", "2025-10-03", now)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		at   time.Time
		want bool
	}{
		{time.Date(2025, 9, 30, 23, 59, 0, 0, time.UTC), false},
		{day(2025, 10, 1), true},
		{time.Date(2025, 10, 3, 23, 59, 0, 0, time.UTC), true},
		{day(2025, 10, 4), false},
	}
	for _, c := range cases {
		if got := w.Contains(c.at); got != c.want {
			t.Fatalf("Contains(%v) = %v, want %v", c.at, got, c.want)
		}
	}

	w, err = p.Parse("", "today", now)
	if err != nil || !w.From.IsZero() || !w.Until.Equal(day(2025, 10, 2)) {
		t.Fatalf("to only = %+v, %v", w, err)
	}
}

func TestParse_SameDayAndInverted(t *testing.T) {
	p := New()
	if _, err := p.Parse("2025-10-02", "2025-10-02", now); err != nil {
		t.Fatalf("single day window rejected: %v", err)
	}
	if _, err := p.Parse("2025-10-05", "2025-10-02", now); !errors.Is(err, ErrInverted) {
		t.Fatalf("err = %v, want ErrInverted", err)
	}
	if _, err := p.Parse("nonsense words", "", now); !errors.Is(err, ErrUnreadable) {
		t.Fatalf("err = %v, want ErrUnreadable", err)
	}
}
