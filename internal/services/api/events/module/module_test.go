package module

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventdir/internal/core/seed"
	modkit "eventdir/internal/modkit"
	perr "eventdir/internal/platform/errors"
	phttp "eventdir/internal/platform/net/http"
	"eventdir/internal/platform/store/files"
	ptime "eventdir/internal/platform/time"
	"eventdir/internal/services/api/events/domain"

	"github.com/go-chi/chi/v5"
)

type envelope[T any] struct {
	StatusCode int            `json:"status_code"`
	Code       perr.ErrorCode `json:"code"`
	Error      string         `json:"error"`
	Field      string         `json:"field"`
	Data       T              `json:"data"`
}

func mount(t *testing.T) http.Handler {
	t.Helper()
	mux := chi.NewRouter()
	m := New(modkit.Deps{
		Docs:  files.New(seed.FS()),
		Clock: ptime.Fixed(time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)),
	})
	m.MountRoutes(phttp.AdaptChi(mux))
	return mux
}

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func get[T any](t *testing.T, h http.Handler, path string) (int, envelope[T]) {
	t.Helper()
	rr := serve(h, path)
	var env envelope[T]
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s: body is not an envelope: %v (%s)", path, err, rr.Body.String())
	}
	return rr.Code, env
}

func TestModule_ListAll(t *testing.T) {
	code, env := get[[]domain.Event](t, mount(t), "/events")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(env.Data) != 30 || env.Data[0].ID != 1 {
		t.Fatalf("len = %d first = %+v", len(env.Data), env.Data)
	}
	first := env.Data[0]
	if first.Status != "In 14 days" || first.IsPast || first.DisplayDate != "10/15/2025" {
		t.Fatalf("first = %+v", first)
	}
	if first.LocationName != "Seoul Nights Rooftop" || first.LocationImage == nil {
		t.Fatalf("first not joined = %+v", first)
	}
}

func TestModule_ListFilters(t *testing.T) {
	h := mount(t)

	_, env := get[[]domain.Event](t, h, "/events?q=RAMEN")
	if len(env.Data) == 0 {
		t.Fatalf("q filter found nothing")
	}
	for _, e := range env.Data {
		if !strings.Contains(strings.ToLower(e.Title), "ramen") {
			t.Fatalf("q leaked %q", e.Title)
		}
	}

	_, env = get[[]domain.Event](t, h, "/events?location=Spirit+Realm+Shrine")
	if len(env.Data) != 6 {
		t.Fatalf("location filter len = %d", len(env.Data))
	}

	_, all := get[[]domain.Event](t, h, "/events?when=all")
	_, up := get[[]domain.Event](t, h, "/events?when=upcoming")
	_, past := get[[]domain.Event](t, h, "/events?when=past")
	if len(up.Data)+len(past.Data) != len(all.Data) {
		t.Fatalf("upcoming %d + past %d != all %d", len(up.Data), len(past.Data), len(all.Data))
	}
	for _, e := range past.Data {
		if !e.IsPast {
			t.Fatalf("past filter leaked %+v", e)
		}
	}

	_, env = get[[]domain.Event](t, h, "/events?from=2025-10-15&to=2025-10-15")
	for _, e := range env.Data {
		if e.Date != "2025-10-15" {
			t.Fatalf("window leaked %+v", e)
		}
	}
}

func TestModule_ListRejectsBadQuery(t *testing.T) {
	h := mount(t)

	code, env := get[any](t, h, "/events?when=someday")
	if code != http.StatusBadRequest || !strings.Contains(env.Error, "when must be one of") {
		t.Fatalf("when: status = %d env = %+v", code, env)
	}
	if env.Code != perr.ErrorCodeValidation || env.Field != "when" {
		t.Fatalf("when: code = %d field = %q", env.Code, env.Field)
	}

	cases := []struct {
		query, field string
	}{
		{"from=2025-10-10&to=2025-10-01", "to"},
		{"from=2025-02-30", "from"},
		{"from=2025-10-01&to=2025-13-40", "to"},
		{"to=whenever", "to"},
	}
	for _, c := range cases {
		code, env := get[any](t, h, "/events?"+c.query)
		if code != http.StatusUnprocessableEntity || env.Code != perr.ErrorCodeInvalidArgument || env.Field != c.field {
			t.Errorf("%s: status = %d code = %d field = %q, want 422 on %s", c.query, code, env.Code, env.Field, c.field)
		}
	}
}

func TestModule_ByLocation(t *testing.T) {
	h := mount(t)

	code, env := get[[]domain.Event](t, h, "/events/location/2")
	if code != http.StatusOK || len(env.Data) != 6 {
		t.Fatalf("status = %d len = %d", code, len(env.Data))
	}

	code, env = get[[]domain.Event](t, h, "/events/location/404")
	if code != http.StatusOK || env.Data == nil || len(env.Data) != 0 {
		t.Fatalf("unknown location: status = %d data = %v", code, env.Data)
	}

	code, bad := get[any](t, h, "/events/location/abc")
	if code != http.StatusUnprocessableEntity || bad.Code != perr.ErrorCodeInvalidArgument || bad.Field != "locationID" {
		t.Fatalf("bad id: status = %d env = %+v", code, bad)
	}
}

func TestModule_LocationNames(t *testing.T) {
	code, env := get[[]string](t, mount(t), "/events/locations")
	if code != http.StatusOK || len(env.Data) != 5 {
		t.Fatalf("status = %d names = %v", code, env.Data)
	}
	if env.Data[0] != "Drama High School" {
		t.Fatalf("names not sorted: %v", env.Data)
	}
}

func TestModule_Calendar(t *testing.T) {
	rr := serve(mount(t), "/events/calendar.ics")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "events.ics") {
		t.Fatalf("content disposition = %q", cd)
	}
	body := rr.Body.String()
	if !strings.HasPrefix(body, "BEGIN:VCALENDAR") || strings.Count(body, "BEGIN:VEVENT") != 30 {
		t.Fatalf("body = %.200s", body)
	}
}

func TestModule_NameAndPorts(t *testing.T) {
	m := New(modkit.Deps{Docs: files.New(seed.FS())})
	if m.Name() != "events" || m.(*Module).Prefix() != "/events" {
		t.Fatalf("name = %q prefix = %q", m.Name(), m.(*Module).Prefix())
	}
	if p, ok := m.Ports().(Ports); !ok || p.Events == nil {
		t.Fatalf("ports = %#v", m.Ports())
	}
}
