package module

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventdir/internal/core/seed"
	modkit "eventdir/internal/modkit"
	phttp "eventdir/internal/platform/net/http"
	"eventdir/internal/platform/store/files"
	"eventdir/internal/services/api/locations/domain"

	"github.com/go-chi/chi/v5"
)

type envelope[T any] struct {
	StatusCode int    `json:"status_code"`
	Error      string `json:"error"`
	Field      string `json:"field"`
	Data       T      `json:"data"`
}

func mount(t *testing.T) http.Handler {
	t.Helper()
	mux := chi.NewRouter()
	m := New(modkit.Deps{Docs: files.New(seed.FS())})
	m.MountRoutes(phttp.AdaptChi(mux))
	return mux
}

func get[T any](t *testing.T, h http.Handler, path string) (int, envelope[T]) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	var env envelope[T]
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s: body is not an envelope: %v (%s)", path, err, rr.Body.String())
	}
	return rr.Code, env
}

func TestModule_List(t *testing.T) {
	code, env := get[[]domain.Location](t, mount(t), "/locations")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(env.Data) != 5 || env.Data[0].ID != 1 {
		t.Fatalf("data = %+v", env.Data)
	}
	if env.Data[0].DisplayImage == "" || env.Data[0].Hours == "" {
		t.Fatalf("location not enriched: %+v", env.Data[0])
	}
}

func TestModule_GetOne(t *testing.T) {
	h := mount(t)

	code, env := get[domain.Location](t, h, "/locations/2")
	if code != http.StatusOK || env.Data.ID != 2 {
		t.Fatalf("status = %d data = %+v", code, env.Data)
	}

	code, env = get[domain.Location](t, h, "/locations/42")
	if code != http.StatusNotFound || env.Error == "" {
		t.Fatalf("missing: status = %d env = %+v", code, env)
	}

	code, env = get[domain.Location](t, h, "/locations/abc")
	if code != http.StatusUnprocessableEntity || env.Field != "id" {
		t.Fatalf("bad id: status = %d field = %q", code, env.Field)
	}
	code, _ = get[domain.Location](t, h, "/locations/0")
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("zero id: status = %d", code)
	}
}

func TestModule_NameAndPorts(t *testing.T) {
	m := New(modkit.Deps{Docs: files.New(seed.FS())}, modkit.WithPrefix("/venues"))
	if m.Name() != "locations" {
		t.Fatalf("name = %q", m.Name())
	}
	p, ok := m.Ports().(Ports)
	if !ok || p.Locations == nil {
		t.Fatalf("ports = %#v", m.Ports())
	}
	if got := m.(*Module).Prefix(); got != "/venues" {
		t.Fatalf("prefix = %q", got)
	}
}
