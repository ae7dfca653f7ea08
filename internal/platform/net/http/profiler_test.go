package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventdir/internal/platform/config"
	phttp "eventdir/internal/platform/net/http"
)

func TestMountProfiler(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		r := phttp.NewServer(config.New()).Router()
		phttp.MountProfiler(r, "/debug", enabled)

		want := http.StatusNotFound
		if enabled {
			want = http.StatusOK
		}
		for _, path := range []string{"/debug/pprof/", "/debug/pprof/cmdline"} {
			rec := httptest.NewRecorder()
			r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			if rec.Code != want {
				t.Fatalf("enabled=%v %s: status = %d, want %d", enabled, path, rec.Code, want)
			}
		}
	}
}
