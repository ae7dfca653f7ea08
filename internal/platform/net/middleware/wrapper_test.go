package middleware_test

import (
	"compress/flate"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventdir/internal/platform/net/middleware"
)

func TestCompress_GzipsJSON(t *testing.T) {
	h := middleware.Compress(flate.BestSpeed)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "["+strings.Repeat(`{"title":"Lantern Walk"},`, 200)+"{}]")
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("encoding = %q", rr.Header().Get("Content-Encoding"))
	}
}

func TestCORS_ReadOnlyDefaults(t *testing.T) {
	h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"http://localhost:5173"}})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	preflight := func(method string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/events", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", method)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	if rr := preflight(http.MethodGet); rr.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("GET preflight headers = %v", rr.Header())
	}
	if rr := preflight(http.MethodDelete); rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("DELETE should not be allowed: %v", rr.Header())
	}
}

func TestHeartbeatAndSlashes(t *testing.T) {
	var seen string
	final := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) { seen = r.URL.Path })
	h := middleware.Heartbeat("/health")(middleware.StripSlashes()(final))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK || seen != "" {
		t.Fatalf("heartbeat reached the router: code=%d seen=%q", rr.Code, seen)
	}

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/events/", nil))
	if seen != "/events" {
		t.Fatalf("path = %q", seen)
	}

	rr = httptest.NewRecorder()
	middleware.RedirectSlashes()(final).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/locations/", nil))
	if rr.Code != http.StatusMovedPermanently || !strings.HasSuffix(rr.Header().Get("Location"), "/locations") {
		t.Fatalf("redirect = %d %q", rr.Code, rr.Header().Get("Location"))
	}
}

func TestTimeoutAndNoCache(t *testing.T) {
	h := middleware.NoCache()(middleware.Timeout(10 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))

	if rr.Code != http.StatusGatewayTimeout {
		t.Fatalf("code = %d", rr.Code)
	}
	if !strings.Contains(rr.Header().Get("Cache-Control"), "no-cache") {
		t.Fatalf("cache-control = %q", rr.Header().Get("Cache-Control"))
	}
}
