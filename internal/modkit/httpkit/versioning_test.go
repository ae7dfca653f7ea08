package httpkit

import (
	"net/http"
	"testing"
)

func TestMountAPI(t *testing.T) {
	pass := func(next http.Handler) http.Handler { return next }
	cases := []struct {
		version string
		mw      []func(http.Handler) http.Handler
		prefix  string
	}{
		{"v1", []func(http.Handler) http.Handler{pass, pass}, "/api/v1"},
		{"/v2", nil, "/api/v2"},
		{"v3/", []func(http.Handler) http.Handler{pass}, "/api/v3"},
	}
	for _, c := range cases {
		r := newRecRouter()
		mounted := 0
		MountAPI(r, c.version, c.mw, func(Router) { mounted++ })

		if len(r.prefixes) != 1 || r.prefixes[0] != c.prefix {
			t.Errorf("%s: prefixes = %v, want [%s]", c.version, r.prefixes, c.prefix)
		}
		if r.mw != len(c.mw) || mounted != 1 {
			t.Errorf("%s: mw=%d mounted=%d", c.version, r.mw, mounted)
		}
	}
}

func TestMountAPIV1(t *testing.T) {
	r := newRecRouter()
	MountAPIV1(r, nil, func(api Router) {
		Get(api, "/events", func(*http.Request) (any, error) { return []int{}, nil })
	})
	if r.prefixes[0] != "/api/v1" || r.gets["/events"] == nil {
		t.Fatalf("prefixes=%v gets=%v", r.prefixes, r.gets)
	}
}
