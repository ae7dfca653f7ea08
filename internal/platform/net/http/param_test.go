package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	perr "eventdir/internal/platform/errors"
	phttp "eventdir/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestParamID(t *testing.T) {
	cases := []struct {
		path    string
		want    int
		wantErr bool
	}{
		{"/locations/3", 3, false},
		{"/locations/0", 0, true},
		{"/locations/-2", 0, true},
		{"/locations/abc", 0, true},
		{"/locations/1.5", 0, true},
	}
	for _, c := range cases {
		var (
			got int
			err error
		)
		m := chi.NewRouter()
		m.Get("/locations/{id}", func(w http.ResponseWriter, r *http.Request) {
			got, err = phttp.ParamID(r, "id")
		})
		m.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, c.path, nil))

		if c.wantErr {
			if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
				t.Fatalf("%s: err = %v, want invalid argument", c.path, err)
			}
			if e, _ := perr.As(err); e.Field() != "id" {
				t.Fatalf("%s: field = %q, want id", c.path, e.Field())
			}
			continue
		}
		if err != nil || got != c.want {
			t.Fatalf("%s: got=%d err=%v", c.path, got, err)
		}
	}
}

func TestParam_MissingIsEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := phttp.Param(req, "id"); got != "" {
		t.Fatalf("Param = %q, want empty", got)
	}
}
