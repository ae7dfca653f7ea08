package errors

import (
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestDBErrorCode(t *testing.T) {
	cases := map[string]ErrorCode{
		"23505": ErrorCodeDuplicateKey,
		"23503": ErrorCodeInvalidArgument,
		"22001": ErrorCodeInvalidArgument,
		"22P02": ErrorCodeInvalidArgument,
		"23502": ErrorCodeValidation,
		"23514": ErrorCodeValidation,
		"42P01": ErrorCodeUnavailable,
		"25006": ErrorCodeUnavailable,
		"57P03": ErrorCodeUnavailable,
		"40001": ErrorCodeDB,
		"XX000": ErrorCodeDB,
	}
	for state, want := range cases {
		got, ok := DBErrorCode(fmt.Errorf("scan: %w", &pgconn.PgError{Code: state}))
		if !ok || got != want {
			t.Errorf("%s: got %v ok=%v, want %v", state, got, ok, want)
		}
	}
	if _, ok := DBErrorCode(stderrs.New("not pg")); ok {
		t.Fatalf("plain error reported as postgres")
	}
}

func TestFromPostgres(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatalf("nil should stay nil")
	}

	missing := &pgconn.PgError{Code: "42P01", Message: `relation "events" does not exist`}
	err := FromPostgres(missing, "list events")
	if !IsCode(err, ErrorCodeUnavailable) || !stderrs.Is(err, missing) {
		t.Fatalf("err = %v", err)
	}

	if !IsCode(FromPostgres(stderrs.New("conn reset"), "list events"), ErrorCodeDB) {
		t.Fatalf("non pg errors should be DB")
	}
}

func TestFromPostgresWithField(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want string
	}{
		{"column wins", &pgconn.PgError{Code: "23502", ColumnName: "title", ConstraintName: "events_date_check"}, "title"},
		{"fk constraint", &pgconn.PgError{Code: "23503", TableName: "events", ConstraintName: "events_location_id_fkey"}, "location_id"},
		{"unique constraint", &pgconn.PgError{Code: "23505", TableName: "locations", ConstraintName: "locations_name_key"}, "name"},
		{"opaque constraint", &pgconn.PgError{Code: "23514", ConstraintName: "custom"}, ""},
		{"not postgres", stderrs.New("boom"), ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, ok := As(FromPostgresWithField(c.in, "insert"))
			if !ok {
				t.Fatalf("not an *Error")
			}
			if e.Field() != c.want {
				t.Fatalf("field = %q, want %q", e.Field(), c.want)
			}
		})
	}
}
