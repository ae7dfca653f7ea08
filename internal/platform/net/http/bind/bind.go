// Package bind decodes request query strings into structs and validates them
package bind

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"

	perr "eventdir/internal/platform/errors"
	"eventdir/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type checker struct {
	v     *validator.Validate
	trans ut.Translator
}

// messages replace the stock english text for the tags query structs use
var messages = map[string]string{
	"min":   "{0} must be at least {1}",
	"max":   "{0} must be at most {1}",
	"oneof": "{0} must be one of [{1}]",
}

// checks is built on first use; field names in messages come from the
// query tag, then the json tag
var checks = sync.OnceValue(func() *checker {
	loc := en.New()
	trans, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	for tag, text := range messages {
		_ = v.RegisterTranslation(tag, trans,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(tag, fe.Field(), fe.Param())
				return msg
			},
		)
	}
	return &checker{v: v, trans: trans}
})

// Validate runs struct validation, the first failing field becomes a
// validation error naming that field
func Validate(v any) error {
	err := checks().v.Struct(v)
	var inv *validator.InvalidValidationError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &inv):
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.Newf(perr.ErrorCodeValidation, "validation error")
	}
	field, msg := firstFailure(err)
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
}

// ParseQuery decodes r's query string into T using `query` tags, then validates it
// unknown keys are ignored and repeated keys keep the last value
func ParseQuery[T any](r *http.Request) (T, error) {
	var dst T
	if err := decodeValues(r.URL.Query(), &dst); err != nil {
		var zero T
		return zero, err
	}
	if err := Validate(dst); err != nil {
		var zero T
		return zero, err
	}
	return dst, nil
}

func firstFailure(err error) (field, message string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(checks().trans)
	}
	return "", err.Error()
}

// decodeValues fills the exported, query tagged fields of the struct dst points to
func decodeValues(vals url.Values, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind: destination must be a pointer to struct, got %T", dst)
	}
	sv := rv.Elem()
	st := sv.Type()
	for i := range st.NumField() {
		f := st.Field(i)
		name := tagName(f.Tag.Get("query"))
		if !f.IsExported() || name == "" || name == "-" {
			continue
		}
		raw, ok := vals[name]
		if !ok || len(raw) == 0 {
			continue
		}
		if err := setField(sv.Field(i), raw); err != nil {
			return perr.WithField(perr.InvalidArgf("%s: %v", name, err), name)
		}
	}
	return nil
}

func setField(fv reflect.Value, raw []string) error {
	last := strings.TrimSpace(raw[len(raw)-1])
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(last)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if last == "" {
			return nil
		}
		n, err := strconv.ParseInt(last, 10, fv.Type().Bits())
		if err != nil {
			return fmt.Errorf("not an integer: %q", last)
		}
		fv.SetInt(n)
	case reflect.Bool:
		if last == "" {
			return nil
		}
		b, err := strconv.ParseBool(last)
		if err != nil {
			return fmt.Errorf("not a boolean: %q", last)
		}
		fv.SetBool(b)
	case reflect.Slice:
		if fv.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", fv.Type())
		}
		var out []string
		for _, r := range raw {
			for _, p := range strings.Split(r, ",") {
				if p = strings.TrimSpace(p); p != "" {
					out = append(out, p)
				}
			}
		}
		fv.Set(reflect.ValueOf(out))
	default:
		return fmt.Errorf("unsupported field type %s", fv.Type())
	}
	return nil
}

func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"query", "json"} {
		if n := tagName(fld.Tag.Get(key)); n != "" && n != "-" {
			return n
		}
	}
	return fld.Name
}

func tagName(tag string) string {
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}
