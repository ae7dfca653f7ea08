package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"eventdir/internal/platform/config"
	perr "eventdir/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openapiYAML []byte

// SpecMutator edits the parsed document on every doc.json request
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// docReader is swapped in tests
var docReader = func() []byte { return openapiYAML }

// Register adds m to the mutators run by doc.json, in registration order
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

const errorSchema = "ErrorResponse"

// serveDocJSON renders the embedded yaml as OAS 3.0 json with the shared
// error responses filled in; swagger-ui does not read 3.1 yet
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := yaml.Unmarshal(docReader(), &spec); err != nil || spec == nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, "/api/v1")
		if suffix := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", ""); suffix != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + suffix
				}
			}
		}

		ensureErrorSchema(spec)
		defaultResponse(spec, http.StatusInternalServerError, perr.ErrorCodePanic, "internal error")
		defaultResponse(spec, http.StatusBadRequest, perr.ErrorCodeValidation, "when must be one of [all upcoming past]")

		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers pins the version to 3.0.3 and adds a servers entry when missing
func ensureServers(spec map[string]any, url string) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// child returns m[key] as a map, creating it when absent
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

// ensureErrorSchema adds the envelope an error response carries
func ensureErrorSchema(spec map[string]any) {
	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas[errorSchema]; ok {
		return
	}
	schemas[errorSchema] = map[string]any{
		"type":        "object",
		"description": "Envelope written for every failed request",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string", "description": "request field at fault, when one is"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// defaultResponse adds a status response to every operation that lacks one
func defaultResponse(spec map[string]any, status int, code perr.ErrorCode, msg string) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	resp := map[string]any{
		"description": http.StatusText(status),
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/" + errorSchema},
				"example": map[string]any{
					"status_code": status,
					"status":      http.StatusText(status),
					"code":        code,
					"error":       msg,
					"request_id":  "eventdir-api/3f9c1a-000001",
				},
			},
		},
	}
	key := strconv.Itoa(status)
	for _, item := range paths {
		ops, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for _, op := range ops {
			if op, ok := op.(map[string]any); ok {
				responses := child(op, "responses")
				if _, ok := responses[key]; !ok {
					responses[key] = resp
				}
			}
		}
	}
}
