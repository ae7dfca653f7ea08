// Package files serves JSON documents from a directory or an embedded filesystem
package files

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// ErrNoSource is returned by Open when neither a directory nor a fallback is given
var ErrNoSource = errors.New("files: no directory and no fallback filesystem")

// Config selects where documents come from
type Config struct {
	// Dir is a directory on disk, empty means use the fallback filesystem
	Dir string

	// Required names must exist for Ping to succeed
	Required []string
}

// Source reads named JSON documents
// safe for concurrent use, every Decode opens the file fresh
type Source struct {
	fsys     fs.FS
	origin   string
	required []string
}

// Open resolves cfg against an optional fallback filesystem
func Open(_ context.Context, cfg Config, fallback fs.FS) (*Source, error) {
	if cfg.Dir != "" {
		st, err := os.Stat(cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("files: %w", err)
		}
		if !st.IsDir() {
			return nil, fmt.Errorf("files: %s is not a directory", cfg.Dir)
		}
		return &Source{fsys: os.DirFS(cfg.Dir), origin: cfg.Dir, required: cfg.Required}, nil
	}
	if fallback == nil {
		return nil, ErrNoSource
	}
	return &Source{fsys: fallback, origin: "embedded", required: cfg.Required}, nil
}

// New wraps an fs.FS directly, mostly for tests
func New(fsys fs.FS, required ...string) *Source {
	return &Source{fsys: fsys, origin: "fs", required: required}
}

// Origin names where documents are read from
func (s *Source) Origin() string { return s.origin }

// Decode reads name and unmarshals its JSON body into v
func (s *Source) Decode(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := fs.ReadFile(s.fsys, path.Clean(name))
	if err != nil {
		return fmt.Errorf("files: read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("files: decode %s: %w", name, err)
	}
	return nil
}

// Ping checks that every required document is present
func (s *Source) Ping(ctx context.Context) error {
	var errs []error
	for _, name := range s.required {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fs.Stat(s.fsys, name); err != nil {
			errs = append(errs, fmt.Errorf("files: %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Close is a no op, present so Store.Close can treat every backend alike
func (s *Source) Close() error { return nil }
