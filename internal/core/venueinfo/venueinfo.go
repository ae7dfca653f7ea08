// Package venueinfo holds the static presentation details shown next to each location
package venueinfo

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed venues.yaml
var embedded []byte

// Info is what a location page renders beyond the stored record
type Info struct {
	Image       string `yaml:"image" json:"display_image"`
	Description string `yaml:"description" json:"description"`
	Hours       string `yaml:"hours" json:"hours"`
}

type venue struct {
	Name string `yaml:"name"`
	Info `yaml:",inline"`
}

type document struct {
	Fallback Info    `yaml:"fallback"`
	Venues   []venue `yaml:"venues"`
}

// Table maps venue names to their details
type Table struct {
	fallback Info
	byName   map[string]Info
}

// Parse builds a table from a YAML document
func Parse(b []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("venueinfo: %w", err)
	}
	t := &Table{fallback: doc.Fallback, byName: make(map[string]Info, len(doc.Venues))}
	for _, v := range doc.Venues {
		name := strings.TrimSpace(v.Name)
		if name == "" {
			return nil, fmt.Errorf("venueinfo: venue without a name")
		}
		if _, dup := t.byName[name]; dup {
			return nil, fmt.Errorf("venueinfo: duplicate venue %q", name)
		}
		t.byName[name] = v.Info
	}
	return t, nil
}

var (
	defOnce  sync.Once
	defTable *Table
)

// Default returns the table compiled into the binary
func Default() *Table {
	defOnce.Do(func() {
		t, err := Parse(embedded)
		if err != nil {
			panic(err)
		}
		defTable = t
	})
	return defTable
}

// Lookup returns the details for name
// unknown venues get the fallback description and hours, and fallbackImage
// hours are always the shared hours unless a venue overrides them
func (t *Table) Lookup(name, fallbackImage string) Info {
	out := t.fallback
	out.Image = fallbackImage
	v, ok := t.byName[strings.TrimSpace(name)]
	if !ok {
		return out
	}
	if v.Image != "" {
		out.Image = v.Image
	}
	if v.Description != "" {
		out.Description = v.Description
	}
	if v.Hours != "" {
		out.Hours = v.Hours
	}
	return out
}

// Len is the number of known venues
func (t *Table) Len() int { return len(t.byName) }
