// Package seed embeds the starter locations and events
//
// The documents double as the default file source and as the rows the reset
// command writes into postgres.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

// document names, shared with the file backed repos
const (
	LocationsDoc = "locations.json"
	EventsDoc    = "events.json"
)

//go:embed locations.json events.json
var files embed.FS

// FS exposes the embedded documents
func FS() fs.FS { return files }

// Location is one venue record as stored in locations.json
type Location struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Image   string `json:"image"`
}

// Event is one event record as stored in events.json
type Event struct {
	ID         int    `json:"id"`
	LocationID int    `json:"location_id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Image      string `json:"image"`
}

// Locations decodes the embedded locations
func Locations() ([]Location, error) {
	var out []Location
	return out, decode(LocationsDoc, &out)
}

// Events decodes the embedded events
func Events() ([]Event, error) {
	var out []Event
	return out, decode(EventsDoc, &out)
}

// EventsByLocation groups the embedded events by their location id
func EventsByLocation() (map[int][]Event, error) {
	evs, err := Events()
	if err != nil {
		return nil, err
	}
	out := make(map[int][]Event)
	for _, e := range evs {
		out[e.LocationID] = append(out[e.LocationID], e)
	}
	return out, nil
}

func decode(name string, v any) error {
	b, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("seed: decode %s: %w", name, err)
	}
	return nil
}
