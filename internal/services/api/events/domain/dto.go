// Package domain holds DTOs for events http and service contracts
package domain

// UnknownLocation names events whose location row is missing
const UnknownLocation = "Unknown Location"

// Event is an event joined with its location and classified against now
type Event struct {
	ID            int     `json:"id" example:"7"`
	LocationID    int     `json:"location_id" example:"2"`
	Title         string  `json:"title" example:"Lantern Night Picnic"`
	Date          string  `json:"date" example:"2025-10-11"`
	Time          string  `json:"time" example:"7:30 PM"`
	Image         string  `json:"image"`
	LocationName  string  `json:"location_name" example:"Han River Hideaway"`
	LocationImage *string `json:"location_image"`

	IsPast      bool   `json:"is_past"`
	Status      string `json:"status" example:"In 3 days"`
	DisplayDate string `json:"display_date" example:"10/11/2025"`
}

// ListInput filters the events list, every field is optional
type ListInput struct {
	Q        string `query:"q" validate:"omitempty,max=200" example:"picnic"`
	Location string `query:"location" validate:"omitempty,max=255" example:"Han River Hideaway"`
	When     string `query:"when" validate:"omitempty,oneof=all upcoming past" example:"upcoming"`
	From     string `query:"from" validate:"omitempty,max=64" example:"2025-10-01"`
	To       string `query:"to" validate:"omitempty,max=64" example:"next friday"`
}
