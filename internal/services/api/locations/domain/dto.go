// Package domain holds DTOs for locations http and service contracts
package domain

// Location is a venue as served by the API
// description, hours and display_image come from the venue info table
type Location struct {
	ID           int    `json:"id" example:"1"`
	Name         string `json:"name" example:"Seoul Nights Rooftop"`
	Address      string `json:"address" example:"123 Starview Ave"`
	City         string `json:"city" example:"Seoul"`
	State        string `json:"state" example:"KR"`
	Zip          string `json:"zip" example:"04524"`
	Image        string `json:"image"`
	DisplayImage string `json:"display_image" example:"/rooftop.jpg"`
	Description  string `json:"description"`
	Hours        string `json:"hours" example:"Open daily • 10:00 AM – 10:00 PM"`
}
