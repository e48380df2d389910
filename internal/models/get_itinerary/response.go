package models

import (
	itinerarymodels "tripboard/internal/models/itinerary"
)

// EventView is an event plus its derived display values.
type EventView struct {
	itinerarymodels.EventItem
	StartDisplay string `json:"startDisplay"`
	EndDisplay   string `json:"endDisplay"`
	MapURL       string `json:"mapUrl,omitempty"`
}

// DayView is a day plus its derived date label.
type DayView struct {
	ID        string      `json:"id"`
	Label     string      `json:"label,omitempty"`
	City      string      `json:"city"`
	Notes     string      `json:"notes,omitempty"`
	DateLabel string      `json:"dateLabel"`
	Events    []EventView `json:"events"`
}

// GetItineraryResponse is the full document with every display value the
// page needs already computed. Subtitle is always the recomputed one; the
// stored subtitle's date portion is treated as stale.
type GetItineraryResponse struct {
	TripTitle    string                        `json:"tripTitle"`
	Subtitle     string                        `json:"subtitle"`
	TripRange    string                        `json:"tripRange"`
	HomeBase     string                        `json:"homeBase"`
	Participants []string                      `json:"participants"`
	Days         []DayView                     `json:"days"`
	Lodging      []itinerarymodels.LodgingItem `json:"lodging"`
	Tips         []string                      `json:"tips"`
	SearchText   string                        `json:"searchText"`
	EditMode     bool                          `json:"editMode"`
}
