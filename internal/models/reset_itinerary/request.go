package models

import (
	itinerarymodels "tripboard/internal/models/itinerary"
)

// ResetItineraryRequest replaces the whole document. A nil document restores
// the built-in seed trip.
type ResetItineraryRequest struct {
	Document *itinerarymodels.Itinerary `json:"document,omitempty"`
}
