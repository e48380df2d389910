package models

import (
	itinerarymodels "tripboard/internal/models/itinerary"
)

type ReplaceLodgingRequest struct {
	Lodging []itinerarymodels.LodgingItem `json:"lodging"`
}
