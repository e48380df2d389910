package models

import (
	itinerarymodels "tripboard/internal/models/itinerary"
)

type ReplaceLodgingResponse struct {
	Lodging []itinerarymodels.LodgingItem `json:"lodging"`
}
