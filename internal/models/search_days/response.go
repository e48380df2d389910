package models

import (
	getitinerarymodels "tripboard/internal/models/get_itinerary"
)

type SearchDaysResponse struct {
	Query string                       `json:"query"`
	Days  []getitinerarymodels.DayView `json:"days"`
}
