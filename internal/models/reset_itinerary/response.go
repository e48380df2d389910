package models

type ResetItineraryResponse struct {
	Message string `json:"message"`
}
