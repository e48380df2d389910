package models

type UpdateDayNotesRequest struct {
	DayID string `json:"dayId"`
	Notes string `json:"notes"`
}
