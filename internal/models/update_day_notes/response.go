package models

type UpdateDayNotesResponse struct {
	Updated bool `json:"updated"`
}
