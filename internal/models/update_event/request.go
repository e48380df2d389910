package models

// UpdateEventRequest patches one event located by the (day, event)
// correlation key. Nil fields are left untouched.
type UpdateEventRequest struct {
	DayID    string    `json:"dayId"`
	EventID  string    `json:"eventId"`
	Title    *string   `json:"title,omitempty"`
	Location *string   `json:"location,omitempty"`
	Start    *string   `json:"start,omitempty"`
	End      *string   `json:"end,omitempty"`
	Notes    *string   `json:"notes,omitempty"`
	MapQuery *string   `json:"mapQuery,omitempty"`
	URL      *string   `json:"url,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
}
