package models

// ImportCalendarResponse reports how many events the uploaded calendar
// yielded and how many survived the per-day duplicate check.
type ImportCalendarResponse struct {
	DayID  string `json:"dayId"`
	Parsed int    `json:"parsed"`
	Added  int    `json:"added"`
}
