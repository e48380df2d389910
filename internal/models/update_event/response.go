package models

// UpdateEventResponse reports whether the correlation key matched anything.
// A miss is not an error.
type UpdateEventResponse struct {
	Updated bool `json:"updated"`
}
