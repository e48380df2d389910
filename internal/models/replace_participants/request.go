package models

type ReplaceParticipantsRequest struct {
	Participants []string `json:"participants"`
}
