package models

type ReplaceParticipantsResponse struct {
	Participants []string `json:"participants"`
}
