package models

type UIStateResponse struct {
	SearchText string `json:"searchText"`
	EditMode   bool   `json:"editMode"`
}
