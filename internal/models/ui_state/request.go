package models

// UIStateRequest updates the non-persisted view state. Nil fields are left
// untouched.
type UIStateRequest struct {
	SearchText *string `json:"searchText,omitempty"`
	EditMode   *bool   `json:"editMode,omitempty"`
}
