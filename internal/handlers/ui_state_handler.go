package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	uistatemodels "tripboard/internal/models/ui_state"
)

// UpdateUIState sets the search text and edit-mode flag. These live beside
// the document but are never persisted with it.
func (h *ItineraryHandler) UpdateUIState(c *gin.Context) {
	var req uistatemodels.UIStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	h.store.SetUIState(req.SearchText, req.EditMode)

	searchText, editMode := h.store.UIState()
	c.JSON(http.StatusOK, uistatemodels.UIStateResponse{
		SearchText: searchText,
		EditMode:   editMode,
	})
}
