package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	updatedaynotesmodels "tripboard/internal/models/update_day_notes"
)

// UpdateDayNotes replaces one day's free-text notes. Unknown day is a no-op.
func (h *ItineraryHandler) UpdateDayNotes(c *gin.Context) {
	var req updatedaynotesmodels.UpdateDayNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.DayID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dayId is required"})
		return
	}

	updated := h.store.SetDayNotes(req.DayID, req.Notes)
	c.JSON(http.StatusOK, updatedaynotesmodels.UpdateDayNotesResponse{Updated: updated})
}
