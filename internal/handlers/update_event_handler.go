package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	updateeventmodels "tripboard/internal/models/update_event"
	"tripboard/internal/store"
)

// UpdateEvent patches one event located by the (day, event) correlation key.
// An unknown day or event is a no-op, reported as updated=false, never an
// error.
func (h *ItineraryHandler) UpdateEvent(c *gin.Context) {
	var req updateeventmodels.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.DayID == "" || req.EventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dayId and eventId are required"})
		return
	}

	patch := store.EventPatch{
		Title:    req.Title,
		Location: req.Location,
		Start:    req.Start,
		End:      req.End,
		Notes:    req.Notes,
		MapQuery: req.MapQuery,
		URL:      req.URL,
		Tags:     req.Tags,
	}

	updated := h.store.UpdateEvent(req.DayID, req.EventID, patch)
	if !updated {
		h.logger.Debugw("update event missed correlation key",
			"request_id", c.GetString("request_id"),
			"day_id", req.DayID,
			"event_id", req.EventID,
		)
	}

	c.JSON(http.StatusOK, updateeventmodels.UpdateEventResponse{Updated: updated})
}
