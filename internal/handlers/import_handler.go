package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripboard/internal/ics"
	importmodels "tripboard/internal/models/import_calendar"
)

// maxImportBytes bounds an uploaded calendar; real itineraries are tiny.
const maxImportBytes = 1 << 20

// ImportCalendar parses an uploaded ICS payload and appends its events to
// the day given by the dayId query parameter. Events that fail to parse are
// skipped; duplicates within the target day are dropped.
func (h *ItineraryHandler) ImportCalendar(c *gin.Context) {
	dayID := c.Query("dayId")
	if dayID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dayId is required"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read calendar body"})
		return
	}

	events, err := ics.ParseEvents(body)
	if err != nil {
		h.logError(c, err, "calendar import failed to parse")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Calendar could not be parsed"})
		return
	}

	added := h.store.AppendEvents(dayID, events)

	c.JSON(http.StatusOK, importmodels.ImportCalendarResponse{
		DayID:  dayID,
		Parsed: len(events),
		Added:  added,
	})
}
