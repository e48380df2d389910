package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripboard/internal/ics"
	models "tripboard/internal/models/itinerary"
)

// ExportCalendar serves the itinerary as a calendar file download. With
// dayId and eventId query parameters it exports that single event, named
// after its sanitized title; without them it exports every event from every
// day, named after the trip. The store hands over a snapshot; serialization
// itself is pure.
func (h *ItineraryHandler) ExportCalendar(c *gin.Context) {
	doc := h.store.Document()

	dayID := c.Query("dayId")
	eventID := c.Query("eventId")

	var body, filename string
	stamp := time.Now()

	if dayID != "" || eventID != "" {
		ev, found := findEvent(doc, dayID, eventID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		body = ics.BuildCalendar(ev, stamp)
		filename = ics.EventFilename(ev[0])
	} else {
		body = ics.BuildCalendar(ics.CollectEvents(doc), stamp)
		filename = ics.TripFilename(doc)
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

func findEvent(doc *models.Itinerary, dayID, eventID string) ([]models.EventItem, bool) {
	for _, day := range doc.Days {
		if dayID != "" && day.ID != dayID {
			continue
		}
		for _, ev := range day.Events {
			if ev.ID == eventID {
				return []models.EventItem{ev}, true
			}
		}
	}
	return nil, false
}
