package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resetmodels "tripboard/internal/models/reset_itinerary"
)

// ResetItinerary replaces the whole document. An empty body (or one without
// a document) restores the built-in seed trip.
func (h *ItineraryHandler) ResetItinerary(c *gin.Context) {
	var req resetmodels.ResetItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// No body is fine; reset falls back to the seed document.
		req.Document = nil
	}

	h.store.Reset(req.Document)

	msg := "Itinerary reset to seed"
	if req.Document != nil {
		msg = "Itinerary replaced"
	}
	c.JSON(http.StatusOK, resetmodels.ResetItineraryResponse{Message: msg})
}
