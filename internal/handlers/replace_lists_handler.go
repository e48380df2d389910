package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	replacelodgingmodels "tripboard/internal/models/replace_lodging"
	replaceparticipantsmodels "tripboard/internal/models/replace_participants"
	replacetipsmodels "tripboard/internal/models/replace_tips"
)

// ReplaceParticipants swaps the participant list wholesale. Duplicate names
// are permitted; a name has no identity beyond string equality.
func (h *ItineraryHandler) ReplaceParticipants(c *gin.Context) {
	var req replaceparticipantsmodels.ReplaceParticipantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	h.store.ReplaceParticipants(req.Participants)
	c.JSON(http.StatusOK, replaceparticipantsmodels.ReplaceParticipantsResponse{
		Participants: h.store.Document().Participants,
	})
}

// ReplaceLodging swaps the lodging list wholesale.
func (h *ItineraryHandler) ReplaceLodging(c *gin.Context) {
	var req replacelodgingmodels.ReplaceLodgingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	h.store.ReplaceLodging(req.Lodging)
	c.JSON(http.StatusOK, replacelodgingmodels.ReplaceLodgingResponse{
		Lodging: h.store.Document().Lodging,
	})
}

// ReplaceTips swaps the tips list wholesale.
func (h *ItineraryHandler) ReplaceTips(c *gin.Context) {
	var req replacetipsmodels.ReplaceTipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	h.store.ReplaceTips(req.Tips)
	c.JSON(http.StatusOK, replacetipsmodels.ReplaceTipsResponse{
		Tips: h.store.Document().Tips,
	})
}
