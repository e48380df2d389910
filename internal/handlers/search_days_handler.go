package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripboard/internal/filter"
	searchmodels "tripboard/internal/models/search_days"
)

// SearchDays applies the full-text filter to the current document and
// returns the surviving days with display values computed. A blank query
// returns every day unchanged.
func (h *ItineraryHandler) SearchDays(c *gin.Context) {
	query := c.Query("q")

	doc := h.store.Document()
	days := filter.Days(doc.Days, query)

	c.JSON(http.StatusOK, searchmodels.SearchDaysResponse{
		Query: query,
		Days:  buildDayViews(days),
	})
}
