package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripboard/internal/store"
)

type ItineraryHandler struct {
	store  *store.Store
	logger *zap.SugaredLogger
}

// NewItineraryHandler creates the handler set around the document store.
func NewItineraryHandler(s *store.Store, logger *zap.SugaredLogger) *ItineraryHandler {
	return &ItineraryHandler{
		store:  s,
		logger: logger,
	}
}

// GetItinerary returns the whole document with all display values computed:
// recomputed subtitle, trip range, per-day date labels, per-event formatted
// times and map links.
func (h *ItineraryHandler) GetItinerary(c *gin.Context) {
	doc := h.store.Document()
	searchText, editMode := h.store.UIState()

	resp := buildItineraryView(doc)
	resp.SearchText = searchText
	resp.EditMode = editMode

	c.JSON(http.StatusOK, resp)
}
