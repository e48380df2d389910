package handlers

import (
	"net/url"

	"tripboard/internal/display"
	getitinerarymodels "tripboard/internal/models/get_itinerary"
	models "tripboard/internal/models/itinerary"
)

const mapSearchBase = "https://www.google.com/maps/search/?api=1&query="

// buildItineraryView maps the document onto its display shape. All derived
// values come from the display package; nothing here re-reads the store.
func buildItineraryView(doc *models.Itinerary) getitinerarymodels.GetItineraryResponse {
	return getitinerarymodels.GetItineraryResponse{
		TripTitle:    doc.TripTitle,
		Subtitle:     display.ComputeSubtitle(doc),
		TripRange:    display.SummarizeRange(doc.Days),
		HomeBase:     doc.HomeBase,
		Participants: doc.Participants,
		Days:         buildDayViews(doc.Days),
		Lodging:      doc.Lodging,
		Tips:         doc.Tips,
	}
}

func buildDayViews(days []models.DayPlan) []getitinerarymodels.DayView {
	out := make([]getitinerarymodels.DayView, 0, len(days))
	for _, day := range days {
		view := getitinerarymodels.DayView{
			ID:        day.ID,
			Label:     day.Label,
			City:      day.City,
			Notes:     day.Notes,
			DateLabel: display.DeriveDayLabel(day),
			Events:    make([]getitinerarymodels.EventView, 0, len(day.Events)),
		}
		for _, ev := range day.Events {
			view.Events = append(view.Events, buildEventView(ev))
		}
		out = append(out, view)
	}
	return out
}

func buildEventView(ev models.EventItem) getitinerarymodels.EventView {
	return getitinerarymodels.EventView{
		EventItem:    ev,
		StartDisplay: display.FormatInstant(ev.Start),
		EndDisplay:   display.FormatInstant(ev.End),
		MapURL:       mapURL(ev),
	}
}

// mapURL builds the fixed-template search link from the event's map query,
// falling back to its location text.
func mapURL(ev models.EventItem) string {
	q := ev.MapQuery
	if q == "" {
		q = ev.Location
	}
	if q == "" {
		return ""
	}
	return mapSearchBase + url.QueryEscape(q)
}
