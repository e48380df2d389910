// Package filter implements the full-text search over the itinerary's nested
// day/event structure. Everything here is pure: inputs are never mutated.
package filter

import (
	"strings"

	models "tripboard/internal/models/itinerary"
)

// Days reduces a day list to only the events matching the query. A blank or
// all-whitespace query is the identity, days included even when empty.
// Otherwise the match is a case-insensitive substring test over the event's
// title, location, notes and tags; days left with no events are dropped.
// Original day and event ordering is preserved.
func Days(days []models.DayPlan, query string) []models.DayPlan {
	// Only the blank check trims; matching uses the query verbatim, so
	// surrounding whitespace has to appear in the event text too.
	if strings.TrimSpace(query) == "" {
		return days
	}
	q := strings.ToLower(query)

	out := make([]models.DayPlan, 0, len(days))
	for _, day := range days {
		var kept []models.EventItem
		for _, ev := range day.Events {
			if strings.Contains(searchText(ev), q) {
				kept = append(kept, ev)
			}
		}
		if len(kept) == 0 {
			continue
		}
		filtered := day
		filtered.Events = kept
		out = append(out, filtered)
	}
	return out
}

// searchText concatenates an event's searchable fields, missing ones
// contributing empty strings.
func searchText(ev models.EventItem) string {
	parts := []string{ev.Title, ev.Location, ev.Notes}
	parts = append(parts, ev.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}
