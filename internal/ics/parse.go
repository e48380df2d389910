package ics

import (
	"bytes"
	"errors"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	models "tripboard/internal/models/itinerary"
)

// ParseEvents parses an uploaded ICS payload into event items. Events that
// fail to parse individually are skipped, never fatal; only an unreadable
// calendar returns an error. Instants are re-emitted in RFC3339 UTC, the
// document's wire form.
func ParseEvents(body []byte) ([]models.EventItem, error) {
	if len(body) == 0 {
		return nil, errors.New("empty calendar body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	events := make([]models.EventItem, 0)
	for _, ve := range cal.Events() {
		ev, ok := parseVEvent(ve)
		if !ok {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseVEvent(ve *ical.VEvent) (models.EventItem, bool) {
	var out models.EventItem

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil && p.Value != "" {
		// Keep only the local part of UIDs we issued ourselves.
		out.ID = strings.TrimSuffix(p.Value, "@"+uidDomain)
		if i := strings.Index(out.ID, "@"); i >= 0 {
			out.ID = out.ID[:i]
		}
	}
	if out.ID == "" {
		out.ID = uuid.New().String()
	}

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Title = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		out.Location = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		out.Notes = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil || start.IsZero() {
		return out, false
	}
	end, err := ve.GetEndAt()
	if err != nil || end.IsZero() {
		end = start
	}

	out.Start = start.UTC().Format(time.RFC3339)
	out.End = end.UTC().Format(time.RFC3339)
	return out, true
}
