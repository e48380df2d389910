// Package ics serializes itinerary events to the iCalendar interchange
// format and parses uploaded calendars back into events. Serialization is
// pure; the HTTP layer owns the download side effect.
package ics

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripboard/internal/display"
	models "tripboard/internal/models/itinerary"
)

const (
	uidDomain = "tripboard.app"
	prodID    = "-//Tripboard//Itinerary//EN"

	// Basic-format UTC timestamp, always 16 characters.
	stampLayout = "20060102T150405Z"
)

// BuildEventRecord produces one VEVENT block for a single event. stamp is
// the record-creation instant used for DTSTAMP. An event without an
// identifier gets a synthetic UUID. Start/end values that fail to parse
// serialize as the zero instant; the record never fails to build.
func BuildEventRecord(ev models.EventItem, stamp time.Time) string {
	id := ev.ID
	if id == "" {
		id = uuid.New().String()
	}

	lines := []string{
		"BEGIN:VEVENT",
		"UID:" + id + "@" + uidDomain,
		"DTSTAMP:" + utcStamp(stamp),
		"DTSTART:" + instantStamp(ev.Start),
		"DTEND:" + instantStamp(ev.End),
		"SUMMARY:" + flattenNewlines(ev.Title),
		"LOCATION:" + escapeNewlines(ev.Location),
		"DESCRIPTION:" + escapeNewlines(ev.Notes),
		"END:VEVENT",
	}
	return strings.Join(lines, "\n")
}

// BuildCalendar wraps event records in the fixed VCALENDAR header and footer.
// Lines are joined with single newlines and never folded; expected field
// lengths stay well under the folding threshold.
func BuildCalendar(events []models.EventItem, stamp time.Time) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
	}
	for _, ev := range events {
		lines = append(lines, BuildEventRecord(ev, stamp))
	}
	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\n")
}

// CollectEvents flattens every event from every day, preserving order.
func CollectEvents(it *models.Itinerary) []models.EventItem {
	if it == nil {
		return nil
	}
	var out []models.EventItem
	for _, day := range it.Days {
		out = append(out, day.Events...)
	}
	return out
}

var filenameJunk = regexp.MustCompile(`[^a-z0-9]+`)

// SanitizeFilename lowercases a title and reduces it to hyphen-separated
// alphanumeric runs, suitable as a download filename stem.
func SanitizeFilename(title string) string {
	stem := filenameJunk.ReplaceAllString(strings.ToLower(title), "-")
	stem = strings.Trim(stem, "-")
	if stem == "" {
		stem = "event"
	}
	return stem
}

// EventFilename derives the download name for a single-event export.
func EventFilename(ev models.EventItem) string {
	return SanitizeFilename(ev.Title) + ".ics"
}

// TripFilename derives the download name for a full-trip export.
func TripFilename(it *models.Itinerary) string {
	title := ""
	if it != nil {
		title = it.TripTitle
	}
	stem := filenameJunk.ReplaceAllString(strings.ToLower(title), "-")
	stem = strings.Trim(stem, "-")
	if stem == "" {
		stem = "trip"
	}
	return stem + ".ics"
}

func utcStamp(t time.Time) string {
	return t.UTC().Format(stampLayout)
}

// instantStamp converts a wire instant to the interchange format's UTC
// representation. Unparseable instants produce the zero instant rather than
// failing the export.
func instantStamp(value string) string {
	t, ok := display.ParseInstant(value)
	if !ok {
		t = time.Time{}
	}
	return t.UTC().Format(stampLayout)
}

var newlineRun = regexp.MustCompile(`\r\n|\r|\n`)

// flattenNewlines replaces newlines with spaces (SUMMARY must stay one line).
func flattenNewlines(s string) string {
	return newlineRun.ReplaceAllString(s, " ")
}

// escapeNewlines replaces newlines with the literal two-character sequence
// backslash-n, per the interchange format's text escaping.
func escapeNewlines(s string) string {
	return newlineRun.ReplaceAllString(s, `\n`)
}
