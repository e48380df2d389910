package display

import (
	"fmt"
	"strings"
	"time"

	models "tripboard/internal/models/itinerary"
)

// defaultSubtitlePrefix is used when the stored subtitle carries no region
// text of its own.
const defaultSubtitlePrefix = "Ireland"

// SummarizeRange reduces all events across all days to one human-readable
// start-end string. Comparison happens on absolute instants; day, month and
// year extraction for display happens in the display timezone. A day with no
// events contributes its identifier (midnight UTC) as both a start and an
// end. Returns "" when no dates resolve.
func SummarizeRange(days []models.DayPlan) string {
	var starts, ends []time.Time
	for _, day := range days {
		if len(day.Events) == 0 {
			if t, ok := MidnightUTC(day.ID); ok {
				starts = append(starts, t)
				ends = append(ends, t)
			}
			continue
		}
		for _, ev := range day.Events {
			if t, ok := ParseInstant(ev.Start); ok {
				starts = append(starts, t)
			}
			if t, ok := ParseInstant(ev.End); ok {
				ends = append(ends, t)
			}
		}
	}
	if len(starts) == 0 || len(ends) == 0 {
		return ""
	}

	first := starts[0]
	for _, t := range starts[1:] {
		if t.Before(first) {
			first = t
		}
	}
	last := ends[0]
	for _, t := range ends[1:] {
		if t.After(last) {
			last = t
		}
	}

	s := first.In(Zone())
	e := last.In(Zone())

	switch {
	case s.Year() == e.Year() && s.Month() == e.Month():
		return fmt.Sprintf("%s %d–%d, %d", s.Format("Jan"), s.Day(), e.Day(), e.Year())
	case s.Year() == e.Year():
		return fmt.Sprintf("%s %d – %s %d, %d", s.Format("Jan"), s.Day(), e.Format("Jan"), e.Day(), e.Year())
	default:
		return fmt.Sprintf("%s %d, %d – %s %d, %d", s.Format("Jan"), s.Day(), s.Year(), e.Format("Jan"), e.Day(), e.Year())
	}
}

// ComputeSubtitle rebuilds the subtitle line from the stored prefix (text
// before the first "|") and the freshly summarized date range. The stored
// subtitle's own date portion is treated as stale and never shown.
func ComputeSubtitle(it *models.Itinerary) string {
	prefix := defaultSubtitlePrefix
	if it != nil {
		raw := it.Subtitle
		if i := strings.Index(raw, "|"); i >= 0 {
			raw = raw[:i]
		}
		if p := strings.TrimSpace(raw); p != "" {
			prefix = p
		}
	}

	var rng string
	if it != nil {
		rng = SummarizeRange(it.Days)
	}
	if rng == "" {
		return prefix
	}
	return prefix + " | " + rng
}
