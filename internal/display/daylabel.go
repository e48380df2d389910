package display

import (
	"sort"
	"time"

	models "tripboard/internal/models/itinerary"
)

// DeriveDayLabel picks the representative date for a day: the earliest valid
// event start, so the label reflects when the day's first real activity
// happens, not list order. A day with no parseable starts falls back to its
// identifier read as midnight UTC; a day whose identifier is also unparseable
// renders the identifier verbatim.
func DeriveDayLabel(day models.DayPlan) string {
	starts := make([]time.Time, 0, len(day.Events))
	for _, ev := range day.Events {
		if t, ok := ParseInstant(ev.Start); ok {
			starts = append(starts, t)
		}
	}

	var rep time.Time
	if len(starts) > 0 {
		sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })
		rep = starts[0]
	} else {
		t, ok := MidnightUTC(day.ID)
		if !ok {
			return day.ID
		}
		rep = t
	}

	return rep.In(Zone()).Format("Mon, Jan 2")
}
