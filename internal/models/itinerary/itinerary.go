package models

// Itinerary is the canonical trip document. The whole document is the unit
// of persistence; it carries no identity beyond its content.
type Itinerary struct {
	TripTitle    string        `json:"tripTitle"`
	Subtitle     string        `json:"subtitle"`
	HomeBase     string        `json:"homeBase"`
	Participants []string      `json:"participants"`
	Days         []DayPlan     `json:"days"`
	Lodging      []LodgingItem `json:"lodging"`
	Tips         []string      `json:"tips"`
}

// DayPlan is one day of the trip. ID is conventionally YYYY-MM-DD and must be
// unique within the document; it doubles as the date fallback for a day with
// no parseable event starts.
type DayPlan struct {
	ID     string      `json:"id"`
	Label  string      `json:"label,omitempty"`
	City   string      `json:"city"`
	Notes  string      `json:"notes,omitempty"`
	Events []EventItem `json:"events"`
}

// EventItem is a single scheduled activity. Start and End are absolute
// instants on the wire (ISO-8601 strings); display always happens in the
// fixed display timezone. Start <= End is expected but never enforced.
type EventItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Location string   `json:"location"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Notes    string   `json:"notes,omitempty"`
	MapQuery string   `json:"mapQuery,omitempty"`
	URL      string   `json:"url,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// LodgingItem has no identifier; it is addressed by list position.
type LodgingItem struct {
	Nights string `json:"nights"`
	Name   string `json:"name"`
	City   string `json:"city"`
}

// Clone returns a deep copy of the document so callers can hand out
// snapshots without exposing internal slices to mutation.
func (it *Itinerary) Clone() *Itinerary {
	if it == nil {
		return nil
	}
	out := *it
	out.Participants = append([]string(nil), it.Participants...)
	out.Tips = append([]string(nil), it.Tips...)
	out.Lodging = append([]LodgingItem(nil), it.Lodging...)
	out.Days = make([]DayPlan, len(it.Days))
	for i, d := range it.Days {
		day := d
		day.Events = make([]EventItem, len(d.Events))
		for j, ev := range d.Events {
			e := ev
			e.Tags = append([]string(nil), ev.Tags...)
			day.Events[j] = e
		}
		out.Days[i] = day
	}
	return &out
}
