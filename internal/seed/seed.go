// Package seed holds the built-in sample trip used when no persisted
// document exists or the persisted one cannot be read.
package seed

import (
	models "tripboard/internal/models/itinerary"
)

// Itinerary returns a fresh copy of the seed document. Callers own the
// returned value; repeated calls never share slices.
func Itinerary() *models.Itinerary {
	return &models.Itinerary{
		TripTitle: "Ireland Week",
		Subtitle:  "Ireland | Sep 6–13, 2025",
		HomeBase:  "Apartment in Dublin 1, near Connolly Station",
		Participants: []string{
			"Maya",
			"Tom",
			"Saoirse",
			"Ben",
		},
		Days: []models.DayPlan{
			{
				ID:   "2025-09-06",
				City: "Dublin",
				Events: []models.EventItem{
					{
						ID:       "arr1",
						Title:    "Land at Dublin Airport",
						Location: "Dublin Airport (DUB), Terminal 2",
						Start:    "2025-09-06T18:00:00Z",
						End:      "2025-09-06T19:00:00Z",
						Notes:    "Pick up bags, buses run from Zone 16 outside arrivals.",
						MapQuery: "Dublin Airport Terminal 2",
						Tags:     []string{"travel"},
					},
					{
						ID:       "din1",
						Title:    "Late dinner near the apartment",
						Location: "Talbot Street, Dublin 1",
						Start:    "2025-09-06T20:30:00Z",
						End:      "2025-09-06T22:00:00Z",
						Tags:     []string{"food"},
					},
				},
			},
			{
				ID:    "2025-09-07",
				City:  "Dublin",
				Notes: "Easy first full day, stay central.",
				Events: []models.EventItem{
					{
						ID:       "tcd1",
						Title:    "Trinity College & Book of Kells",
						Location: "Trinity College Dublin",
						Start:    "2025-09-07T09:30:00Z",
						End:      "2025-09-07T11:30:00Z",
						Notes:    "Timed tickets, arrive 15 min early.",
						MapQuery: "Trinity College Dublin",
						URL:      "https://www.visittrinity.ie/",
						Tags:     []string{"sights", "booked"},
					},
					{
						ID:       "tem1",
						Title:    "Wander Temple Bar and the quays",
						Location: "Temple Bar, Dublin",
						Start:    "2025-09-07T13:00:00Z",
						End:      "2025-09-07T16:00:00Z",
						Tags:     []string{"walk"},
					},
				},
			},
			{
				ID:   "2025-09-08",
				City: "Howth",
				Events: []models.EventItem{
					{
						ID:       "hwt1",
						Title:    "Howth cliff loop",
						Location: "Howth, Co. Dublin",
						Start:    "2025-09-08T09:00:00Z",
						End:      "2025-09-08T12:30:00Z",
						Notes:    "DART from Connolly, ~25 min. Wear proper shoes.",
						MapQuery: "Howth Cliff Walk",
						Tags:     []string{"hike", "coast"},
					},
					{
						ID:       "hwt2",
						Title:    "Fish and chips on the pier",
						Location: "West Pier, Howth",
						Start:    "2025-09-08T13:00:00Z",
						End:      "2025-09-08T14:00:00Z",
						Tags:     []string{"food"},
					},
				},
			},
			{
				ID:    "2025-09-09",
				City:  "Portmarnock",
				Label: "Beach day",
				Events: []models.EventItem{
					{
						ID:       "pmk1",
						Title:    "Portmarnock beach morning",
						Location: "Portmarnock Strand",
						Start:    "2025-09-09T10:00:00Z",
						End:      "2025-09-09T13:00:00Z",
						Notes:    "Velvet Strand; check the tide times before heading out.",
						MapQuery: "Portmarnock Strand",
						Tags:     []string{"beach", "coast"},
					},
				},
			},
			{
				ID:   "2025-09-10",
				City: "Wicklow",
				Events: []models.EventItem{
					{
						ID:       "gln1",
						Title:    "Glendalough monastic site and upper lake",
						Location: "Glendalough, Co. Wicklow",
						Start:    "2025-09-10T09:00:00Z",
						End:      "2025-09-10T14:00:00Z",
						Notes:    "Day coach from Dublin. Bring rain layers.",
						MapQuery: "Glendalough Upper Lake",
						Tags:     []string{"hike", "booked"},
					},
				},
			},
			{
				ID:    "2025-09-11",
				City:  "Dublin",
				Notes: "Museums are free; Kilmainham needs the booked slot.",
				Events: []models.EventItem{
					{
						ID:       "kil1",
						Title:    "Kilmainham Gaol tour",
						Location: "Kilmainham Gaol, Dublin 8",
						Start:    "2025-09-11T10:00:00Z",
						End:      "2025-09-11T11:30:00Z",
						URL:      "https://www.kilmainhamgaolmuseum.ie/",
						Tags:     []string{"sights", "booked"},
					},
					{
						ID:       "mus1",
						Title:    "National Museum, archaeology",
						Location: "Kildare Street, Dublin 2",
						Start:    "2025-09-11T14:00:00Z",
						End:      "2025-09-11T16:00:00Z",
						Tags:     []string{"sights"},
					},
				},
			},
			{
				ID:   "2025-09-12",
				City: "Dublin",
				Events: []models.EventItem{
					{
						ID:       "gui1",
						Title:    "Guinness Storehouse",
						Location: "St James's Gate, Dublin 8",
						Start:    "2025-09-12T11:00:00Z",
						End:      "2025-09-12T13:30:00Z",
						Notes:    "Gravity Bar pint included with the ticket.",
						MapQuery: "Guinness Storehouse",
						Tags:     []string{"sights", "booked"},
					},
					{
						ID:       "pub1",
						Title:    "Trad session, last night out",
						Location: "The Cobblestone, Smithfield",
						Start:    "2025-09-12T19:30:00Z",
						End:      "2025-09-12T22:30:00Z",
						Tags:     []string{"music"},
					},
				},
			},
			{
				ID:   "2025-09-13",
				City: "Dublin",
				Events: []models.EventItem{
					{
						ID:       "dep1",
						Title:    "Flight home",
						Location: "Dublin Airport (DUB), Terminal 2",
						Start:    "2025-09-13T12:30:00Z",
						End:      "2025-09-13T15:30:00Z",
						Notes:    "Bus by 09:45 at the latest; US preclearance queues.",
						Tags:     []string{"travel"},
					},
				},
			},
		},
		Lodging: []models.LodgingItem{
			{Nights: "Sep 6–13 (7 nights)", Name: "Gardiner Street apartment", City: "Dublin"},
		},
		Tips: []string{
			"Get a Leap Visitor Card at the airport for DART and buses.",
			"Card payments work everywhere; no need for much cash.",
			"Weather turns fast on the coast, pack a rain shell every day.",
			"Book Kilmainham Gaol well ahead, it sells out.",
		},
	}
}
