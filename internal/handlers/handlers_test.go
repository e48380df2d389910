package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	getitinerarymodels "tripboard/internal/models/get_itinerary"
	importmodels "tripboard/internal/models/import_calendar"
	searchmodels "tripboard/internal/models/search_days"
	updateeventmodels "tripboard/internal/models/update_event"
	"tripboard/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New(store.NewMemoryPersister(), zap.NewNop().Sugar())
	s.Load(context.Background())

	h := NewItineraryHandler(s, zap.NewNop().Sugar())

	router := gin.New()
	v1 := router.Group("/api/v1")
	itinerary := v1.Group("/itinerary")
	itinerary.GET("", h.GetItinerary)
	itinerary.GET("/search", h.SearchDays)
	itinerary.GET("/export.ics", h.ExportCalendar)
	itinerary.POST("/reset", h.ResetItinerary)
	itinerary.POST("/update-event", h.UpdateEvent)
	itinerary.POST("/update-day-notes", h.UpdateDayNotes)
	itinerary.POST("/replace-participants", h.ReplaceParticipants)
	itinerary.POST("/replace-lodging", h.ReplaceLodging)
	itinerary.POST("/replace-tips", h.ReplaceTips)
	itinerary.POST("/ui-state", h.UpdateUIState)
	itinerary.POST("/import", h.ImportCalendar)

	return router, s
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetItineraryComputedFields(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/itinerary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp getitinerarymodels.GetItineraryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}

	if resp.Subtitle != "Ireland | Sep 6–13, 2025" {
		t.Fatalf("subtitle = %q", resp.Subtitle)
	}
	if resp.TripRange != "Sep 6–13, 2025" {
		t.Fatalf("tripRange = %q", resp.TripRange)
	}
	if len(resp.Days) == 0 {
		t.Fatal("no days in response")
	}
	if resp.Days[0].DateLabel != "Sat, Sep 6" {
		t.Fatalf("first day label = %q", resp.Days[0].DateLabel)
	}

	first := resp.Days[0].Events[0]
	if first.StartDisplay != "Sep 6, 2025, 7:00 PM" {
		t.Fatalf("startDisplay = %q", first.StartDisplay)
	}
	if !strings.Contains(first.MapURL, "google.com/maps/search") {
		t.Fatalf("mapUrl = %q", first.MapURL)
	}
}

func TestSearchDaysPortmarnock(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/itinerary/search?q=portmarnock", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp searchmodels.SearchDaysResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(resp.Days) != 1 || len(resp.Days[0].Events) != 1 {
		t.Fatalf("expected one day with one event, got %+v", resp.Days)
	}
	if resp.Days[0].Events[0].ID != "pmk1" {
		t.Fatalf("event id = %q", resp.Days[0].Events[0].ID)
	}
}

func TestSearchDaysNoMatch(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/itinerary/search?q=zzz-no-such-term", nil)
	var resp searchmodels.SearchDaysResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(resp.Days) != 0 {
		t.Fatalf("expected no days, got %d", len(resp.Days))
	}
}

func TestExportFullTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/itinerary/export.ics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Fatalf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, `filename="ireland-week.ics"`) {
		t.Fatalf("content disposition = %q", cd)
	}

	body := w.Body.String()
	if !strings.HasPrefix(body, "BEGIN:VCALENDAR\nVERSION:2.0\n") {
		t.Fatalf("bad calendar header: %q", body[:40])
	}
	if !strings.HasSuffix(body, "END:VCALENDAR") {
		t.Fatal("bad calendar footer")
	}
	if got := strings.Count(body, "BEGIN:VEVENT"); got != 13 {
		t.Fatalf("expected 13 event blocks, got %d", got)
	}
}

func TestExportSingleEvent(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/itinerary/export.ics?dayId=2025-09-09&eventId=pmk1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, `filename="portmarnock-beach-morning.ics"`) {
		t.Fatalf("content disposition = %q", cd)
	}
	if got := strings.Count(w.Body.String(), "BEGIN:VEVENT"); got != 1 {
		t.Fatalf("expected 1 event block, got %d", got)
	}
	if !strings.Contains(w.Body.String(), "UID:pmk1@tripboard.app") {
		t.Fatal("missing event UID line")
	}
}

func TestExportUnknownEvent(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/itinerary/export.ics?dayId=2025-09-09&eventId=nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestUpdateEventRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(map[string]any{
		"dayId":   "2025-09-09",
		"eventId": "pmk1",
		"title":   "Portmarnock dawn swim",
	})
	w := doRequest(t, router, http.MethodPost, "/api/v1/itinerary/update-event", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp updateeventmodels.UpdateEventResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || !resp.Updated {
		t.Fatalf("updated = %+v, err = %v", resp, err)
	}

	get := doRequest(t, router, http.MethodGet, "/api/v1/itinerary/search?q=dawn+swim", nil)
	var search searchmodels.SearchDaysResponse
	if err := json.Unmarshal(get.Body.Bytes(), &search); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(search.Days) != 1 || search.Days[0].Events[0].Title != "Portmarnock dawn swim" {
		t.Fatalf("edit not visible: %+v", search.Days)
	}
}

func TestUpdateEventUnknownKeyIsNoOp(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(map[string]any{
		"dayId":   "2099-01-01",
		"eventId": "ghost",
		"title":   "x",
	})
	w := doRequest(t, router, http.MethodPost, "/api/v1/itinerary/update-event", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 no-op", w.Code)
	}
	var resp updateeventmodels.UpdateEventResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Updated {
		t.Fatalf("expected updated=false, got %+v (err %v)", resp, err)
	}
}

func TestResetRestoresSeedDocument(t *testing.T) {
	router, s := newTestRouter(t)

	s.ReplaceTips([]string{"scribble"})
	w := doRequest(t, router, http.MethodPost, "/api/v1/itinerary/reset", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if tips := s.Document().Tips; len(tips) == 1 && tips[0] == "scribble" {
		t.Fatal("reset did not replace the document")
	}
}

func TestUIStateEndpoint(t *testing.T) {
	router, s := newTestRouter(t)

	body, _ := json.Marshal(map[string]any{"searchText": "howth", "editMode": true})
	w := doRequest(t, router, http.MethodPost, "/api/v1/itinerary/ui-state", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if search, edit := s.UIState(); search != "howth" || !edit {
		t.Fatalf("ui state = %q/%v", search, edit)
	}
}

const importFixture = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//Example//Export//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:imported1@example.com\r\n" +
	"DTSTAMP:20250901T120000Z\r\n" +
	"DTSTART:20250909T150000Z\r\n" +
	"DTEND:20250909T160000Z\r\n" +
	"SUMMARY:Kayak rental\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestImportCalendar(t *testing.T) {
	router, s := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/itinerary/import?dayId=2025-09-09", []byte(importFixture))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp importmodels.ImportCalendarResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if resp.Parsed != 1 || resp.Added != 1 {
		t.Fatalf("parsed/added = %d/%d", resp.Parsed, resp.Added)
	}

	for _, day := range s.Document().Days {
		if day.ID != "2025-09-09" {
			continue
		}
		if len(day.Events) != 2 {
			t.Fatalf("expected 2 events after import, got %d", len(day.Events))
		}
	}
}

func TestImportCalendarRequiresDay(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doRequest(t, router, http.MethodPost, "/api/v1/itinerary/import", []byte(importFixture))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
