// Package store owns the canonical itinerary document: it mediates every
// mutation, hands out snapshots, and synchronizes the document with the
// configured persister. Persistence is eventual: mutations mark the store
// dirty and a periodic flush commits the whole document.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	models "tripboard/internal/models/itinerary"
	"tripboard/internal/seed"
)

// LoadOutcome names which path the initial load took, so callers and tests
// can assert the fallback branch instead of inferring it.
type LoadOutcome int

const (
	// Loaded means a persisted document was read and parsed.
	Loaded LoadOutcome = iota
	// AbsentFallback means nothing was persisted; the seed document is in use.
	AbsentFallback
	// CorruptFallback means a persisted value existed but could not be
	// parsed; the seed document is in use.
	CorruptFallback
	// UnavailableFallback means the storage read itself failed; the seed
	// document is in use and nothing can be said about what is persisted.
	UnavailableFallback
)

func (o LoadOutcome) String() string {
	switch o {
	case Loaded:
		return "loaded"
	case AbsentFallback:
		return "absent-fallback"
	case CorruptFallback:
		return "corrupt-fallback"
	case UnavailableFallback:
		return "unavailable-fallback"
	default:
		return "unknown"
	}
}

// EventPatch carries the optional field updates for one event. Nil fields
// are left untouched.
type EventPatch struct {
	Title    *string   `json:"title,omitempty"`
	Location *string   `json:"location,omitempty"`
	Start    *string   `json:"start,omitempty"`
	End      *string   `json:"end,omitempty"`
	Notes    *string   `json:"notes,omitempty"`
	MapQuery *string   `json:"mapQuery,omitempty"`
	URL      *string   `json:"url,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
}

// Store holds the current document plus the UI state that is deliberately
// not part of the persisted document (search text, edit mode).
type Store struct {
	mu  sync.RWMutex
	doc *models.Itinerary
	// gen counts accepted mutations; savedGen is the generation last
	// committed to storage. The store is dirty while they differ, and a
	// flush may only mark clean the generation it actually marshaled.
	gen       uint64
	savedGen  uint64
	persister Persister
	logger    *zap.SugaredLogger

	searchText string
	editMode   bool
}

// New creates a store around the given persister. Call Load before serving.
func New(p Persister, logger *zap.SugaredLogger) *Store {
	return &Store{
		doc:       seed.Itinerary(),
		persister: p,
		logger:    logger,
	}
}

// Load reads the persisted document. Absent or unparseable content falls
// back to the seed document silently; the outcome reports which branch ran.
func (s *Store) Load(ctx context.Context) LoadOutcome {
	data, err := s.persister.Load(ctx)
	if errors.Is(err, ErrAbsent) {
		s.setDocument(seed.Itinerary(), false)
		return AbsentFallback
	}
	if err != nil {
		s.logger.Warnw("persisted document unreadable, using seed", "error", err)
		s.setDocument(seed.Itinerary(), false)
		return UnavailableFallback
	}

	var doc models.Itinerary
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warnw("persisted document failed to parse, using seed", "error", err)
		s.setDocument(seed.Itinerary(), false)
		return CorruptFallback
	}

	s.setDocument(&doc, false)
	return Loaded
}

func (s *Store) setDocument(doc *models.Itinerary, dirty bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	if dirty {
		s.gen++
	} else {
		s.savedGen = s.gen
	}
}

// Document returns a deep copy of the current document.
func (s *Store) Document() *models.Itinerary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Reset replaces the whole document. A nil argument restores the seed.
func (s *Store) Reset(doc *models.Itinerary) {
	if doc == nil {
		doc = seed.Itinerary()
	}
	s.setDocument(doc.Clone(), true)
}

// UpdateEvent applies a patch to the event located by the (day, event)
// correlation key. Unknown identifiers are a no-op, reported as false.
func (s *Store) UpdateEvent(dayID, eventID string, patch EventPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for di := range s.doc.Days {
		if s.doc.Days[di].ID != dayID {
			continue
		}
		for ei := range s.doc.Days[di].Events {
			ev := &s.doc.Days[di].Events[ei]
			if ev.ID != eventID {
				continue
			}
			applyPatch(ev, patch)
			s.gen++
			return true
		}
		return false
	}
	return false
}

func applyPatch(ev *models.EventItem, patch EventPatch) {
	if patch.Title != nil {
		ev.Title = *patch.Title
	}
	if patch.Location != nil {
		ev.Location = *patch.Location
	}
	if patch.Start != nil {
		ev.Start = *patch.Start
	}
	if patch.End != nil {
		ev.End = *patch.End
	}
	if patch.Notes != nil {
		ev.Notes = *patch.Notes
	}
	if patch.MapQuery != nil {
		ev.MapQuery = *patch.MapQuery
	}
	if patch.URL != nil {
		ev.URL = *patch.URL
	}
	if patch.Tags != nil {
		ev.Tags = append([]string(nil), (*patch.Tags)...)
	}
}

// SetDayNotes replaces one day's notes. Unknown day is a no-op.
func (s *Store) SetDayNotes(dayID, notes string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for di := range s.doc.Days {
		if s.doc.Days[di].ID == dayID {
			s.doc.Days[di].Notes = notes
			s.gen++
			return true
		}
	}
	return false
}

// AppendEvents adds parsed events to the given day, skipping any whose
// identifier already exists in that day. Returns how many were added;
// an unknown day adds nothing.
func (s *Store) AppendEvents(dayID string, events []models.EventItem) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for di := range s.doc.Days {
		if s.doc.Days[di].ID != dayID {
			continue
		}
		existing := make(map[string]struct{}, len(s.doc.Days[di].Events))
		for _, ev := range s.doc.Days[di].Events {
			existing[ev.ID] = struct{}{}
		}
		added := 0
		for _, ev := range events {
			if _, dup := existing[ev.ID]; dup {
				continue
			}
			existing[ev.ID] = struct{}{}
			s.doc.Days[di].Events = append(s.doc.Days[di].Events, ev)
			added++
		}
		if added > 0 {
			s.gen++
		}
		return added
	}
	return 0
}

// ReplaceParticipants swaps the participant list wholesale.
func (s *Store) ReplaceParticipants(participants []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Participants = append([]string(nil), participants...)
	s.gen++
}

// ReplaceLodging swaps the lodging list wholesale.
func (s *Store) ReplaceLodging(lodging []models.LodgingItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Lodging = append([]models.LodgingItem(nil), lodging...)
	s.gen++
}

// ReplaceTips swaps the tips list wholesale.
func (s *Store) ReplaceTips(tips []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Tips = append([]string(nil), tips...)
	s.gen++
}

// SetUIState updates the non-persisted UI state. Nil fields are untouched.
func (s *Store) SetUIState(searchText *string, editMode *bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if searchText != nil {
		s.searchText = *searchText
	}
	if editMode != nil {
		s.editMode = *editMode
	}
}

// UIState returns the current search text and edit-mode flag.
func (s *Store) UIState() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchText, s.editMode
}

// Dirty reports whether uncommitted mutations exist.
func (s *Store) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen != s.savedGen
}

// Flush commits the document to storage if dirty. Persister failures are
// logged and swallowed; the document stays dirty so the next flush retries.
// The session keeps working from memory either way.
func (s *Store) Flush(ctx context.Context) {
	s.mu.RLock()
	if s.gen == s.savedGen {
		s.mu.RUnlock()
		return
	}
	gen := s.gen
	data, err := json.Marshal(s.doc)
	s.mu.RUnlock()
	if err != nil {
		s.logger.Errorw("failed to serialize document", "error", err)
		return
	}

	if err := s.persister.Save(ctx, data); err != nil {
		s.logger.Warnw("failed to persist document, keeping in-memory copy", "error", err)
		return
	}

	// Only the marshaled generation is committed. A mutation accepted while
	// the save was in flight leaves the store dirty for the next flush.
	s.mu.Lock()
	s.savedGen = gen
	s.mu.Unlock()
}
