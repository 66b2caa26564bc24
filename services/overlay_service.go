package services

import (
	"strings"
	"sync"
	"time"

	"ticketq/internal/status"
	"ticketq/models"
)

// OverlayService is the ticket mutation log. The catalog is never written;
// usage flips and appended notes are recorded per ticket id and merged into
// a copy of the seed on read.
type OverlayService struct {
	catalog *CatalogService

	mu    sync.RWMutex
	usage map[int]bool
	notes map[int][]models.Note
	now   func() time.Time
}

func NewOverlayService(catalog *CatalogService) *OverlayService {
	return &OverlayService{
		catalog: catalog,
		usage:   make(map[int]bool),
		notes:   make(map[int][]models.Note),
		now:     time.Now,
	}
}

// SetUsage records the usage flag for a ticket. Setting the same value
// twice is a no-op in effect.
func (s *OverlayService) SetUsage(ticketID int, used bool) error {
	if !s.catalog.Has(ticketID) {
		return status.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.usage[ticketID] = used
	return nil
}

// ToggleUsage flips the effective usage flag and returns the new value.
func (s *OverlayService) ToggleUsage(ticketID int) (bool, error) {
	seed, err := s.catalog.ByID(ticketID)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	used, overridden := s.usage[ticketID]
	if !overridden {
		used = seed.IsUsed
	}
	s.usage[ticketID] = !used
	return !used, nil
}

// AddNote appends a note to a ticket. Note ids are assigned count+1 over
// the effective notes list, so they stay strictly increasing from 1. A
// blank content is rejected without consuming an id.
func (s *OverlayService) AddNote(ticketID int, author, content string) (models.Note, error) {
	seed, err := s.catalog.ByID(ticketID)
	if err != nil {
		return models.Note{}, err
	}

	if strings.TrimSpace(content) == "" {
		return models.Note{}, status.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note := models.Note{
		ID:        len(seed.Notes) + len(s.notes[ticketID]) + 1,
		Author:    author,
		Content:   content,
		CreatedAt: s.now(),
	}
	s.notes[ticketID] = append(s.notes[ticketID], note)
	return note, nil
}

// EffectiveTicket returns the seed ticket with the recorded usage flag and
// appended notes applied. The result is a copy; mutating it cannot bypass
// the log.
func (s *OverlayService) EffectiveTicket(ticketID int) (models.Ticket, error) {
	t, err := s.catalog.ByID(ticketID)
	if err != nil {
		return models.Ticket{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apply(t), nil
}

// EffectiveTickets returns the whole catalog with mutations applied, in
// catalog order.
func (s *OverlayService) EffectiveTickets() []models.Ticket {
	tickets := s.catalog.All()

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range tickets {
		tickets[i] = s.apply(tickets[i])
	}
	return tickets
}

// NoteCount reports the effective number of notes on a ticket.
func (s *OverlayService) NoteCount(ticketID int) (int, error) {
	seed, err := s.catalog.ByID(ticketID)
	if err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(seed.Notes) + len(s.notes[ticketID]), nil
}

// Reset drops every recorded mutation. Used as the session teardown hook.
func (s *OverlayService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usage = make(map[int]bool)
	s.notes = make(map[int][]models.Note)
}

// apply merges the overlay into t. Caller holds at least a read lock.
func (s *OverlayService) apply(t models.Ticket) models.Ticket {
	if used, ok := s.usage[t.ID]; ok {
		t.IsUsed = used
	}
	if extra := s.notes[t.ID]; len(extra) > 0 {
		t.Notes = append(t.Notes, extra...)
	}
	return t
}
