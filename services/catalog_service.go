package services

import (
	"ticketq/internal/status"
	"ticketq/models"
)

// CatalogService is the immutable seed collection of tickets. Every lookup
// returns a deep copy, so the seed stays referentially stable no matter what
// callers do with the result.
type CatalogService struct {
	tickets []models.Ticket
	index   map[int]int
}

func NewCatalogService(seed []models.Ticket) *CatalogService {
	s := &CatalogService{
		tickets: make([]models.Ticket, 0, len(seed)),
		index:   make(map[int]int, len(seed)),
	}
	for _, t := range seed {
		if _, dup := s.index[t.ID]; dup {
			continue
		}
		s.index[t.ID] = len(s.tickets)
		s.tickets = append(s.tickets, t.Clone())
	}
	return s
}

// All returns the catalog in seed order.
func (s *CatalogService) All() []models.Ticket {
	out := make([]models.Ticket, len(s.tickets))
	for i, t := range s.tickets {
		out[i] = t.Clone()
	}
	return out
}

func (s *CatalogService) ByID(id int) (models.Ticket, error) {
	i, ok := s.index[id]
	if !ok {
		return models.Ticket{}, status.ErrNotFound
	}
	return s.tickets[i].Clone(), nil
}

func (s *CatalogService) Has(id int) bool {
	_, ok := s.index[id]
	return ok
}

func (s *CatalogService) Size() int {
	return len(s.tickets)
}
