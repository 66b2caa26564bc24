package services

import (
	"ticketq/models"
)

type UsageFilter string

const (
	UsageAll    UsageFilter = "All"
	UsageUsed   UsageFilter = "Used"
	UsageUnused UsageFilter = "Unused"
)

type TypeFilter string

const (
	TypeAll      TypeFilter = "All"
	TypeVIP      TypeFilter = TypeFilter(models.TypeVIP)
	TypePremium  TypeFilter = TypeFilter(models.TypePremium)
	TypeStandard TypeFilter = TypeFilter(models.TypeStandard)
)

// TicketViewService derives filtered lists and aggregate counts from the
// catalog with the mutation log applied. Nothing here is cached; every call
// recomputes from the current effective ticket set.
type TicketViewService struct {
	overlay *OverlayService
}

func NewTicketViewService(overlay *OverlayService) *TicketViewService {
	return &TicketViewService{overlay: overlay}
}

// ListByUsage returns effective tickets matching the usage filter, in
// catalog order.
func (s *TicketViewService) ListByUsage(filter UsageFilter) []models.Ticket {
	tickets := s.overlay.EffectiveTickets()
	if filter == UsageAll || filter == "" {
		return tickets
	}

	out := tickets[:0]
	for _, t := range tickets {
		if (filter == UsageUsed) == t.IsUsed {
			out = append(out, t)
		}
	}
	return out
}

// ListByType returns effective tickets matching the type filter, in catalog
// order.
func (s *TicketViewService) ListByType(filter TypeFilter) []models.Ticket {
	tickets := s.overlay.EffectiveTickets()
	if filter == TypeAll || filter == "" {
		return tickets
	}

	out := tickets[:0]
	for _, t := range tickets {
		if t.Type == string(filter) {
			out = append(out, t)
		}
	}
	return out
}

// List applies both filters at once, for the presentation layer.
func (s *TicketViewService) List(usage UsageFilter, typ TypeFilter) []models.Ticket {
	tickets := s.ListByUsage(usage)
	if typ == TypeAll || typ == "" {
		return tickets
	}

	out := tickets[:0]
	for _, t := range tickets {
		if t.Type == string(typ) {
			out = append(out, t)
		}
	}
	return out
}

// Stats recomputes the usage aggregates from the effective ticket set.
func (s *TicketViewService) Stats() models.TicketStats {
	stats := models.TicketStats{}
	for _, t := range s.overlay.EffectiveTickets() {
		stats.Total++
		if t.IsUsed {
			stats.Used++
		} else {
			stats.Unused++
		}
	}
	return stats
}

// TypeBreakdown recomputes the per-type counts from the effective ticket set.
func (s *TicketViewService) TypeBreakdown() models.TypeBreakdown {
	b := models.TypeBreakdown{}
	for _, t := range s.overlay.EffectiveTickets() {
		switch t.Type {
		case models.TypeVIP:
			b.VIP++
		case models.TypePremium:
			b.Premium++
		case models.TypeStandard:
			b.Standard++
		}
	}
	return b
}
