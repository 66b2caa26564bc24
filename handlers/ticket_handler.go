package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"ticketq/internal/status"
	"ticketq/monitoring"
	"ticketq/services"
)

type TicketHandler struct {
	view    *services.TicketViewService
	overlay *services.OverlayService
}

func NewTicketHandler(view *services.TicketViewService, overlay *services.OverlayService) *TicketHandler {
	return &TicketHandler{
		view:    view,
		overlay: overlay,
	}
}

// ListTickets - effective tickets, optionally filtered by usage and type
func (h *TicketHandler) ListTickets(e *core.RequestEvent) error {
	usage := services.UsageFilter(e.Request.URL.Query().Get("usage"))
	typ := services.TypeFilter(e.Request.URL.Query().Get("type"))

	tickets := h.view.List(usage, typ)

	return e.JSON(http.StatusOK, map[string]any{
		"tickets": tickets,
		"count":   len(tickets),
	})
}

// GetTicket - a single effective ticket
func (h *TicketHandler) GetTicket(e *core.RequestEvent) error {
	id, err := ticketID(e)
	if err != nil {
		return apis.NewBadRequestError("Invalid ticket id", err)
	}

	ticket, err := h.overlay.EffectiveTicket(id)
	if errors.Is(err, status.ErrNotFound) {
		return apis.NewNotFoundError("Ticket not found", err)
	} else if err != nil {
		return apis.NewBadRequestError("Failed to load ticket", err)
	}

	return e.JSON(http.StatusOK, ticket)
}

// GetStats - aggregate counts, recomputed per request
func (h *TicketHandler) GetStats(e *core.RequestEvent) error {
	return e.JSON(http.StatusOK, map[string]any{
		"usage": h.view.Stats(),
		"types": h.view.TypeBreakdown(),
	})
}

// SetUsage - record the usage flag for a ticket
func (h *TicketHandler) SetUsage(e *core.RequestEvent) error {
	id, err := ticketID(e)
	if err != nil {
		return apis.NewBadRequestError("Invalid ticket id", err)
	}

	var req struct {
		Used bool `json:"used"`
	}
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	if err := h.overlay.SetUsage(id, req.Used); err != nil {
		monitoring.TrackTicketMutation("set_usage", "error")
		if errors.Is(err, status.ErrNotFound) {
			return apis.NewNotFoundError("Ticket not found", err)
		}
		return apis.NewBadRequestError("Failed to update ticket", err)
	}

	monitoring.TrackTicketMutation("set_usage", "ok")
	ticket, _ := h.overlay.EffectiveTicket(id)
	return e.JSON(http.StatusOK, ticket)
}

// ToggleUsage - flip the usage flag
func (h *TicketHandler) ToggleUsage(e *core.RequestEvent) error {
	id, err := ticketID(e)
	if err != nil {
		return apis.NewBadRequestError("Invalid ticket id", err)
	}

	used, err := h.overlay.ToggleUsage(id)
	if err != nil {
		monitoring.TrackTicketMutation("toggle_usage", "error")
		if errors.Is(err, status.ErrNotFound) {
			return apis.NewNotFoundError("Ticket not found", err)
		}
		return apis.NewBadRequestError("Failed to update ticket", err)
	}

	monitoring.TrackTicketMutation("toggle_usage", "ok")
	return e.JSON(http.StatusOK, map[string]any{
		"id":      id,
		"is_used": used,
	})
}

// AddNote - append a note to a ticket
func (h *TicketHandler) AddNote(e *core.RequestEvent) error {
	id, err := ticketID(e)
	if err != nil {
		return apis.NewBadRequestError("Invalid ticket id", err)
	}

	var req struct {
		Author  string `json:"author"`
		Content string `json:"content"`
	}
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}
	if req.Author == "" {
		req.Author = "Anonymous"
	}

	note, err := h.overlay.AddNote(id, req.Author, req.Content)
	if err != nil {
		monitoring.TrackTicketMutation("add_note", "error")
		switch {
		case errors.Is(err, status.ErrNotFound):
			return apis.NewNotFoundError("Ticket not found", err)
		case errors.Is(err, status.ErrInvalidInput):
			return apis.NewBadRequestError("Note content must not be empty", err)
		}
		return apis.NewBadRequestError("Failed to add note", err)
	}

	monitoring.TrackTicketMutation("add_note", "ok")
	return e.JSON(http.StatusOK, note)
}

func ticketID(e *core.RequestEvent) (int, error) {
	return strconv.Atoi(e.Request.PathValue("ticketId"))
}
