package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketq/data"
	"ticketq/internal/status"
)

func newTestOverlay() *OverlayService {
	return NewOverlayService(NewCatalogService(data.Tickets()))
}

func TestOverlayService_SetUsage_Idempotent(t *testing.T) {
	overlay := newTestOverlay()

	require.NoError(t, overlay.SetUsage(1, true))
	require.NoError(t, overlay.SetUsage(1, true))

	ticket, err := overlay.EffectiveTicket(1)
	require.NoError(t, err)
	assert.True(t, ticket.IsUsed)
}

func TestOverlayService_SetUsage_UnknownTicket(t *testing.T) {
	overlay := newTestOverlay()

	assert.ErrorIs(t, overlay.SetUsage(42, true), status.ErrNotFound)
}

func TestOverlayService_SetUsage_DoesNotTouchCatalog(t *testing.T) {
	catalog := NewCatalogService(data.Tickets())
	overlay := NewOverlayService(catalog)

	require.NoError(t, overlay.SetUsage(1, true))

	seed, err := catalog.ByID(1)
	require.NoError(t, err)
	assert.False(t, seed.IsUsed)
}

func TestOverlayService_ToggleUsage(t *testing.T) {
	overlay := newTestOverlay()

	// Ticket 3 is used in the seed; toggling flips it off.
	used, err := overlay.ToggleUsage(3)
	require.NoError(t, err)
	assert.False(t, used)

	used, err = overlay.ToggleUsage(3)
	require.NoError(t, err)
	assert.True(t, used)

	_, err = overlay.ToggleUsage(42)
	assert.ErrorIs(t, err, status.ErrNotFound)
}

func TestOverlayService_AddNote_IDsAreGapless(t *testing.T) {
	overlay := newTestOverlay()

	// Ticket 1 carries one seed note, so appended ids continue from 2.
	for i := 0; i < 5; i++ {
		note, err := overlay.AddNote(1, "You", fmt.Sprintf("note %d", i))
		require.NoError(t, err)
		assert.Equal(t, i+2, note.ID)
	}

	ticket, err := overlay.EffectiveTicket(1)
	require.NoError(t, err)
	require.Len(t, ticket.Notes, 6)
	for i, note := range ticket.Notes {
		assert.Equal(t, i+1, note.ID)
	}
}

func TestOverlayService_AddNote_StartsAtOne(t *testing.T) {
	overlay := newTestOverlay()

	// Ticket 2 has no seed notes.
	note, err := overlay.AddNote(2, "You", "first")
	require.NoError(t, err)
	assert.Equal(t, 1, note.ID)
}

func TestOverlayService_AddNote_RejectsBlankContent(t *testing.T) {
	overlay := newTestOverlay()

	for _, content := range []string{"", "   ", "\t\n"} {
		_, err := overlay.AddNote(3, "You", content)
		assert.ErrorIs(t, err, status.ErrInvalidInput)
	}

	// A failed append must not consume an id or grow the list.
	count, err := overlay.NoteCount(3)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	note, err := overlay.AddNote(3, "You", "real note")
	require.NoError(t, err)
	assert.Equal(t, 2, note.ID)
}

func TestOverlayService_AddNote_UnknownTicket(t *testing.T) {
	overlay := newTestOverlay()

	_, err := overlay.AddNote(42, "You", "hello")
	assert.ErrorIs(t, err, status.ErrNotFound)
}

func TestOverlayService_EffectiveTicket_IsACopy(t *testing.T) {
	overlay := newTestOverlay()

	_, err := overlay.AddNote(1, "You", "appended")
	require.NoError(t, err)

	ticket, err := overlay.EffectiveTicket(1)
	require.NoError(t, err)
	ticket.Notes[1].Content = "tampered"
	ticket.IsUsed = true

	fresh, err := overlay.EffectiveTicket(1)
	require.NoError(t, err)
	assert.Equal(t, "appended", fresh.Notes[1].Content)
	assert.False(t, fresh.IsUsed)
}

func TestOverlayService_EffectiveTicket_NoMutations(t *testing.T) {
	catalog := NewCatalogService(data.Tickets())
	overlay := NewOverlayService(catalog)

	ticket, err := overlay.EffectiveTicket(5)
	require.NoError(t, err)

	seed, err := catalog.ByID(5)
	require.NoError(t, err)
	assert.Equal(t, seed, ticket)
}

func TestOverlayService_Reset(t *testing.T) {
	overlay := newTestOverlay()

	require.NoError(t, overlay.SetUsage(1, true))
	_, err := overlay.AddNote(2, "You", "note")
	require.NoError(t, err)

	overlay.Reset()

	ticket, err := overlay.EffectiveTicket(1)
	require.NoError(t, err)
	assert.False(t, ticket.IsUsed)

	count, err := overlay.NoteCount(2)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
