package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketq/data"
	"ticketq/internal/status"
)

func TestCatalogService_All_SeedOrder(t *testing.T) {
	catalog := NewCatalogService(data.Tickets())

	tickets := catalog.All()
	require.Len(t, tickets, 10)
	for i, ticket := range tickets {
		assert.Equal(t, i+1, ticket.ID)
	}
}

func TestCatalogService_ByID(t *testing.T) {
	catalog := NewCatalogService(data.Tickets())

	ticket, err := catalog.ByID(4)
	require.NoError(t, err)
	assert.Equal(t, "Coldplay World Tour - VIP", ticket.Title)
	assert.Equal(t, "350", ticket.Price.String())

	_, err = catalog.ByID(42)
	assert.ErrorIs(t, err, status.ErrNotFound)
}

func TestCatalogService_ReturnsCopies(t *testing.T) {
	catalog := NewCatalogService(data.Tickets())

	ticket, err := catalog.ByID(1)
	require.NoError(t, err)
	ticket.IsUsed = true
	ticket.Features[0] = "tampered"
	ticket.Notes[0].Content = "tampered"

	fresh, err := catalog.ByID(1)
	require.NoError(t, err)
	assert.False(t, fresh.IsUsed)
	assert.Equal(t, "Express Entry", fresh.Features[0])
	assert.Equal(t, "Ticket activated and ready for use", fresh.Notes[0].Content)
}

func TestCatalogService_SeedUsageSplit(t *testing.T) {
	catalog := NewCatalogService(data.Tickets())

	var used []int
	for _, ticket := range catalog.All() {
		if ticket.IsUsed {
			used = append(used, ticket.ID)
		}
	}
	assert.Equal(t, []int{3, 9}, used)
}
