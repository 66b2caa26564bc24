package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_PasswordNeverSerialized(t *testing.T) {
	user := User{
		ID:       "1",
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
		Role:     RoleAdmin,
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password123")

	data, err = json.Marshal(user.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password")
}

func TestUser_Public(t *testing.T) {
	created := time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)
	user := User{
		ID:        "1",
		Name:      "John Doe",
		Email:     "john@example.com",
		Password:  "password123",
		Role:      RoleAdmin,
		Avatar:    "https://i.pravatar.cc/150?img=1",
		CreatedAt: created,
	}

	public := user.Public()
	assert.Equal(t, user.ID, public.ID)
	assert.Equal(t, user.Name, public.Name)
	assert.Equal(t, user.Email, public.Email)
	assert.Equal(t, user.Role, public.Role)
	assert.Equal(t, user.Avatar, public.Avatar)
	assert.Equal(t, created, public.CreatedAt)
}

func TestTicket_Clone(t *testing.T) {
	ticket := Ticket{
		ID:       1,
		Title:    "Test Concert",
		Type:     TypeVIP,
		Price:    decimal.RequireFromString("299.99"),
		Features: []string{"Express Entry"},
		Notes: []Note{
			{ID: 1, Author: "System", Content: "seed note"},
		},
	}

	clone := ticket.Clone()
	clone.Features[0] = "tampered"
	clone.Notes[0].Content = "tampered"
	clone.IsUsed = true

	assert.Equal(t, "Express Entry", ticket.Features[0])
	assert.Equal(t, "seed note", ticket.Notes[0].Content)
	assert.False(t, ticket.IsUsed)
	assert.True(t, clone.Price.Equal(ticket.Price))
}

func TestTicket_PriceSerialization(t *testing.T) {
	ticket := Ticket{ID: 1, Price: decimal.RequireFromString("299.99")}

	data, err := json.Marshal(ticket)
	require.NoError(t, err)

	var decoded Ticket
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Price.Equal(ticket.Price))
}
