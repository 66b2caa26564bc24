package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketq/data"
	"ticketq/internal/status"
	"ticketq/models"
)

func TestDirectoryService_Authenticate_Success(t *testing.T) {
	directory := NewDirectoryService(data.Users())

	for _, seed := range data.Users() {
		user, err := directory.Authenticate(seed.Email, "password123")
		require.NoError(t, err)
		assert.Equal(t, seed.ID, user.ID)
		assert.Equal(t, seed.Email, user.Email)
		assert.Equal(t, seed.Role, user.Role)
	}
}

func TestDirectoryService_Authenticate_NeverLeaksPassword(t *testing.T) {
	directory := NewDirectoryService(data.Users())

	user, err := directory.Authenticate("john@example.com", "password123")
	require.NoError(t, err)

	payload, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "password")
}

func TestDirectoryService_Authenticate_WrongPassword(t *testing.T) {
	directory := NewDirectoryService(data.Users())

	_, err := directory.Authenticate("john@example.com", "wrong")
	assert.ErrorIs(t, err, status.ErrAuthFailed)
}

func TestDirectoryService_Authenticate_CaseSensitiveEmail(t *testing.T) {
	directory := NewDirectoryService(data.Users())

	_, err := directory.Authenticate("John@Example.com", "password123")
	assert.ErrorIs(t, err, status.ErrAuthFailed)
}

func TestDirectoryService_Register_Success(t *testing.T) {
	directory := NewDirectoryService(data.Users())

	user, err := directory.Register(RegisterRequest{
		Name:     "Sara Lee",
		Email:    "sara@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.Equal(t, "4", user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, 4, directory.Count())

	// The new credentials must authenticate.
	got, err := directory.Authenticate("sara@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestDirectoryService_Register_DuplicateEmail(t *testing.T) {
	directory := NewDirectoryService(data.Users())
	before := directory.Count()

	_, err := directory.Register(RegisterRequest{
		Name:     "Impostor",
		Email:    "john@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, status.ErrConflict)
	assert.Equal(t, before, directory.Count())
}

func TestDirectoryService_ByID(t *testing.T) {
	directory := NewDirectoryService(data.Users())

	user, err := directory.ByID("2")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)

	_, err = directory.ByID("99")
	assert.ErrorIs(t, err, status.ErrNotFound)
}
