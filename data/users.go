// Package data holds the seed records the demo ships with. The directory
// and catalog services copy these at construction time and never hand out
// the originals.
package data

import (
	"time"

	"ticketq/models"
)

func Users() []models.User {
	return []models.User{
		{
			ID:        "1",
			Name:      "John Doe",
			Email:     "john@example.com",
			Password:  "password123",
			Role:      models.RoleAdmin,
			Avatar:    "https://i.pravatar.cc/150?img=1",
			CreatedAt: time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			Name:      "Jane Smith",
			Email:     "jane@example.com",
			Password:  "password123",
			Role:      models.RoleUser,
			Avatar:    "https://i.pravatar.cc/150?img=5",
			CreatedAt: time.Date(2023, 2, 20, 14, 15, 0, 0, time.UTC),
		},
		{
			ID:        "3",
			Name:      "Mike Johnson",
			Email:     "mike@example.com",
			Password:  "password123",
			Role:      models.RoleUser,
			CreatedAt: time.Date(2023, 3, 10, 9, 45, 0, 0, time.UTC),
		},
	}
}
