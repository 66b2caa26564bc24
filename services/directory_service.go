package services

import (
	"strconv"
	"sync"
	"time"

	"ticketq/internal/status"
	"ticketq/models"
)

// DirectoryService is the mock credential store. Passwords are compared in
// plaintext and never leave this service: every return value is a
// models.PublicUser, which has no password field.
type DirectoryService struct {
	mu    sync.RWMutex
	users []models.User
	now   func() time.Time
}

func NewDirectoryService(seed []models.User) *DirectoryService {
	users := make([]models.User, len(seed))
	copy(users, seed)
	return &DirectoryService{users: users, now: time.Now}
}

// Authenticate matches email and password exactly, case-sensitive.
func (s *DirectoryService) Authenticate(email, password string) (models.PublicUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			return u.Public(), nil
		}
	}

	return models.PublicUser{}, status.ErrAuthFailed
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar,omitempty"`
}

// Register appends a new user. Duplicate emails are rejected and leave the
// directory untouched. New users always get the "user" role.
func (s *DirectoryService) Register(req RegisterRequest) (models.PublicUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == req.Email {
			return models.PublicUser{}, status.ErrConflict
		}
	}

	user := models.User{
		ID:        strconv.Itoa(len(s.users) + 1),
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      models.RoleUser,
		Avatar:    req.Avatar,
		CreatedAt: s.now(),
	}
	s.users = append(s.users, user)

	return user.Public(), nil
}

// ByID resolves a persisted session identifier back to a directory entry.
func (s *DirectoryService) ByID(id string) (models.PublicUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u.Public(), nil
		}
	}

	return models.PublicUser{}, status.ErrNotFound
}

func (s *DirectoryService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
