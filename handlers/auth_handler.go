package handlers

import (
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"ticketq/internal/status"
	"ticketq/monitoring"
	"ticketq/security"
	"ticketq/services"
)

type AuthHandler struct {
	session   *services.SessionService
	directory *services.DirectoryService
	throttle  *security.LoginThrottle
}

func NewAuthHandler(session *services.SessionService, directory *services.DirectoryService, throttle *security.LoginThrottle) *AuthHandler {
	return &AuthHandler{
		session:   session,
		directory: directory,
		throttle:  throttle,
	}
}

// Login - authenticate and open the session
func (h *AuthHandler) Login(e *core.RequestEvent) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}
	if req.Email == "" || req.Password == "" {
		return apis.NewBadRequestError("Email and password are required", nil)
	}

	ctx := e.Request.Context()

	if h.throttle != nil && !h.throttle.Allow(ctx, req.Email) {
		monitoring.TrackLogin("throttled")
		return e.JSON(http.StatusTooManyRequests, map[string]any{
			"error": "Too many login attempts. Please try again later.",
		})
	}

	ok, err := h.session.Login(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, status.ErrLoginInFlight):
		monitoring.TrackLogin("rejected")
		return e.JSON(http.StatusConflict, map[string]any{
			"error": "A login is already in progress",
		})
	case errors.Is(err, status.ErrTimeout):
		monitoring.TrackLogin("timeout")
		return e.JSON(http.StatusGatewayTimeout, map[string]any{
			"error": "Authentication timed out",
		})
	case err == nil && !ok:
		// A logout landed while this login was in flight and its result
		// was dropped.
		monitoring.TrackLogin("superseded")
		return e.JSON(http.StatusConflict, map[string]any{
			"error": "Login was cancelled by a logout",
		})
	case !ok:
		monitoring.TrackLogin("failed")
		return apis.NewUnauthorizedError("Invalid email or password", err)
	}

	monitoring.TrackLogin("success")
	user, _ := h.session.CurrentUser()
	return e.JSON(http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    user,
	})
}

// Logout - close the session
func (h *AuthHandler) Logout(e *core.RequestEvent) error {
	h.session.Logout(e.Request.Context())
	return e.JSON(http.StatusOK, map[string]any{"message": "Logged out"})
}

// Register - add a new directory entry
func (h *AuthHandler) Register(e *core.RequestEvent) error {
	var req services.RegisterRequest

	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apis.NewBadRequestError("Name, email and password are required", nil)
	}

	user, err := h.directory.Register(req)
	if errors.Is(err, status.ErrConflict) {
		return e.JSON(http.StatusConflict, map[string]any{
			"error": "Email already registered",
		})
	} else if err != nil {
		return apis.NewBadRequestError("Registration failed", err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"message": "Registration successful",
		"user":    user,
	})
}

// Session - current session snapshot
func (h *AuthHandler) Session(e *core.RequestEvent) error {
	return e.JSON(http.StatusOK, h.session.Snapshot())
}
