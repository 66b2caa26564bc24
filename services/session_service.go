package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	pubnub "github.com/pubnub/go"

	"ticketq/config"
	"ticketq/internal/status"
	"ticketq/models"
	"ticketq/utils"
)

// SessionService owns the session state machine: anonymous, authenticating,
// authenticated, error. There is exactly one session per instance, and only
// one state-mutating operation may be in flight at a time. The in-flight
// guard plus attempt stamping keep a logout from resurrecting a login that
// was already superseded.
type SessionService struct {
	directory *DirectoryService
	store     SessionPersister
	pubnub    *pubnub.PubNub
	breaker   *utils.CircuitBreaker

	authDelay   time.Duration
	authTimeout time.Duration

	mu          sync.Mutex
	state       string
	current     *models.PublicUser
	lastErr     error
	attempt     uint64
	subscribers []func(models.Session)
}

func NewSessionService(directory *DirectoryService, store SessionPersister, pn *pubnub.PubNub, cfg *config.Config) *SessionService {
	return &SessionService{
		directory:   directory,
		store:       store,
		pubnub:      pn,
		breaker:     utils.NewCircuitBreaker("auth"),
		authDelay:   cfg.AuthDelay,
		authTimeout: cfg.AuthTimeout,
		state:       models.SessionAnonymous,
	}
}

type authResult struct {
	user models.PublicUser
	err  error
}

// Login authenticates against the directory. The round-trip is simulated
// with a configurable delay and bounded by the auth timeout. A second login
// issued while one is authenticating is rejected with ErrLoginInFlight; a
// logout issued meanwhile supersedes the attempt and its result is dropped.
func (s *SessionService) Login(ctx context.Context, email, password string) (bool, error) {
	s.mu.Lock()
	if s.state == models.SessionAuthenticating {
		s.mu.Unlock()
		return false, status.ErrLoginInFlight
	}
	s.attempt++
	stamp := s.attempt
	s.lastErr = nil
	subs, snap, _ := s.transitionLocked(models.SessionAuthenticating, nil)
	s.mu.Unlock()
	s.notify(subs, snap)

	resultCh := make(chan authResult, 1)
	go func() {
		var user models.PublicUser
		var authErr error
		_, err := s.breaker.Execute(ctx, func() (any, error) {
			// Simulated latency of the mock backend.
			time.Sleep(s.authDelay)
			// A credential mismatch is a completed round-trip; only
			// infrastructure failures count against the breaker.
			user, authErr = s.directory.Authenticate(email, password)
			return nil, nil
		})
		if err != nil {
			resultCh <- authResult{err: err}
			return
		}
		resultCh <- authResult{user: user, err: authErr}
	}()

	var res authResult
	select {
	case res = <-resultCh:
	case <-time.After(s.authTimeout):
		res = authResult{err: status.ErrTimeout}
	case <-ctx.Done():
		res = authResult{err: status.ErrTimeout}
	}

	s.mu.Lock()
	if stamp != s.attempt {
		s.mu.Unlock()
		slog.Info("discarding superseded login attempt", "email", email)
		return false, nil
	}

	if res.err != nil {
		err := res.err
		if errors.Is(err, utils.ErrBreakerOpen) {
			err = status.ErrTimeout
		}
		s.lastErr = err
		subs, snap, _ := s.transitionLocked(models.SessionError, nil)
		s.mu.Unlock()
		s.notify(subs, snap)
		return false, err
	}

	user := res.user
	subs, snap, _ = s.transitionLocked(models.SessionAuthenticated, &user)
	s.mu.Unlock()

	s.persist(ctx, user.ID, stamp)
	s.notify(subs, snap)
	s.publish(user.ID, "authenticated")
	slog.Info("session authenticated", "user_id", user.ID, "email", user.Email)
	return true, nil
}

// Logout clears the subject and the persisted record, synchronously. Any
// in-flight login is superseded: its result will be discarded when it lands.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.attempt++
	s.lastErr = nil
	var priorID string
	if s.current != nil {
		priorID = s.current.ID
	}
	subs, snap, changed := s.transitionLocked(models.SessionAnonymous, nil)
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		slog.Warn("failed to clear persisted session", "error", err)
	}

	if changed {
		s.notify(subs, snap)
		if priorID != "" {
			s.publish(priorID, "signed_out")
			slog.Info("session cleared", "user_id", priorID)
		}
	}
}

// Restore rebuilds the session from the persisted record, if it still
// resolves to a directory entry. Safe to call any number of times; once
// authenticated it does nothing.
func (s *SessionService) Restore(ctx context.Context) {
	s.mu.Lock()
	if s.state == models.SessionAuthenticated || s.state == models.SessionAuthenticating {
		s.mu.Unlock()
		return
	}

	rec, ok := s.store.Load(ctx)
	if !ok {
		subs, snap, changed := s.transitionLocked(models.SessionAnonymous, nil)
		s.mu.Unlock()
		if changed {
			s.notify(subs, snap)
		}
		return
	}

	user, err := s.directory.ByID(rec.UserID)
	if err != nil {
		subs, snap, changed := s.transitionLocked(models.SessionAnonymous, nil)
		s.mu.Unlock()
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			slog.Warn("failed to drop dangling session record", "error", clearErr)
		}
		if changed {
			s.notify(subs, snap)
		}
		return
	}

	subs, snap, changed := s.transitionLocked(models.SessionAuthenticated, &user)
	s.mu.Unlock()
	if changed {
		s.notify(subs, snap)
		slog.Info("session restored", "user_id", user.ID)
	}
}

// Subscribe registers a presentation-layer listener. Every state transition
// calls all current subscribers synchronously, after the transition
// completes, with a snapshot of the new state.
func (s *SessionService) Subscribe(fn func(models.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns the current session state.
func (s *SessionService) Snapshot() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// CurrentUser returns the authenticated subject, if any.
func (s *SessionService) CurrentUser() (models.PublicUser, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.PublicUser{}, false
	}
	return *s.current, true
}

func (s *SessionService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == models.SessionAuthenticated
}

func (s *SessionService) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == models.SessionAuthenticating
}

func (s *SessionService) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// transitionLocked moves the machine to state with the given subject and
// reports whether anything actually changed. Caller holds the lock.
func (s *SessionService) transitionLocked(state string, user *models.PublicUser) ([]func(models.Session), models.Session, bool) {
	changed := s.state != state || (s.current == nil) != (user == nil)
	s.state = state
	s.current = user
	subs := make([]func(models.Session), len(s.subscribers))
	copy(subs, s.subscribers)
	return subs, s.snapshotLocked(), changed
}

func (s *SessionService) snapshotLocked() models.Session {
	snap := models.Session{
		State:           s.state,
		IsAuthenticated: s.state == models.SessionAuthenticated,
		IsLoading:       s.state == models.SessionAuthenticating,
	}
	if s.current != nil {
		u := *s.current
		snap.CurrentUser = &u
	}
	if s.lastErr != nil {
		snap.Error = s.lastErr.Error()
	}
	return snap
}

func (s *SessionService) notify(subs []func(models.Session), snap models.Session) {
	for _, fn := range subs {
		fn(snap)
	}
}

func (s *SessionService) persist(ctx context.Context, userID string, stamp uint64) {
	token, err := utils.GenerateCode(16)
	if err != nil {
		slog.Warn("failed to generate session token", "error", err)
	}
	rec := models.SessionRecord{
		UserID:  userID,
		Token:   token,
		SavedAt: time.Now(),
	}
	if err := s.store.Save(ctx, rec); err != nil {
		slog.Warn("failed to persist session", "error", err)
		return
	}

	// A logout may have landed while the record was being written. Its
	// Clear must win, so drop the record we just saved.
	s.mu.Lock()
	superseded := stamp != s.attempt
	s.mu.Unlock()
	if superseded {
		if err := s.store.Clear(ctx); err != nil {
			slog.Warn("failed to drop superseded session record", "error", err)
		}
	}
}

func (s *SessionService) publish(userID, event string) {
	if s.pubnub == nil {
		return
	}

	channel := fmt.Sprintf("user-%s", userID)
	s.pubnub.Publish().
		Channel(channel).
		Message(map[string]any{
			"type":   "session_state",
			"status": event,
		}).
		Execute()
}
