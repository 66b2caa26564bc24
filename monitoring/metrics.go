package monitoring

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ticketq/models"
	"ticketq/services"
)

var (
	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Login attempts by result",
		},
		[]string{"result"},
	)

	sessionState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "session_state",
			Help: "Current session state (1 for the active state, 0 otherwise)",
		},
		[]string{"state"},
	)

	ticketMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_mutations_total",
			Help: "Ticket mutation operations",
		},
		[]string{"operation", "status"},
	)

	ticketsByUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tickets_by_usage",
			Help: "Effective ticket counts by usage",
		},
		[]string{"usage"},
	)
)

// TrackLogin records a login attempt outcome: success, failed, timeout,
// throttled or rejected.
func TrackLogin(result string) {
	loginAttempts.WithLabelValues(result).Inc()
}

// TrackTicketMutation records a usage or note mutation attempt.
func TrackTicketMutation(operation, status string) {
	ticketMutations.WithLabelValues(operation, status).Inc()
}

// Monitor periodically recomputes gauge values from the live services.
type Monitor struct {
	session *services.SessionService
	view    *services.TicketViewService
}

func NewMonitor(session *services.SessionService, view *services.TicketViewService) *Monitor {
	return &Monitor{session: session, view: view}
}

// Run collects until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.collect()
		}
	}
}

func (m *Monitor) collect() {
	stats := m.view.Stats()
	ticketsByUsage.WithLabelValues("used").Set(float64(stats.Used))
	ticketsByUsage.WithLabelValues("unused").Set(float64(stats.Unused))

	current := m.session.State()
	for _, state := range []string{
		models.SessionAnonymous,
		models.SessionAuthenticating,
		models.SessionAuthenticated,
		models.SessionError,
	} {
		value := 0.0
		if state == current {
			value = 1.0
		}
		sessionState.WithLabelValues(state).Set(value)
	}
}
