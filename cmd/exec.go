package cmd

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
	pubnub "github.com/pubnub/go"

	"ticketq/config"
	"ticketq/data"
	"ticketq/handlers"
	"ticketq/monitoring"
	"ticketq/security"
	"ticketq/services"
	"ticketq/utils"
)

func Start() error {
	app := pocketbase.New()

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize Redis
	redisClient := utils.NewRedisClient(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
	defer redisClient.Close()

	// Initialize PubNub
	var pn *pubnub.PubNub
	if cfg.PubNubPublishKey != "" {
		pnConfig := pubnub.NewConfig()
		pnConfig.PublishKey = cfg.PubNubPublishKey
		pnConfig.SubscribeKey = cfg.PubNubSubscribeKey
		pnConfig.SecretKey = cfg.PubNubSecretKey

		pn = pubnub.NewPubNub(pnConfig)
	}

	// Initialize services
	directory := services.NewDirectoryService(data.Users())
	catalog := services.NewCatalogService(data.Tickets())
	overlay := services.NewOverlayService(catalog)
	view := services.NewTicketViewService(overlay)
	sessionStore := services.NewSessionStore(redisClient, cfg.SessionKey, cfg.SessionTTL)
	session := services.NewSessionService(directory, sessionStore, pn, cfg)
	throttle := security.NewLoginThrottle(redisClient, cfg.LoginMaxAttempts, cfg.LoginAttemptWindow)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(session, directory, throttle)
	ticketHandler := handlers.NewTicketHandler(view, overlay)

	// Enable migrations
	migratecmd.MustRegister(app, app.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start background tasks
	monitor := monitoring.NewMonitor(session, view)
	go monitor.Run(ctx)

	if cfg.EnableMetrics {
		monitoring.StartMetricsServer(cfg.MetricsPort, redisClient)
	}

	// Setup graceful shutdown
	go handleShutdown(cancel)

	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		loadDirectoryOverrides(app, directory)
		session.Restore(context.Background())

		// Auth endpoints
		e.Router.POST("/api/v1/auth/login", authHandler.Login)
		e.Router.POST("/api/v1/auth/logout", authHandler.Logout)
		e.Router.POST("/api/v1/auth/register", authHandler.Register)
		e.Router.GET("/api/v1/auth/session", authHandler.Session)

		// Ticket endpoints
		e.Router.GET("/api/v1/tickets", ticketHandler.ListTickets)
		e.Router.GET("/api/v1/tickets/stats", ticketHandler.GetStats)
		e.Router.GET("/api/v1/tickets/{ticketId}", ticketHandler.GetTicket)
		e.Router.POST("/api/v1/tickets/{ticketId}/usage", ticketHandler.SetUsage)
		e.Router.POST("/api/v1/tickets/{ticketId}/toggle", ticketHandler.ToggleUsage)
		e.Router.POST("/api/v1/tickets/{ticketId}/notes", ticketHandler.AddNote)

		// Health check
		e.Router.GET("/health", func(e *core.RequestEvent) error {
			if err := utils.RedisHealthCheck(redisClient); err != nil {
				return e.JSON(503, map[string]string{
					"status": "unhealthy",
					"error":  err.Error(),
				})
			}
			return e.JSON(200, map[string]string{"status": "healthy"})
		})

		log.Println("Server routes registered")

		return e.Next()
	})

	// Start server
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
	return nil
}

// loadDirectoryOverrides appends extra seed users from the PocketBase
// database, when a directory_users table exists. Missing table is not an
// error; the in-code seed is the baseline.
func loadDirectoryOverrides(app *pocketbase.PocketBase, directory *services.DirectoryService) {
	var records []dbx.NullStringMap
	if err := app.DB().NewQuery(
		"SELECT name, email, password, avatar FROM directory_users",
	).All(&records); err != nil {
		log.Printf("No directory overrides loaded: %v", err)
		return
	}

	loaded := 0
	for _, record := range records {
		req := services.RegisterRequest{
			Name:     record["name"].String,
			Email:    record["email"].String,
			Password: record["password"].String,
			Avatar:   record["avatar"].String,
		}
		if req.Email == "" || req.Password == "" {
			continue
		}
		if _, err := directory.Register(req); err != nil {
			slog.Warn("skipping directory override", "email", req.Email, "error", err)
			continue
		}
		loaded++
	}

	if loaded > 0 {
		log.Printf("Loaded %d directory overrides", loaded)
	}
}

// handleShutdown handles graceful shutdown
func handleShutdown(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
	cancel()
}
