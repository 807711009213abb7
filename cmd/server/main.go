package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"decor-backend/internal/auth"
	"decor-backend/internal/config"
	"decor-backend/internal/handlers"
	"decor-backend/internal/health"
	h "decor-backend/internal/http"
	"decor-backend/internal/middleware"
	"decor-backend/internal/monitoring"
	"decor-backend/internal/repositories"
	"decor-backend/internal/services"
	"decor-backend/internal/store"
	"decor-backend/internal/ws"
)

// openBackend picks the store driver with a cascading fallback:
// redis → file → memory. A driver that fails to open degrades to the next
// one so the server always comes up.
func openBackend(cfg *config.Config) store.Backend {
	driver := cfg.Store.Driver

	if driver == "redis" {
		backend, err := store.NewRedisBackend(cfg.Redis.Addr, cfg.Redis.Password)
		if err == nil {
			log.Printf("[Store] Using redis backend at %s", cfg.Redis.Addr)
			return backend
		}
		log.Printf("[Store] Redis unavailable, falling back to file backend: %v", err)
		driver = "file"
	}

	if driver == "file" {
		backend, err := store.NewFileBackend(cfg.Store.Dir)
		if err == nil {
			log.Printf("[Store] Using file backend in %s", cfg.Store.Dir)
			return backend
		}
		log.Printf("[Store] File backend unavailable, falling back to memory: %v", err)
	}

	log.Printf("[Store] Using in-memory backend (data is lost on restart)")
	return store.NewMemoryBackend()
}

func main() {
	// Parse command-line flags
	port := flag.Int("port", 0, "Server port (overrides config)")
	driver := flag.String("store", "", "Store driver: redis, file or memory (overrides config)")
	seed := flag.Bool("seed", false, "Seed sample data into never-persisted collections")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *driver != "" {
		cfg.Store.Driver = *driver
	}

	// Open the persistent store
	backend := openBackend(cfg)
	st := store.New(backend)
	defer st.Close()

	// Initialize repositories
	eventRepo := repositories.NewEventRepository(st)
	serviceRepo := repositories.NewServiceRepository(st)
	portfolioRepo := repositories.NewPortfolioRepository(st)
	clientRepo := repositories.NewClientRepository(st)
	inquiryRepo := repositories.NewInquiryRepository(st)
	notificationRepo := repositories.NewNotificationRepository(st)

	// Seed sample data when asked (only collections never persisted)
	if *seed || cfg.Seed.Enabled {
		seeder := services.NewSeeder(eventRepo, serviceRepo, portfolioRepo, clientRepo, inquiryRepo)
		seeder.Run(context.Background(), cfg.Seed.File)
	}

	// Initialize services
	notificationService := services.NewNotificationService(notificationRepo,
		cfg.Notifications.RetentionDays, cfg.Notifications.SweepIntervalMinutes)
	notificationService.Start()
	defer notificationService.Stop()

	eventService := services.NewEventService(eventRepo, notificationService)
	catalogService := services.NewServiceCatalogService(serviceRepo, notificationService)
	portfolioService := services.NewPortfolioService(portfolioRepo, notificationService)
	clientService := services.NewClientService(clientRepo, notificationService)
	inquiryService := services.NewInquiryService(inquiryRepo, notificationService)
	searchService := services.NewSearchService(eventRepo, serviceRepo, portfolioRepo, clientRepo, inquiryRepo)

	backupService := services.NewBackupService(cfg, st,
		eventRepo, serviceRepo, portfolioRepo, clientRepo, inquiryRepo, notificationRepo)
	backupService.Start()
	defer backupService.Stop()

	// Session manager and middleware
	sessionManager := auth.NewSessionManager(cfg, st)
	authMiddleware := middleware.NewAuthMiddleware(sessionManager)
	corsMiddleware := middleware.NewCORS(cfg)

	// Change feed hub for admin tabs
	hub := ws.NewHub(st)
	hub.Start()
	defer hub.Stop()

	// Health checker over the store backend
	healthChecker := health.NewHealthChecker(backend)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(sessionManager)
	eventHandler := handlers.NewEventHandler(eventService)
	serviceHandler := handlers.NewServiceHandler(catalogService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	clientHandler := handlers.NewClientHandler(clientService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	searchHandler := handlers.NewSearchHandler(searchService)
	settingsHandler := handlers.NewSettingsHandler(st)
	backupHandler := handlers.NewBackupHandler(backupService)
	dashboardHandler := handlers.NewDashboardHandler(
		eventService, catalogService, portfolioService, clientService, inquiryService, notificationService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		authHandler,
		eventHandler,
		serviceHandler,
		portfolioHandler,
		clientHandler,
		inquiryHandler,
		notificationHandler,
		searchHandler,
		settingsHandler,
		backupHandler,
		dashboardHandler,
		healthHandler,
		authMiddleware,
		hub,
	)

	// Start monitoring dashboard server in background
	if cfg.Monitoring.Enabled {
		monitoring.NewMonitoringServer(healthChecker, hub, cfg.Monitoring.Port).Start()
	}

	// Wrap with panic recovery, metrics, logging and CORS
	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			middleware.RequestLogging(
				middleware.ClientOrigin(
					corsMiddleware(router)))))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s (store: %s)", addr, cfg.Store.Driver)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
