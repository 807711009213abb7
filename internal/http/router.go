package http

import (
	"decor-backend/internal/handlers"
	"decor-backend/internal/middleware"
	"decor-backend/internal/ws"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	eventHandler *handlers.EventHandler,
	serviceHandler *handlers.ServiceHandler,
	portfolioHandler *handlers.PortfolioHandler,
	clientHandler *handlers.ClientHandler,
	inquiryHandler *handlers.InquiryHandler,
	notificationHandler *handlers.NotificationHandler,
	searchHandler *handlers.SearchHandler,
	settingsHandler *handlers.SettingsHandler,
	backupHandler *handlers.BackupHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	hub *ws.Hub,
) *mux.Router {
	r := mux.NewRouter()

	// Health and metrics
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Change feed for admin tabs
	r.HandleFunc("/ws", hub.HandleWebSocket)

	// Public API routes - Authentication
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/session", authHandler.Session).Methods("GET")

	// Public API routes - marketing site reads and the contact form
	r.HandleFunc("/api/public/services", serviceHandler.ActiveServices).Methods("GET")
	r.HandleFunc("/api/public/portfolio", portfolioHandler.PublishedItems).Methods("GET")
	r.HandleFunc("/api/public/portfolio/featured", portfolioHandler.FeaturedItems).Methods("GET")
	r.HandleFunc("/api/public/portfolio/{id}/view", portfolioHandler.RecordView).Methods("POST")
	r.HandleFunc("/api/public/events/completed", eventHandler.CompletedEvents).Methods("GET")
	r.HandleFunc("/api/public/testimonials", clientHandler.Testimonials).Methods("GET")
	r.HandleFunc("/api/public/inquiries", inquiryHandler.Submit).Methods("POST")

	// Protected API routes - Session
	authAPI := r.PathPrefix("/api/auth").Subrouter()
	authAPI.Use(authMiddleware.Authenticate)
	authAPI.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	// Protected API routes - Events
	eventsAPI := r.PathPrefix("/api/admin/events").Subrouter()
	eventsAPI.Use(authMiddleware.Authenticate)
	eventsAPI.HandleFunc("", eventHandler.ListEvents).Methods("GET")
	eventsAPI.HandleFunc("", eventHandler.CreateEvent).Methods("POST")
	eventsAPI.HandleFunc("/bulk-delete", eventHandler.BulkDeleteEvents).Methods("POST")
	eventsAPI.HandleFunc("/stats", eventHandler.Stats).Methods("GET")
	eventsAPI.HandleFunc("/{id}", eventHandler.GetEvent).Methods("GET")
	eventsAPI.HandleFunc("/{id}", eventHandler.UpdateEvent).Methods("PUT")
	eventsAPI.HandleFunc("/{id}", eventHandler.DeleteEvent).Methods("DELETE")

	// Protected API routes - Services
	servicesAPI := r.PathPrefix("/api/admin/services").Subrouter()
	servicesAPI.Use(authMiddleware.Authenticate)
	servicesAPI.HandleFunc("", serviceHandler.ListServices).Methods("GET")
	servicesAPI.HandleFunc("", serviceHandler.CreateService).Methods("POST")
	servicesAPI.HandleFunc("/bulk-delete", serviceHandler.BulkDeleteServices).Methods("POST")
	servicesAPI.HandleFunc("/stats", serviceHandler.Stats).Methods("GET")
	servicesAPI.HandleFunc("/{id}", serviceHandler.GetService).Methods("GET")
	servicesAPI.HandleFunc("/{id}", serviceHandler.UpdateService).Methods("PUT")
	servicesAPI.HandleFunc("/{id}", serviceHandler.DeleteService).Methods("DELETE")

	// Protected API routes - Portfolio
	portfolioAPI := r.PathPrefix("/api/admin/portfolio").Subrouter()
	portfolioAPI.Use(authMiddleware.Authenticate)
	portfolioAPI.HandleFunc("", portfolioHandler.ListItems).Methods("GET")
	portfolioAPI.HandleFunc("", portfolioHandler.CreateItem).Methods("POST")
	portfolioAPI.HandleFunc("/bulk-delete", portfolioHandler.BulkDeleteItems).Methods("POST")
	portfolioAPI.HandleFunc("/stats", portfolioHandler.Stats).Methods("GET")
	portfolioAPI.HandleFunc("/{id}", portfolioHandler.GetItem).Methods("GET")
	portfolioAPI.HandleFunc("/{id}", portfolioHandler.UpdateItem).Methods("PUT")
	portfolioAPI.HandleFunc("/{id}", portfolioHandler.DeleteItem).Methods("DELETE")

	// Protected API routes - Clients
	clientsAPI := r.PathPrefix("/api/admin/clients").Subrouter()
	clientsAPI.Use(authMiddleware.Authenticate)
	clientsAPI.HandleFunc("", clientHandler.ListClients).Methods("GET")
	clientsAPI.HandleFunc("", clientHandler.CreateClient).Methods("POST")
	clientsAPI.HandleFunc("/bulk-delete", clientHandler.BulkDeleteClients).Methods("POST")
	clientsAPI.HandleFunc("/stats", clientHandler.Stats).Methods("GET")
	clientsAPI.HandleFunc("/{id}", clientHandler.GetClient).Methods("GET")
	clientsAPI.HandleFunc("/{id}", clientHandler.UpdateClient).Methods("PUT")
	clientsAPI.HandleFunc("/{id}", clientHandler.DeleteClient).Methods("DELETE")

	// Protected API routes - Inquiries
	inquiriesAPI := r.PathPrefix("/api/admin/inquiries").Subrouter()
	inquiriesAPI.Use(authMiddleware.Authenticate)
	inquiriesAPI.HandleFunc("", inquiryHandler.ListInquiries).Methods("GET")
	inquiriesAPI.HandleFunc("/bulk-delete", inquiryHandler.BulkDeleteInquiries).Methods("POST")
	inquiriesAPI.HandleFunc("/stats", inquiryHandler.Stats).Methods("GET")
	inquiriesAPI.HandleFunc("/{id}", inquiryHandler.GetInquiry).Methods("GET")
	inquiriesAPI.HandleFunc("/{id}", inquiryHandler.UpdateInquiry).Methods("PUT")
	inquiriesAPI.HandleFunc("/{id}", inquiryHandler.DeleteInquiry).Methods("DELETE")

	// Protected API routes - Notifications
	notificationsAPI := r.PathPrefix("/api/admin/notifications").Subrouter()
	notificationsAPI.Use(authMiddleware.Authenticate)
	notificationsAPI.HandleFunc("", notificationHandler.ListNotifications).Methods("GET")
	notificationsAPI.HandleFunc("", notificationHandler.CreateNotification).Methods("POST")
	notificationsAPI.HandleFunc("", notificationHandler.DeleteAllNotifications).Methods("DELETE")
	notificationsAPI.HandleFunc("/unread-count", notificationHandler.UnreadCount).Methods("GET")
	notificationsAPI.HandleFunc("/mark-all-read", notificationHandler.MarkAllRead).Methods("POST")
	notificationsAPI.HandleFunc("/purge", notificationHandler.PurgeNotifications).Methods("POST")
	notificationsAPI.HandleFunc("/{id}/read", notificationHandler.MarkRead).Methods("POST")
	notificationsAPI.HandleFunc("/{id}", notificationHandler.DeleteNotification).Methods("DELETE")

	// Protected API routes - Search
	searchAPI := r.PathPrefix("/api/admin/search").Subrouter()
	searchAPI.Use(authMiddleware.Authenticate)
	searchAPI.HandleFunc("", searchHandler.Search).Methods("GET")

	// Protected API routes - Settings
	settingsAPI := r.PathPrefix("/api/admin/settings").Subrouter()
	settingsAPI.Use(authMiddleware.Authenticate)
	settingsAPI.HandleFunc("/sidebar", settingsHandler.GetSidebar).Methods("GET")
	settingsAPI.HandleFunc("/sidebar", settingsHandler.PutSidebar).Methods("PUT")

	// Protected API routes - Backups
	backupsAPI := r.PathPrefix("/api/admin/backups").Subrouter()
	backupsAPI.Use(authMiddleware.Authenticate)
	backupsAPI.HandleFunc("", backupHandler.ListBackups).Methods("GET")
	backupsAPI.HandleFunc("", backupHandler.CreateBackup).Methods("POST")
	backupsAPI.HandleFunc("/{key}/restore", backupHandler.RestoreBackup).Methods("POST")
	backupsAPI.HandleFunc("/{key}", backupHandler.DeleteBackup).Methods("DELETE")

	// Protected API routes - Dashboard
	dashboardAPI := r.PathPrefix("/api/admin/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("/stats", dashboardHandler.Stats).Methods("GET")

	return r
}
