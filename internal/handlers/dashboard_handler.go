package handlers

import (
	"net/http"
	"time"

	"decor-backend/internal/services"

	"decor-backend/pkg/utils"
)

// DashboardHandler serves the combined stats panel. Everything is
// recomputed from the collections on each call; nothing is cached.
type DashboardHandler struct {
	Events        *services.EventService
	Services      *services.ServiceCatalogService
	Portfolio     *services.PortfolioService
	Clients       *services.ClientService
	Inquiries     *services.InquiryService
	Notifications *services.NotificationService
}

func NewDashboardHandler(
	events *services.EventService,
	catalog *services.ServiceCatalogService,
	portfolio *services.PortfolioService,
	clients *services.ClientService,
	inquiries *services.InquiryService,
	notifications *services.NotificationService,
) *DashboardHandler {
	return &DashboardHandler{
		Events:        events,
		Services:      catalog,
		Portfolio:     portfolio,
		Clients:       clients,
		Inquiries:     inquiries,
		Notifications: notifications,
	}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := time.Now()

	utils.JSON(w, http.StatusOK, map[string]any{
		"events":              h.Events.Stats(ctx, now.Format("2006-01-02"), now.Format("2006-01")),
		"services":            h.Services.Stats(ctx),
		"portfolio":           h.Portfolio.Stats(ctx),
		"clients":             h.Clients.Stats(ctx),
		"inquiries":           h.Inquiries.Stats(ctx),
		"unreadNotifications": h.Notifications.UnreadCount(ctx),
	})
}
