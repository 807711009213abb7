package services

import (
	"testing"

	"decor-backend/internal/repositories"
	"decor-backend/internal/store"
)

// testEnv wires repositories over an in-memory store for service tests.
// The notification service is constructed without its sweeper running.
type testEnv struct {
	Store         *store.Store
	Events        *repositories.EventRepository
	Services      *repositories.ServiceRepository
	Portfolio     *repositories.PortfolioRepository
	Clients       *repositories.ClientRepository
	Inquiries     *repositories.InquiryRepository
	Notifications *repositories.NotificationRepository
	Notifier      *NotificationService
}

func openTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st := store.New(store.NewMemoryBackend())
	t.Cleanup(func() { _ = st.Close() })

	notifications := repositories.NewNotificationRepository(st)
	return &testEnv{
		Store:         st,
		Events:        repositories.NewEventRepository(st),
		Services:      repositories.NewServiceRepository(st),
		Portfolio:     repositories.NewPortfolioRepository(st),
		Clients:       repositories.NewClientRepository(st),
		Inquiries:     repositories.NewInquiryRepository(st),
		Notifications: notifications,
		Notifier:      NewNotificationService(notifications, 30, 60),
	}
}
