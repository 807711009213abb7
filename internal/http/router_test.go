package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decor-backend/internal/auth"
	"decor-backend/internal/config"
	"decor-backend/internal/handlers"
	"decor-backend/internal/health"
	"decor-backend/internal/middleware"
	"decor-backend/internal/models"
	"decor-backend/internal/repositories"
	"decor-backend/internal/services"
	"decor-backend/internal/store"
	"decor-backend/internal/ws"
)

// newTestServer wires the full handler stack over an in-memory store, the
// same way cmd/server does, minus the background workers. The store comes
// back too so tests can seed collections directly.
func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Admin.Username = "admin"
	cfg.Admin.Password = "decor123"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Issuer = "decor-backend"
	cfg.Session.ExpirationHours = 24

	backend := store.NewMemoryBackend()
	st := store.New(backend)
	t.Cleanup(func() { _ = st.Close() })

	eventRepo := repositories.NewEventRepository(st)
	serviceRepo := repositories.NewServiceRepository(st)
	portfolioRepo := repositories.NewPortfolioRepository(st)
	clientRepo := repositories.NewClientRepository(st)
	inquiryRepo := repositories.NewInquiryRepository(st)
	notificationRepo := repositories.NewNotificationRepository(st)

	notifier := services.NewNotificationService(notificationRepo, 30, 60)
	eventService := services.NewEventService(eventRepo, notifier)
	catalogService := services.NewServiceCatalogService(serviceRepo, notifier)
	portfolioService := services.NewPortfolioService(portfolioRepo, notifier)
	clientService := services.NewClientService(clientRepo, notifier)
	inquiryService := services.NewInquiryService(inquiryRepo, notifier)
	searchService := services.NewSearchService(eventRepo, serviceRepo, portfolioRepo, clientRepo, inquiryRepo)
	backupService := services.NewBackupService(cfg, st, eventRepo, serviceRepo, portfolioRepo, clientRepo, inquiryRepo, notificationRepo)

	sessions := auth.NewSessionManager(cfg, st)
	hub := ws.NewHub(st)

	router := NewRouter(
		handlers.NewAuthHandler(sessions),
		handlers.NewEventHandler(eventService),
		handlers.NewServiceHandler(catalogService),
		handlers.NewPortfolioHandler(portfolioService),
		handlers.NewClientHandler(clientService),
		handlers.NewInquiryHandler(inquiryService),
		handlers.NewNotificationHandler(notifier),
		handlers.NewSearchHandler(searchService),
		handlers.NewSettingsHandler(st),
		handlers.NewBackupHandler(backupService),
		handlers.NewDashboardHandler(eventService, catalogService, portfolioService, clientService, inquiryService, notifier),
		handlers.NewHealthHandler(health.NewHealthChecker(backend)),
		middleware.NewAuthMiddleware(sessions),
		hub,
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, st
}

func login(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp := doJSON(t, srv, "POST", "/api/auth/login", "", models.LoginRequest{
		Username: "admin",
		Password: "decor123",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, payload any) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, srv.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, srv, "POST", "/api/auth/login", "", models.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{
		"/api/admin/events",
		"/api/admin/notifications",
		"/api/admin/search?q=test",
		"/api/admin/backups",
		"/api/admin/dashboard/stats",
	} {
		resp := doJSON(t, srv, "GET", path, "", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestEventCRUDFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	resp := doJSON(t, srv, "POST", "/api/admin/events", token, models.CreateEventRequest{
		Title:      "Mehta Wedding",
		ClientName: "Anita Mehta",
		EventType:  "wedding",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Event
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, models.EventStatusPlanning, created.Status)

	resp = doJSON(t, srv, "GET", "/api/admin/events/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Event
	decodeBody(t, resp, &fetched)
	assert.Equal(t, "Mehta Wedding", fetched.Title)

	resp = doJSON(t, srv, "PUT", "/api/admin/events/"+created.ID, token, models.UpdateEventRequest{
		Title:      "Mehta Wedding",
		ClientName: "Anita Mehta",
		Status:     models.EventStatusConfirmed,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, srv, "DELETE", "/api/admin/events/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, srv, "GET", "/api/admin/events/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateEventValidation(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	resp := doJSON(t, srv, "POST", "/api/admin/events", token, models.CreateEventRequest{
		ClientName: "No Title",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPublicInquirySubmissionFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	// The contact form needs no auth.
	resp := doJSON(t, srv, "POST", "/api/public/inquiries", "", models.SubmitInquiryRequest{
		ClientName: "Rahul Verma",
		Email:      "rahul@example.com",
		EventType:  "wedding",
		Message:    "Need decor for a reception",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var inquiry models.Inquiry
	decodeBody(t, resp, &inquiry)
	assert.Equal(t, models.InquiryStatusNew, inquiry.Status)

	// The submission is visible to the admin, with its notification.
	token := login(t, srv)
	resp = doJSON(t, srv, "GET", "/api/admin/inquiries", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var inquiries []models.Inquiry
	decodeBody(t, resp, &inquiries)
	require.Len(t, inquiries, 1)

	resp = doJSON(t, srv, "GET", "/api/admin/notifications/unread-count", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var count map[string]int
	decodeBody(t, resp, &count)
	assert.Equal(t, 1, count["unread"])
}

func TestNotificationPurgeEndpoint(t *testing.T) {
	srv, st := newTestServer(t)
	token := login(t, srv)

	now := time.Now().UTC()
	seed := []models.Notification{
		{ID: "stale", Title: "stale", Timestamp: now.AddDate(0, 0, -40).Format(models.TimestampLayout)},
		{ID: "fresh", Title: "fresh", Timestamp: now.Format(models.TimestampLayout)},
	}
	st.Write(context.Background(), models.KeyNotifications, seed)

	resp := doJSON(t, srv, "POST", "/api/admin/notifications/purge", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result map[string]int
	decodeBody(t, resp, &result)
	assert.Equal(t, 1, result["removed"])

	resp = doJSON(t, srv, "GET", "/api/admin/notifications", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var remaining []models.Notification
	decodeBody(t, resp, &remaining)
	require.Len(t, remaining, 1)
	assert.Equal(t, "fresh", remaining[0].ID)
}

func TestSearchEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	resp := doJSON(t, srv, "POST", "/api/admin/events", token, models.CreateEventRequest{
		Title:      "Wedding Gala",
		ClientName: "Priya Sharma",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, srv, "GET", "/api/admin/search?q=wedding&types=events", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result struct {
		TotalResults int              `json:"totalResults"`
		Types        []string         `json:"types"`
		Results      map[string][]any `json:"results"`
	}
	decodeBody(t, resp, &result)
	assert.Equal(t, 1, result.TotalResults)
	assert.Equal(t, []string{"events"}, result.Types)
	assert.Len(t, result.Results["events"], 1)
}

func TestSessionStatusAndLogout(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	resp := doJSON(t, srv, "GET", "/api/auth/session", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status models.SessionStatus
	decodeBody(t, resp, &status)
	assert.True(t, status.Authenticated)
	assert.Greater(t, status.ExpiresAt, int64(0))

	resp = doJSON(t, srv, "POST", "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, srv, "GET", "/api/auth/session", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &status)
	assert.False(t, status.Authenticated)
}

func TestSidebarSettingRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	resp := doJSON(t, srv, "GET", "/api/admin/settings/sidebar", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var setting models.SidebarSetting
	decodeBody(t, resp, &setting)
	assert.False(t, setting.Collapsed)

	resp = doJSON(t, srv, "PUT", "/api/admin/settings/sidebar", token, models.SidebarSetting{Collapsed: true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, srv, "GET", "/api/admin/settings/sidebar", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &setting)
	assert.True(t, setting.Collapsed)
}

func TestBackupEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv)

	resp := doJSON(t, srv, "POST", "/api/admin/events", token, models.CreateEventRequest{
		Title:      "Snapshot Me",
		ClientName: "c",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, srv, "POST", "/api/admin/backups", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var info struct {
		Key string `json:"key"`
	}
	decodeBody(t, resp, &info)
	require.NotEmpty(t, info.Key)

	resp = doJSON(t, srv, "POST", "/api/admin/backups/"+info.Key+"/restore", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, srv, "DELETE", "/api/admin/backups/"+info.Key, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestHealthEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.Client().Get(srv.URL + "/health/ready")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
