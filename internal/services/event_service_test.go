package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decor-backend/internal/models"
)

func TestEventCreateDefaultsToPlanning(t *testing.T) {
	env := openTestEnv(t)
	svc := NewEventService(env.Events, env.Notifier)
	ctx := context.Background()

	event := svc.CreateEvent(ctx, &models.CreateEventRequest{
		Title:      "Mehta Wedding",
		ClientName: "Anita Mehta",
	})

	assert.Equal(t, models.EventStatusPlanning, event.Status)
	require.Len(t, env.Notifier.List(ctx), 1)
}

func TestEventUpdateStatusChangeCarriesOldAndNew(t *testing.T) {
	env := openTestEnv(t)
	svc := NewEventService(env.Events, env.Notifier)
	ctx := context.Background()

	event := svc.CreateEvent(ctx, &models.CreateEventRequest{
		Title:      "Launch Party",
		ClientName: "Acme Corp",
		Status:     models.EventStatusPlanning,
	})

	_, err := svc.UpdateEvent(ctx, event.ID, &models.UpdateEventRequest{
		Title:      "Launch Party",
		ClientName: "Acme Corp",
		Status:     models.EventStatusConfirmed,
	})
	require.NoError(t, err)

	notifications := env.Notifier.List(ctx)
	require.Len(t, notifications, 2)
	last := notifications[1]
	assert.Equal(t, models.NotificationTypeStatusChange, last.Type)
	require.NotNil(t, last.Metadata)
	assert.Equal(t, models.EventStatusPlanning, last.Metadata.OldValue)
	assert.Equal(t, models.EventStatusConfirmed, last.Metadata.NewValue)
}

func TestEventBulkDeleteRecordsOneNotification(t *testing.T) {
	env := openTestEnv(t)
	svc := NewEventService(env.Events, env.Notifier)
	ctx := context.Background()

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		e := svc.CreateEvent(ctx, &models.CreateEventRequest{Title: title, ClientName: "c"})
		ids = append(ids, e.ID)
	}
	before := len(env.Notifier.List(ctx))

	removed := svc.BulkDeleteEvents(ctx, ids)
	assert.Equal(t, 3, removed)
	assert.Len(t, env.Notifier.List(ctx), before+1)
	assert.Empty(t, svc.ListEvents(ctx))
}

func TestEventBulkDeleteNoMatchesIsSilent(t *testing.T) {
	env := openTestEnv(t)
	svc := NewEventService(env.Events, env.Notifier)
	ctx := context.Background()

	assert.Equal(t, 0, svc.BulkDeleteEvents(ctx, []string{"absent"}))
	assert.Empty(t, env.Notifier.List(ctx))
}

func TestEventCompletedNewestDateFirst(t *testing.T) {
	env := openTestEnv(t)
	svc := NewEventService(env.Events, env.Notifier)
	ctx := context.Background()

	seed := []models.Event{
		{ID: "e1", Title: "older", EventDate: "2026-01-10", Status: models.EventStatusCompleted},
		{ID: "e2", Title: "pending", EventDate: "2026-09-01", Status: models.EventStatusPlanning},
		{ID: "e3", Title: "newer", EventDate: "2026-06-05", Status: models.EventStatusCompleted},
	}
	env.Store.Write(ctx, models.KeyEvents, seed)

	completed := svc.CompletedEvents(ctx)
	require.Len(t, completed, 2)
	assert.Equal(t, "newer", completed[0].Title)
	assert.Equal(t, "older", completed[1].Title)
}

func TestEventStats(t *testing.T) {
	env := openTestEnv(t)
	svc := NewEventService(env.Events, env.Notifier)
	ctx := context.Background()

	seed := []models.Event{
		{ID: "e1", EventType: "wedding", EventDate: "2026-09-10", Status: models.EventStatusConfirmed},
		{ID: "e2", EventType: "wedding", EventDate: "2026-08-12", Status: models.EventStatusCompleted},
		{ID: "e3", EventType: "corporate", EventDate: "2026-10-01", Status: models.EventStatusCancelled},
		{ID: "e4", EventDate: "2026-08-28", Status: models.EventStatusPlanning},
	}
	env.Store.Write(ctx, models.KeyEvents, seed)

	stats := svc.Stats(ctx, "2026-08-30", "2026-08")
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.ByType["wedding"])
	assert.Equal(t, 1, stats.ByStatus[models.EventStatusCancelled])
	// Cancelled and completed events never count as upcoming.
	assert.Equal(t, 1, stats.Upcoming)
	assert.Equal(t, 2, stats.ThisMonth)
}
