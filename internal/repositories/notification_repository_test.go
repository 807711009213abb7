package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decor-backend/internal/models"
)

func TestNotificationRepositoryAppend(t *testing.T) {
	repo := NewNotificationRepository(openTestStore(t))
	ctx := context.Background()

	n := models.Notification{
		Type:     models.NotificationTypeCreate,
		Category: "events",
		Title:    "New Event Created",
		IsRead:   true, // reset on append
	}
	repo.Append(ctx, &n)

	require.NotEmpty(t, n.ID)
	require.NotEmpty(t, n.Timestamp)
	assert.False(t, n.IsRead)

	list := repo.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "New Event Created", list[0].Title)
	assert.Equal(t, 1, repo.UnreadCount(ctx))
}

func TestNotificationRepositoryMarkReadIdempotent(t *testing.T) {
	repo := NewNotificationRepository(openTestStore(t))
	ctx := context.Background()

	n := models.Notification{Type: models.NotificationTypeUpdate, Category: "clients", Title: "Client Updated"}
	repo.Append(ctx, &n)
	stamp := n.Timestamp

	repo.MarkRead(ctx, n.ID)
	list := repo.List(ctx)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsRead)
	assert.Equal(t, stamp, list[0].Timestamp)

	// Marking again changes nothing.
	repo.MarkRead(ctx, n.ID)
	list = repo.List(ctx)
	assert.True(t, list[0].IsRead)
	assert.Equal(t, stamp, list[0].Timestamp)

	// Unknown ids are silent no-ops.
	repo.MarkRead(ctx, "missing")
	assert.Equal(t, 0, repo.UnreadCount(ctx))
}

func TestNotificationRepositoryMarkAllRead(t *testing.T) {
	repo := NewNotificationRepository(openTestStore(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		n := models.Notification{Type: models.NotificationTypeCreate, Category: "events", Title: "n"}
		repo.Append(ctx, &n)
	}
	require.Equal(t, 3, repo.UnreadCount(ctx))

	repo.MarkAllRead(ctx)
	assert.Equal(t, 0, repo.UnreadCount(ctx))
}

func TestNotificationRepositoryDelete(t *testing.T) {
	repo := NewNotificationRepository(openTestStore(t))
	ctx := context.Background()

	first := models.Notification{Type: models.NotificationTypeCreate, Category: "events", Title: "first"}
	second := models.Notification{Type: models.NotificationTypeCreate, Category: "events", Title: "second"}
	repo.Append(ctx, &first)
	repo.Append(ctx, &second)

	repo.Delete(ctx, first.ID)
	list := repo.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "second", list[0].Title)

	repo.DeleteAll(ctx)
	assert.Empty(t, repo.List(ctx))
}

func TestNotificationRepositoryDeleteOlderThan(t *testing.T) {
	st := openTestStore(t)
	repo := NewNotificationRepository(st)
	ctx := context.Background()

	now := time.Now().UTC()
	seed := []models.Notification{
		{ID: "old", Title: "old", Timestamp: now.AddDate(0, 0, -40).Format(models.TimestampLayout)},
		{ID: "fresh", Title: "fresh", Timestamp: now.AddDate(0, 0, -1).Format(models.TimestampLayout)},
		{ID: "broken", Title: "broken", Timestamp: "not-a-timestamp"},
	}
	st.Write(ctx, models.KeyNotifications, seed)

	removed := repo.DeleteOlderThan(ctx, now.AddDate(0, 0, -30))
	assert.Equal(t, 1, removed)

	list := repo.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "fresh", list[0].ID)
	assert.Equal(t, "broken", list[1].ID)
}
