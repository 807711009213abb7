package repositories

import (
	"context"
	"encoding/json"
	"time"

	"decor-backend/internal/models"
	"decor-backend/internal/store"
)

// NotificationRepository persists the append-mostly admin action log.
type NotificationRepository struct {
	Store *store.Store
}

func NewNotificationRepository(st *store.Store) *NotificationRepository {
	return &NotificationRepository{Store: st}
}

func (r *NotificationRepository) List(ctx context.Context) []models.Notification {
	notifications := []models.Notification{}
	r.Store.Read(ctx, models.KeyNotifications, &notifications)
	return notifications
}

// Append adds a new unread notification stamped now.
func (r *NotificationRepository) Append(ctx context.Context, n *models.Notification) {
	n.ID = models.NewID()
	n.Timestamp = models.Now()
	n.IsRead = false

	r.Store.Update(ctx, models.KeyNotifications, func(raw json.RawMessage) any {
		return append(decodeNotifications(raw), *n)
	})
}

// MarkRead flips isRead on one notification. Marking an already-read entry
// is a no-op: isRead stays true and the timestamp is untouched.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) {
	r.Store.Update(ctx, models.KeyNotifications, func(raw json.RawMessage) any {
		notifications := decodeNotifications(raw)
		for i := range notifications {
			if notifications[i].ID == id {
				if notifications[i].IsRead {
					return nil
				}
				notifications[i].IsRead = true
				return notifications
			}
		}
		return nil
	})
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context) {
	r.Store.Update(ctx, models.KeyNotifications, func(raw json.RawMessage) any {
		notifications := decodeNotifications(raw)
		changed := false
		for i := range notifications {
			if !notifications[i].IsRead {
				notifications[i].IsRead = true
				changed = true
			}
		}
		if !changed {
			return nil
		}
		return notifications
	})
}

// Delete removes one notification; a missing id is a silent no-op.
func (r *NotificationRepository) Delete(ctx context.Context, id string) {
	r.Store.Update(ctx, models.KeyNotifications, func(raw json.RawMessage) any {
		notifications := decodeNotifications(raw)
		for i := range notifications {
			if notifications[i].ID == id {
				return append(notifications[:i], notifications[i+1:]...)
			}
		}
		return nil
	})
}

func (r *NotificationRepository) DeleteAll(ctx context.Context) {
	r.Store.Write(ctx, models.KeyNotifications, []models.Notification{})
}

// DeleteOlderThan drops notifications whose timestamp is before cutoff and
// returns how many were removed. Unparseable timestamps are kept.
func (r *NotificationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) int {
	removed := 0
	r.Store.Update(ctx, models.KeyNotifications, func(raw json.RawMessage) any {
		notifications := decodeNotifications(raw)
		kept := notifications[:0]
		for _, n := range notifications {
			ts, err := time.Parse(models.TimestampLayout, n.Timestamp)
			if err == nil && ts.Before(cutoff) {
				removed++
				continue
			}
			kept = append(kept, n)
		}
		if removed == 0 {
			return nil
		}
		return kept
	})
	return removed
}

// UnreadCount is derived on every call, never stored.
func (r *NotificationRepository) UnreadCount(ctx context.Context) int {
	count := 0
	for _, n := range r.List(ctx) {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func decodeNotifications(raw json.RawMessage) []models.Notification {
	notifications := []models.Notification{}
	if raw != nil {
		json.Unmarshal(raw, &notifications)
	}
	return notifications
}
