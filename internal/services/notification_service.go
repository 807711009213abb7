package services

import (
	"context"
	"log"
	"sync"
	"time"

	"decor-backend/internal/metrics"
	"decor-backend/internal/models"
	"decor-backend/internal/repositories"
)

// NotificationService records admin-action notifications and runs the
// retention sweeper that drops records older than the configured window.
type NotificationService struct {
	Repo *repositories.NotificationRepository

	retention     time.Duration
	sweepInterval time.Duration
	stopChan      chan struct{}
	wg            sync.WaitGroup
}

func NewNotificationService(repo *repositories.NotificationRepository, retentionDays, sweepIntervalMinutes int) *NotificationService {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	if sweepIntervalMinutes <= 0 {
		sweepIntervalMinutes = 60
	}
	return &NotificationService{
		Repo:          repo,
		retention:     time.Duration(retentionDays) * 24 * time.Hour,
		sweepInterval: time.Duration(sweepIntervalMinutes) * time.Minute,
		stopChan:      make(chan struct{}),
	}
}

// Record appends a notification, filling defaults for blank fields.
func (s *NotificationService) Record(ctx context.Context, n *models.Notification) *models.Notification {
	if n.ActionBy == "" {
		n.ActionBy = "admin"
	}
	if n.Priority == "" {
		n.Priority = models.NotificationPriorityLow
	}
	s.Repo.Append(ctx, n)
	return n
}

func (s *NotificationService) List(ctx context.Context) []models.Notification {
	return s.Repo.List(ctx)
}

func (s *NotificationService) UnreadCount(ctx context.Context) int {
	return s.Repo.UnreadCount(ctx)
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) {
	s.Repo.MarkRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context) {
	s.Repo.MarkAllRead(ctx)
}

func (s *NotificationService) Delete(ctx context.Context, id string) {
	s.Repo.Delete(ctx, id)
}

func (s *NotificationService) DeleteAll(ctx context.Context) {
	s.Repo.DeleteAll(ctx)
}

// Purge drops notifications older than the retention window.
func (s *NotificationService) Purge(ctx context.Context) int {
	cutoff := time.Now().Add(-s.retention)
	removed := s.Repo.DeleteOlderThan(ctx, cutoff)
	if removed > 0 {
		metrics.NotificationsPurgedTotal.Add(float64(removed))
		log.Printf("[Notifications] Purged %d notifications older than %s", removed, cutoff.Format(time.RFC3339))
	}
	return removed
}

// Start runs the retention sweeper until Stop is called. The first sweep
// happens immediately so a long-stopped instance catches up on startup.
func (s *NotificationService) Start() {
	log.Println("[Notifications] Starting retention sweeper...")

	s.Purge(context.Background())

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.Purge(context.Background())
			case <-s.stopChan:
				log.Println("[Notifications] Stopping retention sweeper...")
				return
			}
		}
	}()
}

func (s *NotificationService) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}
