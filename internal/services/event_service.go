package services

import (
	"context"
	"fmt"
	"sort"

	"decor-backend/internal/models"
	"decor-backend/internal/repositories"
)

type EventService struct {
	Repo     *repositories.EventRepository
	Notifier *NotificationService
}

func NewEventService(repo *repositories.EventRepository, notifier *NotificationService) *EventService {
	return &EventService{Repo: repo, Notifier: notifier}
}

func (s *EventService) ListEvents(ctx context.Context) []models.Event {
	return s.Repo.List(ctx)
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return s.Repo.Get(ctx, id)
}

func (s *EventService) CreateEvent(ctx context.Context, req *models.CreateEventRequest) *models.Event {
	event := &models.Event{
		Title:       req.Title,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		EventType:   req.EventType,
		EventDate:   req.EventDate,
		EventTime:   req.EventTime,
		Location:    req.Location,
		Budget:      req.Budget,
		Status:      req.Status,
		Description: req.Description,
		Services:    req.Services,
	}
	if event.Status == "" {
		event.Status = models.EventStatusPlanning
	}
	s.Repo.Create(ctx, event)

	s.Notifier.Record(ctx, &models.Notification{
		Type:       models.NotificationTypeCreate,
		Category:   "events",
		Title:      "Event created",
		Message:    fmt.Sprintf("Event %q was created", event.Title),
		EntityID:   event.ID,
		EntityName: event.Title,
		Priority:   models.NotificationPriorityMedium,
	})
	return event
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, req *models.UpdateEventRequest) (*models.Event, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:          id,
		Title:       req.Title,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		EventType:   req.EventType,
		EventDate:   req.EventDate,
		EventTime:   req.EventTime,
		Location:    req.Location,
		Budget:      req.Budget,
		Status:      req.Status,
		Description: req.Description,
		Services:    req.Services,
	}
	if err := s.Repo.Update(ctx, event); err != nil {
		return nil, err
	}

	n := &models.Notification{
		Type:       models.NotificationTypeUpdate,
		Category:   "events",
		Title:      "Event updated",
		Message:    fmt.Sprintf("Event %q was updated", event.Title),
		EntityID:   event.ID,
		EntityName: event.Title,
		Priority:   models.NotificationPriorityLow,
	}
	if existing.Status != event.Status {
		n.Type = models.NotificationTypeStatusChange
		n.Title = "Event status changed"
		n.Message = fmt.Sprintf("Event %q moved from %s to %s", event.Title, existing.Status, event.Status)
		n.Priority = models.NotificationPriorityMedium
		n.Metadata = &models.ValueChange{OldValue: existing.Status, NewValue: event.Status}
	}
	s.Notifier.Record(ctx, n)
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	s.Repo.Delete(ctx, id)

	s.Notifier.Record(ctx, &models.Notification{
		Type:       models.NotificationTypeDelete,
		Category:   "events",
		Title:      "Event deleted",
		Message:    fmt.Sprintf("Event %q was deleted", existing.Title),
		EntityID:   existing.ID,
		EntityName: existing.Title,
		Priority:   models.NotificationPriorityHigh,
	})
	return nil
}

// BulkDeleteEvents removes all listed ids and records one notification for
// the whole batch rather than one per record.
func (s *EventService) BulkDeleteEvents(ctx context.Context, ids []string) int {
	removed := s.Repo.BulkDelete(ctx, ids)
	if removed > 0 {
		s.Notifier.Record(ctx, &models.Notification{
			Type:     models.NotificationTypeDelete,
			Category: "events",
			Title:    "Events deleted",
			Message:  fmt.Sprintf("%d events were deleted", removed),
			Priority: models.NotificationPriorityHigh,
		})
	}
	return removed
}

// CompletedEvents returns completed events, most recent event date first.
// Dates are the stored YYYY-MM-DD strings, so a plain string compare orders
// them correctly.
func (s *EventService) CompletedEvents(ctx context.Context) []models.Event {
	completed := []models.Event{}
	for _, e := range s.Repo.List(ctx) {
		if e.Status == models.EventStatusCompleted {
			completed = append(completed, e)
		}
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].EventDate > completed[j].EventDate
	})
	return completed
}

// EventStats is recomputed from the full collection on every call.
type EventStats struct {
	Total     int            `json:"total"`
	ByStatus  map[string]int `json:"byStatus"`
	ByType    map[string]int `json:"byType"`
	Upcoming  int            `json:"upcoming"`
	ThisMonth int            `json:"thisMonth"`
}

func (s *EventService) Stats(ctx context.Context, today, monthPrefix string) *EventStats {
	stats := &EventStats{
		ByStatus: map[string]int{},
		ByType:   map[string]int{},
	}
	for _, e := range s.Repo.List(ctx) {
		stats.Total++
		stats.ByStatus[e.Status]++
		if e.EventType != "" {
			stats.ByType[e.EventType]++
		}
		if e.EventDate > today && e.Status != models.EventStatusCancelled && e.Status != models.EventStatusCompleted {
			stats.Upcoming++
		}
		if monthPrefix != "" && len(e.EventDate) >= len(monthPrefix) && e.EventDate[:len(monthPrefix)] == monthPrefix {
			stats.ThisMonth++
		}
	}
	return stats
}
