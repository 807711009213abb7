package services

import (
	"context"
	"fmt"

	"decor-backend/internal/models"
	"decor-backend/internal/repositories"
)

type ServiceCatalogService struct {
	Repo     *repositories.ServiceRepository
	Notifier *NotificationService
}

func NewServiceCatalogService(repo *repositories.ServiceRepository, notifier *NotificationService) *ServiceCatalogService {
	return &ServiceCatalogService{Repo: repo, Notifier: notifier}
}

func (s *ServiceCatalogService) ListServices(ctx context.Context) []models.Service {
	return s.Repo.List(ctx)
}

// ActiveServices is the public catalog view.
func (s *ServiceCatalogService) ActiveServices(ctx context.Context) []models.Service {
	active := []models.Service{}
	for _, svc := range s.Repo.List(ctx) {
		if svc.Status == models.ServiceStatusActive {
			active = append(active, svc)
		}
	}
	return active
}

func (s *ServiceCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ServiceCatalogService) CreateService(ctx context.Context, req *models.CreateServiceRequest) *models.Service {
	svc := &models.Service{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Status:        req.Status,
		BasePrice:     req.BasePrice,
		Features:      req.Features,
		Popularity:    req.Popularity,
		TotalBookings: req.TotalBookings,
		AverageRating: req.AverageRating,
	}
	if svc.Status == "" {
		svc.Status = models.ServiceStatusDraft
	}
	s.Repo.Create(ctx, svc)

	s.Notifier.Record(ctx, &models.Notification{
		Type:       models.NotificationTypeCreate,
		Category:   "services",
		Title:      "Service created",
		Message:    fmt.Sprintf("Service %q was created", svc.Title),
		EntityID:   svc.ID,
		EntityName: svc.Title,
		Priority:   models.NotificationPriorityMedium,
	})
	return svc
}

func (s *ServiceCatalogService) UpdateService(ctx context.Context, id string, req *models.UpdateServiceRequest) (*models.Service, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	svc := &models.Service{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Status:        req.Status,
		BasePrice:     req.BasePrice,
		Features:      req.Features,
		Popularity:    req.Popularity,
		TotalBookings: req.TotalBookings,
		AverageRating: req.AverageRating,
	}
	if err := s.Repo.Update(ctx, svc); err != nil {
		return nil, err
	}

	n := &models.Notification{
		Type:       models.NotificationTypeUpdate,
		Category:   "services",
		Title:      "Service updated",
		Message:    fmt.Sprintf("Service %q was updated", svc.Title),
		EntityID:   svc.ID,
		EntityName: svc.Title,
		Priority:   models.NotificationPriorityLow,
	}
	if existing.Status != svc.Status {
		n.Type = models.NotificationTypeStatusChange
		n.Title = "Service status changed"
		n.Message = fmt.Sprintf("Service %q moved from %s to %s", svc.Title, existing.Status, svc.Status)
		n.Metadata = &models.ValueChange{OldValue: existing.Status, NewValue: svc.Status}
	}
	s.Notifier.Record(ctx, n)
	return svc, nil
}

func (s *ServiceCatalogService) DeleteService(ctx context.Context, id string) error {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	s.Repo.Delete(ctx, id)

	s.Notifier.Record(ctx, &models.Notification{
		Type:       models.NotificationTypeDelete,
		Category:   "services",
		Title:      "Service deleted",
		Message:    fmt.Sprintf("Service %q was deleted", existing.Title),
		EntityID:   existing.ID,
		EntityName: existing.Title,
		Priority:   models.NotificationPriorityHigh,
	})
	return nil
}

func (s *ServiceCatalogService) BulkDeleteServices(ctx context.Context, ids []string) int {
	removed := s.Repo.BulkDelete(ctx, ids)
	if removed > 0 {
		s.Notifier.Record(ctx, &models.Notification{
			Type:     models.NotificationTypeDelete,
			Category: "services",
			Title:    "Services deleted",
			Message:  fmt.Sprintf("%d services were deleted", removed),
			Priority: models.NotificationPriorityHigh,
		})
	}
	return removed
}

// ServiceStats is recomputed from the full collection on every call.
type ServiceStats struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"byStatus"`
	ByCategory    map[string]int `json:"byCategory"`
	TotalBookings int            `json:"totalBookings"`
}

func (s *ServiceCatalogService) Stats(ctx context.Context) *ServiceStats {
	stats := &ServiceStats{
		ByStatus:   map[string]int{},
		ByCategory: map[string]int{},
	}
	for _, svc := range s.Repo.List(ctx) {
		stats.Total++
		stats.ByStatus[svc.Status]++
		if svc.Category != "" {
			stats.ByCategory[svc.Category]++
		}
		stats.TotalBookings += svc.TotalBookings
	}
	return stats
}
