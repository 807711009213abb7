package services

import (
	"context"
	"fmt"

	"decor-backend/internal/models"
	"decor-backend/internal/repositories"
)

type ClientService struct {
	Repo     *repositories.ClientRepository
	Notifier *NotificationService
}

func NewClientService(repo *repositories.ClientRepository, notifier *NotificationService) *ClientService {
	return &ClientService{Repo: repo, Notifier: notifier}
}

func (s *ClientService) ListClients(ctx context.Context) []models.Client {
	return s.Repo.List(ctx)
}

func (s *ClientService) GetClient(ctx context.Context, id string) (*models.Client, error) {
	return s.Repo.Get(ctx, id)
}

// Testimonials is the public view: clients rated 4 or above whose notes
// field carries the testimonial text.
func (s *ClientService) Testimonials(ctx context.Context) []models.Client {
	testimonials := []models.Client{}
	for _, c := range s.Repo.List(ctx) {
		if c.Rating >= 4 && c.Notes != "" {
			testimonials = append(testimonials, c)
		}
	}
	return testimonials
}

func (s *ClientService) CreateClient(ctx context.Context, req *models.CreateClientRequest) *models.Client {
	client := &models.Client{
		Name:                    req.Name,
		Email:                   req.Email,
		Phone:                   req.Phone,
		Location:                req.Location,
		Status:                  req.Status,
		TotalEvents:             req.TotalEvents,
		TotalSpent:              req.TotalSpent,
		PreferredServices:       req.PreferredServices,
		Notes:                   req.Notes,
		Rating:                  req.Rating,
		CommunicationPreference: req.CommunicationPreference,
	}
	if client.Status == "" {
		client.Status = models.ClientStatusPending
	}
	s.Repo.Create(ctx, client)

	s.Notifier.Record(ctx, &models.Notification{
		Type:       models.NotificationTypeCreate,
		Category:   "clients",
		Title:      "Client added",
		Message:    fmt.Sprintf("Client %q was added", client.Name),
		EntityID:   client.ID,
		EntityName: client.Name,
		Priority:   models.NotificationPriorityMedium,
	})
	return client
}

func (s *ClientService) UpdateClient(ctx context.Context, id string, req *models.UpdateClientRequest) (*models.Client, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	client := &models.Client{
		ID:                      id,
		Name:                    req.Name,
		Email:                   req.Email,
		Phone:                   req.Phone,
		Location:                req.Location,
		Status:                  req.Status,
		TotalEvents:             req.TotalEvents,
		TotalSpent:              req.TotalSpent,
		PreferredServices:       req.PreferredServices,
		Notes:                   req.Notes,
		Rating:                  req.Rating,
		CommunicationPreference: req.CommunicationPreference,
	}
	if err := s.Repo.Update(ctx, client); err != nil {
		return nil, err
	}

	n := &models.Notification{
		Type:       models.NotificationTypeUpdate,
		Category:   "clients",
		Title:      "Client updated",
		Message:    fmt.Sprintf("Client %q was updated", client.Name),
		EntityID:   client.ID,
		EntityName: client.Name,
		Priority:   models.NotificationPriorityLow,
	}
	if existing.Status != client.Status {
		n.Type = models.NotificationTypeStatusChange
		n.Title = "Client status changed"
		n.Message = fmt.Sprintf("Client %q moved from %s to %s", client.Name, existing.Status, client.Status)
		n.Metadata = &models.ValueChange{OldValue: existing.Status, NewValue: client.Status}
	}
	s.Notifier.Record(ctx, n)
	return client, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	s.Repo.Delete(ctx, id)

	s.Notifier.Record(ctx, &models.Notification{
		Type:       models.NotificationTypeDelete,
		Category:   "clients",
		Title:      "Client deleted",
		Message:    fmt.Sprintf("Client %q was deleted", existing.Name),
		EntityID:   existing.ID,
		EntityName: existing.Name,
		Priority:   models.NotificationPriorityHigh,
	})
	return nil
}

func (s *ClientService) BulkDeleteClients(ctx context.Context, ids []string) int {
	removed := s.Repo.BulkDelete(ctx, ids)
	if removed > 0 {
		s.Notifier.Record(ctx, &models.Notification{
			Type:     models.NotificationTypeDelete,
			Category: "clients",
			Title:    "Clients deleted",
			Message:  fmt.Sprintf("%d clients were deleted", removed),
			Priority: models.NotificationPriorityHigh,
		})
	}
	return removed
}

// ClientStats is recomputed from the full collection on every call.
type ClientStats struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"byStatus"`
	VIP           int            `json:"vip"`
	AverageRating float64        `json:"averageRating"`
}

func (s *ClientService) Stats(ctx context.Context) *ClientStats {
	stats := &ClientStats{ByStatus: map[string]int{}}
	rated := 0
	ratingSum := 0
	for _, c := range s.Repo.List(ctx) {
		stats.Total++
		stats.ByStatus[c.Status]++
		if c.Status == models.ClientStatusVIP {
			stats.VIP++
		}
		if c.Rating > 0 {
			rated++
			ratingSum += c.Rating
		}
	}
	if rated > 0 {
		stats.AverageRating = float64(ratingSum) / float64(rated)
	}
	return stats
}
