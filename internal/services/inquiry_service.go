package services

import (
	"context"
	"fmt"
	"sort"

	"decor-backend/internal/models"
	"decor-backend/internal/repositories"
)

type InquiryService struct {
	Repo     *repositories.InquiryRepository
	Notifier *NotificationService
}

func NewInquiryService(repo *repositories.InquiryRepository, notifier *NotificationService) *InquiryService {
	return &InquiryService{Repo: repo, Notifier: notifier}
}

// ListInquiries returns inquiries newest first by submission time. The ids
// carry the submission epoch millis as their sortable prefix, but the
// submittedAt stamp is the authoritative ordering key.
func (s *InquiryService) ListInquiries(ctx context.Context) []models.Inquiry {
	inquiries := s.Repo.List(ctx)
	sort.SliceStable(inquiries, func(i, j int) bool {
		return inquiries[i].SubmittedAt > inquiries[j].SubmittedAt
	})
	return inquiries
}

func (s *InquiryService) GetInquiry(ctx context.Context, id string) (*models.Inquiry, error) {
	return s.Repo.Get(ctx, id)
}

// Submit handles the public contact form. Every submission also raises a
// high-priority notification so it surfaces in the admin bell.
func (s *InquiryService) Submit(ctx context.Context, req *models.SubmitInquiryRequest) *models.Inquiry {
	inquiry := &models.Inquiry{
		ClientName: req.ClientName,
		Email:      req.Email,
		Phone:      req.Phone,
		EventType:  req.EventType,
		EventDate:  req.EventDate,
		Location:   req.Location,
		Budget:     req.Budget,
		Message:    req.Message,
	}
	s.Repo.Create(ctx, inquiry)

	s.Notifier.Record(ctx, &models.Notification{
		Type:       models.NotificationTypeCreate,
		Category:   "inquiries",
		Title:      "New inquiry received",
		Message:    fmt.Sprintf("%s sent an inquiry about a %s", inquiry.ClientName, inquiry.EventType),
		EntityID:   inquiry.ID,
		EntityName: inquiry.ClientName,
		ActionBy:   "visitor",
		Priority:   models.NotificationPriorityHigh,
	})
	return inquiry
}

func (s *InquiryService) UpdateInquiry(ctx context.Context, id string, req *models.UpdateInquiryRequest) (*models.Inquiry, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	inquiry := &models.Inquiry{
		ID:         id,
		ClientName: req.ClientName,
		Email:      req.Email,
		Phone:      req.Phone,
		EventType:  req.EventType,
		EventDate:  req.EventDate,
		Location:   req.Location,
		Budget:     req.Budget,
		Message:    req.Message,
		Status:     req.Status,
	}
	if inquiry.Status == "" {
		inquiry.Status = existing.Status
	}
	if err := s.Repo.Update(ctx, inquiry); err != nil {
		return nil, err
	}

	if existing.Status != inquiry.Status {
		s.Notifier.Record(ctx, &models.Notification{
			Type:       models.NotificationTypeStatusChange,
			Category:   "inquiries",
			Title:      "Inquiry status changed",
			Message:    fmt.Sprintf("Inquiry from %q moved from %s to %s", inquiry.ClientName, existing.Status, inquiry.Status),
			EntityID:   inquiry.ID,
			EntityName: inquiry.ClientName,
			Priority:   models.NotificationPriorityMedium,
			Metadata:   &models.ValueChange{OldValue: existing.Status, NewValue: inquiry.Status},
		})
	}
	return inquiry, nil
}

func (s *InquiryService) DeleteInquiry(ctx context.Context, id string) error {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	s.Repo.Delete(ctx, id)

	s.Notifier.Record(ctx, &models.Notification{
		Type:       models.NotificationTypeDelete,
		Category:   "inquiries",
		Title:      "Inquiry deleted",
		Message:    fmt.Sprintf("Inquiry from %q was deleted", existing.ClientName),
		EntityID:   existing.ID,
		EntityName: existing.ClientName,
		Priority:   models.NotificationPriorityMedium,
	})
	return nil
}

func (s *InquiryService) BulkDeleteInquiries(ctx context.Context, ids []string) int {
	removed := s.Repo.BulkDelete(ctx, ids)
	if removed > 0 {
		s.Notifier.Record(ctx, &models.Notification{
			Type:     models.NotificationTypeDelete,
			Category: "inquiries",
			Title:    "Inquiries deleted",
			Message:  fmt.Sprintf("%d inquiries were deleted", removed),
			Priority: models.NotificationPriorityMedium,
		})
	}
	return removed
}

// InquiryStats is recomputed from the full collection on every call.
type InquiryStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	New      int            `json:"new"`
}

func (s *InquiryService) Stats(ctx context.Context) *InquiryStats {
	stats := &InquiryStats{ByStatus: map[string]int{}}
	for _, q := range s.Repo.List(ctx) {
		stats.Total++
		stats.ByStatus[q.Status]++
		if q.Status == models.InquiryStatusNew {
			stats.New++
		}
	}
	return stats
}
