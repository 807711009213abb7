package services

import (
	"context"
	"fmt"

	"decor-backend/internal/models"
	"decor-backend/internal/repositories"
)

type PortfolioService struct {
	Repo     *repositories.PortfolioRepository
	Notifier *NotificationService
}

func NewPortfolioService(repo *repositories.PortfolioRepository, notifier *NotificationService) *PortfolioService {
	return &PortfolioService{Repo: repo, Notifier: notifier}
}

func (s *PortfolioService) ListItems(ctx context.Context) []models.PortfolioItem {
	return s.Repo.List(ctx)
}

// PublishedItems is the public gallery view.
func (s *PortfolioService) PublishedItems(ctx context.Context) []models.PortfolioItem {
	published := []models.PortfolioItem{}
	for _, item := range s.Repo.List(ctx) {
		if item.Status == models.PortfolioStatusPublished {
			published = append(published, item)
		}
	}
	return published
}

// FeaturedItems returns published items flagged for the landing page.
func (s *PortfolioService) FeaturedItems(ctx context.Context) []models.PortfolioItem {
	featured := []models.PortfolioItem{}
	for _, item := range s.PublishedItems(ctx) {
		if item.Featured {
			featured = append(featured, item)
		}
	}
	return featured
}

func (s *PortfolioService) GetItem(ctx context.Context, id string) (*models.PortfolioItem, error) {
	return s.Repo.Get(ctx, id)
}

func (s *PortfolioService) CreateItem(ctx context.Context, req *models.CreatePortfolioItemRequest) *models.PortfolioItem {
	item := &models.PortfolioItem{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      req.Status,
		Image:       req.Image,
		Tags:        req.Tags,
		EventDate:   req.EventDate,
		ClientName:  req.ClientName,
		Featured:    req.Featured,
	}
	if item.Status == "" {
		item.Status = models.PortfolioStatusDraft
	}
	s.Repo.Create(ctx, item)

	s.Notifier.Record(ctx, &models.Notification{
		Type:       models.NotificationTypeCreate,
		Category:   "portfolio",
		Title:      "Portfolio item created",
		Message:    fmt.Sprintf("Portfolio item %q was created", item.Title),
		EntityID:   item.ID,
		EntityName: item.Title,
		Priority:   models.NotificationPriorityMedium,
	})
	return item
}

func (s *PortfolioService) UpdateItem(ctx context.Context, id string, req *models.UpdatePortfolioItemRequest) (*models.PortfolioItem, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	item := &models.PortfolioItem{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      req.Status,
		Image:       req.Image,
		Tags:        req.Tags,
		EventDate:   req.EventDate,
		ClientName:  req.ClientName,
		Views:       req.Views,
		Likes:       req.Likes,
		Featured:    req.Featured,
	}
	if err := s.Repo.Update(ctx, item); err != nil {
		return nil, err
	}

	n := &models.Notification{
		Type:       models.NotificationTypeUpdate,
		Category:   "portfolio",
		Title:      "Portfolio item updated",
		Message:    fmt.Sprintf("Portfolio item %q was updated", item.Title),
		EntityID:   item.ID,
		EntityName: item.Title,
		Priority:   models.NotificationPriorityLow,
	}
	if existing.Status != item.Status {
		n.Type = models.NotificationTypeStatusChange
		if item.Status == models.PortfolioStatusArchived {
			n.Type = models.NotificationTypeArchive
		}
		n.Title = "Portfolio status changed"
		n.Message = fmt.Sprintf("Portfolio item %q moved from %s to %s", item.Title, existing.Status, item.Status)
		n.Metadata = &models.ValueChange{OldValue: existing.Status, NewValue: item.Status}
	}
	s.Notifier.Record(ctx, n)
	return item, nil
}

func (s *PortfolioService) DeleteItem(ctx context.Context, id string) error {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	s.Repo.Delete(ctx, id)

	s.Notifier.Record(ctx, &models.Notification{
		Type:       models.NotificationTypeDelete,
		Category:   "portfolio",
		Title:      "Portfolio item deleted",
		Message:    fmt.Sprintf("Portfolio item %q was deleted", existing.Title),
		EntityID:   existing.ID,
		EntityName: existing.Title,
		Priority:   models.NotificationPriorityHigh,
	})
	return nil
}

func (s *PortfolioService) BulkDeleteItems(ctx context.Context, ids []string) int {
	removed := s.Repo.BulkDelete(ctx, ids)
	if removed > 0 {
		s.Notifier.Record(ctx, &models.Notification{
			Type:     models.NotificationTypeDelete,
			Category: "portfolio",
			Title:    "Portfolio items deleted",
			Message:  fmt.Sprintf("%d portfolio items were deleted", removed),
			Priority: models.NotificationPriorityHigh,
		})
	}
	return removed
}

// RecordView bumps the view counter for a published item. Unknown ids and
// unpublished items are ignored.
func (s *PortfolioService) RecordView(ctx context.Context, id string) {
	item, err := s.Repo.Get(ctx, id)
	if err != nil || item.Status != models.PortfolioStatusPublished {
		return
	}
	item.Views++
	s.Repo.Update(ctx, item)
}

// PortfolioStats is recomputed from the full collection on every call.
type PortfolioStats struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	ByCategory map[string]int `json:"byCategory"`
	TotalViews int            `json:"totalViews"`
	TotalLikes int            `json:"totalLikes"`
	Featured   int            `json:"featured"`
}

func (s *PortfolioService) Stats(ctx context.Context) *PortfolioStats {
	stats := &PortfolioStats{
		ByStatus:   map[string]int{},
		ByCategory: map[string]int{},
	}
	for _, item := range s.Repo.List(ctx) {
		stats.Total++
		stats.ByStatus[item.Status]++
		if item.Category != "" {
			stats.ByCategory[item.Category]++
		}
		stats.TotalViews += item.Views
		stats.TotalLikes += item.Likes
		if item.Featured {
			stats.Featured++
		}
	}
	return stats
}
