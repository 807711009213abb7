package repositories

import (
	"context"
	"encoding/json"

	"decor-backend/internal/models"
	"decor-backend/internal/store"
)

type ServiceRepository struct {
	Store *store.Store
}

func NewServiceRepository(st *store.Store) *ServiceRepository {
	return &ServiceRepository{Store: st}
}

func (r *ServiceRepository) List(ctx context.Context) []models.Service {
	services := []models.Service{}
	r.Store.Read(ctx, models.KeyServices, &services)
	return services
}

func (r *ServiceRepository) Get(ctx context.Context, id string) (*models.Service, error) {
	for _, s := range r.List(ctx) {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (r *ServiceRepository) Create(ctx context.Context, s *models.Service) {
	s.ID = models.NewID()
	s.LastUpdated = models.Now()

	r.Store.Update(ctx, models.KeyServices, func(raw json.RawMessage) any {
		return append(decodeServices(raw), *s)
	})
}

func (r *ServiceRepository) Update(ctx context.Context, s *models.Service) error {
	err := ErrNotFound
	r.Store.Update(ctx, models.KeyServices, func(raw json.RawMessage) any {
		services := decodeServices(raw)
		for i := range services {
			if services[i].ID == s.ID {
				s.LastUpdated = models.Now()
				services[i] = *s
				err = nil
				return services
			}
		}
		return nil
	})
	return err
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) {
	r.BulkDelete(ctx, []string{id})
}

func (r *ServiceRepository) BulkDelete(ctx context.Context, ids []string) int {
	removed := 0
	targets := make(map[string]bool, len(ids))
	for _, id := range ids {
		targets[id] = true
	}

	r.Store.Update(ctx, models.KeyServices, func(raw json.RawMessage) any {
		services := decodeServices(raw)
		kept := services[:0]
		for _, s := range services {
			if targets[s.ID] {
				removed++
				continue
			}
			kept = append(kept, s)
		}
		if removed == 0 {
			return nil
		}
		return kept
	})
	return removed
}

func (r *ServiceRepository) Seed(ctx context.Context, services []models.Service) bool {
	var existing []models.Service
	if r.Store.Read(ctx, models.KeyServices, &existing) {
		return false
	}
	r.Store.Write(ctx, models.KeyServices, services)
	return true
}

func (r *ServiceRepository) ReplaceAll(ctx context.Context, services []models.Service) {
	if services == nil {
		services = []models.Service{}
	}
	r.Store.Write(ctx, models.KeyServices, services)
}

func decodeServices(raw json.RawMessage) []models.Service {
	services := []models.Service{}
	if raw != nil {
		json.Unmarshal(raw, &services)
	}
	return services
}
