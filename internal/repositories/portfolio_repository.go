package repositories

import (
	"context"
	"encoding/json"

	"decor-backend/internal/models"
	"decor-backend/internal/store"
)

type PortfolioRepository struct {
	Store *store.Store
}

func NewPortfolioRepository(st *store.Store) *PortfolioRepository {
	return &PortfolioRepository{Store: st}
}

func (r *PortfolioRepository) List(ctx context.Context) []models.PortfolioItem {
	items := []models.PortfolioItem{}
	r.Store.Read(ctx, models.KeyPortfolio, &items)
	return items
}

func (r *PortfolioRepository) Get(ctx context.Context, id string) (*models.PortfolioItem, error) {
	for _, item := range r.List(ctx) {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func (r *PortfolioRepository) Create(ctx context.Context, item *models.PortfolioItem) {
	item.ID = models.NewID()
	item.LastUpdated = models.Now()

	r.Store.Update(ctx, models.KeyPortfolio, func(raw json.RawMessage) any {
		return append(decodePortfolio(raw), *item)
	})
}

func (r *PortfolioRepository) Update(ctx context.Context, item *models.PortfolioItem) error {
	err := ErrNotFound
	r.Store.Update(ctx, models.KeyPortfolio, func(raw json.RawMessage) any {
		items := decodePortfolio(raw)
		for i := range items {
			if items[i].ID == item.ID {
				item.LastUpdated = models.Now()
				items[i] = *item
				err = nil
				return items
			}
		}
		return nil
	})
	return err
}

func (r *PortfolioRepository) Delete(ctx context.Context, id string) {
	r.BulkDelete(ctx, []string{id})
}

func (r *PortfolioRepository) BulkDelete(ctx context.Context, ids []string) int {
	removed := 0
	targets := make(map[string]bool, len(ids))
	for _, id := range ids {
		targets[id] = true
	}

	r.Store.Update(ctx, models.KeyPortfolio, func(raw json.RawMessage) any {
		items := decodePortfolio(raw)
		kept := items[:0]
		for _, item := range items {
			if targets[item.ID] {
				removed++
				continue
			}
			kept = append(kept, item)
		}
		if removed == 0 {
			return nil
		}
		return kept
	})
	return removed
}

func (r *PortfolioRepository) Seed(ctx context.Context, items []models.PortfolioItem) bool {
	var existing []models.PortfolioItem
	if r.Store.Read(ctx, models.KeyPortfolio, &existing) {
		return false
	}
	r.Store.Write(ctx, models.KeyPortfolio, items)
	return true
}

func (r *PortfolioRepository) ReplaceAll(ctx context.Context, items []models.PortfolioItem) {
	if items == nil {
		items = []models.PortfolioItem{}
	}
	r.Store.Write(ctx, models.KeyPortfolio, items)
}

func decodePortfolio(raw json.RawMessage) []models.PortfolioItem {
	items := []models.PortfolioItem{}
	if raw != nil {
		json.Unmarshal(raw, &items)
	}
	return items
}
