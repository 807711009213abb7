package repositories

import (
	"context"
	"encoding/json"

	"decor-backend/internal/models"
	"decor-backend/internal/store"
)

type ClientRepository struct {
	Store *store.Store
}

func NewClientRepository(st *store.Store) *ClientRepository {
	return &ClientRepository{Store: st}
}

func (r *ClientRepository) List(ctx context.Context) []models.Client {
	clients := []models.Client{}
	r.Store.Read(ctx, models.KeyClients, &clients)
	return clients
}

func (r *ClientRepository) Get(ctx context.Context, id string) (*models.Client, error) {
	for _, c := range r.List(ctx) {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *ClientRepository) Create(ctx context.Context, c *models.Client) {
	c.ID = models.NewID()
	c.LastUpdated = models.Now()

	r.Store.Update(ctx, models.KeyClients, func(raw json.RawMessage) any {
		return append(decodeClients(raw), *c)
	})
}

func (r *ClientRepository) Update(ctx context.Context, c *models.Client) error {
	err := ErrNotFound
	r.Store.Update(ctx, models.KeyClients, func(raw json.RawMessage) any {
		clients := decodeClients(raw)
		for i := range clients {
			if clients[i].ID == c.ID {
				c.LastUpdated = models.Now()
				clients[i] = *c
				err = nil
				return clients
			}
		}
		return nil
	})
	return err
}

func (r *ClientRepository) Delete(ctx context.Context, id string) {
	r.BulkDelete(ctx, []string{id})
}

func (r *ClientRepository) BulkDelete(ctx context.Context, ids []string) int {
	removed := 0
	targets := make(map[string]bool, len(ids))
	for _, id := range ids {
		targets[id] = true
	}

	r.Store.Update(ctx, models.KeyClients, func(raw json.RawMessage) any {
		clients := decodeClients(raw)
		kept := clients[:0]
		for _, c := range clients {
			if targets[c.ID] {
				removed++
				continue
			}
			kept = append(kept, c)
		}
		if removed == 0 {
			return nil
		}
		return kept
	})
	return removed
}

func (r *ClientRepository) Seed(ctx context.Context, clients []models.Client) bool {
	var existing []models.Client
	if r.Store.Read(ctx, models.KeyClients, &existing) {
		return false
	}
	r.Store.Write(ctx, models.KeyClients, clients)
	return true
}

func (r *ClientRepository) ReplaceAll(ctx context.Context, clients []models.Client) {
	if clients == nil {
		clients = []models.Client{}
	}
	r.Store.Write(ctx, models.KeyClients, clients)
}

func decodeClients(raw json.RawMessage) []models.Client {
	clients := []models.Client{}
	if raw != nil {
		json.Unmarshal(raw, &clients)
	}
	return clients
}
