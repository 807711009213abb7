package repositories

import (
	"context"
	"encoding/json"

	"decor-backend/internal/models"
	"decor-backend/internal/store"
)

type EventRepository struct {
	Store *store.Store
}

func NewEventRepository(st *store.Store) *EventRepository {
	return &EventRepository{Store: st}
}

func (r *EventRepository) List(ctx context.Context) []models.Event {
	events := []models.Event{}
	r.Store.Read(ctx, models.KeyEvents, &events)
	return events
}

func (r *EventRepository) Get(ctx context.Context, id string) (*models.Event, error) {
	for _, e := range r.List(ctx) {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

// Create assigns the id and lastUpdated stamp and appends the event.
func (r *EventRepository) Create(ctx context.Context, e *models.Event) {
	e.ID = models.NewID()
	e.LastUpdated = models.Now()

	r.Store.Update(ctx, models.KeyEvents, func(raw json.RawMessage) any {
		events := decodeEvents(raw)
		return append(events, *e)
	})
}

func (r *EventRepository) Update(ctx context.Context, e *models.Event) error {
	err := ErrNotFound
	r.Store.Update(ctx, models.KeyEvents, func(raw json.RawMessage) any {
		events := decodeEvents(raw)
		for i := range events {
			if events[i].ID == e.ID {
				e.LastUpdated = models.Now()
				events[i] = *e
				err = nil
				return events
			}
		}
		return nil
	})
	return err
}

// Delete removes the event with the given id; a missing id is a no-op.
func (r *EventRepository) Delete(ctx context.Context, id string) {
	r.BulkDelete(ctx, []string{id})
}

// BulkDelete removes all listed ids in one collection rewrite, preserving
// the order of the surviving records. It returns the number removed.
func (r *EventRepository) BulkDelete(ctx context.Context, ids []string) int {
	removed := 0
	targets := make(map[string]bool, len(ids))
	for _, id := range ids {
		targets[id] = true
	}

	r.Store.Update(ctx, models.KeyEvents, func(raw json.RawMessage) any {
		events := decodeEvents(raw)
		kept := events[:0]
		for _, e := range events {
			if targets[e.ID] {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		if removed == 0 {
			return nil
		}
		return kept
	})
	return removed
}

// Seed writes the sample records only when the collection has never been
// persisted. Returns true when the seed was applied.
func (r *EventRepository) Seed(ctx context.Context, events []models.Event) bool {
	var existing []models.Event
	if r.Store.Read(ctx, models.KeyEvents, &existing) {
		return false
	}
	r.Store.Write(ctx, models.KeyEvents, events)
	return true
}

// ReplaceAll rewrites the whole collection; used by backup restore.
func (r *EventRepository) ReplaceAll(ctx context.Context, events []models.Event) {
	if events == nil {
		events = []models.Event{}
	}
	r.Store.Write(ctx, models.KeyEvents, events)
}

func decodeEvents(raw json.RawMessage) []models.Event {
	events := []models.Event{}
	if raw != nil {
		json.Unmarshal(raw, &events)
	}
	return events
}
