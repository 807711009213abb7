package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decor-backend/internal/models"
	"decor-backend/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(store.NewMemoryBackend())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestEventRepositoryCreateAssignsIDAndStamp(t *testing.T) {
	repo := NewEventRepository(openTestStore(t))
	ctx := context.Background()

	e := models.Event{Title: "Mehta Wedding", Status: models.EventStatusPlanning}
	repo.Create(ctx, &e)

	require.NotEmpty(t, e.ID)
	require.NotEmpty(t, e.LastUpdated)

	events := repo.List(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, e.ID, events[0].ID)
	assert.Equal(t, "Mehta Wedding", events[0].Title)
}

func TestEventRepositoryGet(t *testing.T) {
	repo := NewEventRepository(openTestStore(t))
	ctx := context.Background()

	e := models.Event{Title: "Launch Party"}
	repo.Create(ctx, &e)

	got, err := repo.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch Party", got.Title)

	_, err = repo.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventRepositoryUpdate(t *testing.T) {
	repo := NewEventRepository(openTestStore(t))
	ctx := context.Background()

	e := models.Event{Title: "Old Title", Status: models.EventStatusPlanning}
	repo.Create(ctx, &e)
	firstStamp := e.LastUpdated

	e.Title = "New Title"
	e.Status = models.EventStatusConfirmed
	require.NoError(t, repo.Update(ctx, &e))

	got, err := repo.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Title", got.Title)
	assert.Equal(t, models.EventStatusConfirmed, got.Status)
	assert.NotEmpty(t, firstStamp)

	missing := models.Event{ID: "absent", Title: "x"}
	assert.ErrorIs(t, repo.Update(ctx, &missing), ErrNotFound)
}

func TestEventRepositoryBulkDelete(t *testing.T) {
	repo := NewEventRepository(openTestStore(t))
	ctx := context.Background()

	var ids []string
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		ev := models.Event{Title: title}
		repo.Create(ctx, &ev)
		ids = append(ids, ev.ID)
	}

	removed := repo.BulkDelete(ctx, []string{ids[0], ids[2], ids[4], "unknown"})
	assert.Equal(t, 3, removed)

	events := repo.List(ctx)
	require.Len(t, events, 2)
	// Survivors keep their original order.
	assert.Equal(t, "b", events[0].Title)
	assert.Equal(t, "d", events[1].Title)
}

func TestEventRepositoryBulkDeleteNoMatches(t *testing.T) {
	repo := NewEventRepository(openTestStore(t))
	ctx := context.Background()

	ev := models.Event{Title: "keep"}
	repo.Create(ctx, &ev)

	assert.Equal(t, 0, repo.BulkDelete(ctx, []string{"x", "y"}))
	assert.Len(t, repo.List(ctx), 1)
}

func TestEventRepositorySeedOnlyOnce(t *testing.T) {
	repo := NewEventRepository(openTestStore(t))
	ctx := context.Background()

	seed := []models.Event{{ID: "s1", Title: "Seeded"}}
	assert.True(t, repo.Seed(ctx, seed))
	assert.False(t, repo.Seed(ctx, []models.Event{{ID: "s2", Title: "Again"}}))

	events := repo.List(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, "Seeded", events[0].Title)
}

func TestEventRepositorySeedSkipsExistingEmptyCollection(t *testing.T) {
	st := openTestStore(t)
	repo := NewEventRepository(st)
	ctx := context.Background()

	// An explicitly persisted empty list counts as existing data.
	st.Write(ctx, models.KeyEvents, []models.Event{})
	assert.False(t, repo.Seed(ctx, []models.Event{{ID: "s1"}}))
	assert.Empty(t, repo.List(ctx))
}

func TestEventRepositoryReplaceAll(t *testing.T) {
	repo := NewEventRepository(openTestStore(t))
	ctx := context.Background()

	ev := models.Event{Title: "before"}
	repo.Create(ctx, &ev)

	repo.ReplaceAll(ctx, []models.Event{{ID: "r1", Title: "after"}})
	events := repo.List(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, "after", events[0].Title)

	repo.ReplaceAll(ctx, nil)
	assert.Empty(t, repo.List(ctx))
}
