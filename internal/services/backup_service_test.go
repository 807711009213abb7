package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decor-backend/internal/config"
	"decor-backend/internal/models"
)

func openBackupService(t *testing.T, env *testEnv, retention int) *BackupService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Backup.Retention = retention
	return NewBackupService(cfg, env.Store, env.Events, env.Services, env.Portfolio, env.Clients, env.Inquiries, env.Notifications)
}

func TestBackupCreateAndList(t *testing.T) {
	env := openTestEnv(t)
	svc := openBackupService(t, env, 5)
	ctx := context.Background()

	ev := models.Event{Title: "Mehta Wedding"}
	env.Events.Create(ctx, &ev)

	info := svc.Create(ctx)
	require.True(t, strings.HasPrefix(info.Key, models.BackupKeyPrefix))
	require.NotEmpty(t, info.CreatedAt)

	list := svc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, info.Key, list[0].Key)
	assert.Equal(t, info.CreatedAt, list[0].CreatedAt)
}

func TestBackupRetentionPrunesOldest(t *testing.T) {
	env := openTestEnv(t)
	svc := openBackupService(t, env, 3)
	ctx := context.Background()

	var keys []string
	for i := 0; i < 5; i++ {
		keys = append(keys, svc.Create(ctx).Key)
		// Backup keys embed epoch millis; space them out so keys differ.
		time.Sleep(2 * time.Millisecond)
	}

	list := svc.List(ctx)
	require.Len(t, list, 3)
	// Newest first; the two oldest snapshots were pruned.
	assert.Equal(t, keys[4], list[0].Key)
	assert.Equal(t, keys[3], list[1].Key)
	assert.Equal(t, keys[2], list[2].Key)
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	env := openTestEnv(t)
	svc := openBackupService(t, env, 5)
	ctx := context.Background()

	ev := models.Event{Title: "Original Event"}
	env.Events.Create(ctx, &ev)
	cl := models.Client{Name: "Original Client"}
	env.Clients.Create(ctx, &cl)

	info := svc.Create(ctx)

	// Mutate after the snapshot.
	env.Events.ReplaceAll(ctx, []models.Event{{ID: "x", Title: "Replacement"}})
	env.Clients.ReplaceAll(ctx, nil)

	require.NoError(t, svc.Restore(ctx, info.Key))

	events := env.Events.List(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, "Original Event", events[0].Title)

	clients := env.Clients.List(ctx)
	require.Len(t, clients, 1)
	assert.Equal(t, "Original Client", clients[0].Name)
}

func TestBackupRestoreUnknownKey(t *testing.T) {
	env := openTestEnv(t)
	svc := openBackupService(t, env, 5)

	err := svc.Restore(context.Background(), models.BackupKeyPrefix+"999")
	assert.Error(t, err)

	// Keys outside the backup namespace are rejected outright.
	err = svc.Restore(context.Background(), models.KeyEvents)
	assert.Error(t, err)
}

func TestBackupDelete(t *testing.T) {
	env := openTestEnv(t)
	svc := openBackupService(t, env, 5)
	ctx := context.Background()

	info := svc.Create(ctx)
	svc.Delete(ctx, info.Key)
	assert.Empty(t, svc.List(ctx))

	// Deleting outside the backup namespace is a no-op.
	env.Events.Create(ctx, &models.Event{Title: "survives"})
	svc.Delete(ctx, models.KeyEvents)
	assert.Len(t, env.Events.List(ctx), 1)
}
