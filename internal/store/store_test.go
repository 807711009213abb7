package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreWriteRead(t *testing.T) {
	st := New(NewMemoryBackend())
	t.Cleanup(func() { _ = st.Close() })
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	st.Write(ctx, "test_key", record{Name: "garland", Count: 3})

	var got record
	require.True(t, st.Read(ctx, "test_key", &got))
	assert.Equal(t, "garland", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestStoreReadAbsentKey(t *testing.T) {
	st := New(NewMemoryBackend())
	t.Cleanup(func() { _ = st.Close() })

	var got map[string]string
	assert.False(t, st.Read(context.Background(), "missing", &got))
}

func TestStoreCorruptValueTreatedAsAbsent(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.Set(context.Background(), "bad", []byte("{not json")))

	st := New(backend)
	t.Cleanup(func() { _ = st.Close() })

	var got map[string]string
	assert.False(t, st.Read(context.Background(), "bad", &got))
}

func TestStoreShapeMismatchFallsBack(t *testing.T) {
	st := New(NewMemoryBackend())
	t.Cleanup(func() { _ = st.Close() })
	ctx := context.Background()

	st.Write(ctx, "shape", []string{"a", "b"})

	// Valid JSON of the wrong shape reads as absent, not as a panic.
	var got map[string]int
	assert.False(t, st.Read(ctx, "shape", &got))
}

func TestStoreClear(t *testing.T) {
	st := New(NewMemoryBackend())
	t.Cleanup(func() { _ = st.Close() })
	ctx := context.Background()

	st.Write(ctx, "gone", "value")
	st.Clear(ctx, "gone")

	var got string
	assert.False(t, st.Read(ctx, "gone", &got))
}

func TestStoreUpdateReadModifyWrite(t *testing.T) {
	st := New(NewMemoryBackend())
	t.Cleanup(func() { _ = st.Close() })
	ctx := context.Background()

	st.Write(ctx, "list", []int{1, 2})
	st.Update(ctx, "list", func(raw json.RawMessage) any {
		var got []int
		require.NoError(t, json.Unmarshal(raw, &got))
		return append(got, 3)
	})

	var got []int
	require.True(t, st.Read(ctx, "list", &got))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestStoreUpdateNilAbandons(t *testing.T) {
	st := New(NewMemoryBackend())
	t.Cleanup(func() { _ = st.Close() })
	ctx := context.Background()

	st.Write(ctx, "keep", "original")
	st.Update(ctx, "keep", func(raw json.RawMessage) any { return nil })

	var got string
	require.True(t, st.Read(ctx, "keep", &got))
	assert.Equal(t, "original", got)
}

func TestStoreSubscribeSeesWrites(t *testing.T) {
	st := New(NewMemoryBackend())
	t.Cleanup(func() { _ = st.Close() })
	ctx := context.Background()

	var changes []Change
	cancel := st.Subscribe(func(c Change) { changes = append(changes, c) })
	defer cancel()

	st.Write(ctx, "watched", 1)
	st.Clear(ctx, "watched")

	require.Len(t, changes, 2)
	assert.Equal(t, "watched", changes[0].Key)
	assert.Equal(t, st.Origin(), changes[0].Origin)
}

func TestStoreSubscribeCarriesContextOrigin(t *testing.T) {
	st := New(NewMemoryBackend())
	t.Cleanup(func() { _ = st.Close() })

	var got Change
	cancel := st.Subscribe(func(c Change) { got = c })
	defer cancel()

	ctx := WithOrigin(context.Background(), "tab-42")
	st.Write(ctx, "watched", 1)

	assert.Equal(t, "tab-42", got.Origin)
}

func TestStoreKeysMergesMirror(t *testing.T) {
	st := New(NewMemoryBackend())
	t.Cleanup(func() { _ = st.Close() })
	ctx := context.Background()

	st.Write(ctx, "admin_backup_2", "b")
	st.Write(ctx, "admin_backup_1", "a")
	st.Write(ctx, "other", "c")

	keys := st.Keys(ctx, "admin_backup_")
	assert.Equal(t, []string{"admin_backup_1", "admin_backup_2"}, keys)
}

func TestFileBackendRoundTrip(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, backend.Set(ctx, "admin_events", []byte(`[{"id":"1"}]`)))

	data, found, err := backend.Get(ctx, "admin_events")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"id":"1"}]`, string(data))

	// One file per key on disk.
	_, err = os.Stat(filepath.Join(dir, "admin_events.json"))
	require.NoError(t, err)

	require.NoError(t, backend.Delete(ctx, "admin_events"))
	_, found, err = backend.Get(ctx, "admin_events")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileBackendSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileBackend(dir)
	require.NoError(t, err)
	st := New(first)
	st.Write(ctx, "admin_clients", []string{"c1"})
	require.NoError(t, st.Close())

	second, err := NewFileBackend(dir)
	require.NoError(t, err)
	st2 := New(second)
	t.Cleanup(func() { _ = st2.Close() })

	var got []string
	require.True(t, st2.Read(ctx, "admin_clients", &got))
	assert.Equal(t, []string{"c1"}, got)
}

func TestFileBackendKeysByPrefix(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, "admin_backup_10", []byte(`{}`)))
	require.NoError(t, backend.Set(ctx, "admin_backup_20", []byte(`{}`)))
	require.NoError(t, backend.Set(ctx, "adminToken", []byte(`{}`)))

	keys, err := backend.Keys(ctx, "admin_backup_")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"admin_backup_10", "admin_backup_20"}, keys)
}
