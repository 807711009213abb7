// Package store implements the persistent key/value layer the admin
// collections live in. Every value is one JSON document; mutations replace
// the whole document. Backend failures never propagate to callers: the
// store logs them and keeps serving from its in-memory mirror.
package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"decor-backend/internal/metrics"
)

// Change describes one committed write or clear. Origin identifies the
// writer; consumers use it to skip self-notification.
type Change struct {
	Key    string    `json:"key"`
	Origin string    `json:"origin"`
	At     time.Time `json:"at"`

	// instance identifies the store instance that committed the write, so
	// an instance can drop its own publishes echoed back by the backend.
	Instance string `json:"instance,omitempty"`
}

// Backend persists documents. Implementations must treat an absent key as
// (nil, false, nil), not as an error.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// Watcher is implemented by backends that can report writes made by other
// instances (the redis driver). The callback receives the raw change.
type Watcher interface {
	Watch(fn func(Change)) (cancel func(), err error)
}

type contextKey string

const originKey contextKey = "store_origin"

// WithOrigin tags a context with the caller's origin id. Writes made with
// that context carry the id in their change notifications.
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, originKey, origin)
}

type Store struct {
	origin  string
	backend Backend

	mu  sync.RWMutex
	mem map[string]json.RawMessage

	subMu   sync.RWMutex
	subs    map[int]func(Change)
	nextSub int

	cancelWatch func()
}

// New creates a store over backend and, when the backend supports it,
// starts mirroring remote changes.
func New(backend Backend) *Store {
	s := &Store{
		origin:  newOrigin(),
		backend: backend,
		mem:     make(map[string]json.RawMessage),
		subs:    make(map[int]func(Change)),
	}

	if os, ok := backend.(interface{ setOrigin(string) }); ok {
		os.setOrigin(s.origin)
	}

	if w, ok := backend.(Watcher); ok {
		cancel, err := w.Watch(s.onRemoteChange)
		if err != nil {
			log.Printf("[Store] Change watch unavailable: %v", err)
		} else {
			s.cancelWatch = cancel
		}
	}

	return s
}

// Origin returns this instance's origin id.
func (s *Store) Origin() string {
	return s.origin
}

// Read decodes the value under key into out. It returns false when the key
// is absent or the stored bytes are not valid JSON for out; the caller
// falls back to its initial value. Decode failures are logged, not raised.
func (s *Store) Read(ctx context.Context, key string, out any) bool {
	raw, ok := s.ReadRaw(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("[Store] Corrupt value under %q treated as absent: %v", key, err)
		return false
	}
	return true
}

// ReadRaw returns the raw document under key, consulting the in-memory
// mirror first and the backend on a miss.
func (s *Store) ReadRaw(ctx context.Context, key string) (json.RawMessage, bool) {
	s.mu.RLock()
	raw, ok := s.mem[key]
	s.mu.RUnlock()
	if ok {
		return raw, true
	}

	data, found, err := s.backend.Get(ctx, key)
	if err != nil {
		log.Printf("[Store] Read of %q failed, serving in-memory state: %v", key, err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	if !json.Valid(data) {
		log.Printf("[Store] Corrupt value under %q treated as absent", key)
		return nil, false
	}

	s.mu.Lock()
	s.mem[key] = json.RawMessage(data)
	s.mu.Unlock()
	metrics.StoreReads.WithLabelValues(key).Inc()
	return json.RawMessage(data), true
}

// Write marshals value and persists it under key. A backend failure
// degrades to in-memory only; a marshal failure drops the write. Both are
// logged. Subscribers are notified either way.
func (s *Store) Write(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("[Store] Dropping unserializable write to %q: %v", key, err)
		return
	}
	s.commit(ctx, key, data)
}

// Update performs a read-modify-write under the store lock. fn receives the
// current raw document (nil when absent) and returns the replacement value.
// Returning nil from fn abandons the update.
func (s *Store) Update(ctx context.Context, key string, fn func(raw json.RawMessage) any) {
	s.mu.Lock()
	raw, ok := s.mem[key]
	if !ok {
		data, found, err := s.backend.Get(ctx, key)
		if err != nil {
			log.Printf("[Store] Read of %q failed during update: %v", key, err)
		} else if found && json.Valid(data) {
			raw = json.RawMessage(data)
		}
	}
	next := fn(raw)
	s.mu.Unlock()

	if next == nil {
		return
	}
	s.Write(ctx, key, next)
}

func (s *Store) commit(ctx context.Context, key string, data []byte) {
	s.mu.Lock()
	s.mem[key] = json.RawMessage(data)
	s.mu.Unlock()

	if err := s.backend.Set(ctx, key, data); err != nil {
		log.Printf("[Store] Persist of %q failed, value held in memory only: %v", key, err)
	}
	metrics.StoreWrites.WithLabelValues(key).Inc()
	s.notify(Change{Key: key, Origin: s.originFrom(ctx), At: time.Now()})
}

// Clear removes the persisted entry and the in-memory mirror for key.
func (s *Store) Clear(ctx context.Context, key string) {
	s.mu.Lock()
	delete(s.mem, key)
	s.mu.Unlock()

	if err := s.backend.Delete(ctx, key); err != nil {
		log.Printf("[Store] Delete of %q failed: %v", key, err)
	}
	s.notify(Change{Key: key, Origin: s.originFrom(ctx), At: time.Now()})
}

// Keys lists stored keys with the given prefix, sorted ascending. Keys that
// exist only in the in-memory mirror are included.
func (s *Store) Keys(ctx context.Context, prefix string) []string {
	seen := make(map[string]bool)

	backendKeys, err := s.backend.Keys(ctx, prefix)
	if err != nil {
		log.Printf("[Store] Key listing for %q failed, using in-memory keys: %v", prefix, err)
	}
	for _, k := range backendKeys {
		seen[k] = true
	}

	s.mu.RLock()
	for k := range s.mem {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			seen[k] = true
		}
	}
	s.mu.RUnlock()

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Subscribe registers fn for change notifications and returns a cancel
// func. Subscribers receive every change, including ones tagged with their
// own origin; filtering on Change.Origin is the consumer's job.
func (s *Store) Subscribe(fn func(Change)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// Close stops the remote watch and closes the backend.
func (s *Store) Close() error {
	if s.cancelWatch != nil {
		s.cancelWatch()
	}
	return s.backend.Close()
}

func (s *Store) notify(c Change) {
	s.subMu.RLock()
	defer s.subMu.RUnlock()
	for _, fn := range s.subs {
		fn(c)
	}
}

// onRemoteChange refreshes the mirror for a key another instance wrote and
// fans the change out. Changes tagged with this instance's origin are its
// own publishes echoed back and are skipped.
func (s *Store) onRemoteChange(c Change) {
	if c.Instance == s.origin {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, found, err := s.backend.Get(ctx, c.Key)
	s.mu.Lock()
	if err != nil || !found {
		delete(s.mem, c.Key)
	} else if json.Valid(data) {
		s.mem[c.Key] = json.RawMessage(data)
	} else {
		log.Printf("[Store] Remote value under %q is corrupt, ignored", c.Key)
	}
	s.mu.Unlock()

	s.notify(c)
}

func (s *Store) originFrom(ctx context.Context) string {
	if origin, ok := ctx.Value(originKey).(string); ok && origin != "" {
		return origin
	}
	return s.origin
}

func newOrigin() string {
	buf := make([]byte, 6)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
