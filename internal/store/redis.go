package store

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix     = "decor:"
	redisChangeChannel = "decor:changes"
)

// RedisBackend keeps each document under a prefixed redis key and publishes
// every write to a change channel, so other instances can refresh their
// mirrors. The publisher's origin rides along in the payload; Watch
// delivers it unfiltered and the store skips its own echoes.
type RedisBackend struct {
	client *redis.Client
	origin string
}

// NewRedisBackend connects to redis and verifies the connection with a
// short ping, mirroring the cache bring-up used elsewhere in the stack.
func NewRedisBackend(addr, password string) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &RedisBackend{client: client}, nil
}

// setOrigin is called by the store so publishes default to its origin id.
func (b *RedisBackend) setOrigin(origin string) {
	b.origin = origin
}

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, key string, data []byte) error {
	if err := b.client.Set(ctx, redisKeyPrefix+key, data, 0).Err(); err != nil {
		return err
	}

	payload, _ := json.Marshal(Change{Key: key, Origin: b.changeOrigin(ctx), At: time.Now(), Instance: b.origin})
	if err := b.client.Publish(ctx, redisChangeChannel, payload).Err(); err != nil {
		// The write itself landed; a lost notification only delays other
		// instances until their next read.
		log.Printf("[Store] Change publish for %q failed: %v", key, err)
	}
	return nil
}

func (b *RedisBackend) Delete(ctx context.Context, key string) error {
	if err := b.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return err
	}
	payload, _ := json.Marshal(Change{Key: key, Origin: b.changeOrigin(ctx), At: time.Now(), Instance: b.origin})
	if err := b.client.Publish(ctx, redisChangeChannel, payload).Err(); err != nil {
		log.Printf("[Store] Change publish for %q failed: %v", key, err)
	}
	return nil
}

func (b *RedisBackend) changeOrigin(ctx context.Context) string {
	if origin, ok := ctx.Value(originKey).(string); ok && origin != "" {
		return origin
	}
	return b.origin
}

func (b *RedisBackend) Keys(ctx context.Context, prefix string) ([]string, error) {
	raw, err := b.client.Keys(ctx, redisKeyPrefix+prefix+"*").Result()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, k[len(redisKeyPrefix):])
	}
	return keys, nil
}

// Watch subscribes to the change channel and forwards decoded changes.
func (b *RedisBackend) Watch(fn func(Change)) (func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	sub := b.client.Subscribe(ctx, redisChangeChannel)

	// Force the subscription before returning so no change is missed.
	if _, err := sub.Receive(ctx); err != nil {
		cancel()
		sub.Close()
		return nil, err
	}

	go func() {
		for msg := range sub.Channel() {
			var c Change
			if err := json.Unmarshal([]byte(msg.Payload), &c); err != nil {
				log.Printf("[Store] Malformed change payload ignored: %v", err)
				continue
			}
			fn(c)
		}
	}()

	return func() {
		cancel()
		sub.Close()
	}, nil
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}
