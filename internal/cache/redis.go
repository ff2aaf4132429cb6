// Package cache relays collection-change signals between processes through
// Redis pub/sub. Redis is optional; without it each process only sees its
// own writes.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"rms-backend/internal/store"
)

const changeChannel = "rms:changes"

var client *redis.Client

// Init connects to Redis. On failure the relay stays disabled and the
// server runs single-process.
func Init(addr, password string) {
	if addr == "" {
		log.Println("[Cache] Redis not configured, change relay disabled")
		return
	}

	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		log.Printf("[Cache] Redis unavailable, change relay disabled: %v", err)
		return
	}

	client = c
	log.Printf("[Cache] Redis connected at %s", addr)
}

// Enabled reports whether the relay is active.
func Enabled() bool {
	return client != nil
}

// PublishChange announces a local collection write to peer processes.
func PublishChange(ctx context.Context, c store.Collection) {
	if client == nil {
		return
	}
	if err := client.Publish(ctx, changeChannel, string(c)).Err(); err != nil {
		log.Printf("[Cache] Failed to publish change for %s: %v", c, err)
	}
}

// SubscribeChanges runs fn for every change announced by peer processes.
// It blocks until ctx is cancelled, so callers run it in a goroutine.
func SubscribeChanges(ctx context.Context, fn store.ChangeFunc) {
	if client == nil {
		return
	}

	sub := client.Subscribe(ctx, changeChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fn(store.Collection(msg.Payload))
		}
	}
}

// Close releases the Redis connection.
func Close() {
	if client != nil {
		client.Close()
		client = nil
	}
}
