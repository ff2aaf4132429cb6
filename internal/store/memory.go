package store

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory keeps collections in process memory. Used by tests and as the last
// fallback when no durable backend opens.
type Memory struct {
	notifier
	mu   sync.RWMutex
	data map[Collection][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[Collection][]byte)}
}

func (m *Memory) Get(ctx context.Context, c Collection, out any) (bool, error) {
	m.mu.RLock()
	raw, ok := m.data[c]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (m *Memory) Put(ctx context.Context, c Collection, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[c] = raw
	m.mu.Unlock()
	m.notify(c)
	return nil
}

func (m *Memory) Delete(ctx context.Context, c Collection) error {
	m.mu.Lock()
	delete(m.data, c)
	m.mu.Unlock()
	m.notify(c)
	return nil
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) Close() error { return nil }
