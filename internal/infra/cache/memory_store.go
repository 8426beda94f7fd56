package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// memoryStore is an in-process Store bounded to maxEntries, evicting the
// least recently used entry first. The LRU drops entries older than maxTTL
// in the background; shorter per-call TTLs are enforced on read.
type memoryStore struct {
	lru *expirable.LRU[string, memoryEntry]
	now func() time.Time
}

// NewMemoryStore creates an in-process store holding at most maxEntries
// entries, none of which outlives maxTTL.
func NewMemoryStore(maxEntries int, maxTTL time.Duration) Store {
	return &memoryStore{
		lru: expirable.NewLRU[string, memoryEntry](maxEntries, nil, maxTTL),
		now: time.Now,
	}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	entry, ok := s.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !s.now().Before(entry.expiresAt) {
		s.lru.Remove(key)

		return nil, false, nil
	}

	return entry.value, true, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.lru.Add(key, memoryEntry{value: value, expiresAt: s.now().Add(ttl)})

	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.lru.Remove(key)

	return nil
}

func (s *memoryStore) Close() error {
	s.lru.Purge()

	return nil
}
