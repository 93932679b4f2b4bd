package storage

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value   []byte
	expires time.Time
}

type MemoryStore struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]map[string]memoryEntry
	now  func() time.Time
}

// NewMemoryStore keeps entries for ttl after their last write; ttl <= 0 keeps them forever.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:  ttl,
		data: make(map[string]map[string]memoryEntry),
		now:  time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, visitorID, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data[visitorID][key]
	if !ok || s.expired(e) {
		return nil, ErrNotFound
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, visitorID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.data[visitorID]
	if !ok {
		m = make(map[string]memoryEntry)
		s.data[visitorID] = m
	}
	e := memoryEntry{value: append([]byte(nil), value...)}
	if s.ttl > 0 {
		e.expires = s.now().Add(s.ttl)
	}
	m[key] = e
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, visitorID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.data[visitorID]; ok {
		delete(m, key)
		if len(m) == 0 {
			delete(s.data, visitorID)
		}
	}
	return nil
}

// Purge drops expired entries and returns how many were removed.
func (s *MemoryStore) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for vid, m := range s.data {
		for k, e := range m {
			if s.expired(e) {
				delete(m, k)
				n++
			}
		}
		if len(m) == 0 {
			delete(s.data, vid)
		}
	}
	return n
}

func (s *MemoryStore) Close(context.Context) error { return nil }

func (s *MemoryStore) expired(e memoryEntry) bool {
	return !e.expires.IsZero() && s.now().After(e.expires)
}
