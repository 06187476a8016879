package services

import (
	"context"
	"encoding/json"
	"fmt"
	"priority1_quote_server/lib"
	"priority1_quote_server/structs"
	"sync"
	"time"
)

// SessionStore keeps session state between HTTP requests. Load returns
// lib.ErrSessionNotFound for unknown or expired ids. Implementations hand out
// copies, so a loaded session is owned by its caller until saved.
type SessionStore interface {
	Load(ctx context.Context, id string) (*structs.Session, error)
	Save(ctx context.Context, session *structs.Session) error
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	session   *structs.Session
	expiresAt time.Time
}

// MemorySessionStore is a process-local SessionStore.
type MemorySessionStore struct {
	ttl       time.Duration
	mu        sync.Mutex
	entries   map[string]memoryEntry
	lastPrune time.Time
	now       func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:       ttl,
		entries:   make(map[string]memoryEntry),
		lastPrune: time.Now(),
		now:       time.Now,
	}
}

func (ms *MemorySessionStore) Load(_ context.Context, id string) (*structs.Session, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	entry, ok := ms.entries[id]
	if !ok {
		return nil, lib.ErrSessionNotFound
	}
	if ms.now().After(entry.expiresAt) {
		delete(ms.entries, id)
		return nil, lib.ErrSessionNotFound
	}
	return entry.session.Clone(), nil
}

func (ms *MemorySessionStore) Save(_ context.Context, session *structs.Session) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	ms.entries[session.Id] = memoryEntry{
		session:   session.Clone(),
		expiresAt: now.Add(ms.ttl),
	}

	// Abandoned sessions are dropped at most once per TTL
	if now.Sub(ms.lastPrune) > ms.ttl {
		for id, entry := range ms.entries {
			if now.After(entry.expiresAt) {
				delete(ms.entries, id)
			}
		}
		ms.lastPrune = now
	}
	return nil
}

func (ms *MemorySessionStore) Delete(_ context.Context, id string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.entries, id)
	return nil
}

// Len reports the number of sessions held, expired or not.
func (ms *MemorySessionStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.entries)
}

// RedisSessionStore keeps sessions as JSON under session:<id> with a TTL
// that is refreshed on every save.
type RedisSessionStore struct {
	cache *CacheService
	ttl   time.Duration
}

func NewRedisSessionStore(cache *CacheService, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		cache: cache,
		ttl:   ttl,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (rs *RedisSessionStore) Load(ctx context.Context, id string) (*structs.Session, error) {
	val, err := rs.cache.Get(ctx, sessionKey(id))
	if err != nil {
		return nil, err
	}
	if val == "" {
		return nil, lib.ErrSessionNotFound
	}

	session := &structs.Session{}
	if err := json.Unmarshal([]byte(val), session); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return session, nil
}

func (rs *RedisSessionStore) Save(ctx context.Context, session *structs.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.Id, err)
	}
	return rs.cache.Set(ctx, sessionKey(session.Id), data, rs.ttl)
}

func (rs *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return rs.cache.Delete(ctx, sessionKey(id))
}
