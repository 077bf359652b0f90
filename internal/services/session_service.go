package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/onegreenvn/campaign-generator-backend/internal/services/campaign"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "campaign:session:"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNothingToUndo   = errors.New("nothing to undo")
)

// SessionStore keeps campaign sessions between requests
type SessionStore interface {
	Get(ctx context.Context, id string) (*campaign.Session, error)
	Save(ctx context.Context, session *campaign.Session) error
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	data    []byte
	expires time.Time
}

// MemorySessionStore keeps sessions in process memory. Sessions are stored encoded,
// so callers never share a session value.
type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memoryEntry
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
	}
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (*campaign.Session, error) {
	m.mu.Lock()
	entry, ok := m.sessions[id]
	if ok && !entry.expires.IsZero() && time.Now().After(entry.expires) {
		delete(m.sessions, id)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return decodeSession(entry.data)
}

func (m *MemorySessionStore) Save(_ context.Context, session *campaign.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	entry := memoryEntry{data: data}
	if m.ttl > 0 {
		entry.expires = time.Now().Add(m.ttl)
	}

	m.mu.Lock()
	m.sessions[session.ID] = entry
	m.mu.Unlock()
	return nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// RedisSessionStore keeps sessions as JSON under campaign:session:<id>
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (r *RedisSessionStore) Get(ctx context.Context, id string) (*campaign.Session, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return decodeSession(data)
}

func (r *RedisSessionStore) Save(ctx context.Context, session *campaign.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+session.ID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func decodeSession(data []byte) (*campaign.Session, error) {
	var session campaign.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// SessionService applies session mutations one at a time per session id
type SessionService struct {
	store SessionStore

	mu    sync.Mutex
	locks map[string]*sessionLock
}

// sessionLock is dropped from the map once no caller holds or waits for it
type sessionLock struct {
	sync.Mutex
	refs int
}

func NewSessionService(store SessionStore) *SessionService {
	return &SessionService{
		store: store,
		locks: make(map[string]*sessionLock),
	}
}

func (s *SessionService) lock(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sessionLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

func (s *SessionService) lockCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}

// Create starts an empty session
func (s *SessionService) Create(ctx context.Context) (*campaign.Session, error) {
	session := campaign.NewSession(uuid.New().String())
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (*campaign.Session, error) {
	return s.store.Get(ctx, id)
}

// Update loads a session, applies fn and saves the result. Nothing is saved when fn fails.
func (s *SessionService) Update(ctx context.Context, id string, fn func(*campaign.Session) error) (*campaign.Session, error) {
	unlock := s.lock(id)
	defer unlock()

	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Undo restores the latest auto-saved snapshot
func (s *SessionService) Undo(ctx context.Context, id string) (*campaign.Session, error) {
	return s.Update(ctx, id, func(session *campaign.Session) error {
		if !session.Undo() {
			return ErrNothingToUndo
		}
		return nil
	})
}

func (s *SessionService) Delete(ctx context.Context, id string) error {
	unlock := s.lock(id)
	defer unlock()
	return s.store.Delete(ctx, id)
}
