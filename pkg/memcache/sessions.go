// pkg/memcache/sessions.go
package mem

import (
	"context"
	"sync"
	"time"
)

// Turn is one question/answer exchange of a chat session.
type Turn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

type Session struct {
	ID        string    `json:"id"`
	History   []Turn    `json:"history"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SessionStore interface {
	// Get returns the session for id. ok is false when it is missing or expired.
	Get(ctx context.Context, id string) (session *Session, ok bool, err error)
	Put(ctx context.Context, session *Session) error
}

type entry struct {
	session   Session
	expiresAt time.Time
}

// MemorySessions keeps sessions in process memory until their TTL expires.
type MemorySessions struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]entry
	now  func() time.Time
}

func NewMemorySessions(ttl time.Duration) *MemorySessions {
	return &MemorySessions{
		ttl:  ttl,
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *MemorySessions) Get(_ context.Context, id string) (*Session, bool, error) {
	s.mu.RLock()
	e, ok := s.data[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, id) // cleanup expired
		s.mu.Unlock()
		return nil, false, nil
	}

	session := e.session
	session.History = append([]Turn(nil), e.session.History...)
	return &session, true, nil
}

func (s *MemorySessions) Put(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *session
	stored.History = append([]Turn(nil), session.History...)
	s.data[session.ID] = entry{
		session:   stored,
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

// Len reports the number of stored sessions, expired ones included.
func (s *MemorySessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
