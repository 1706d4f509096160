package session

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	session  Session
	deadline time.Time
}

// MemoryStore is the default session store: a mutex-guarded map with
// per-entry deadlines and a janitor loop sweeping expired entries.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[int64]entry
	ttl     time.Duration
	stop    chan struct{}
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[int64]entry),
		ttl:     ttl,
		stop:    make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *MemoryStore) Get(_ context.Context, userID int64) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok || time.Now().After(e.deadline) {
		delete(s.entries, userID)
		return nil, nil
	}

	sess := e.session
	return &sess, nil
}

func (s *MemoryStore) Put(_ context.Context, userID int64, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[userID] = entry{
		session:  *sess,
		deadline: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, userID)
	return nil
}

func (s *MemoryStore) Close() {
	close(s.stop)
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, e := range s.entries {
				if now.After(e.deadline) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
