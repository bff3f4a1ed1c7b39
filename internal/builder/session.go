package builder

import (
	"context"
	"sync"
	"time"

	"resume-builder/resume/model"
)

// Session store limits used when none are configured.
const (
	DefaultSessionTTL  = 2 * time.Hour
	DefaultMaxSessions = 10000
)

// Session is one builder shell: the live document and the chosen template.
type Session struct {
	ID        string           `json:"id"`
	Owner     string           `json:"-"`
	Template  model.TemplateID `json:"template"`
	Document  model.Document   `json:"document"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// SessionStore holds live sessions. Update runs fn while holding the session
// exclusively, so edits to one session are applied one at a time.
type SessionStore interface {
	Create(ctx context.Context, session Session) error
	Get(ctx context.Context, owner, id string) (Session, error)
	Update(ctx context.Context, owner, id string, fn func(*Session) error) (Session, error)
	Delete(ctx context.Context, owner, id string) error
}

// MemorySessionStore keeps sessions in memory and is safe for concurrent use.
// A session not read or written for TTL expires. When MaxSessions are live,
// creating another evicts the least recently used one.
type MemorySessionStore struct {
	mu          sync.Mutex
	sessions    map[string]*sessionEntry
	ttl         time.Duration
	maxSessions int
	lastSweep   time.Time
	now         func() time.Time
}

type sessionEntry struct {
	session Session
	touched time.Time
}

// NewMemorySessionStore constructs a store. Non-positive limits take the
// defaults.
func NewMemorySessionStore(ttl time.Duration, maxSessions int) *MemorySessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &MemorySessionStore{
		sessions:    make(map[string]*sessionEntry),
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

// Create stores a new session.
func (s *MemorySessionStore) Create(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if now.Sub(s.lastSweep) >= s.ttl/4 || len(s.sessions) >= s.maxSessions {
		s.sweepLocked(now)
	}
	if len(s.sessions) >= s.maxSessions {
		s.evictOldestLocked()
	}
	session.Document = session.Document.Clone()
	s.sessions[session.ID] = &sessionEntry{session: session, touched: now}
	return nil
}

// Get returns a copy of the session. Sessions of other owners read as not
// found.
func (s *MemorySessionStore) Get(ctx context.Context, owner, id string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, err := s.liveLocked(owner, id)
	if err != nil {
		return Session{}, err
	}
	out := entry.session
	out.Document = out.Document.Clone()
	return out, nil
}

// Update applies fn to a copy of the session and stores the result when fn
// succeeds.
func (s *MemorySessionStore) Update(ctx context.Context, owner, id string, fn func(*Session) error) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, err := s.liveLocked(owner, id)
	if err != nil {
		return Session{}, err
	}
	working := entry.session
	working.Document = working.Document.Clone()
	if err := fn(&working); err != nil {
		return Session{}, err
	}
	entry.session = working
	out := working
	out.Document = working.Document.Clone()
	return out, nil
}

// Delete ends a session.
func (s *MemorySessionStore) Delete(ctx context.Context, owner, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.liveLocked(owner, id); err != nil {
		return err
	}
	delete(s.sessions, id)
	return nil
}

// Len reports how many sessions are held, expired ones included until the
// next sweep.
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// liveLocked finds the owner's session and marks it used. Expired sessions
// are dropped on sight.
func (s *MemorySessionStore) liveLocked(owner, id string) (*sessionEntry, error) {
	entry, ok := s.sessions[id]
	if !ok || entry.session.Owner != owner {
		return nil, ErrSessionNotFound
	}
	now := s.now()
	if now.Sub(entry.touched) >= s.ttl {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	entry.touched = now
	return entry, nil
}

func (s *MemorySessionStore) sweepLocked(now time.Time) {
	s.lastSweep = now
	for id, entry := range s.sessions {
		if now.Sub(entry.touched) >= s.ttl {
			delete(s.sessions, id)
		}
	}
}

func (s *MemorySessionStore) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, entry := range s.sessions {
		if oldestID == "" || entry.touched.Before(oldest) {
			oldestID, oldest = id, entry.touched
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
	}
}

var _ SessionStore = (*MemorySessionStore)(nil)
