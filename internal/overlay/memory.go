package overlay

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memSession struct {
	sets    map[Kind]map[string]struct{}
	touched time.Time
}

// MemoryStore is the in-process Store. Sessions idle longer than ttl are
// invisible immediately and dropped on the next Sweep.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*memSession
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*memSession),
	}
}

func (s *MemoryStore) expired(sess *memSession, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.touched) > s.ttl
}

// live returns the session if present and not expired. Caller holds mu.
func (s *MemoryStore) live(session string, now time.Time) *memSession {
	sess, ok := s.sessions[session]
	if !ok {
		return nil
	}
	if s.expired(sess, now) {
		delete(s.sessions, session)
		return nil
	}
	return sess
}

func (s *MemoryStore) Add(_ context.Context, session string, kind Kind, id string) error {
	if !kind.Valid() {
		return ErrUnknownKind
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := s.live(session, now)
	if sess == nil {
		sess = &memSession{sets: make(map[Kind]map[string]struct{})}
		s.sessions[session] = sess
	}
	set, ok := sess.sets[kind]
	if !ok {
		set = make(map[string]struct{})
		sess.sets[kind] = set
	}
	set[id] = struct{}{}
	sess.touched = now
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, session string, kind Kind, id string) error {
	if !kind.Valid() {
		return ErrUnknownKind
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := s.live(session, now)
	if sess == nil {
		return nil
	}
	delete(sess.sets[kind], id)
	sess.touched = now
	return nil
}

func (s *MemoryStore) Members(_ context.Context, session string, kind Kind) ([]string, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.live(session, s.now())
	if sess == nil {
		return []string{}, nil
	}
	return sortedKeys(sess.sets[kind]), nil
}

func (s *MemoryStore) Snapshot(_ context.Context, session string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(Snapshot, len(Kinds))
	sess := s.live(session, s.now())
	for _, k := range Kinds {
		if sess == nil {
			out[k] = []string{}
			continue
		}
		out[k] = sortedKeys(sess.sets[k])
	}
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context, session string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, session)
	return nil
}

// Sweep drops sessions idle beyond the ttl and reports how many were removed.
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
