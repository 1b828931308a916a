package sessionstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/yanqian/astropredict-web/internal/domain/prediction"
)

type sessionRecord struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory; used for dev and single-instance deploys.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]sessionRecord
	inflight map[string]time.Time
	now      func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]sessionRecord),
		inflight: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Load implements prediction.Store.
func (s *MemoryStore) Load(_ context.Context, id string) (prediction.Session, bool, error) {
	s.mu.Lock()
	record, ok := s.sessions[id]
	if ok && hasExpired(record.expiresAt, s.now()) {
		delete(s.sessions, id)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return prediction.Session{}, false, nil
	}
	// Sessions are stored encoded so callers never share maps or slices.
	var sess prediction.Session
	if err := json.Unmarshal(record.payload, &sess); err != nil {
		return prediction.Session{}, false, err
	}
	return sess, true, nil
}

// Save implements prediction.Store.
func (s *MemoryStore) Save(_ context.Context, sess prediction.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	exp := time.Time{}
	if s.ttl > 0 {
		exp = now.Add(s.ttl)
	}
	s.sessions[sess.ID] = sessionRecord{payload: payload, expiresAt: exp}
	s.cleanupLocked(now)
	return nil
}

// Acquire implements prediction.Store.
func (s *MemoryStore) Acquire(_ context.Context, id string, action prediction.Action, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := inflightKey(id, action)
	now := s.now()
	if exp, held := s.inflight[key]; held && !hasExpired(exp, now) {
		return false, nil
	}
	exp := time.Time{}
	if ttl > 0 {
		exp = now.Add(ttl)
	}
	s.inflight[key] = exp
	return true, nil
}

// Release implements prediction.Store.
func (s *MemoryStore) Release(_ context.Context, id string, action prediction.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, inflightKey(id, action))
	return nil
}

func (s *MemoryStore) cleanupLocked(now time.Time) {
	for id, record := range s.sessions {
		if hasExpired(record.expiresAt, now) {
			delete(s.sessions, id)
		}
	}
}

func inflightKey(id string, action prediction.Action) string {
	return id + ":" + string(action)
}

func hasExpired(ts, now time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(now)
}

var _ prediction.Store = (*MemoryStore)(nil)
