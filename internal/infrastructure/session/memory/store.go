// Package memory holds session state for the lifetime of the process. Quota
// and history never survive a restart; the daily quota rolls back to full
// when the UTC day changes while a session is alive.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nyayamitra/legal-assistant/internal/core/domain"
)

type record struct {
	session  domain.Session
	inFlight bool
	quotaDay string
	lastSeen time.Time
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*record

	maxQuota     int
	historyLimit int
	ttl          time.Duration
	now          func() time.Time
}

func NewStore(maxQuota, historyLimit int, ttl time.Duration) *Store {
	return &Store{
		sessions:     make(map[string]*record),
		maxQuota:     maxQuota,
		historyLimit: historyLimit,
		ttl:          ttl,
		now:          time.Now,
	}
}

func (s *Store) Create(_ context.Context) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()

	r := s.getOrCreateLocked(uuid.NewString())
	return r.session.Snapshot(), nil
}

func (s *Store) Get(_ context.Context, id string) (domain.Session, error) {
	if id == "" {
		return domain.Session{}, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.getOrCreateLocked(id)
	return r.session.Snapshot(), nil
}

// Begin gates a submission: one in-flight submission per session, and only
// while quota remains. The quota itself is consumed at Commit.
func (s *Store) Begin(_ context.Context, id string) (domain.QuotaState, error) {
	if id == "" {
		return domain.QuotaState{}, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()

	r := s.getOrCreateLocked(id)
	if r.inFlight {
		return domain.QuotaState{}, domain.ErrSubmissionInFlight
	}
	if r.session.Quota.Remaining <= 0 {
		return domain.QuotaState{}, domain.ErrQuotaExhausted
	}
	r.inFlight = true
	return r.session.Quota, nil
}

func (s *Store) Commit(_ context.Context, id string, entry domain.HistoryEntry) (domain.QuotaState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.sessions[id]
	if !ok {
		return domain.QuotaState{}, domain.ErrSessionNotFound
	}
	r.inFlight = false
	if !r.session.TryConsume() {
		return domain.QuotaState{}, domain.ErrQuotaExhausted
	}
	r.session.AppendHistory(entry, s.historyLimit)
	r.lastSeen = s.now()
	return r.session.Quota, nil
}

func (s *Store) Abort(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	r.inFlight = false
	return nil
}

// getOrCreateLocked returns the live record for id, recreating it when the
// idle TTL has lapsed and rolling the quota on a UTC day change.
func (s *Store) getOrCreateLocked(id string) *record {
	now := s.now()
	day := quotaDay(now)

	r, ok := s.sessions[id]
	if ok && s.expired(r, now) {
		ok = false
	}
	if !ok {
		r = &record{
			session:  domain.NewSession(id, s.maxQuota),
			quotaDay: day,
		}
		s.sessions[id] = r
	}
	if r.quotaDay != day {
		r.session.Reset(s.maxQuota)
		r.quotaDay = day
	}
	r.lastSeen = now
	return r
}

func (s *Store) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	now := s.now()
	for id, r := range s.sessions {
		if s.expired(r, now) && !r.inFlight {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) expired(r *record, now time.Time) bool {
	return s.ttl > 0 && now.Sub(r.lastSeen) > s.ttl
}

func quotaDay(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
