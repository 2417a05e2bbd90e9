package domain

// QuotaState is the bounded free-query budget for one session.
// Remaining only ever moves down by exactly one, on a successful synthesis.
type QuotaState struct {
	Remaining int `json:"remaining"`
	Max       int `json:"max"`
}

// Session owns the per-session mutable state of the assistant: the free
// query quota and the bounded submission history. It is a plain aggregate
// with no locking; the owning store serializes access.
type Session struct {
	ID      string
	Quota   QuotaState
	History []HistoryEntry
}

func NewSession(id string, maxQuota int) Session {
	return Session{
		ID:    id,
		Quota: QuotaState{Remaining: maxQuota, Max: maxQuota},
	}
}

// TryConsume takes one query from the quota. It reports false, changing
// nothing, when the quota is exhausted.
func (s *Session) TryConsume() bool {
	if s.Quota.Remaining <= 0 {
		return false
	}
	s.Quota.Remaining--
	return true
}

// AppendHistory records an entry newest-first and trims to limit.
func (s *Session) AppendHistory(entry HistoryEntry, limit int) {
	s.History = append([]HistoryEntry{entry}, s.History...)
	if limit > 0 && len(s.History) > limit {
		s.History = s.History[:limit]
	}
}

// Reset restores a full quota. Replenishment is always an external trigger;
// nothing inside the submission pipeline calls this.
func (s *Session) Reset(maxQuota int) {
	s.Quota = QuotaState{Remaining: maxQuota, Max: maxQuota}
}

// Snapshot returns a deep copy safe to hand outside the owning store.
func (s *Session) Snapshot() Session {
	out := Session{ID: s.ID, Quota: s.Quota}
	if len(s.History) > 0 {
		out.History = make([]HistoryEntry, len(s.History))
		copy(out.History, s.History)
	}
	return out
}
