package mention

import (
	"collab-hub/contract"
	"collab-hub/domain"
	"sync"
	"time"
)

const DefaultWindow = 5 * time.Minute

var _ contract.ISuppressionStore = (*MemorySuppression)(nil)

// MemorySuppression keeps the last notification time per (target, page, author).
// Records are best effort and lost on restart.
type MemorySuppression struct {
	mu        sync.Mutex
	window    time.Duration
	records   map[domain.SuppressionKey]time.Time
	lastSweep time.Time
}

func NewMemorySuppression(window time.Duration) *MemorySuppression {
	if window <= 0 {
		window = DefaultWindow
	}
	return &MemorySuppression{window: window, records: make(map[domain.SuppressionKey]time.Time)}
}

// Reserve records now for the key unless a record within the window exists.
func (s *MemorySuppression) Reserve(key domain.SuppressionKey, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.records[key]; ok && now.Sub(last) < s.window {
		return false, nil
	}
	s.records[key] = now
	s.sweep(now)
	return true, nil
}

func (s *MemorySuppression) Release(key domain.SuppressionKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}

// Len counts stored records, expired ones included until the next sweep.
func (s *MemorySuppression) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// sweep drops expired records at most once per window, so the scan is
// amortized over every reservation made in between.
func (s *MemorySuppression) sweep(now time.Time) {
	if !s.lastSweep.IsZero() && now.Sub(s.lastSweep) < s.window {
		return
	}
	s.lastSweep = now
	for key, last := range s.records {
		if now.Sub(last) >= s.window {
			delete(s.records, key)
		}
	}
}
