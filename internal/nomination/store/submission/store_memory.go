package submission

import (
	"context"
	"slices"
	"sync"

	"dematkyc/internal/nomination/models"
)

// InMemoryStore keeps the submission log in process.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string][]models.SubmissionRecord
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{records: make(map[string][]models.SubmissionRecord)}
}

func (s *InMemoryStore) Append(_ context.Context, rec models.SubmissionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.Failures = slices.Clone(rec.Failures)
	s.records[rec.AccountID] = append(s.records[rec.AccountID], rec)
	return nil
}

// ListByAccount returns the newest records first.
func (s *InMemoryStore) ListByAccount(_ context.Context, accountID string, limit int) ([]models.SubmissionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := s.records[accountID]
	out := make([]models.SubmissionRecord, 0, min(limit, len(all)))
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}
