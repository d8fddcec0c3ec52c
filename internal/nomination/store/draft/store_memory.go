// Package draft stores unfinished nomination forms per account.
package draft

import (
	"context"
	"sync"
	"time"

	"dematkyc/internal/nomination/models"
	"dematkyc/pkg/platform/sentinel"
	"dematkyc/pkg/requestcontext"
)

type entry struct {
	draft     models.Draft
	expiresAt time.Time
}

// InMemoryStore keeps drafts in process. Used when Redis is not configured
// and in tests.
type InMemoryStore struct {
	mu     sync.RWMutex
	drafts map[string]entry
	ttl    time.Duration
}

func NewInMemory(ttl time.Duration) *InMemoryStore {
	return &InMemoryStore{drafts: make(map[string]entry), ttl: ttl}
}

func (s *InMemoryStore) Save(ctx context.Context, d models.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.Submission = d.Submission.Clone()
	s.drafts[d.AccountID] = entry{draft: d, expiresAt: requestcontext.Now(ctx).Add(s.ttl)}
	return nil
}

func (s *InMemoryStore) Get(ctx context.Context, accountID string) (*models.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.drafts[accountID]
	if !ok || s.expired(ctx, e) {
		return nil, sentinel.ErrNotFound
	}
	d := e.draft
	d.Submission = d.Submission.Clone()
	return &d, nil
}

func (s *InMemoryStore) Delete(ctx context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.drafts[accountID]
	if !ok || s.expired(ctx, e) {
		return sentinel.ErrNotFound
	}
	delete(s.drafts, accountID)
	return nil
}

func (s *InMemoryStore) expired(ctx context.Context, e entry) bool {
	return s.ttl > 0 && !requestcontext.Now(ctx).Before(e.expiresAt)
}
