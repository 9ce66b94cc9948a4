package store

import (
	"context"
	"sync"

	"rolesync/internal/progression/models"
	"rolesync/pkg/requestcontext"
	"rolesync/pkg/sentinel"
)

// Memory keeps progression records in a map. It intentionally favors
// clarity over performance and backs unit tests and local development.
type Memory struct {
	mu      sync.RWMutex
	records map[string]models.Record
}

func NewMemory() *Memory {
	return &Memory{records: make(map[string]models.Record)}
}

func (s *Memory) Fetch(_ context.Context, token string) (*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.records[token]; ok {
		out := rec
		return &out, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *Memory) Write(ctx context.Context, token string, upd models.Update) (*models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.records[token]
	rec.IdentityToken = token
	upd.Apply(&rec)
	rec.LastModified = requestcontext.Now(ctx)
	s.records[token] = rec
	out := rec
	return &out, nil
}

// Seed installs a record directly, bypassing Write semantics. Test helper
// standing in for the out-of-scope account-linking flow.
func (s *Memory) Seed(rec models.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.IdentityToken] = rec
}
