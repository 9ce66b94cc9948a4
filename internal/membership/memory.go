package membership

import (
	"context"
	"sync"

	"rolesync/internal/badges"
	"rolesync/pkg/sentinel"
)

// Memory is an in-memory membership service for tests and local runs.
// Members must be registered before they can be reconciled, mirroring the
// real service's "identity must already be a member" requirement.
type Memory struct {
	mu      sync.RWMutex
	members map[string][]badges.ID
}

func NewMemory() *Memory {
	return &Memory{members: make(map[string][]badges.ID)}
}

// Join registers a member with an initial badge set.
func (m *Memory) Join(memberID string, held ...badges.ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[memberID] = append([]badges.ID{}, held...)
}

func (m *Memory) Badges(_ context.Context, memberID string) ([]badges.ID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	held, ok := m.members[memberID]
	if !ok {
		return nil, sentinel.ErrUnknownMember
	}
	return append([]badges.ID{}, held...), nil
}

func (m *Memory) ReplaceBadges(_ context.Context, memberID string, ids []badges.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.members[memberID]; !ok {
		return sentinel.ErrUnknownMember
	}
	m.members[memberID] = append([]badges.ID{}, ids...)
	return nil
}
