package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/krishisahayak/pkg/models"
)

// MemoryProfileStore keeps profiles in memory. It backs deployments without
// a database and the test suite.
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]models.FarmerProfile
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]models.FarmerProfile)}
}

func (s *MemoryProfileStore) Get(_ context.Context, farmerID string) (models.FarmerProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[farmerID]
	if !ok {
		return models.FarmerProfile{}, ErrProfileNotFound
	}
	return p, nil
}

func (s *MemoryProfileStore) Upsert(_ context.Context, p models.FarmerProfile) (models.FarmerProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := s.profiles[p.ID]; ok {
		p.CreatedAt = existing.CreatedAt
	} else if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	s.profiles[p.ID] = p
	return p, nil
}

// MemoryMessageStore is the in-memory counterpart of PostgresMessageStore.
type MemoryMessageStore struct {
	mu       sync.RWMutex
	messages map[string][]models.Message
}

func NewMemoryMessageStore() *MemoryMessageStore {
	return &MemoryMessageStore{messages: make(map[string][]models.Message)}
}

func (s *MemoryMessageStore) Append(_ context.Context, msg models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	s.messages[msg.FarmerID] = append(s.messages[msg.FarmerID], msg)
	return nil
}

func (s *MemoryMessageStore) List(_ context.Context, farmerID string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.messages[farmerID]

	out := make([]models.Message, len(stored))
	copy(out, stored)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
