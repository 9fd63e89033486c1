package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"recs-admin/internal/models"
)

// MemoryStore keeps recommendations in process memory. It backs the service
// when STORE_DRIVER=memory and in tests.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int
	recs   map[int]models.Recommendation
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		recs:   make(map[int]models.Recommendation),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemoryStore) Create(_ context.Context, rec *models.Recommendation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec.ID = m.nextID
	m.nextID++
	rec.CreatedAt = m.now()
	rec.UpdatedAt = rec.CreatedAt
	m.recs[rec.ID] = *rec
	return nil
}

func (m *MemoryStore) GetByID(_ context.Context, id int) (*models.Recommendation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.recs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (m *MemoryStore) Update(_ context.Context, rec *models.Recommendation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.recs[rec.ID]
	if !ok {
		return ErrNotFound
	}
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = m.now()
	m.recs[rec.ID] = *rec
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.recs, id)
	return nil
}

func (m *MemoryStore) List(_ context.Context, filter models.RecommendationFilter) ([]*models.Recommendation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	recommendations := []*models.Recommendation{}
	for _, rec := range m.recs {
		if !matches(rec, filter) {
			continue
		}
		rec := rec
		recommendations = append(recommendations, &rec)
	}
	sort.Slice(recommendations, func(i, j int) bool {
		return recommendations[i].ID < recommendations[j].ID
	})
	return recommendations, nil
}

func matches(rec models.Recommendation, f models.RecommendationFilter) bool {
	switch {
	case f.Name != nil && rec.Name != *f.Name:
		return false
	case f.ProductID != nil && rec.ProductID != *f.ProductID:
		return false
	case f.RecommendedProductID != nil && rec.RecommendedProductID != *f.RecommendedProductID:
		return false
	case f.RecommendationType != nil && rec.RecommendationType != *f.RecommendationType:
		return false
	}
	return true
}
