package repository

import (
	"context"
	"errors"

	"recs-admin/internal/models"
)

var ErrNotFound = errors.New("recommendation not found")

// Store persists recommendations for the reference service.
type Store interface {
	// Create assigns ID, CreatedAt and UpdatedAt on rec.
	Create(ctx context.Context, rec *models.Recommendation) error
	GetByID(ctx context.Context, id int) (*models.Recommendation, error)
	// Update overwrites the editable fields of rec.ID and refreshes
	// UpdatedAt. Returns ErrNotFound for unknown ids.
	Update(ctx context.Context, rec *models.Recommendation) error
	// Delete removes id; deleting an unknown id is not an error.
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, filter models.RecommendationFilter) ([]*models.Recommendation, error)
}

var (
	_ Store = (*RecommendationRepository)(nil)
	_ Store = (*MemoryStore)(nil)
)
