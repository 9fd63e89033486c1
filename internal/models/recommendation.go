package models

import (
	"time"

	"recs-admin/internal/dto"
)

// Recommendation links a source product to a product recommended alongside it.
type Recommendation struct {
	ID                   int       `db:"id"`
	Name                 string    `db:"name"`
	ProductID            int       `db:"product_id"`
	RecommendedProductID int       `db:"recommended_product_id"`
	RecommendationType   string    `db:"recommendation_type"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

// RecommendationFilter narrows a listing. Nil fields are not applied.
type RecommendationFilter struct {
	Name                 *string
	ProductID            *int
	RecommendedProductID *int
	RecommendationType   *string
}

func (r *Recommendation) ToResponse() dto.RecommendationResponse {
	return dto.RecommendationResponse{
		ID:                   r.ID,
		Name:                 r.Name,
		ProductID:            r.ProductID,
		RecommendedProductID: r.RecommendedProductID,
		RecommendationType:   r.RecommendationType,
		CreatedAt:            r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:            r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
