package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"recs-admin/internal/models"
	"recs-admin/internal/repository"

	"go.uber.org/zap"
)

var (
	ErrInvalidRecommendation = errors.New("Invalid Recommendation")
	ErrInvalidFilter         = errors.New("Invalid filter")
	ErrNotFound              = repository.ErrNotFound
)

// recommendationInput accepts the create/update body. Pointers tell a
// missing or null field apart from a zero value.
type recommendationInput struct {
	Name                 *string `json:"name"`
	ProductID            *int    `json:"product_id"`
	RecommendedProductID *int    `json:"recommended_product_id"`
	RecommendationType   *string `json:"recommendation_type"`
}

// SearchParams carries raw query parameters; empty strings are unset.
type SearchParams struct {
	Name                 string
	ProductID            string
	RecommendedProductID string
	RecommendationType   string
}

type RecommendationService struct {
	store  repository.Store
	logger *zap.Logger
}

func NewRecommendationService(store repository.Store, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		store:  store,
		logger: logger,
	}
}

func (s *RecommendationService) Create(ctx context.Context, body []byte) (*models.Recommendation, error) {
	rec, err := deserialize(body)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Creating recommendation", zap.String("name", rec.Name))
	if err := s.store.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to create recommendation: %w", err)
	}

	s.logger.Info("Recommendation created", zap.Int("id", rec.ID))
	return rec, nil
}

func (s *RecommendationService) Get(ctx context.Context, id int) (*models.Recommendation, error) {
	s.logger.Debug("Looking up recommendation", zap.Int("id", id))
	return s.store.GetByID(ctx, id)
}

// Update replaces the editable fields of an existing recommendation.
func (s *RecommendationService) Update(ctx context.Context, id int, body []byte) (*models.Recommendation, error) {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return nil, err
	}

	rec, err := deserialize(body)
	if err != nil {
		return nil, err
	}
	rec.ID = id

	s.logger.Info("Updating recommendation", zap.Int("id", id))
	if err := s.store.Update(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update recommendation: %w", err)
	}
	return rec, nil
}

// Delete removes id. Unknown ids are ignored.
func (s *RecommendationService) Delete(ctx context.Context, id int) error {
	s.logger.Info("Deleting recommendation", zap.Int("id", id))
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete recommendation: %w", err)
	}
	return nil
}

func (s *RecommendationService) List(ctx context.Context, params SearchParams) ([]*models.Recommendation, error) {
	filter, err := params.filter()
	if err != nil {
		return nil, err
	}

	recs, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}

	s.logger.Info("Recommendations listed", zap.Int("count", len(recs)))
	return recs, nil
}

func deserialize(body []byte) (*models.Recommendation, error) {
	var in recommendationInput
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: body of request contained bad or no data", ErrInvalidRecommendation)
	}
	if err := json.Unmarshal(body, &in); err != nil {
		return nil, fmt.Errorf("%w: body of request contained bad or no data", ErrInvalidRecommendation)
	}

	switch {
	case in.Name == nil:
		return nil, fmt.Errorf("%w: missing name", ErrInvalidRecommendation)
	case in.ProductID == nil:
		return nil, fmt.Errorf("%w: missing product_id", ErrInvalidRecommendation)
	case in.RecommendedProductID == nil:
		return nil, fmt.Errorf("%w: missing recommended_product_id", ErrInvalidRecommendation)
	case in.RecommendationType == nil || *in.RecommendationType == "":
		return nil, fmt.Errorf("%w: missing recommendation_type", ErrInvalidRecommendation)
	}

	name, err := sanitizeText("name", *in.Name)
	if err != nil {
		return nil, err
	}
	recType, err := sanitizeText("recommendation_type", *in.RecommendationType)
	if err != nil {
		return nil, err
	}

	return &models.Recommendation{
		Name:                 name,
		ProductID:            *in.ProductID,
		RecommendedProductID: *in.RecommendedProductID,
		RecommendationType:   recType,
	}, nil
}

func (p SearchParams) filter() (models.RecommendationFilter, error) {
	var f models.RecommendationFilter
	if p.Name != "" {
		f.Name = &p.Name
	}
	if p.RecommendationType != "" {
		f.RecommendationType = &p.RecommendationType
	}

	var err error
	if f.ProductID, err = intParam("product_id", p.ProductID); err != nil {
		return f, err
	}
	if f.RecommendedProductID, err = intParam("recommended_product_id", p.RecommendedProductID); err != nil {
		return f, err
	}
	return f, nil
}

func intParam(name, raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", ErrInvalidFilter, name)
	}
	return &n, nil
}
