package repository

import (
	"context"
	"errors"
	"fmt"

	"recs-admin/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS recommendations (
	id                     SERIAL PRIMARY KEY,
	name                   VARCHAR(63),
	product_id             INTEGER NOT NULL,
	recommended_product_id INTEGER NOT NULL,
	recommendation_type    VARCHAR(63) NOT NULL,
	created_at             TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at             TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

var recommendationColumns = []string{
	"id", "name", "product_id", "recommended_product_id", "recommendation_type", "created_at", "updated_at",
}

type RecommendationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewRecommendationRepository(db *pgxpool.Pool, logger *zap.Logger) *RecommendationRepository {
	return &RecommendationRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the recommendations table when it does not exist.
func (r *RecommendationRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create recommendations table: %w", err)
	}
	return nil
}

func (r *RecommendationRepository) Create(ctx context.Context, rec *models.Recommendation) error {
	query := squirrel.Insert("recommendations").
		Columns("name", "product_id", "recommended_product_id", "recommendation_type").
		Values(rec.Name, rec.ProductID, rec.RecommendedProductID, rec.RecommendationType).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		r.logger.Error("Error creating recommendation", zap.String("name", rec.Name), zap.Error(err))
		return err
	}
	return nil
}

func (r *RecommendationRepository) GetByID(ctx context.Context, id int) (*models.Recommendation, error) {
	query := squirrel.Select(recommendationColumns...).
		From("recommendations").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rec, err := scanRecommendation(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

func (r *RecommendationRepository) Update(ctx context.Context, rec *models.Recommendation) error {
	query := squirrel.Update("recommendations").
		Set("name", rec.Name).
		Set("product_id", rec.ProductID).
		Set("recommended_product_id", rec.RecommendedProductID).
		Set("recommendation_type", rec.RecommendationType).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rec.ID}).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		r.logger.Error("Error updating recommendation", zap.Int("id", rec.ID), zap.Error(err))
	}
	return err
}

func (r *RecommendationRepository) Delete(ctx context.Context, id int) error {
	query := squirrel.Delete("recommendations").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *RecommendationRepository) List(ctx context.Context, filter models.RecommendationFilter) ([]*models.Recommendation, error) {
	query := listQuery(filter)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recommendations := []*models.Recommendation{}
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		recommendations = append(recommendations, rec)
	}

	return recommendations, rows.Err()
}

// listQuery selects every recommendation matching all set filter fields,
// ordered by id.
func listQuery(filter models.RecommendationFilter) squirrel.SelectBuilder {
	query := squirrel.Select(recommendationColumns...).
		From("recommendations").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Name != nil {
		query = query.Where(squirrel.Eq{"name": *filter.Name})
	}
	if filter.ProductID != nil {
		query = query.Where(squirrel.Eq{"product_id": *filter.ProductID})
	}
	if filter.RecommendedProductID != nil {
		query = query.Where(squirrel.Eq{"recommended_product_id": *filter.RecommendedProductID})
	}
	if filter.RecommendationType != nil {
		query = query.Where(squirrel.Eq{"recommendation_type": *filter.RecommendationType})
	}
	return query
}

func scanRecommendation(row pgx.Row) (*models.Recommendation, error) {
	var rec models.Recommendation
	var name *string
	if err := row.Scan(
		&rec.ID, &name, &rec.ProductID, &rec.RecommendedProductID, &rec.RecommendationType, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if name != nil {
		rec.Name = *name
	}
	return &rec, nil
}
