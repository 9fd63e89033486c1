package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"recs-admin/internal/dto"
	"recs-admin/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RecommendationHandler struct {
	recService *service.RecommendationService
	logger     *zap.Logger
}

func NewRecommendationHandler(recService *service.RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recService: recService,
		logger:     logger,
	}
}

// ListRecommendations godoc
// @Summary List recommendations
// @Description Returns every recommendation matching all of the given filters
// @Tags recommendations
// @Produce json
// @Param name query string false "Filter by name"
// @Param product_id query int false "Filter by product ID"
// @Param recommended_product_id query int false "Filter by recommended product ID"
// @Param recommendation_type query string false "Filter by recommendation type"
// @Success 200 {array} dto.RecommendationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /recommendations [get]
func (h *RecommendationHandler) ListRecommendations(c *fiber.Ctx) error {
	recs, err := h.recService.List(c.Context(), service.SearchParams{
		Name:                 c.Query("name"),
		ProductID:            c.Query("product_id"),
		RecommendedProductID: c.Query("recommended_product_id"),
		RecommendationType:   c.Query("recommendation_type"),
	})
	if err != nil {
		return h.fail(c, err, "")
	}

	resp := make([]dto.RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, rec.ToResponse())
	}
	return c.JSON(resp)
}

// CreateRecommendation godoc
// @Summary Create a recommendation
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.RecommendationPayload true "Recommendation"
// @Success 201 {object} dto.RecommendationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /recommendations [post]
func (h *RecommendationHandler) CreateRecommendation(c *fiber.Ctx) error {
	rec, err := h.recService.Create(c.Context(), c.Body())
	if err != nil {
		return h.fail(c, err, "")
	}

	c.Location(fmt.Sprintf("%s/recommendations/%d", c.BaseURL(), rec.ID))
	return c.Status(fiber.StatusCreated).JSON(rec.ToResponse())
}

// GetRecommendation godoc
// @Summary Retrieve a recommendation
// @Tags recommendations
// @Produce json
// @Param id path int true "Recommendation ID"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /recommendations/{id} [get]
func (h *RecommendationHandler) GetRecommendation(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return notFound(c, c.Params("id"))
	}

	rec, err := h.recService.Get(c.Context(), id)
	if err != nil {
		return h.fail(c, err, c.Params("id"))
	}
	return c.JSON(rec.ToResponse())
}

// UpdateRecommendation godoc
// @Summary Update a recommendation
// @Tags recommendations
// @Accept json
// @Produce json
// @Param id path int true "Recommendation ID"
// @Param request body dto.RecommendationPayload true "Recommendation"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /recommendations/{id} [put]
func (h *RecommendationHandler) UpdateRecommendation(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return notFound(c, c.Params("id"))
	}

	rec, err := h.recService.Update(c.Context(), id, c.Body())
	if err != nil {
		return h.fail(c, err, c.Params("id"))
	}
	return c.JSON(rec.ToResponse())
}

// DeleteRecommendation godoc
// @Summary Delete a recommendation
// @Description Deleting an unknown recommendation also succeeds
// @Tags recommendations
// @Param id path int true "Recommendation ID"
// @Success 204
// @Router /recommendations/{id} [delete]
func (h *RecommendationHandler) DeleteRecommendation(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return notFound(c, c.Params("id"))
	}

	if err := h.recService.Delete(c.Context(), id); err != nil {
		return h.fail(c, err, c.Params("id"))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *RecommendationHandler) fail(c *fiber.Ctx, err error, id string) error {
	switch {
	case errors.Is(err, service.ErrInvalidRecommendation), errors.Is(err, service.ErrInvalidFilter):
		h.logger.Warn("Rejected request", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return notFound(c, id)
	}

	h.logger.Error("Recommendation request failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Message: "Internal server error",
	})
}

func notFound(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Message: fmt.Sprintf("Recommendation with id '%s' was not found.", id),
	})
}
