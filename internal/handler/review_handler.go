package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bookreviews/internal/auth"
	"bookreviews/internal/errors"
	"bookreviews/internal/service"
)

// ReviewHandler handles review CRUD endpoints. All routes sit behind
// auth.RequireAuth, so the authenticated user id is always on the context.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListForUser godoc
// @Summary List the user's reviews
// @Tags reviews
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} model.Review
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/users/{user_id}/reviews [get]
func (h *ReviewHandler) ListForUser(c echo.Context) error {
	reviews, err := h.reviewService.ListForUser(c.Request().Context(), auth.UserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// Create godoc
// @Summary Create a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param request body service.ReviewInput true "Review fields"
// @Success 200 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/users/{user_id}/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var input service.ReviewInput
	if err := c.Bind(&input); err != nil {
		return writeError(c, errors.ErrMissingReviewFields)
	}
	if err := c.Validate(&input); err != nil {
		return writeError(c, errors.ErrMissingReviewFields)
	}

	review, err := h.reviewService.Create(c.Request().Context(), auth.UserID(c), &input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, review)
}

// Update godoc
// @Summary Update an owned review
// @Tags reviews
// @Accept json
// @Produce json
// @Param review_id path int true "Review ID"
// @Param request body service.ReviewInput true "Review fields"
// @Success 200 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/reviews/{review_id} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	reviewID, err := strconv.Atoi(c.Param("review_id"))
	if err != nil {
		return writeError(c, errors.ErrInvalidReviewID)
	}

	var input service.ReviewInput
	if err := c.Bind(&input); err != nil {
		return writeError(c, errors.ErrMissingReviewFields)
	}

	review, err := h.reviewService.Update(c.Request().Context(), uint(reviewID), auth.UserID(c), &input)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, review)
}

// Delete godoc
// @Summary Delete an owned review
// @Tags reviews
// @Param review_id path int true "Review ID"
// @Success 204 "No Content"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/reviews/{review_id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	reviewID, err := strconv.Atoi(c.Param("review_id"))
	if err != nil {
		return writeError(c, errors.ErrInvalidReviewID)
	}

	if err := h.reviewService.Delete(c.Request().Context(), uint(reviewID), auth.UserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
