package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bookreviews/internal/errors"
	"bookreviews/internal/model"
	"bookreviews/internal/repository"
)

// ReviewInput carries the client-supplied review fields. An update overwrites
// every column with these values, matching the single UPDATE statement the
// store runs; there is no partial patch.
type ReviewInput struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Description string `json:"description"`
	Opinion     string `json:"opinion"`
	ReviewDate  string `json:"review_date" validate:"required"`
	ISBN        string `json:"isbn"`
	Rating      int    `json:"rating"`
}

// ReviewService handles review CRUD scoped by the authenticated identity.
type ReviewService interface {
	ListForUser(ctx context.Context, userID uint) ([]model.Review, error)
	Create(ctx context.Context, userID uint, input *ReviewInput) (*model.Review, error)
	Update(ctx context.Context, reviewID, requesterID uint, input *ReviewInput) (*model.Review, error)
	Delete(ctx context.Context, reviewID, requesterID uint) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

// ListForUser returns the user's reviews in insertion order.
func (s *reviewService) ListForUser(ctx context.Context, userID uint) ([]model.Review, error) {
	reviews, err := s.reviewRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// Create inserts a review owned by userID and returns it with its generated
// identifier.
func (s *reviewService) Create(ctx context.Context, userID uint, input *ReviewInput) (*model.Review, error) {
	review := &model.Review{
		UserID:      userID,
		Title:       input.Title,
		Author:      input.Author,
		Description: input.Description,
		Opinion:     input.Opinion,
		ReviewDate:  input.ReviewDate,
		ISBN:        input.ISBN,
		Rating:      input.Rating,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// Update overwrites the review's fields, constrained to rows owned by the
// requester. A review that is absent or owned by someone else yields the same
// not-found error.
func (s *reviewService) Update(ctx context.Context, reviewID, requesterID uint, input *ReviewInput) (*model.Review, error) {
	fields := map[string]interface{}{
		"title":       input.Title,
		"author":      input.Author,
		"description": input.Description,
		"opinion":     input.Opinion,
		"review_date": input.ReviewDate,
		"isbn":        input.ISBN,
		"rating":      input.Rating,
	}

	review, err := s.reviewRepo.UpdateOwned(ctx, reviewID, requesterID, fields)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrReviewNotFound
		}
		return nil, fmt.Errorf("update review: %w", err)
	}
	return review, nil
}

// Delete permanently removes the review, constrained to rows owned by the
// requester, with the same not-found conflation as Update.
func (s *reviewService) Delete(ctx context.Context, reviewID, requesterID uint) error {
	affected, err := s.reviewRepo.DeleteOwned(ctx, reviewID, requesterID)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if affected == 0 {
		return errors.ErrReviewNotFound
	}
	return nil
}
