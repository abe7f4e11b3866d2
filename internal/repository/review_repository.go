package repository

import (
	"context"

	"gorm.io/gorm"

	"bookreviews/internal/model"
)

// ReviewRepository defines review persistence operations. Every mutation on
// an existing review is scoped to its owner in the WHERE clause, so a
// mismatched owner shows up as zero affected rows rather than an error.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	ListByOwner(ctx context.Context, userID uint) ([]model.Review, error)
	UpdateOwned(ctx context.Context, reviewID, userID uint, fields map[string]interface{}) (*model.Review, error)
	DeleteOwned(ctx context.Context, reviewID, userID uint) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository builds a GORM-backed repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// ListByOwner returns the user's reviews in insertion order.
func (r *reviewRepository) ListByOwner(ctx context.Context, userID uint) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("review_id ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// UpdateOwned overwrites the given columns of the review, constrained to the
// owner. Returns gorm.ErrRecordNotFound when no row matched, whether the
// review is absent or owned by someone else.
func (r *reviewRepository) UpdateOwned(ctx context.Context, reviewID, userID uint, fields map[string]interface{}) (*model.Review, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var review model.Review
	if err := r.db.WithContext(ctx).First(&review, "review_id = ?", reviewID).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteOwned deletes the review if it belongs to userID and returns the
// number of rows removed. The delete is permanent.
func (r *reviewRepository) DeleteOwned(ctx context.Context, reviewID, userID uint) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Delete(&model.Review{})
	return tx.RowsAffected, tx.Error
}
