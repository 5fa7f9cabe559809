package usecase

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to leave a review.
type CreateReviewInput struct {
	RevieweeID uuid.UUID
	Rating     int
	Comment    string
	Service    string
}

// UpdateReviewInput carries the mutable review fields.
type UpdateReviewInput struct {
	Rating  int
	Comment string
}

// ReviewUsecase defines the interface for review operations.
type ReviewUsecase interface {
	// Create leaves a review about a business or artisan account.
	Create(ctx context.Context, reviewerID uuid.UUID, input CreateReviewInput) (*entity.Review, error)

	// ListForUser returns all reviews about the account, newest first.
	ListForUser(ctx context.Context, revieweeID uuid.UUID) ([]*entity.Review, error)

	// Update changes a review's rating and comment. Reviewer only.
	Update(ctx context.Context, actorID, reviewID uuid.UUID, input UpdateReviewInput) (*entity.Review, error)

	// Delete removes a review. Reviewer only.
	Delete(ctx context.Context, actorID, reviewID uuid.UUID) error
}
