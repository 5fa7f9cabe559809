package repository

import (
	"context"
	"errors"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review id does not resolve.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	// FindByID retrieves a single review without reviewer join.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ListByReviewee returns all reviews about the account, newest first,
	// each joined with the reviewer's public fields.
	ListByReviewee(ctx context.Context, revieweeID uuid.UUID) ([]*entity.Review, error)

	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// Update overwrites the review's rating and comment.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes the review. Returns ErrReviewNotFound when missing.
	Delete(ctx context.Context, id uuid.UUID) error
}
