package impl

import (
	"context"
	"log/slog"

	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

// Create leaves a review. Only provider accounts can be reviewed; a caller
// may review the same provider any number of times.
func (srv *reviewService) Create(ctx context.Context, reviewerID uuid.UUID, input usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	reviewee, err := srv.userRepo.FindByID(ctx, input.RevieweeID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find reviewee")
	}
	if !reviewee.IsProvider() {
		return nil, domainerrors.ErrInvalidReviewTarget
	}

	review := &entity.Review{
		ReviewerID: reviewerID,
		RevieweeID: input.RevieweeID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		Service:    input.Service,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.WithStack(err)
	}
	srv.logger.Debug("Review created", "reviewID", review.ID, "revieweeID", input.RevieweeID)

	return review, nil
}

// ListForUser returns all reviews about the account, newest first. Listing
// is only defined for provider accounts; pointing it at a consumer or an
// unknown id is an error, not an empty list.
func (srv *reviewService) ListForUser(ctx context.Context, revieweeID uuid.UUID) ([]*entity.Review, error) {
	reviewee, err := srv.userRepo.FindByID(ctx, revieweeID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find reviewee")
	}
	if !reviewee.IsProvider() {
		return nil, domainerrors.ErrInvalidReviewTarget
	}

	reviews, err := srv.reviewRepo.ListByReviewee(ctx, revieweeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// Update changes a review's rating and comment. Only the original reviewer
// may do this.
func (srv *reviewService) Update(ctx context.Context, actorID, reviewID uuid.UUID, input usecase.UpdateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	review, err := srv.findOwnedReview(ctx, actorID, reviewID)
	if err != nil {
		return nil, err
	}

	review.Rating = input.Rating
	review.Comment = input.Comment

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.WithStack(err)
	}

	return review, nil
}

// Delete removes a review. Only the original reviewer may do this.
func (srv *reviewService) Delete(ctx context.Context, actorID, reviewID uuid.UUID) error {
	if _, err := srv.findOwnedReview(ctx, actorID, reviewID); err != nil {
		return err
	}

	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.WithStack(err)
	}
	srv.logger.Debug("Review deleted", "reviewID", reviewID)

	return nil
}

// findOwnedReview loads the review and enforces that the actor wrote it.
func (srv *reviewService) findOwnedReview(ctx context.Context, actorID, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	if review.ReviewerID != actorID {
		return nil, domainerrors.ErrForbidden
	}

	return review, nil
}
