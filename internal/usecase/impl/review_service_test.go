package impl

import (
	"context"
	"testing"

	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	mockRepo "connect/internal/mocks/repository"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReviewService(t *testing.T) (usecase.ReviewUsecase, *mockRepo.MockReviewRepository, *mockRepo.MockUserRepository) {
	t.Helper()

	reviewRepo := mockRepo.NewMockReviewRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewReviewService(ReviewServiceParams{
		ReviewRepo: reviewRepo,
		UserRepo:   userRepo,
		Logger:     testLogger(),
	})

	return svc, reviewRepo, userRepo
}

func TestReviewService_Create(t *testing.T) {
	svc, reviewRepo, userRepo := newReviewService(t)

	ctx := context.Background()
	reviewerID := uuid.New()
	revieweeID := uuid.New()

	userRepo.On("FindByID", ctx, revieweeID).Return(&entity.User{ID: revieweeID, Role: entity.RoleBusiness}, nil)
	reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

	got, err := svc.Create(ctx, reviewerID, usecase.CreateReviewInput{
		RevieweeID: revieweeID,
		Rating:     5,
		Comment:    "great work",
		Service:    "haircut",
	})
	require.NoError(t, err)
	assert.Equal(t, reviewerID, got.ReviewerID)
	assert.Equal(t, 5, got.Rating)
}

func TestReviewService_Create_Failures(t *testing.T) {
	t.Run("rating out of range", func(t *testing.T) {
		svc, _, _ := newReviewService(t)

		_, err := svc.Create(context.Background(), uuid.New(), usecase.CreateReviewInput{RevieweeID: uuid.New(), Rating: 6})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("consumer reviewee", func(t *testing.T) {
		svc, _, userRepo := newReviewService(t)

		ctx := context.Background()
		revieweeID := uuid.New()
		userRepo.On("FindByID", ctx, revieweeID).Return(&entity.User{ID: revieweeID, Role: entity.RoleConsumer}, nil)

		_, err := svc.Create(ctx, uuid.New(), usecase.CreateReviewInput{RevieweeID: revieweeID, Rating: 4})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidReviewTarget)
	})

	t.Run("unknown reviewee", func(t *testing.T) {
		svc, _, userRepo := newReviewService(t)

		ctx := context.Background()
		revieweeID := uuid.New()
		userRepo.On("FindByID", ctx, revieweeID).Return(nil, repository.ErrUserNotFound)

		_, err := svc.Create(ctx, uuid.New(), usecase.CreateReviewInput{RevieweeID: revieweeID, Rating: 4})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestReviewService_ListForUser(t *testing.T) {
	svc, reviewRepo, userRepo := newReviewService(t)

	ctx := context.Background()
	revieweeID := uuid.New()
	reviews := []*entity.Review{{ID: uuid.New()}, {ID: uuid.New()}}
	userRepo.On("FindByID", ctx, revieweeID).Return(&entity.User{ID: revieweeID, Role: entity.RoleArtisan}, nil)
	reviewRepo.On("ListByReviewee", ctx, revieweeID).Return(reviews, nil)

	got, err := svc.ListForUser(ctx, revieweeID)
	require.NoError(t, err)
	assert.Equal(t, reviews, got)
}

func TestReviewService_ListForUser_ConsumerTarget(t *testing.T) {
	svc, reviewRepo, userRepo := newReviewService(t)

	ctx := context.Background()
	revieweeID := uuid.New()
	userRepo.On("FindByID", ctx, revieweeID).Return(&entity.User{ID: revieweeID, Role: entity.RoleConsumer}, nil)

	_, err := svc.ListForUser(ctx, revieweeID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReviewTarget)
	reviewRepo.AssertNotCalled(t, "ListByReviewee")
}

func TestReviewService_ListForUser_UnknownTarget(t *testing.T) {
	svc, reviewRepo, userRepo := newReviewService(t)

	ctx := context.Background()
	revieweeID := uuid.New()
	userRepo.On("FindByID", ctx, revieweeID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.ListForUser(ctx, revieweeID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	reviewRepo.AssertNotCalled(t, "ListByReviewee")
}

func TestReviewService_Update(t *testing.T) {
	svc, reviewRepo, _ := newReviewService(t)

	ctx := context.Background()
	reviewerID := uuid.New()
	review := &entity.Review{ID: uuid.New(), ReviewerID: reviewerID, Rating: 3, Comment: "ok"}

	reviewRepo.On("FindByID", ctx, review.ID).Return(review, nil)
	reviewRepo.On("Update", ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

	got, err := svc.Update(ctx, reviewerID, review.ID, usecase.UpdateReviewInput{Rating: 5, Comment: "even better"})
	require.NoError(t, err)
	assert.Equal(t, 5, got.Rating)
	assert.Equal(t, "even better", got.Comment)
}

func TestReviewService_Update_NotOwner(t *testing.T) {
	svc, reviewRepo, _ := newReviewService(t)

	ctx := context.Background()
	review := &entity.Review{ID: uuid.New(), ReviewerID: uuid.New()}
	reviewRepo.On("FindByID", ctx, review.ID).Return(review, nil)

	_, err := svc.Update(ctx, uuid.New(), review.ID, usecase.UpdateReviewInput{Rating: 1})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReviewService_Delete(t *testing.T) {
	svc, reviewRepo, _ := newReviewService(t)

	ctx := context.Background()
	reviewerID := uuid.New()
	review := &entity.Review{ID: uuid.New(), ReviewerID: reviewerID}

	reviewRepo.On("FindByID", ctx, review.ID).Return(review, nil)
	reviewRepo.On("Delete", ctx, review.ID).Return(nil)

	require.NoError(t, svc.Delete(ctx, reviewerID, review.ID))
}

func TestReviewService_Delete_Failures(t *testing.T) {
	t.Run("unknown review", func(t *testing.T) {
		svc, reviewRepo, _ := newReviewService(t)

		ctx := context.Background()
		reviewID := uuid.New()
		reviewRepo.On("FindByID", ctx, reviewID).Return(nil, repository.ErrReviewNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), reviewID), domainerrors.ErrReviewNotFound)
	})

	t.Run("not owner", func(t *testing.T) {
		svc, reviewRepo, _ := newReviewService(t)

		ctx := context.Background()
		review := &entity.Review{ID: uuid.New(), ReviewerID: uuid.New()}
		reviewRepo.On("FindByID", ctx, review.ID).Return(review, nil)

		assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), review.ID), domainerrors.ErrForbidden)
	})
}
