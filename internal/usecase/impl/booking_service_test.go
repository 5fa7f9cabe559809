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

func newBookingService(t *testing.T) (usecase.BookingUsecase, *mockRepo.MockBookingRepository, *mockRepo.MockUserRepository) {
	t.Helper()

	bookingRepo := mockRepo.NewMockBookingRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewBookingService(BookingServiceParams{
		BookingRepo: bookingRepo,
		UserRepo:    userRepo,
		Logger:      testLogger(),
	})

	return svc, bookingRepo, userRepo
}

func TestBookingService_Create(t *testing.T) {
	svc, bookingRepo, userRepo := newBookingService(t)

	ctx := context.Background()
	consumerID := uuid.New()
	providerID := uuid.New()

	userRepo.On("FindByID", ctx, providerID).Return(&entity.User{ID: providerID, Role: entity.RoleBusiness}, nil)
	bookingRepo.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)

	got, err := svc.Create(ctx, consumerID, usecase.CreateBookingInput{
		ProviderID: providerID,
		Service:    "haircut",
		Date:       "2026-09-01",
		StartTime:  "10:00",
		EndTime:    "11:00",
	})
	require.NoError(t, err)
	assert.Equal(t, consumerID, got.ConsumerID, "consumer comes from the session, not the payload")
	assert.Equal(t, entity.BookingPending, got.Status, "status always starts pending")
}

func TestBookingService_Create_UnknownProvider(t *testing.T) {
	svc, _, userRepo := newBookingService(t)

	ctx := context.Background()
	providerID := uuid.New()
	userRepo.On("FindByID", ctx, providerID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.Create(ctx, uuid.New(), usecase.CreateBookingInput{ProviderID: providerID})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestBookingService_Lists(t *testing.T) {
	svc, bookingRepo, _ := newBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	outgoing := []*entity.Booking{{ID: uuid.New(), ConsumerID: userID}}
	incoming := []*entity.Booking{{ID: uuid.New(), ProviderID: userID}}

	bookingRepo.On("ListByConsumer", ctx, userID).Return(outgoing, nil)
	bookingRepo.On("ListByProvider", ctx, userID).Return(incoming, nil)

	got, err := svc.ListAsConsumer(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, outgoing, got)

	got, err = svc.ListAsProvider(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, incoming, got)
}

func TestBookingService_UpdateStatus(t *testing.T) {
	svc, bookingRepo, _ := newBookingService(t)

	ctx := context.Background()
	providerID := uuid.New()
	booking := &entity.Booking{
		ID:         uuid.New(),
		ConsumerID: uuid.New(),
		ProviderID: providerID,
		Status:     entity.BookingPending,
	}

	bookingRepo.On("FindByID", ctx, booking.ID).Return(booking, nil)
	bookingRepo.On("UpdateStatus", ctx, booking.ID, entity.BookingConfirmed).Return(nil)

	got, err := svc.UpdateStatus(ctx, providerID, booking.ID, entity.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, got.Status)
}

func TestBookingService_UpdateStatus_AnyTransitionAllowed(t *testing.T) {
	svc, bookingRepo, _ := newBookingService(t)

	ctx := context.Background()
	consumerID := uuid.New()
	booking := &entity.Booking{
		ID:         uuid.New(),
		ConsumerID: consumerID,
		ProviderID: uuid.New(),
		Status:     entity.BookingCanceled,
	}

	bookingRepo.On("FindByID", ctx, booking.ID).Return(booking, nil)
	bookingRepo.On("UpdateStatus", ctx, booking.ID, entity.BookingConfirmed).Return(nil)

	// canceled -> confirmed is allowed; there is no transition graph.
	got, err := svc.UpdateStatus(ctx, consumerID, booking.ID, entity.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, got.Status)
}

func TestBookingService_UpdateStatus_Failures(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		svc, _, _ := newBookingService(t)

		_, err := svc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), entity.BookingStatus("done"))
		assert.ErrorIs(t, err, domainerrors.ErrInvalidBookingStatus)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, bookingRepo, _ := newBookingService(t)

		ctx := context.Background()
		bookingID := uuid.New()
		bookingRepo.On("FindByID", ctx, bookingID).Return(nil, repository.ErrBookingNotFound)

		_, err := svc.UpdateStatus(ctx, uuid.New(), bookingID, entity.BookingConfirmed)
		assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
	})

	t.Run("outsider", func(t *testing.T) {
		svc, bookingRepo, _ := newBookingService(t)

		ctx := context.Background()
		booking := &entity.Booking{ID: uuid.New(), ConsumerID: uuid.New(), ProviderID: uuid.New()}
		bookingRepo.On("FindByID", ctx, booking.ID).Return(booking, nil)

		_, err := svc.UpdateStatus(ctx, uuid.New(), booking.ID, entity.BookingConfirmed)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}
