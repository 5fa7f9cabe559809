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

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	BookingRepo repository.BookingRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewBookingService creates a new booking service instance
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo: params.BookingRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

// Create requests an appointment. The consumer is the authenticated caller
// and the status always starts at pending. The requested slot is not checked
// against the provider's availability or other bookings; double booking is
// resolved by the provider through the status flow.
func (srv *bookingService) Create(ctx context.Context, consumerID uuid.UUID, input usecase.CreateBookingInput) (*entity.Booking, error) {
	if _, err := srv.userRepo.FindByID(ctx, input.ProviderID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking provider")
	}

	booking := &entity.Booking{
		ConsumerID: consumerID,
		ProviderID: input.ProviderID,
		Service:    input.Service,
		Date:       input.Date,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Status:     entity.BookingPending,
		Notes:      input.Notes,
	}

	if err := srv.bookingRepo.Create(ctx, booking); err != nil {
		return nil, errors.WithStack(err)
	}
	srv.logger.Debug("Booking created", "bookingID", booking.ID, "consumerID", consumerID)

	return booking, nil
}

// ListAsConsumer returns the caller's outgoing bookings.
func (srv *bookingService) ListAsConsumer(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.ListByConsumer(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings as consumer")
	}

	return bookings, nil
}

// ListAsProvider returns the caller's incoming bookings.
func (srv *bookingService) ListAsProvider(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.ListByProvider(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings as provider")
	}

	return bookings, nil
}

// UpdateStatus overwrites a booking's status. Only the two parties of the
// booking may change it; beyond validity there is no transition rule, so a
// canceled booking can go back to confirmed.
func (srv *bookingService) UpdateStatus(ctx context.Context, actorID, bookingID uuid.UUID, status entity.BookingStatus) (*entity.Booking, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidBookingStatus
	}

	booking, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	if !booking.IsParty(actorID) {
		return nil, domainerrors.ErrForbidden
	}

	if err := srv.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrBookingNotFound
		}

		return nil, errors.WithStack(err)
	}
	booking.Status = status

	srv.logger.Debug("Booking status updated", "bookingID", bookingID, "status", string(status))

	return booking, nil
}
