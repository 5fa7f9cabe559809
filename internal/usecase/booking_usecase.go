package usecase

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBookingInput defines the data required to request an appointment.
// The consumer is always the authenticated caller and the status always
// starts at pending, regardless of what the request carried.
type CreateBookingInput struct {
	ProviderID uuid.UUID
	Service    string
	Date       string // "YYYY-MM-DD"
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM"
	Notes      string
}

// BookingUsecase defines the interface for appointment operations.
type BookingUsecase interface {
	// Create requests an appointment with a provider.
	Create(ctx context.Context, consumerID uuid.UUID, input CreateBookingInput) (*entity.Booking, error)

	// ListAsConsumer returns the caller's outgoing bookings with the
	// provider as counterparty.
	ListAsConsumer(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)

	// ListAsProvider returns the caller's incoming bookings with the
	// consumer as counterparty.
	ListAsProvider(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)

	// UpdateStatus overwrites a booking's status. Only the two parties of
	// the booking may change it; any valid status may replace any other.
	UpdateStatus(ctx context.Context, actorID, bookingID uuid.UUID, status entity.BookingStatus) (*entity.Booking, error)
}
