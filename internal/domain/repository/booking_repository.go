package repository

import (
	"context"
	"errors"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookingNotFound is returned when a booking id does not resolve.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines persistence operations for appointments.
// Bookings are never deleted, only created and status-overwritten.
type BookingRepository interface {
	// FindByID retrieves a single booking without counterparty join.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// ListByConsumer returns all bookings placed by the account, each with
	// the provider's public fields as counterparty.
	ListByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Booking, error)

	// ListByProvider returns all bookings targeting the account, each with
	// the consumer's public fields as counterparty.
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Booking, error)

	// Create persists a new booking.
	Create(ctx context.Context, booking *entity.Booking) error

	// UpdateStatus unconditionally overwrites the booking's status.
	// Last write wins on concurrent updates; no optimistic check.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
}
