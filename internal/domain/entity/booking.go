package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the state of an appointment request. Transitions are
// deliberately unconstrained: any status may be overwritten with any other.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCanceled  BookingStatus = "canceled"
)

// IsValid checks if the BookingStatus is a known value.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCanceled:
		return true
	default:
		return false
	}
}

// Booking is a requested appointment between a consumer and a provider.
// No overlap check is performed against the provider's other bookings or
// availability windows; concurrent bookings for the same slot all persist.
type Booking struct {
	ID         uuid.UUID
	ConsumerID uuid.UUID
	ProviderID uuid.UUID
	Service    string
	Date       string // "YYYY-MM-DD"
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM"
	Status     BookingStatus
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Counterparty is populated on list reads: the provider when listing for
	// a consumer, the consumer when listing for a provider.
	Counterparty *PublicUser
}

// IsParty reports whether the given account is one of the booking's two sides.
func (b *Booking) IsParty(userID uuid.UUID) bool {
	return b.ConsumerID == userID || b.ProviderID == userID
}
