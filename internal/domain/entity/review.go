package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rating left by one account about a business or artisan.
// Only the original reviewer may mutate or delete it.
type Review struct {
	ID         uuid.UUID
	ReviewerID uuid.UUID
	RevieweeID uuid.UUID
	Rating     int // 1..5
	Comment    string
	Service    string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Reviewer carries the author's public fields on list reads.
	Reviewer *PublicUser
}
