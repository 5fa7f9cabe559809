package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the extended public-facing record for an account. At most one
// exists per account; it is created lazily from the account's basic fields
// the first time the owner fetches it.
type Profile struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Bio          string
	Location     string
	Services     []string
	Availability []AvailabilityWindow
	Pricing      string
	ContactInfo  ContactInfo
	Picture      string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Owner carries the referenced account's public fields when the profile
	// was loaded with its join.
	Owner *PublicUser
}

// AvailabilityWindow is a weekly recurring slot during which the provider
// accepts bookings. Times are "HH:MM" strings, compared lexically, which is
// exact for zero-padded 24h values.
type AvailabilityWindow struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ContactInfo groups the optional contact fields of a profile.
type ContactInfo struct {
	Phone       string      `json:"phone,omitempty"`
	Website     string      `json:"website,omitempty"`
	SocialMedia SocialMedia `json:"socialMedia"`
}

// SocialMedia holds optional social links.
type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// ProfileFilter describes the optional, independently ANDed search filters.
// A zero-value field omits that clause entirely.
type ProfileFilter struct {
	Role     Role   // resolves via a sub-query over accounts
	Service  string // case-insensitive substring over service tags
	Location string // case-insensitive substring
	Day      string // availability day; only applied together with Time
	Time     string // "HH:MM"; requested time must fall within [start, end)
}
