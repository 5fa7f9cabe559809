// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
// The struct deliberately carries no JSON tags: the password hash must never
// be serialized, so delivery code maps users to an explicit PublicUser DTO.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Username     string    // Globally unique display handle.
	Email        string    // Globally unique, stored lowercase.
	PasswordHash string    // bcrypt hash of the account password.
	Role         Role      // consumer, business or artisan.
	Bio          string    // Coarse profile fields kept on the account itself;
	Location     string    // the extended Profile is seeded from these lazily.
	Picture      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the subset of account fields that may appear in responses
// and in joins (booking counterparty, review author, profile owner).
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
}

// Public strips the user down to its exposable fields.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}

	return &PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// IsProvider reports whether the account can be booked and reviewed.
func (u *User) IsProvider() bool {
	return u.Role == RoleBusiness || u.Role == RoleArtisan
}
