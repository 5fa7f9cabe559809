package entity

// Role represents the type of account in the marketplace.
type Role string

const (
	// RoleConsumer indicates an account that books services.
	RoleConsumer Role = "consumer"
	// RoleBusiness indicates a registered business offering services.
	RoleBusiness Role = "business"
	// RoleArtisan indicates an individual artisan offering services.
	RoleArtisan Role = "artisan"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleConsumer, RoleBusiness, RoleArtisan:
		return true
	default:
		return false
	}
}
