package model

import (
	"time"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. UserID references users.id and
// is unique: at most one profile per account. Service tags and contact info
// are stored as jsonb documents; availability windows get their own table so
// the search containment query can filter on them server-side.
type ProfileModel struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID          `gorm:"type:uuid;uniqueIndex;not null"`
	Bio         string             `gorm:"type:text"`
	Location    string             `gorm:"type:varchar(255)"`
	Services    []string           `gorm:"type:jsonb;serializer:json"`
	Pricing     string             `gorm:"type:text"`
	ContactInfo entity.ContactInfo `gorm:"type:jsonb;serializer:json"`
	Picture     string             `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User         *UserModel                `gorm:"foreignKey:UserID"`
	Availability []AvailabilityWindowModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// AvailabilityWindowModel mirrors the 'availability_windows' table.
type AvailabilityWindowModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID uuid.UUID `gorm:"type:uuid;index;not null"`
	Day       string    `gorm:"type:varchar(10);not null"`
	StartTime string    `gorm:"type:varchar(5);not null"` // "HH:MM"
	EndTime   string    `gorm:"type:varchar(5);not null"`
}

// TableName explicitly sets the table name for GORM.
func (AvailabilityWindowModel) TableName() string {
	return "availability_windows"
}
