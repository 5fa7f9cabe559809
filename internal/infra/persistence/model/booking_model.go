package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel mirrors the 'bookings' table. Both parties reference
// users.id; no uniqueness over (provider, date, slot), so overlapping
// bookings are accepted.
type BookingModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConsumerID uuid.UUID `gorm:"type:uuid;index;not null"`
	ProviderID uuid.UUID `gorm:"type:uuid;index;not null"`
	Service    string    `gorm:"type:varchar(255);not null"`
	Date       string    `gorm:"type:varchar(10);not null"` // "YYYY-MM-DD"
	StartTime  string    `gorm:"type:varchar(5);not null"`
	EndTime    string    `gorm:"type:varchar(5);not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:pending"`
	Notes      string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Consumer *UserModel `gorm:"foreignKey:ConsumerID"`
	Provider *UserModel `gorm:"foreignKey:ProviderID"`
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
