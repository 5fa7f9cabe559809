package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device is a push-notification target registered by a client. Used only
// when Firebase is configured; the REST surface works without any devices.
type Device struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FCMToken  string
	DeviceID  string // client-generated stable identifier, unique per user
	Platform  string // "ios", "android" or "web"
	CreatedAt time.Time
	UpdatedAt time.Time
}
