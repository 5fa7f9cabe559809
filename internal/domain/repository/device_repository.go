package repository

import (
	"context"
	"errors"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device id does not resolve.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository persists push-notification targets.
type DeviceRepository interface {
	// Upsert creates the device or, when the (user, deviceId) pair already
	// exists, refreshes its FCM token and platform.
	Upsert(ctx context.Context, device *entity.Device) error

	// ListByUser returns all devices registered by the account.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// DeleteByTokens removes devices whose FCM tokens were reported invalid
	// by the push service.
	DeleteByTokens(ctx context.Context, tokens []string) error
}
