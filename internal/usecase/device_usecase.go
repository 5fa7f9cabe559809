package usecase

import (
	"context"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for push-target management.
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes an existing one.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.Device, error)

	// GetUserDevices retrieves all devices registered by the account.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)
}
