package postgres

import (
	"context"

	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the domain.DeviceRepository interface using GORM.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// Upsert creates the device or, when the (user, deviceId) pair exists,
// refreshes its FCM token and platform.
func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "platform", "updated_at"}),
		}).
		Create(deviceM).Error

	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// ListByUser returns all devices registered by the account.
func (repo *deviceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	var deviceMs []model.DeviceModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&deviceMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices by user")
	}

	devices := make([]*entity.Device, 0, len(deviceMs))
	for i := range deviceMs {
		devices = append(devices, toDeviceDomain(&deviceMs[i]))
	}

	return devices, nil
}

// DeleteByTokens removes devices whose FCM tokens were reported invalid by
// the push service. An empty slice is a no-op.
func (repo *deviceRepository) DeleteByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Where("fcm_token IN ?", tokens).
		Delete(&model.DeviceModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete devices by tokens")
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:       data.ID,
		UserID:   data.UserID,
		FCMToken: data.FCMToken,
		DeviceID: data.DeviceID,
		Platform: data.Platform,
	}
}
