package impl

import (
	"context"
	"testing"

	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	mockRepo "connect/internal/mocks/repository"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceService(t *testing.T) (usecase.DeviceUsecase, *mockRepo.MockDeviceRepository) {
	t.Helper()

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     testLogger(),
	})

	return svc, deviceRepo
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	svc, deviceRepo := newDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(args mock.Arguments) {
			device := args.Get(1).(*entity.Device)
			device.ID = uuid.New()
		}).
		Return(nil)

	device, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "fcm-token-abc",
		DeviceID: "device-1",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "fcm-token-abc", device.FCMToken)
	assert.NotEqual(t, uuid.Nil, device.ID)
}

func TestDeviceService_RegisterDevice_MissingFields(t *testing.T) {
	cases := []struct {
		name string
		info *usecase.DeviceInfo
	}{
		{"nil info", nil},
		{"missing token", &usecase.DeviceInfo{DeviceID: "device-1"}},
		{"missing device id", &usecase.DeviceInfo{FCMToken: "fcm-token-abc"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newDeviceService(t)

			_, err := svc.RegisterDevice(context.Background(), uuid.New(), tc.info)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	svc, deviceRepo := newDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.Device{
		{ID: uuid.New(), UserID: userID, DeviceID: "device-1"},
		{ID: uuid.New(), UserID: userID, DeviceID: "device-2"},
	}
	deviceRepo.On("ListByUser", ctx, userID).Return(devices, nil)

	got, err := svc.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}
