// Package service provides hand-maintained testify mocks for the domain
// service interfaces.
package service

import (
	"context"
	"io"
	"testing"

	"connect/internal/domain/entity"
	"connect/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates the mock and asserts its expectations on cleanup.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

func (m *MockPasswordHasher) ValidatePasswordStrength(password string) error {
	return m.Called(password).Error(0)
}

// MockEventBus mocks service.EventBus.
type MockEventBus struct {
	mock.Mock
}

// NewMockEventBus creates the mock and asserts its expectations on cleanup.
func NewMockEventBus(t *testing.T) *MockEventBus {
	m := &MockEventBus{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventBus) Publish(ctx context.Context, channel string, message *entity.Message) error {
	return m.Called(ctx, channel, message).Error(0)
}

func (m *MockEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entity.Message, error) {
	args := m.Called(ctx, channel)
	if ch, ok := args.Get(0).(<-chan *entity.Message); ok {
		return ch, args.Error(1)
	}
	if ch, ok := args.Get(0).(chan *entity.Message); ok {
		return ch, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockEventBus) Close() error {
	return m.Called().Error(0)
}

// MockEventPublisher mocks service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates the mock and asserts its expectations on cleanup.
func NewMockEventPublisher(t *testing.T) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishMessageEvent(ctx context.Context, event *service.MessageEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// MockNotificationService mocks service.NotificationService.
type MockNotificationService struct {
	mock.Mock
}

// NewMockNotificationService creates the mock and asserts its expectations on cleanup.
func NewMockNotificationService(t *testing.T) *MockNotificationService {
	m := &MockNotificationService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNotificationService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	args := m.Called(ctx, tokens, title, body, data)

	var invalid []string
	if v, ok := args.Get(2).([]string); ok {
		invalid = v
	}

	return args.Int(0), args.Int(1), invalid, args.Error(3)
}

// MockQRCodeService mocks service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates the mock and asserts its expectations on cleanup.
func NewMockQRCodeService(t *testing.T) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) GenerateProfileQR(userID uuid.UUID) ([]byte, error) {
	args := m.Called(userID)
	if png, ok := args.Get(0).([]byte); ok {
		return png, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockQRCodeService) ParseProfileQR(qrData string) (uuid.UUID, error) {
	args := m.Called(qrData)
	if id, ok := args.Get(0).(uuid.UUID); ok {
		return id, args.Error(1)
	}

	return uuid.Nil, args.Error(1)
}

// MockPictureStore mocks service.PictureStore.
type MockPictureStore struct {
	mock.Mock
}

// NewMockPictureStore creates the mock and asserts its expectations on cleanup.
func NewMockPictureStore(t *testing.T) *MockPictureStore {
	m := &MockPictureStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPictureStore) Save(ctx context.Context, name string, contentType string, r io.Reader) (string, error) {
	args := m.Called(ctx, name, contentType, r)

	return args.String(0), args.Error(1)
}

func (m *MockPictureStore) Open(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, ref)
	if rc, ok := args.Get(0).(io.ReadCloser); ok {
		return rc, args.String(1), args.Error(2)
	}

	return nil, args.String(1), args.Error(2)
}

func (m *MockPictureStore) Close() error {
	return m.Called().Error(0)
}
