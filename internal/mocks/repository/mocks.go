// Package repository provides hand-maintained testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"
	"testing"

	"connect/internal/domain/entity"
	"connect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates the mock and asserts its expectations on cleanup.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

// MockProfileRepository mocks repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

// NewMockProfileRepository creates the mock and asserts its expectations on cleanup.
func NewMockProfileRepository(t *testing.T) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	args := m.Called(ctx, userID)
	if profile, ok := args.Get(0).(*entity.Profile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockProfileRepository) Search(ctx context.Context, filter entity.ProfileFilter) ([]*entity.Profile, error) {
	args := m.Called(ctx, filter)
	if profiles, ok := args.Get(0).([]*entity.Profile); ok {
		return profiles, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockBookingRepository mocks repository.BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

// NewMockBookingRepository creates the mock and asserts its expectations on cleanup.
func NewMockBookingRepository(t *testing.T) *MockBookingRepository {
	m := &MockBookingRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if booking, ok := args.Get(0).(*entity.Booking); ok {
		return booking, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBookingRepository) ListByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Booking, error) {
	args := m.Called(ctx, consumerID)
	if bookings, ok := args.Get(0).([]*entity.Booking); ok {
		return bookings, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBookingRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Booking, error) {
	args := m.Called(ctx, providerID)
	if bookings, ok := args.Get(0).([]*entity.Booking); ok {
		return bookings, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

// MockReviewRepository mocks repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

// NewMockReviewRepository creates the mock and asserts its expectations on cleanup.
func NewMockReviewRepository(t *testing.T) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if review, ok := args.Get(0).(*entity.Review); ok {
		return review, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReviewRepository) ListByReviewee(ctx context.Context, revieweeID uuid.UUID) ([]*entity.Review, error) {
	args := m.Called(ctx, revieweeID)
	if reviews, ok := args.Get(0).([]*entity.Review); ok {
		return reviews, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockMessageRepository mocks repository.MessageRepository.
type MockMessageRepository struct {
	mock.Mock
}

// NewMockMessageRepository creates the mock and asserts its expectations on cleanup.
func NewMockMessageRepository(t *testing.T) *MockMessageRepository {
	m := &MockMessageRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *MockMessageRepository) ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entity.Message, error) {
	args := m.Called(ctx, userA, userB)
	if messages, ok := args.Get(0).([]*entity.Message); ok {
		return messages, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	args := m.Called(ctx, id)
	if message, ok := args.Get(0).(*entity.Message); ok {
		return message, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockSessionRepository mocks repository.SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

// NewMockSessionRepository creates the mock and asserts its expectations on cleanup.
func NewMockSessionRepository(t *testing.T) *MockSessionRepository {
	m := &MockSessionRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockSessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	args := m.Called(ctx, tokenHash)
	if session, ok := args.Get(0).(*entity.Session); ok {
		return session, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockSessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

// MockDeviceRepository mocks repository.DeviceRepository.
type MockDeviceRepository struct {
	mock.Mock
}

// NewMockDeviceRepository creates the mock and asserts its expectations on cleanup.
func NewMockDeviceRepository(t *testing.T) *MockDeviceRepository {
	m := &MockDeviceRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDeviceRepository) Upsert(ctx context.Context, device *entity.Device) error {
	return m.Called(ctx, device).Error(0)
}

func (m *MockDeviceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	args := m.Called(ctx, userID)
	if devices, ok := args.Get(0).([]*entity.Device); ok {
		return devices, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDeviceRepository) DeleteByTokens(ctx context.Context, tokens []string) error {
	return m.Called(ctx, tokens).Error(0)
}

// stubRepositoryFactory hands out the mocks above as transaction-bound repositories.
type stubRepositoryFactory struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	sessionRepo repository.SessionRepository
}

func (f *stubRepositoryFactory) UserRepo() repository.UserRepository       { return f.userRepo }
func (f *stubRepositoryFactory) ProfileRepo() repository.ProfileRepository { return f.profileRepo }
func (f *stubRepositoryFactory) SessionRepo() repository.SessionRepository { return f.sessionRepo }

// StubTransactionManager runs the callback inline against the given mocks,
// with no real transaction underneath.
type StubTransactionManager struct {
	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	SessionRepo repository.SessionRepository

	// ExecuteErr, when set, is returned without invoking the callback.
	ExecuteErr error
}

func (tm *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if tm.ExecuteErr != nil {
		return tm.ExecuteErr
	}

	return fn(&stubRepositoryFactory{
		userRepo:    tm.UserRepo,
		profileRepo: tm.ProfileRepo,
		sessionRepo: tm.SessionRepo,
	})
}
