// Package usecase provides hand-written testify mocks for the usecase
// interfaces, used by delivery-layer tests.
package usecase

import (
	"context"
	"testing"

	"connect/internal/domain/entity"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountUsecase mocks usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

// NewMockAccountUsecase creates the mock and asserts its expectations on cleanup.
func NewMockAccountUsecase(t *testing.T) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountUsecase) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *MockAccountUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *MockAccountUsecase) Logout(ctx context.Context, rawToken string) error {
	return m.Called(ctx, rawToken).Error(0)
}

func (m *MockAccountUsecase) Authenticate(ctx context.Context, rawToken string) (*entity.User, error) {
	args := m.Called(ctx, rawToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAccountUsecase) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

// MockBookingUsecase mocks usecase.BookingUsecase.
type MockBookingUsecase struct {
	mock.Mock
}

// NewMockBookingUsecase creates the mock and asserts its expectations on cleanup.
func NewMockBookingUsecase(t *testing.T) *MockBookingUsecase {
	m := &MockBookingUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBookingUsecase) Create(ctx context.Context, consumerID uuid.UUID, input usecase.CreateBookingInput) (*entity.Booking, error) {
	args := m.Called(ctx, consumerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingUsecase) ListAsConsumer(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingUsecase) ListAsProvider(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingUsecase) UpdateStatus(ctx context.Context, actorID, bookingID uuid.UUID, status entity.BookingStatus) (*entity.Booking, error) {
	args := m.Called(ctx, actorID, bookingID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Booking), args.Error(1)
}
