package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"connect/config"
	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/domain/service"
	mockRepo "connect/internal/mocks/repository"
	mockSvc "connect/internal/mocks/service"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session = config.SessionConfig{TTL: time.Hour}

	return cfg
}

func newAccountService(t *testing.T, userRepo *mockRepo.MockUserRepository, sessionRepo *mockRepo.MockSessionRepository, hasher *mockSvc.MockPasswordHasher) usecase.AccountUsecase {
	t.Helper()

	return NewAccountService(AccountServiceParams{
		TxManager:   &mockRepo.StubTransactionManager{UserRepo: userRepo, SessionRepo: sessionRepo},
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		Hasher:      hasher,
		Config:      testConfig(),
		Logger:      testLogger(),
	})
}

func TestAccountService_Signup(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	svc := newAccountService(t, userRepo, sessionRepo, hasher)

	ctx := context.Background()
	userID := uuid.New()

	hasher.On("ValidatePasswordStrength", "secret123").Return(nil)
	hasher.On("Hash", "secret123").Return("hashed", nil)

	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "alice@example.com", user.Email, "email is stored lowercase")
			assert.Equal(t, "hashed", user.PasswordHash)
			user.ID = userID
		}).
		Return(nil)
	sessionRepo.On("Create", ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(args mock.Arguments) {
			sess := args.Get(1).(*entity.Session)
			assert.Equal(t, userID, sess.UserID)
			assert.True(t, sess.ExpiresAt.After(time.Now()))
		}).
		Return(nil)

	out, err := svc.Signup(ctx, usecase.SignupInput{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "secret123",
		Role:     entity.RoleConsumer,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, out.User.ID)
	assert.NotEmpty(t, out.SessionToken, "signup logs the account in")
}

func TestAccountService_Signup_UnknownRole(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	svc := newAccountService(t, userRepo, sessionRepo, hasher)

	_, err := svc.Signup(context.Background(), usecase.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     entity.Role("admin"),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestAccountService_Signup_WeakPassword(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	svc := newAccountService(t, userRepo, sessionRepo, hasher)

	hasher.On("ValidatePasswordStrength", "123").Return(domainerrors.ErrPasswordStrength)

	_, err := svc.Signup(context.Background(), usecase.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "123",
		Role:     entity.RoleConsumer,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAccountService_Signup_DuplicateAccount(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	svc := newAccountService(t, userRepo, sessionRepo, hasher)

	ctx := context.Background()
	hasher.On("ValidatePasswordStrength", "secret123").Return(nil)
	hasher.On("Hash", "secret123").Return("hashed", nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrDuplicateAccount)

	_, err := svc.Signup(ctx, usecase.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     entity.RoleArtisan,
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)
}

func TestAccountService_Login(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	svc := newAccountService(t, userRepo, sessionRepo, hasher)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "hashed"}

	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	hasher.On("Check", "secret123", "hashed").Return(true)
	sessionRepo.On("Create", ctx, mock.AnythingOfType("*entity.Session")).Return(nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "ALICE@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)
	assert.NotEmpty(t, out.SessionToken)
}

func TestAccountService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		sessionRepo := mockRepo.NewMockSessionRepository(t)
		hasher := mockSvc.NewMockPasswordHasher(t)
		svc := newAccountService(t, userRepo, sessionRepo, hasher)

		ctx := context.Background()
		userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := svc.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		sessionRepo := mockRepo.NewMockSessionRepository(t)
		hasher := mockSvc.NewMockPasswordHasher(t)
		svc := newAccountService(t, userRepo, sessionRepo, hasher)

		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), PasswordHash: "hashed"}
		userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
		hasher.On("Check", "wrong", "hashed").Return(false)

		_, err := svc.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAccountService_Logout(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	svc := newAccountService(t, userRepo, sessionRepo, hasher)

	ctx := context.Background()
	raw := "raw-token"
	sessionRepo.On("DeleteByTokenHash", ctx, service.HashSessionToken(raw)).Return(nil)

	require.NoError(t, svc.Logout(ctx, raw))

	// Empty token skips the repository entirely.
	require.NoError(t, svc.Logout(ctx, ""))
}

func TestAccountService_Authenticate(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	svc := newAccountService(t, userRepo, sessionRepo, hasher)

	ctx := context.Background()
	raw := "raw-token"
	user := &entity.User{ID: uuid.New()}
	sess := &entity.Session{UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}

	sessionRepo.On("FindByTokenHash", ctx, service.HashSessionToken(raw)).Return(sess, nil)
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	got, err := svc.Authenticate(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAccountService_Authenticate_Failures(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		svc := newAccountService(t, mockRepo.NewMockUserRepository(t), mockRepo.NewMockSessionRepository(t), mockSvc.NewMockPasswordHasher(t))

		_, err := svc.Authenticate(context.Background(), "")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("unknown session", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		sessionRepo := mockRepo.NewMockSessionRepository(t)
		svc := newAccountService(t, userRepo, sessionRepo, mockSvc.NewMockPasswordHasher(t))

		ctx := context.Background()
		sessionRepo.On("FindByTokenHash", ctx, mock.Anything).Return(nil, repository.ErrSessionNotFound)

		_, err := svc.Authenticate(ctx, "raw-token")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("expired session", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		sessionRepo := mockRepo.NewMockSessionRepository(t)
		svc := newAccountService(t, userRepo, sessionRepo, mockSvc.NewMockPasswordHasher(t))

		ctx := context.Background()
		sessionRepo.On("FindByTokenHash", ctx, mock.Anything).Return(nil, repository.ErrSessionExpired)

		_, err := svc.Authenticate(ctx, "raw-token")
		assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
	})
}

func TestAccountService_CurrentUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	svc := newAccountService(t, userRepo, sessionRepo, hasher)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	got, err := svc.CurrentUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	missing := uuid.New()
	userRepo.On("FindByID", ctx, missing).Return(nil, repository.ErrUserNotFound)

	_, err = svc.CurrentUser(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
