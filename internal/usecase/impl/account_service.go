// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"connect/config"
	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/domain/service"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	sessionTTL  time.Duration
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService creates a new account service instance
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		sessionTTL:  params.Config.Session.TTL,
		logger:      params.Logger,
	}
}

// Signup orchestrates the complete account registration process. The new
// account is logged in immediately: the user row and the first session are
// created in one transaction.
func (srv *accountService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Starting signup", "email", input.Email)

	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during signup", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        strings.ToLower(input.Email),
		PasswordHash: hashedPassword,
		Role:         input.Role,
		Bio:          input.Bio,
		Location:     input.Location,
	}

	var rawToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		token, session, err := newSession(newUser.ID, srv.sessionTTL)
		if err != nil {
			return err
		}
		if err := repoFactory.SessionRepo().Create(ctx, session); err != nil {
			return errors.WithStack(err)
		}
		rawToken = token

		return nil
	})

	if err != nil {
		srv.logger.Warn("Signup failed", "email", input.Email, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("Account registered", "userID", newUser.ID)

	return &usecase.AuthOutput{User: newUser, SessionToken: rawToken}, nil
}

// Login orchestrates the account login process. A missing account and a
// wrong password produce the same error so the response does not reveal
// which of the two failed.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Starting login", "email", input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, strings.ToLower(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	rawToken, session, err := newSession(user.ID, srv.sessionTTL)
	if err != nil {
		return nil, err
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.WithStack(err)
	}
	srv.logger.Debug("Account logged in", "userID", user.ID)

	return &usecase.AuthOutput{User: user, SessionToken: rawToken}, nil
}

// Logout ends the session behind the raw token. The hash lookup means an
// unknown or already-removed token is simply a no-op.
func (srv *accountService) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}

	if err := srv.sessionRepo.DeleteByTokenHash(ctx, service.HashSessionToken(rawToken)); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// Authenticate resolves a raw session token to its account.
func (srv *accountService) Authenticate(ctx context.Context, rawToken string) (*entity.User, error) {
	if rawToken == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	sess, err := srv.sessionRepo.FindByTokenHash(ctx, service.HashSessionToken(rawToken))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSessionNotFound):
			return nil, domainerrors.ErrUnauthenticated
		case errors.Is(err, repository.ErrSessionExpired):
			return nil, domainerrors.ErrSessionExpired
		default:
			return nil, errors.Wrap(err, "failed to find session")
		}
	}

	user, err := srv.userRepo.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to find session user")
	}

	return user, nil
}

// CurrentUser fetches the authenticated account's record.
func (srv *accountService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// newSession builds a fresh session entity and its raw client token.
func newSession(userID uuid.UUID, ttl time.Duration) (string, *entity.Session, error) {
	rawToken, tokenHash, err := service.NewSessionToken()
	if err != nil {
		return "", nil, err
	}

	return rawToken, &entity.Session{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}
