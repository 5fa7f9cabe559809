package postgres

import (
	"context"
	"log/slog"
	"time"

	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/lifecycle"
	"connect/internal/domain/repository"
	"connect/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// sessionSweepInterval is how often expired sessions are purged.
const sessionSweepInterval = time.Hour

// sessionRepository implements the domain.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// SessionRepositoryParams holds dependencies for sessionRepository, injected by Fx.
type SessionRepositoryParams struct {
	fx.In

	Lc     fx.Lifecycle
	DB     *gorm.DB
	Logger *slog.Logger
}

// NewSessionRepository is the constructor for sessionRepository. It also
// starts the background sweep that keeps the sessions table free of
// abandoned logins.
func NewSessionRepository(params SessionRepositoryParams) repository.SessionRepository {
	repo := &sessionRepository{db: params.DB}

	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweepExpiredSessions(sweepCtx, params.Logger, repo, sessionSweepInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelSweep()

			return nil
		},
	})

	return repo
}

// sweepExpiredSessions periodically deletes sessions past their expiry.
func sweepExpiredSessions(ctx context.Context, logger *slog.Logger, repo repository.SessionRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweepCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			removed, err := repo.DeleteExpired(sweepCtx)
			cancel()

			if err != nil {
				logger.Warn("Failed to sweep expired sessions", "error", err)

				continue
			}
			if removed > 0 {
				logger.Debug("Swept expired sessions", "removed", removed)
			}
		}
	}
}

// Create persists a new session.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByTokenHash retrieves a session by its token hash. An expired record
// surfaces as ErrSessionExpired so the caller can clear the cookie.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&sessionM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token hash")
	}

	session := toSessionDomain(&sessionM)
	if session.Expired() {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

// DeleteByTokenHash ends a session. Deleting a missing hash is a no-op, so
// logout stays idempotent.
func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&model.SessionModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}

// DeleteExpired removes all sessions past their expiry and returns how many
// rows were deleted.
func (repo *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.SessionModel{})

	if res.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete expired sessions")
	}

	return res.RowsAffected, nil
}

// --- Mapper Functions ---

func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
	}
}
