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
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByUserID retrieves the profile owned by the account, joined with the
// owner's public fields and availability windows.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Availability").
		Where("user_id = ?", userID).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new profile together with its availability windows.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrProfileExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update overwrites the stored profile. Availability windows are replaced
// wholesale: the stored set is deleted and the incoming set inserted, so the
// update is a full overwrite rather than a merge.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("profile_id = ?", profileM.ID).
			Delete(&model.AvailabilityWindowModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear availability windows")
		}

		return tx.Save(profileM).Error
	})

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// DeleteByUserID removes the account's profile and its availability windows.
func (repo *profileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profileM model.ProfileModel
		if err := tx.Where("user_id = ?", userID).First(&profileM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to find profile for deletion")
		}

		if err := tx.
			Where("profile_id = ?", profileM.ID).
			Delete(&model.AvailabilityWindowModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete availability windows")
		}

		return tx.Delete(&profileM).Error
	})

	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete profile")
	}

	return nil
}

// Search returns profiles matching the ANDed filter clauses. Substring
// filters are case-insensitive; the availability clause requires a window
// covering the requested day and time with a half-open end.
func (repo *profileRepository) Search(ctx context.Context, filter entity.ProfileFilter) ([]*entity.Profile, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Preload("User").
		Preload("Availability")

	if filter.Role != "" {
		query = query.Where(
			"user_id IN (?)",
			repo.db.Model(&model.UserModel{}).Select("id").Where("role = ?", filter.Role.String()),
		)
	}
	if filter.Service != "" {
		query = query.Where("services::text ILIKE ?", "%"+filter.Service+"%")
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.Day != "" && filter.Time != "" {
		query = query.Where(
			"EXISTS (SELECT 1 FROM availability_windows aw WHERE aw.profile_id = profiles.id AND aw.day = ? AND aw.start_time <= ? AND aw.end_time > ?)",
			filter.Day, filter.Time, filter.Time,
		)
	}

	var profileMs []model.ProfileModel
	if err := query.Find(&profileMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileMs))
	for i := range profileMs {
		profiles = append(profiles, toProfileDomain(&profileMs[i]))
	}

	return profiles, nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	windows := make([]entity.AvailabilityWindow, 0, len(data.Availability))
	for _, w := range data.Availability {
		windows = append(windows, entity.AvailabilityWindow{
			Day:       w.Day,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}

	return &entity.Profile{
		ID:           data.ID,
		UserID:       data.UserID,
		Bio:          data.Bio,
		Location:     data.Location,
		Services:     data.Services,
		Availability: windows,
		Pricing:      data.Pricing,
		ContactInfo:  data.ContactInfo,
		Picture:      data.Picture,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		Owner:        toPublicUser(data.User),
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	windows := make([]model.AvailabilityWindowModel, 0, len(data.Availability))
	for _, w := range data.Availability {
		windows = append(windows, model.AvailabilityWindowModel{
			ProfileID: data.ID,
			Day:       w.Day,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}

	return &model.ProfileModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Bio:          data.Bio,
		Location:     data.Location,
		Services:     data.Services,
		Pricing:      data.Pricing,
		ContactInfo:  data.ContactInfo,
		Picture:      data.Picture,
		Availability: windows,
	}
}
