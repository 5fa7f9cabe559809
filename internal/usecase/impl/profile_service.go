package impl

import (
	"context"
	"io"
	"log/slog"

	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/domain/service"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo   repository.ProfileRepository
	userRepo      repository.UserRepository
	pictureStore  service.PictureStore
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo   repository.ProfileRepository
	UserRepo      repository.UserRepository
	PictureStore  service.PictureStore `optional:"true"`
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo:   params.ProfileRepo,
		userRepo:      params.UserRepo,
		pictureStore:  params.PictureStore,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// GetOwn returns the caller's profile, lazily creating it from the account's
// basic fields on first access. Fetching your own profile never 404s.
func (srv *profileService) GetOwn(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find own profile")
	}

	return srv.seedProfile(ctx, userID)
}

// seedProfile creates the initial profile from the account record.
func (srv *profileService) seedProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find account for profile seed")
	}

	profile := &entity.Profile{
		UserID:   userID,
		Bio:      user.Bio,
		Location: user.Location,
		Picture:  user.Picture,
	}
	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		// Two concurrent first fetches can both find no profile and race on
		// the insert. The loser picks up the winner's row.
		if errors.Is(err, repository.ErrProfileExists) {
			seeded, findErr := srv.profileRepo.FindByUserID(ctx, userID)
			if findErr != nil {
				return nil, errors.Wrap(findErr, "failed to find concurrently seeded profile")
			}

			return seeded, nil
		}

		return nil, errors.WithStack(err)
	}
	profile.Owner = user.Public()

	srv.logger.Debug("Seeded profile", "userID", userID)

	return profile, nil
}

// GetByUserID returns another account's profile.
func (srv *profileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// Upsert applies a partial update to the caller's profile. Only fields
// present in the request overwrite; absent fields keep their stored value.
func (srv *profileService) Upsert(ctx context.Context, userID uuid.UUID, input usecase.ProfileInput) (*entity.Profile, error) {
	profile, err := srv.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
	if input.Services != nil {
		profile.Services = *input.Services
	}
	if input.Availability != nil {
		profile.Availability = *input.Availability
	}
	if input.Pricing != nil {
		profile.Pricing = *input.Pricing
	}
	if input.ContactInfo != nil {
		profile.ContactInfo = *input.ContactInfo
	}

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.WithStack(err)
	}

	return profile, nil
}

// Delete removes the caller's profile; the account itself stays.
func (srv *profileService) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := srv.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to delete profile")
	}

	return nil
}

// Search returns profiles matching the ANDed filters.
func (srv *profileService) Search(ctx context.Context, filter entity.ProfileFilter) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search profiles")
	}

	return profiles, nil
}

// UploadPicture stores a picture and records its reference on the caller's
// profile.
func (srv *profileService) UploadPicture(ctx context.Context, userID uuid.UUID, upload usecase.PictureUpload) (*entity.Profile, error) {
	if srv.pictureStore == nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("picture storage is not configured")
	}

	profile, err := srv.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	ref, err := srv.pictureStore.Save(ctx, upload.Filename, upload.ContentType, upload.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store picture")
	}

	profile.Picture = ref
	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.WithStack(err)
	}

	return profile, nil
}

// Picture streams the account's stored profile picture.
func (srv *profileService) Picture(ctx context.Context, userID uuid.UUID) (io.ReadCloser, string, error) {
	if srv.pictureStore == nil {
		return nil, "", domainerrors.ErrInternalError.WrapMessage("picture storage is not configured")
	}

	profile, err := srv.GetByUserID(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if profile.Picture == "" {
		return nil, "", domainerrors.ErrNotFound.WrapMessage("account has no profile picture")
	}

	body, contentType, err := srv.pictureStore.Open(ctx, profile.Picture)
	if err != nil {
		// A dangling reference reads the same as no picture at all.
		if errors.Is(err, service.ErrPictureNotFound) {
			return nil, "", domainerrors.ErrNotFound.WrapMessage("account has no profile picture")
		}

		return nil, "", errors.Wrap(err, "failed to open profile picture")
	}

	return body, contentType, nil
}

// ShareQR renders a QR code PNG pointing at the account's profile.
func (srv *profileService) ShareQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	// Reject QR codes for accounts that do not exist.
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find account for QR code")
	}

	png, err := srv.qrcodeService.GenerateProfileQR(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate profile QR code")
	}

	return png, nil
}
