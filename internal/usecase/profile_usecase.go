package usecase

import (
	"context"
	"io"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileInput carries a partial profile update. Nil fields were absent from
// the request and leave the stored value untouched; present fields overwrite,
// including present-but-empty ones.
type ProfileInput struct {
	Bio          *string
	Location     *string
	Services     *[]string
	Availability *[]entity.AvailabilityWindow
	Pricing      *string
	ContactInfo  *entity.ContactInfo
}

// PictureUpload is an incoming profile picture.
type PictureUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ProfileUsecase defines the interface for profile operations.
type ProfileUsecase interface {
	// GetOwn returns the caller's profile, creating it from the account's
	// basic fields if it does not exist yet.
	GetOwn(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// GetByUserID returns another account's profile.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Upsert applies a partial update to the caller's profile, creating it
	// first when absent.
	Upsert(ctx context.Context, userID uuid.UUID, input ProfileInput) (*entity.Profile, error)

	// Delete removes the caller's profile. The account itself stays.
	Delete(ctx context.Context, userID uuid.UUID) error

	// Search returns profiles matching the ANDed filters.
	Search(ctx context.Context, filter entity.ProfileFilter) ([]*entity.Profile, error)

	// UploadPicture stores a picture and records its reference on the
	// caller's profile.
	UploadPicture(ctx context.Context, userID uuid.UUID, upload PictureUpload) (*entity.Profile, error)

	// Picture streams the account's stored profile picture. The caller must
	// close the returned reader.
	Picture(ctx context.Context, userID uuid.UUID) (io.ReadCloser, string, error)

	// ShareQR renders the QR code PNG pointing at the account's profile.
	ShareQR(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
