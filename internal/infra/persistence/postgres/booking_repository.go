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

// bookingRepository implements the domain.BookingRepository interface using GORM.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// FindByID retrieves a single booking without its counterparty join.
func (repo *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var bookingM model.BookingModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookingM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	return toBookingDomain(&bookingM, nil), nil
}

// ListByConsumer returns the bookings placed by the account, each carrying
// the provider's public fields as counterparty.
func (repo *bookingRepository) ListByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Booking, error) {
	var bookingMs []model.BookingModel
	err := repo.db.WithContext(ctx).
		Preload("Provider").
		Where("consumer_id = ?", consumerID).
		Order("created_at DESC").
		Find(&bookingMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings by consumer")
	}

	bookings := make([]*entity.Booking, 0, len(bookingMs))
	for i := range bookingMs {
		bookings = append(bookings, toBookingDomain(&bookingMs[i], bookingMs[i].Provider))
	}

	return bookings, nil
}

// ListByProvider returns the bookings targeting the account, each carrying
// the consumer's public fields as counterparty.
func (repo *bookingRepository) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Booking, error) {
	var bookingMs []model.BookingModel
	err := repo.db.WithContext(ctx).
		Preload("Consumer").
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&bookingMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings by provider")
	}

	bookings := make([]*entity.Booking, 0, len(bookingMs))
	for i := range bookingMs {
		bookings = append(bookings, toBookingDomain(&bookingMs[i], bookingMs[i].Consumer))
	}

	return bookings, nil
}

// Create persists a new booking.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required booking information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// UpdateStatus unconditionally overwrites the booking's status. Last write
// wins on concurrent updates.
func (repo *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update booking status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBookingDomain(data *model.BookingModel, counterparty *model.UserModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:           data.ID,
		ConsumerID:   data.ConsumerID,
		ProviderID:   data.ProviderID,
		Service:      data.Service,
		Date:         data.Date,
		StartTime:    data.StartTime,
		EndTime:      data.EndTime,
		Status:       entity.BookingStatus(data.Status),
		Notes:        data.Notes,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		Counterparty: toPublicUser(counterparty),
	}
}

func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:         data.ID,
		ConsumerID: data.ConsumerID,
		ProviderID: data.ProviderID,
		Service:    data.Service,
		Date:       data.Date,
		StartTime:  data.StartTime,
		EndTime:    data.EndTime,
		Status:     string(data.Status),
		Notes:      data.Notes,
	}
}
