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

// messageRepository implements the domain.MessageRepository interface using GORM.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Create persists a new message. Read always starts false.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)
	messageM.Read = false

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.Read = messageM.Read
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListConversation returns every message exchanged between the two accounts
// in either direction, ordered oldest first. Symmetric in its arguments.
func (repo *messageRepository) ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]*entity.Message, error) {
	var messageMs []model.MessageModel
	err := repo.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&messageMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversation")
	}

	messages := make([]*entity.Message, 0, len(messageMs))
	for i := range messageMs {
		messages = append(messages, toMessageDomain(&messageMs[i]))
	}

	return messages, nil
}

// MarkRead sets read=true on the message and returns the updated record.
func (repo *messageRepository) MarkRead(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&messageM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message")
	}

	if !messageM.Read {
		if err := repo.db.WithContext(ctx).
			Model(&messageM).
			Update("read", true).Error; err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to mark message read")
		}
		messageM.Read = true
	}

	return toMessageDomain(&messageM), nil
}

// --- Mapper Functions ---

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:         data.ID,
		SenderID:   data.SenderID,
		ReceiverID: data.ReceiverID,
		Content:    data.Content,
		Read:       data.Read,
		CreatedAt:  data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:         data.ID,
		SenderID:   data.SenderID,
		ReceiverID: data.ReceiverID,
		Content:    data.Content,
		Read:       data.Read,
	}
}
