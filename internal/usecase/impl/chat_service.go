package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "connect/internal/delivery/context"
	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/lifecycle"
	"connect/internal/domain/repository"
	"connect/internal/domain/service"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// chatService implements the ChatUsecase interface.
type chatService struct {
	messageRepo     repository.MessageRepository
	userRepo        repository.UserRepository
	deviceRepo      repository.DeviceRepository
	eventBus        service.EventBus
	eventPublisher  service.EventPublisher
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	MessageRepo     repository.MessageRepository
	UserRepo        repository.UserRepository
	DeviceRepo      repository.DeviceRepository
	EventBus        service.EventBus
	EventPublisher  service.EventPublisher
	NotificationSvc service.NotificationService `optional:"true"`
	Logger          *slog.Logger
}

// NewChatService creates a new chat service instance
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		messageRepo:     params.MessageRepo,
		userRepo:        params.UserRepo,
		deviceRepo:      params.DeviceRepo,
		eventBus:        params.EventBus,
		eventPublisher:  params.EventPublisher,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

// Send persists a message, then fans it out: live push over the event bus,
// integration event to the publisher, and an optional FCM notification.
// Only the persistence step can fail the call; everything after it is
// best-effort.
func (srv *chatService) Send(ctx context.Context, senderID uuid.UUID, input usecase.SendMessageInput) (*entity.Message, error) {
	if senderID == input.ReceiverID {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("cannot message yourself")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.ReceiverID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find message receiver")
	}

	message := &entity.Message{
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := srv.eventBus.Publish(ctx, service.UserChannel(message.ReceiverID), message); err != nil {
		srv.logger.Warn("Live message push failed", "messageID", message.ID, "error", err.Error())
	}

	event := &service.MessageEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		MessageID:  message.ID.String(),
		SenderID:   message.SenderID.String(),
		ReceiverID: message.ReceiverID.String(),
		SentAt:     message.CreatedAt.UTC().Format(time.RFC3339),
	}
	if err := srv.eventPublisher.PublishMessageEvent(ctx, event); err != nil {
		srv.logger.Warn("Message event publish failed", "messageID", message.ID, "error", err.Error())
	}

	srv.notifyReceiver(message)

	return message, nil
}

// notifyReceiver sends an FCM push for the new message. Runs detached from
// the request so a slow push service never delays the response.
func (srv *chatService) notifyReceiver(message *entity.Message) {
	if srv.notificationSvc == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		devices, err := srv.deviceRepo.ListByUser(ctx, message.ReceiverID)
		if err != nil {
			srv.logger.Warn("Failed to list receiver devices", "receiverID", message.ReceiverID, "error", err.Error())

			return
		}
		if len(devices) == 0 {
			return
		}

		tokens := make([]string, 0, len(devices))
		for _, d := range devices {
			tokens = append(tokens, d.FCMToken)
		}

		data := map[string]string{
			"type":       "new_message",
			"message_id": message.ID.String(),
			"sender_id":  message.SenderID.String(),
		}

		_, _, invalidTokens, err := srv.notificationSvc.SendBatchNotification(ctx, tokens, "New message", message.Content, data)
		if err != nil {
			srv.logger.Warn("Push notification failed", "messageID", message.ID, "error", err.Error())

			return
		}

		if len(invalidTokens) > 0 {
			if err := srv.deviceRepo.DeleteByTokens(ctx, invalidTokens); err != nil {
				srv.logger.Warn("Failed to purge invalid device tokens", "error", err.Error())
			}
		}
	}()
}

// Conversation returns the full two-way thread, oldest first.
func (srv *chatService) Conversation(ctx context.Context, userID, otherID uuid.UUID) ([]*entity.Message, error) {
	messages, err := srv.messageRepo.ListConversation(ctx, userID, otherID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversation")
	}

	return messages, nil
}

// MarkRead flags a message as read. Any authenticated account may flag any
// message; the operation is idempotent.
func (srv *chatService) MarkRead(ctx context.Context, messageID uuid.UUID) (*entity.Message, error) {
	message, err := srv.messageRepo.MarkRead(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to mark message read")
	}

	return message, nil
}

// Stream subscribes the caller to its own live message channel.
func (srv *chatService) Stream(ctx context.Context, userID uuid.UUID) (<-chan *entity.Message, error) {
	sub, err := srv.eventBus.Subscribe(ctx, service.UserChannel(userID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to message stream")
	}

	return sub, nil
}
