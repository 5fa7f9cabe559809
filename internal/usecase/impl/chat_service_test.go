package impl

import (
	"context"
	"testing"

	"connect/internal/domain/entity"
	domainerrors "connect/internal/domain/errors"
	"connect/internal/domain/repository"
	"connect/internal/domain/service"
	mockRepo "connect/internal/mocks/repository"
	mockSvc "connect/internal/mocks/service"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type chatServiceMocks struct {
	messageRepo *mockRepo.MockMessageRepository
	userRepo    *mockRepo.MockUserRepository
	deviceRepo  *mockRepo.MockDeviceRepository
	eventBus    *mockSvc.MockEventBus
	publisher   *mockSvc.MockEventPublisher
}

func newChatService(t *testing.T) (usecase.ChatUsecase, chatServiceMocks) {
	t.Helper()

	m := chatServiceMocks{
		messageRepo: mockRepo.NewMockMessageRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		deviceRepo:  mockRepo.NewMockDeviceRepository(t),
		eventBus:    mockSvc.NewMockEventBus(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	svc := NewChatService(ChatServiceParams{
		MessageRepo:    m.messageRepo,
		UserRepo:       m.userRepo,
		DeviceRepo:     m.deviceRepo,
		EventBus:       m.eventBus,
		EventPublisher: m.publisher,
		Logger:         testLogger(),
	})

	return svc, m
}

func TestChatService_Send(t *testing.T) {
	svc, m := newChatService(t)

	ctx := context.Background()
	senderID := uuid.New()
	receiverID := uuid.New()
	messageID := uuid.New()

	m.userRepo.On("FindByID", ctx, receiverID).Return(&entity.User{ID: receiverID}, nil)
	m.messageRepo.On("Create", ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(args mock.Arguments) {
			msg := args.Get(1).(*entity.Message)
			assert.False(t, msg.Read)
			msg.ID = messageID
		}).
		Return(nil)
	m.eventBus.On("Publish", ctx, service.UserChannel(receiverID), mock.AnythingOfType("*entity.Message")).Return(nil)
	m.publisher.On("PublishMessageEvent", ctx, mock.MatchedBy(func(event *service.MessageEvent) bool {
		return event.MessageID == messageID.String() && event.ReceiverID == receiverID.String()
	})).Return(nil)

	got, err := svc.Send(ctx, senderID, usecase.SendMessageInput{ReceiverID: receiverID, Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, messageID, got.ID)
	assert.Equal(t, senderID, got.SenderID)
}

func TestChatService_Send_PushFailureDoesNotFailSend(t *testing.T) {
	svc, m := newChatService(t)

	ctx := context.Background()
	receiverID := uuid.New()

	m.userRepo.On("FindByID", ctx, receiverID).Return(&entity.User{ID: receiverID}, nil)
	m.messageRepo.On("Create", ctx, mock.AnythingOfType("*entity.Message")).Return(nil)
	m.eventBus.On("Publish", ctx, mock.Anything, mock.Anything).Return(errors.New("bus down"))
	m.publisher.On("PublishMessageEvent", ctx, mock.Anything).Return(errors.New("pubsub down"))

	_, err := svc.Send(ctx, uuid.New(), usecase.SendMessageInput{ReceiverID: receiverID, Content: "hi"})
	assert.NoError(t, err, "persistence is authoritative; fan-out is best-effort")
}

func TestChatService_Send_Failures(t *testing.T) {
	t.Run("self message", func(t *testing.T) {
		svc, _ := newChatService(t)

		userID := uuid.New()
		_, err := svc.Send(context.Background(), userID, usecase.SendMessageInput{ReceiverID: userID, Content: "hi"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		svc, m := newChatService(t)

		ctx := context.Background()
		receiverID := uuid.New()
		m.userRepo.On("FindByID", ctx, receiverID).Return(nil, repository.ErrUserNotFound)

		_, err := svc.Send(ctx, uuid.New(), usecase.SendMessageInput{ReceiverID: receiverID, Content: "hi"})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestChatService_Conversation(t *testing.T) {
	svc, m := newChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()
	thread := []*entity.Message{
		{ID: uuid.New(), SenderID: userID, ReceiverID: otherID},
		{ID: uuid.New(), SenderID: otherID, ReceiverID: userID},
	}
	m.messageRepo.On("ListConversation", ctx, userID, otherID).Return(thread, nil)

	got, err := svc.Conversation(ctx, userID, otherID)
	require.NoError(t, err)
	assert.Equal(t, thread, got)
}

func TestChatService_MarkRead(t *testing.T) {
	svc, m := newChatService(t)

	ctx := context.Background()
	message := &entity.Message{ID: uuid.New(), Read: true}
	m.messageRepo.On("MarkRead", ctx, message.ID).Return(message, nil)

	got, err := svc.MarkRead(ctx, message.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	missing := uuid.New()
	m.messageRepo.On("MarkRead", ctx, missing).Return(nil, repository.ErrMessageNotFound)

	_, err = svc.MarkRead(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrMessageNotFound)
}

func TestChatService_Stream(t *testing.T) {
	svc, m := newChatService(t)

	ctx := context.Background()
	userID := uuid.New()
	sub := make(chan *entity.Message, 1)
	m.eventBus.On("Subscribe", ctx, service.UserChannel(userID)).Return(sub, nil)

	got, err := svc.Stream(ctx, userID)
	require.NoError(t, err)

	message := &entity.Message{ID: uuid.New()}
	sub <- message
	assert.Equal(t, message, <-got)
}
