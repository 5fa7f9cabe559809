package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"connect/internal/delivery/http/response"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// heartbeatInterval keeps idle SSE connections from being reaped by
// intermediaries.
const heartbeatInterval = 30 * time.Second

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Logger *slog.Logger
}

// ChatHandler holds dependencies for direct-messaging handlers.
type ChatHandler struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler.
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC: params.ChatUC,
		logger: params.Logger,
	}
}

// SendMessageRequest represents the request body for sending a direct
// message.
type SendMessageRequest struct {
	ReceiverID string `json:"receiverId" validate:"required,uuid"`
	Content    string `json:"content" validate:"required,max=2000"`
}

// Send persists a message and pushes it to the receiver's live stream.
func (h *ChatHandler) Send(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	receiverID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid receiver ID")
	}

	message, err := h.chatUC.Send(c.Request().Context(), userID, usecase.SendMessageInput{
		ReceiverID: receiverID,
		Content:    req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}

// Conversation returns the full two-way thread between the caller and the
// other account, oldest first.
func (h *ChatHandler) Conversation(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	otherID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	messages, err := h.chatUC.Conversation(c.Request().Context(), userID, otherID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Conversation retrieved successfully")
}

// MarkRead flags a message as read.
func (h *ChatHandler) MarkRead(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	message, err := h.chatUC.MarkRead(c.Request().Context(), messageID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message, "Message marked as read")
}

// Stream pushes the caller's incoming messages over Server-Sent Events.
// The subscription ends when the client disconnects.
func (h *ChatHandler) Stream(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	messages, err := h.chatUC.Stream(ctx, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)

	if err := writeSSEEvent(res, "connected", map[string]any{"userId": userID}); err != nil {
		return errors.WithStack(err)
	}
	res.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("Message stream closed", "userID", userID)

			return nil
		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": heartbeat\n\n"); err != nil {
				return errors.WithStack(err)
			}
			res.Flush()
		case message, ok := <-messages:
			if !ok {
				return nil
			}
			if err := writeSSEEvent(res, "newMessage", message); err != nil {
				return errors.WithStack(err)
			}
			res.Flush()
		}
	}
}

// writeSSEEvent writes one named event in the text/event-stream framing.
func writeSSEEvent(res *echo.Response, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal sse payload")
	}

	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return errors.Wrap(err, "failed to write sse event")
	}

	return nil
}
