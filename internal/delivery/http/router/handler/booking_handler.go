package handler

import (
	"log/slog"
	"net/http"

	"connect/internal/delivery/http/response"
	"connect/internal/domain/entity"
	"connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// BookingHandler holds dependencies for appointment handlers.
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler.
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// CreateBookingRequest represents the request body for requesting an
// appointment.
type CreateBookingRequest struct {
	ProviderID string `json:"providerId" validate:"required,uuid"`
	Service    string `json:"service" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime    string `json:"endTime" validate:"required,datetime=15:04"`
	Notes      string `json:"notes" validate:"max=500"`
}

// UpdateBookingStatusRequest represents the request body for overwriting a
// booking's status.
type UpdateBookingStatusRequest struct {
	BookingID string `json:"bookingId" validate:"required,uuid"`
	Status    string `json:"status" validate:"required"`
}

// Create requests an appointment with a provider. The consumer is always
// the session user and the status always starts at pending.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	providerID, err := uuid.Parse(req.ProviderID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	booking, err := h.bookingUC.Create(c.Request().Context(), userID, usecase.CreateBookingInput{
		ProviderID: providerID,
		Service:    req.Service,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBookingModel(booking), "Booking requested successfully")
}

// ListAsConsumer returns the caller's outgoing bookings with the provider
// as counterparty.
func (h *BookingHandler) ListAsConsumer(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookingUC.ListAsConsumer(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookingModels(bookings), "Bookings retrieved successfully")
}

// ListAsProvider returns the caller's incoming bookings with the consumer
// as counterparty.
func (h *BookingHandler) ListAsProvider(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookingUC.ListAsProvider(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookingModels(bookings), "Bookings retrieved successfully")
}

// UpdateStatus overwrites a booking's status. Only the booking's two
// parties may do this; any valid status may replace any other.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	booking, err := h.bookingUC.UpdateStatus(c.Request().Context(), userID, bookingID, entity.BookingStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookingModel(booking), "Booking status updated successfully")
}
