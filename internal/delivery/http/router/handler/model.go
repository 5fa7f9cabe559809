package handler

import (
	"time"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// Profiles, bookings, reviews and devices are shaped for responses by the
// models in this file. Chat messages are the exception: entity.Message is
// already wire-shaped (it carries JSON tags and nothing sensitive) and the
// chat handlers and SSE writer serialize it directly.

// ProfileModel is the response shape of a profile.
type ProfileModel struct {
	ID           uuid.UUID                   `json:"id"`
	UserID       uuid.UUID                   `json:"userId"`
	Bio          string                      `json:"bio"`
	Location     string                      `json:"location"`
	Services     []string                    `json:"services"`
	Availability []entity.AvailabilityWindow `json:"availability"`
	Pricing      string                      `json:"pricing"`
	ContactInfo  entity.ContactInfo          `json:"contactInfo"`
	Picture      string                      `json:"picture,omitempty"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
	Owner        *entity.PublicUser          `json:"owner,omitempty"`
}

func toProfileModel(profile *entity.Profile) *ProfileModel {
	return &ProfileModel{
		ID:           profile.ID,
		UserID:       profile.UserID,
		Bio:          profile.Bio,
		Location:     profile.Location,
		Services:     profile.Services,
		Availability: profile.Availability,
		Pricing:      profile.Pricing,
		ContactInfo:  profile.ContactInfo,
		Picture:      profile.Picture,
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
		Owner:        profile.Owner,
	}
}

func toProfileModels(profiles []*entity.Profile) []*ProfileModel {
	models := make([]*ProfileModel, 0, len(profiles))
	for _, profile := range profiles {
		models = append(models, toProfileModel(profile))
	}

	return models
}

// BookingModel is the response shape of a booking.
type BookingModel struct {
	ID           uuid.UUID            `json:"id"`
	ConsumerID   uuid.UUID            `json:"consumerId"`
	ProviderID   uuid.UUID            `json:"providerId"`
	Service      string               `json:"service"`
	Date         string               `json:"date"`
	StartTime    string               `json:"startTime"`
	EndTime      string               `json:"endTime"`
	Status       entity.BookingStatus `json:"status"`
	Notes        string               `json:"notes,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
	Counterparty *entity.PublicUser   `json:"counterparty,omitempty"`
}

func toBookingModel(booking *entity.Booking) *BookingModel {
	return &BookingModel{
		ID:           booking.ID,
		ConsumerID:   booking.ConsumerID,
		ProviderID:   booking.ProviderID,
		Service:      booking.Service,
		Date:         booking.Date,
		StartTime:    booking.StartTime,
		EndTime:      booking.EndTime,
		Status:       booking.Status,
		Notes:        booking.Notes,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
		Counterparty: booking.Counterparty,
	}
}

func toBookingModels(bookings []*entity.Booking) []*BookingModel {
	models := make([]*BookingModel, 0, len(bookings))
	for _, booking := range bookings {
		models = append(models, toBookingModel(booking))
	}

	return models
}

// ReviewModel is the response shape of a review.
type ReviewModel struct {
	ID         uuid.UUID          `json:"id"`
	ReviewerID uuid.UUID          `json:"reviewerId"`
	RevieweeID uuid.UUID          `json:"revieweeId"`
	Rating     int                `json:"rating"`
	Comment    string             `json:"comment,omitempty"`
	Service    string             `json:"service,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
	Reviewer   *entity.PublicUser `json:"reviewer,omitempty"`
}

func toReviewModel(review *entity.Review) *ReviewModel {
	return &ReviewModel{
		ID:         review.ID,
		ReviewerID: review.ReviewerID,
		RevieweeID: review.RevieweeID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		Service:    review.Service,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
		Reviewer:   review.Reviewer,
	}
}

func toReviewModels(reviews []*entity.Review) []*ReviewModel {
	models := make([]*ReviewModel, 0, len(reviews))
	for _, review := range reviews {
		models = append(models, toReviewModel(review))
	}

	return models
}

// DeviceModel is the response shape of a registered device. The FCM token
// is not echoed back.
type DeviceModel struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  string    `json:"deviceId"`
	Platform  string    `json:"platform"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toDeviceModel(device *entity.Device) *DeviceModel {
	return &DeviceModel{
		ID:        device.ID,
		DeviceID:  device.DeviceID,
		Platform:  device.Platform,
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
}

func toDeviceModels(devices []*entity.Device) []*DeviceModel {
	models := make([]*DeviceModel, 0, len(devices))
	for _, device := range devices {
		models = append(models, toDeviceModel(device))
	}

	return models
}
