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

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpsertProfileRequest carries a partial profile update. Absent keys stay
// nil and leave the stored value untouched; present keys overwrite, even
// when empty.
type UpsertProfileRequest struct {
	Bio          *string                      `json:"bio"`
	Location     *string                      `json:"location"`
	Services     *[]string                    `json:"services"`
	Availability *[]entity.AvailabilityWindow `json:"availability"`
	Pricing      *string                      `json:"pricing"`
	ContactInfo  *entity.ContactInfo          `json:"contactInfo"`
}

// GetOwn returns the caller's profile, creating it from the account's basic
// fields on first access.
func (h *ProfileHandler) GetOwn(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetOwn(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileModel(profile), "Profile retrieved successfully")
}

// GetByUserID returns another account's profile joined with its owner.
func (h *ProfileHandler) GetByUserID(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	profile, err := h.profileUC.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileModel(profile), "Profile retrieved successfully")
}

// Upsert creates or partially updates the caller's profile.
func (h *ProfileHandler) Upsert(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.profileUC.Upsert(c.Request().Context(), userID, usecase.ProfileInput{
		Bio:          req.Bio,
		Location:     req.Location,
		Services:     req.Services,
		Availability: req.Availability,
		Pricing:      req.Pricing,
		ContactInfo:  req.ContactInfo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileModel(profile), "Profile saved successfully")
}

// Delete removes the caller's profile. The account itself stays.
func (h *ProfileHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.profileUC.Delete(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Profile deleted successfully"}, "Profile deleted successfully")
}

// Search returns profiles matching the ANDed optional filters. Public route.
func (h *ProfileHandler) Search(c echo.Context) error {
	filter := entity.ProfileFilter{
		Role:     entity.Role(c.QueryParam("userType")),
		Service:  c.QueryParam("service"),
		Location: c.QueryParam("location"),
		Day:      c.QueryParam("day"),
		Time:     c.QueryParam("time"),
	}
	if filter.Role != "" && !filter.Role.IsValid() {
		return response.BadRequest(c, "VALIDATION_ERROR", "Unknown userType filter")
	}

	profiles, err := h.profileUC.Search(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileModels(profiles), "Profiles retrieved successfully")
}

// UploadPicture stores a multipart picture upload and records its reference
// on the caller's profile.
func (h *ProfileHandler) UploadPicture(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field 'picture' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded picture")
	}
	defer file.Close()

	profile, err := h.profileUC.UploadPicture(c.Request().Context(), userID, usecase.PictureUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileModel(profile), "Picture uploaded successfully")
}

// ServePicture streams an account's stored profile picture.
func (h *ProfileHandler) ServePicture(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	body, contentType, err := h.profileUC.Picture(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}
	defer body.Close()

	return c.Stream(http.StatusOK, contentType, body)
}

// ShareQR renders the PNG QR code pointing at an account's profile.
func (h *ProfileHandler) ShareQR(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	png, err := h.profileUC.ShareQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
